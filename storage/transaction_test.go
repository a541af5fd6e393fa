// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// a transaction must observe its own buffered writes
func TestTransactionReadOwnWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	p.Put([]byte("existing"), []byte("old"))

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err, "begin failed")

	trx.Put(p, []byte("fresh"), []byte("new"))
	trx.Delete(p, []byte("existing"))

	assert.Equal(t, []byte("new"), trx.Get(p, []byte("fresh")), "buffered put not visible")
	assert.True(t, trx.Has(p, []byte("fresh")), "buffered put not in has")
	assert.Nil(t, trx.Get(p, []byte("existing")), "buffered delete not visible")
	assert.False(t, trx.Has(p, []byte("existing")), "buffered delete not in has")

	require.NoError(t, trx.Commit(), "commit failed")

	assert.Equal(t, []byte("new"), p.Get([]byte("fresh")), "commit lost put")
	assert.Nil(t, p.Get([]byte("existing")), "commit lost delete")
}

// an aborted transaction must leave the database unchanged
func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	p.Put([]byte("keep"), []byte("value"))

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err, "begin failed")

	trx.Put(p, []byte("discard"), []byte("value"))
	trx.Delete(p, []byte("keep"))
	trx.Abort()

	assert.Nil(t, p.Get([]byte("discard")), "aborted put landed")
	assert.Equal(t, []byte("value"), p.Get([]byte("keep")), "aborted delete landed")

	// the transaction must be reusable after abort
	trx, err = storage.NewDBTransaction()
	require.NoError(t, err, "begin after abort failed")
	trx.Abort()
}

// only one transaction may be in progress
func TestTransactionExclusive(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err, "begin failed")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionInUse, err, "expected in-use error")

	trx.Abort()
}
