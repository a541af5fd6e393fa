// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"bytes"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/assetrecord"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// Burn - destroy a holding and its listing
//
// idempotent: burning an absent holding is a no-op; the registry slot
// is only cleared when the caller actually owns it
func Burn(owner *account.Account, assetId assetrecord.AssetIdentifier, index uint16) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := holdingKey(owner, assetId, index)

	trx.Delete(storage.Pool.Inventory, key)
	trx.Delete(storage.Pool.Listings, key)

	registered := trx.Get(storage.Pool.Registry, registryKey(assetId, index))
	if bytes.Equal(registered, owner.Bytes()) {
		trx.Delete(storage.Pool.Registry, registryKey(assetId, index))
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("burnt asset: %s index: %d", assetId, index)
	return nil
}
