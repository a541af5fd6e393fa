// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/currency"
	"github.com/bitmark-inc/nftd/fault"
)

// Clock - source of the current block height
//
// listings expire against this and sale records are stamped with it
type Clock interface {
	Height() uint64
}

// globals for this module
type marketData struct {
	sync.RWMutex // to allow locking

	log    *logger.L       // logger
	clock  Clock           // block height source
	ledger currency.Ledger // external funds

	// set once during initialise
	initialised bool
}

// global data
var globalData marketData

// Initialise - connect the engine to its clock and currency ledger
//
// storage must already be initialised
func Initialise(clock Clock, ledger currency.Ledger) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("marketplace")
	globalData.log.Info("starting…")

	globalData.clock = clock
	globalData.ledger = ledger

	globalData.initialised = true

	return nil
}

// Finalise - shutdown the marketplace engine
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.clock = nil
	globalData.ledger = nil
	globalData.initialised = false

	return nil
}
