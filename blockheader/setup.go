// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheader - the logical clock
//
// block height is driven by the surrounding chain; the marketplace
// only ever reads it
package blockheader

import (
	"sync"

	"github.com/bitmark-inc/nftd/counter"
	"github.com/bitmark-inc/nftd/fault"
)

// globals for header
type blockData struct {
	sync.RWMutex // to allow locking

	height counter.Counter // current block height

	// set once during initialise
	initialised bool
}

// global data
var globalData blockData

// Initialise - setup the current block data
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.height.Set(0)
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the block header system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.initialised = false
	return nil
}

// Set - set current height
func Set(height uint64) {
	globalData.height.Set(height)
}

// Increment - advance the height by one block, returns new height
func Increment() uint64 {
	return globalData.height.Increment()
}

// Height - return current height
func Height() uint64 {
	return globalData.height.Uint64()
}

// HeightClock - adapter satisfying the marketplace clock interface
type HeightClock struct{}

// Height - current chain height
func (HeightClock) Height() uint64 {
	return Height()
}
