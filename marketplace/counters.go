// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"math"

	"github.com/bitmark-inc/nftd/assetrecord"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// global counter keys
var (
	supplyKey = []byte("supply")
	salesKey  = []byte("sales")
)

// raise the total minted supply
func increaseSupply(trx storage.Transaction, delta uint64) error {
	current, _ := trx.GetN(storage.Pool.Globals, supplyKey)
	if current > math.MaxUint64-delta {
		return fault.CounterOverflow
	}
	trx.PutN(storage.Pool.Globals, supplyKey, current+delta)
	return nil
}

// raise the total settled sales
func increaseSales(trx storage.Transaction) error {
	current, _ := trx.GetN(storage.Pool.Globals, salesKey)
	if math.MaxUint64 == current {
		return fault.CounterOverflow
	}
	trx.PutN(storage.Pool.Globals, salesKey, current+1)
	return nil
}

// allocate the next free copy index of an asset
//
// only assets minted as unlimited or stack carry this counter; the
// highest index is left unallocated so the stored successor always
// fits in 16 bits
func allocateIndex(trx storage.Transaction, assetId assetrecord.AssetIdentifier) (uint16, error) {
	next, found := trx.GetN(storage.Pool.NextIndex, assetId[:])
	if !found {
		return 0, fault.MissingInventoryRecord
	}
	if next >= 0xffff {
		return 0, fault.CopyIndexOverflow
	}
	trx.PutN(storage.Pool.NextIndex, assetId[:], next+1)
	return uint16(next), nil
}

// Supply - total records minted across all assets
func Supply() uint64 {
	n, _ := storage.Pool.Globals.GetN(supplyKey)
	return n
}

// SalesTotal - total purchases settled
func SalesTotal() uint64 {
	n, _ := storage.Pool.Globals.GetN(salesKey)
	return n
}
