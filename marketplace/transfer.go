// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/assetrecord"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// Transfer - give a listed holding away without settlement
//
// both the inventory record and its listing move to the recipient, so
// only a currently listed holding can be transferred; no sale record
// is written and no funds move
func Transfer(owner *account.Account, to *account.Account, assetId assetrecord.AssetIdentifier, index uint16) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	ownerKey := holdingKey(owner, assetId, index)
	toKey := holdingKey(to, assetId, index)

	record := trx.Get(storage.Pool.Inventory, ownerKey)
	if nil == record {
		trx.Abort()
		return fault.MissingInventoryRecord
	}

	listing := trx.Get(storage.Pool.Listings, ownerKey)
	if nil == listing {
		trx.Abort()
		return fault.MissingListing
	}

	trx.Delete(storage.Pool.Inventory, ownerKey)
	trx.Put(storage.Pool.Inventory, toKey, record)

	trx.Delete(storage.Pool.Listings, ownerKey)
	trx.Put(storage.Pool.Listings, toKey, listing)

	trx.Put(storage.Pool.Registry, registryKey(assetId, index), to.Bytes())

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("transferred asset: %s index: %d", assetId, index)
	return nil
}
