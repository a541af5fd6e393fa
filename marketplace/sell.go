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

// block heights in one day of listing time
const heightsPerDay = 28000

// Sell - put a held asset up for sale
//
// the listing is a snapshot of the inventory record with the payload
// replaced by the preview sample; re-listing the same holding replaces
// any previous listing
//
// quantity must be 1 except for stacks, where it is capped by the held
// amount; unlimited templates ignore the held amount
func Sell(owner *account.Account, assetId assetrecord.AssetIdentifier, index uint16, price uint64, sample []byte, quantity uint64, days uint64) error {
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

	packed := trx.Get(storage.Pool.Inventory, key)
	if nil == packed {
		trx.Abort()
		return fault.MissingInventoryRecord
	}

	record, err := assetrecord.UnpackAssetRecord(packed)
	if nil != err {
		trx.Abort()
		return err
	}

	if record.IsEmpty() {
		trx.Abort()
		return fault.AssetRecordIsEmpty
	}

	if 0 == quantity {
		trx.Abort()
		return fault.QuantityCannotBeZero
	}

	if assetrecord.Unlimited != record.Issuance && record.Amount < quantity {
		trx.Abort()
		return fault.QuantityTooHigh
	}

	if assetrecord.Stack != record.Issuance && 1 != quantity {
		trx.Abort()
		return fault.QuantityMustBeOne
	}

	listing := *record
	listing.Payload = sample
	listing.ListedPrice = price
	listing.ListingExpiresAt = globalData.clock.Height() + heightsPerDay*days
	listing.ListedQuantity = quantity

	trx.Delete(storage.Pool.Listings, key)
	trx.Put(storage.Pool.Listings, key, listing.Pack())

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("listed asset: %s index: %d price: %d quantity: %d", assetId, index, price, quantity)
	return nil
}
