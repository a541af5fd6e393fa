// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"bytes"
	"math"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/assetrecord"
	"github.com/bitmark-inc/nftd/currency"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// most copies of an unlimited edition one purchase may mint
const maximumPurchaseQuantity = 100

// Buy - purchase from a live listing
//
// price is the unit price the buyer saw and must match the listing
// exactly; the table updates are buffered first and the funds move
// just before commit, so a failed payment leaves the state untouched
func Buy(buyer *account.Account, seller *account.Account, assetId assetrecord.AssetIdentifier, index uint16, price uint64, quantity uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if 0 == quantity {
		return fault.QuantityCannotBeZero
	}

	if price > math.MaxUint64/quantity {
		return fault.BalanceOverflow
	}
	totalCost := price * quantity

	// the buyer must hold strictly more than the total cost
	if globalData.ledger.Balance(buyer) <= totalCost {
		return fault.InsufficientFunds
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	listingKey := holdingKey(seller, assetId, index)

	packed := trx.Get(storage.Pool.Listings, listingKey)
	if nil == packed {
		trx.Abort()
		return fault.MissingListing
	}

	lot, err := assetrecord.UnpackAssetRecord(packed)
	if nil != err {
		trx.Abort()
		return err
	}

	if lot.ListedPrice != price {
		trx.Abort()
		return fault.PriceMismatch
	}

	if lot.ListingExpiresAt <= globalData.clock.Height() {
		trx.Abort()
		return fault.ListingExpired
	}

	if assetrecord.Unlimited != lot.Issuance {
		if lot.ListedQuantity < quantity {
			trx.Abort()
			return fault.QuantityTooHigh
		}
		if lot.Amount < quantity {
			trx.Abort()
			return fault.AvailableAmountTooLow
		}
	}

	switch lot.Issuance {

	case assetrecord.Unlimited:
		err = buyUnlimited(trx, buyer, seller, assetId, index, quantity, lot)

	case assetrecord.Stack:
		err = buyStack(trx, buyer, seller, assetId, 1, quantity, lot, listingKey)

	default: // Single or Limited
		err = buySingle(trx, buyer, seller, assetId, index, lot, listingKey)
	}
	if nil != err {
		trx.Abort()
		return err
	}

	err = settle(buyer, seller, lot, totalCost)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("sold asset: %s index: %d quantity: %d total: %d", assetId, index, quantity, totalCost)
	return nil
}

// pay the seller, splitting off the creator's royalty
//
// the royalty legs use KeepAlive so a sale can never reap either
// payee side of the split; each leg is floored separately so at most
// one unit of rounding loss stays with the buyer
func settle(buyer *account.Account, seller *account.Account, lot *assetrecord.AssetRecord, totalCost uint64) error {

	if 0 == lot.Royalty || bytes.Equal(lot.Creator.Bytes(), seller.Bytes()) {
		return globalData.ledger.Transfer(buyer, seller, totalCost, currency.AllowDeath)
	}

	rate := uint64(lot.Royalty)
	royaltyFee := percentage(totalCost, rate)
	sellerFee := percentage(totalCost, 100-rate)

	err := globalData.ledger.Transfer(buyer, seller, sellerFee, currency.KeepAlive)
	if nil != err {
		return err
	}

	err = globalData.ledger.Transfer(buyer, lot.Creator, royaltyFee, currency.KeepAlive)
	if nil != err {
		// unwind the seller leg so an aborted purchase moves no funds
		e := globalData.ledger.Transfer(seller, buyer, sellerFee, currency.AllowDeath)
		if nil != e {
			globalData.log.Errorf("royalty unwind failed: %s", e)
		}
		return err
	}

	return nil
}

// floor of amount × percent / 100, safe against intermediate overflow
func percentage(amount uint64, percent uint64) uint64 {
	return amount/100*percent + amount%100*percent/100
}

// one-shot transfer of a single or limited-edition copy
//
// the listing is fully consumed
func buySingle(trx storage.Transaction, buyer *account.Account, seller *account.Account, assetId assetrecord.AssetIdentifier, index uint16, lot *assetrecord.AssetRecord, listingKey []byte) error {

	sellerKey := holdingKey(seller, assetId, index)

	packed := trx.Get(storage.Pool.Inventory, sellerKey)
	if nil == packed {
		return fault.MissingInventoryRecord
	}

	trx.Delete(storage.Pool.Listings, listingKey)
	trx.Delete(storage.Pool.Inventory, sellerKey)
	trx.Put(storage.Pool.Inventory, holdingKey(buyer, assetId, index), packed)
	trx.Put(storage.Pool.Registry, registryKey(assetId, index), buyer.Bytes())

	return recordSale(trx, assetId, &assetrecord.SaleRecord{
		Height:    globalData.clock.Height(),
		Seller:    seller,
		Buyer:     buyer,
		Price:     lot.ListedPrice,
		CopyIndex: index,
		Quantity:  1,
	})
}

// mint fresh copies from an unlimited template
//
// each issued copy is downgraded to Single so it can never itself act
// as a template; the listing stays live
func buyUnlimited(trx storage.Transaction, buyer *account.Account, seller *account.Account, assetId assetrecord.AssetIdentifier, index uint16, quantity uint64, lot *assetrecord.AssetRecord) error {

	if quantity > maximumPurchaseQuantity {
		return fault.PurchaseQuantityTooHigh
	}

	packed := trx.Get(storage.Pool.Inventory, holdingKey(seller, assetId, index))
	if nil == packed {
		return fault.MissingInventoryRecord
	}

	template, err := assetrecord.UnpackAssetRecord(packed)
	if nil != err {
		return err
	}

	for i := uint64(0); i < quantity; i += 1 {

		next, err := allocateIndex(trx, assetId)
		if nil != err {
			return err
		}

		issued := *template
		issued.Issuance = assetrecord.Single
		issued.CopyIndex = next
		issued.Amount = 1

		trx.Put(storage.Pool.Inventory, holdingKey(buyer, assetId, next), issued.Pack())
		trx.Put(storage.Pool.Registry, registryKey(assetId, next), buyer.Bytes())

		err = recordSale(trx, assetId, &assetrecord.SaleRecord{
			Height:    globalData.clock.Height(),
			Seller:    seller,
			Buyer:     buyer,
			Price:     lot.ListedPrice,
			CopyIndex: next,
			Quantity:  1,
		})
		if nil != err {
			return err
		}
	}

	return nil
}

// move part of a stack to the buyer
//
// merges into the buyer's existing stack of the same asset or splits a
// new one off under a freshly allocated copy index; a drained listing
// is removed and a drained non-creator holding is cleaned out of both
// inventory and registry
func buyStack(trx storage.Transaction, buyer *account.Account, seller *account.Account, assetId assetrecord.AssetIdentifier, index uint16, quantity uint64, lot *assetrecord.AssetRecord, listingKey []byte) error {

	sellerKey := holdingKey(seller, assetId, index)

	packed := trx.Get(storage.Pool.Inventory, sellerKey)
	if nil == packed {
		return fault.MissingInventoryRecord
	}

	sellerRecord, err := assetrecord.UnpackAssetRecord(packed)
	if nil != err {
		return err
	}

	if sellerRecord.Amount < quantity {
		return fault.AvailableAmountTooLow
	}

	buyerKey := holdingKey(buyer, assetId, index)
	saleIndex := uint16(0)

	if trx.Has(storage.Pool.Inventory, buyerKey) {
		// merge into the stack the buyer already holds
		buyerRecord, err := assetrecord.UnpackAssetRecord(trx.Get(storage.Pool.Inventory, buyerKey))
		if nil != err {
			return err
		}
		if buyerRecord.Amount > math.MaxUint64-quantity {
			return fault.CounterOverflow
		}
		buyerRecord.Amount += quantity
		trx.Put(storage.Pool.Inventory, buyerKey, buyerRecord.Pack())
		saleIndex = buyerRecord.CopyIndex

	} else {
		// split a new stack off under the next free index
		next, err := allocateIndex(trx, assetId)
		if nil != err {
			return err
		}
		buyerRecord := *sellerRecord
		buyerRecord.CopyIndex = next
		buyerRecord.Amount = quantity
		trx.Put(storage.Pool.Inventory, buyerKey, buyerRecord.Pack())
		trx.Put(storage.Pool.Registry, registryKey(assetId, next), buyer.Bytes())
		saleIndex = next
	}

	sellerRecord.Amount -= quantity
	lot.Amount -= quantity
	lot.ListedQuantity -= quantity

	if 0 == lot.ListedQuantity {
		trx.Delete(storage.Pool.Listings, listingKey)
	} else {
		trx.Put(storage.Pool.Listings, listingKey, lot.Pack())
	}

	if 0 == sellerRecord.Amount && !bytes.Equal(sellerRecord.Creator.Bytes(), seller.Bytes()) {
		// the creator keeps an empty stack so the asset survives
		trx.Delete(storage.Pool.Inventory, sellerKey)
		trx.Delete(storage.Pool.Registry, registryKey(assetId, sellerRecord.CopyIndex))
	} else {
		trx.Put(storage.Pool.Inventory, sellerKey, sellerRecord.Pack())
	}

	return recordSale(trx, assetId, &assetrecord.SaleRecord{
		Height:    globalData.clock.Height(),
		Seller:    seller,
		Buyer:     buyer,
		Price:     lot.ListedPrice,
		CopyIndex: saleIndex,
		Quantity:  quantity,
	})
}

// append one entry to the sale ledger and bump the sales counter
func recordSale(trx storage.Transaction, assetId assetrecord.AssetIdentifier, sale *assetrecord.SaleRecord) error {
	packed := sale.Pack()
	saleId := assetrecord.NewSaleIdentifier(packed)
	trx.Put(storage.Pool.Sales, saleKey(assetId, saleId), packed)
	return increaseSales(trx)
}
