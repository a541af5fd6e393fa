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

// Sale - one entry of an asset's sale history
type Sale struct {
	Id     assetrecord.SaleIdentifier `json:"id"`
	Record *assetrecord.SaleRecord    `json:"record"`
}

// OwnerOf - current owner of a registry slot
func OwnerOf(assetId assetrecord.AssetIdentifier, index uint16) (*account.Account, error) {
	ownerBytes := storage.Pool.Registry.Get(registryKey(assetId, index))
	if nil == ownerBytes {
		return nil, fault.MissingInventoryRecord
	}
	return account.AccountFromBytes(ownerBytes)
}

// Holding - the inventory record an owner holds for an asset
func Holding(owner *account.Account, assetId assetrecord.AssetIdentifier, index uint16) (*assetrecord.AssetRecord, error) {
	packed := storage.Pool.Inventory.Get(holdingKey(owner, assetId, index))
	if nil == packed {
		return nil, fault.MissingInventoryRecord
	}
	return assetrecord.UnpackAssetRecord(packed)
}

// Listing - the live listing snapshot of a holding
func Listing(owner *account.Account, assetId assetrecord.AssetIdentifier, index uint16) (*assetrecord.AssetRecord, error) {
	packed := storage.Pool.Listings.Get(holdingKey(owner, assetId, index))
	if nil == packed {
		return nil, fault.MissingListing
	}
	return assetrecord.UnpackAssetRecord(packed)
}

// SaleHistory - all settled sales of an asset
//
// entries come back in sale id order, not settlement order; the
// records carry the settlement height for callers that need a timeline
func SaleHistory(assetId assetrecord.AssetIdentifier) ([]Sale, error) {
	elements := storage.Pool.Sales.Fetch(assetId[:], 0)

	history := make([]Sale, 0, len(elements))
	for _, element := range elements {
		if len(element.Key) != assetrecord.AssetIdentifierLength+assetrecord.SaleIdentifierLength {
			return nil, fault.NotSaleRecord
		}

		record, err := assetrecord.UnpackSaleRecord(element.Value)
		if nil != err {
			return nil, err
		}

		sale := Sale{Record: record}
		copy(sale.Id[:], element.Key[assetrecord.AssetIdentifierLength:])
		history = append(history, sale)
	}

	return history, nil
}
