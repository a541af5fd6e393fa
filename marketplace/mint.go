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

// the share field is reserved and always minted at the full value
const fullShare = 100

// MintSingle - mint a unique asset
func MintSingle(creator *account.Account, payload []byte, royalty uint8) (*assetrecord.AssetRecord, error) {
	return mint(creator, payload, royalty, assetrecord.Single, 1, 1)
}

// MintLimited - mint a fixed edition of up to 1000 numbered copies
//
// every copy shares the asset id; each gets its own registry entry and
// inventory record
func MintLimited(creator *account.Account, payload []byte, copies uint16, royalty uint8) (*assetrecord.AssetRecord, error) {
	if 0 == copies {
		return nil, fault.QuantityCannotBeZero
	}
	if copies > assetrecord.MaximumEditionCopies {
		return nil, fault.CopyLimitExceeded
	}
	return mint(creator, payload, royalty, assetrecord.Limited, copies, 1)
}

// MintUnlimited - mint a template that issues a fresh copy per purchase
func MintUnlimited(creator *account.Account, payload []byte, royalty uint8) (*assetrecord.AssetRecord, error) {
	return mint(creator, payload, royalty, assetrecord.Unlimited, 1, 1)
}

// MintStack - mint a fungible pool of the given amount
func MintStack(creator *account.Account, payload []byte, amount uint64, royalty uint8) (*assetrecord.AssetRecord, error) {
	return mint(creator, payload, royalty, assetrecord.Stack, 1, amount)
}

func mint(creator *account.Account, payload []byte, royalty uint8, issuance assetrecord.Issuance, copies uint16, amount uint64) (*assetrecord.AssetRecord, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	if royalty > assetrecord.MaximumRoyalty {
		return nil, fault.RoyaltyRateTooHigh
	}

	record := &assetrecord.AssetRecord{
		Creator:   creator,
		MintedAt:  globalData.clock.Height(),
		Royalty:   royalty,
		Share:     fullShare,
		Payload:   payload,
		Issuance:  issuance,
		CopyIndex: 1,
		Amount:    amount,
	}
	if assetrecord.Unlimited == issuance {
		// the template is never a numbered copy, only its issues are;
		// it still lives under storage index 1
		record.CopyIndex = 0
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	assetId, err := deriveIdentifier(trx, record)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	record.Id = assetId

	switch issuance {

	case assetrecord.Limited:
		// one registry slot and one inventory record per copy
		for i := uint16(1); i <= copies; i += 1 {
			record.CopyIndex = i
			trx.Put(storage.Pool.Registry, registryKey(assetId, i), creator.Bytes())
			trx.Put(storage.Pool.Inventory, holdingKey(creator, assetId, i), record.Pack())
		}
		record.CopyIndex = 1
		err = increaseSupply(trx, uint64(copies))

	case assetrecord.Unlimited, assetrecord.Stack:
		trx.Put(storage.Pool.Registry, registryKey(assetId, 1), creator.Bytes())
		trx.Put(storage.Pool.Inventory, holdingKey(creator, assetId, 1), record.Pack())
		trx.PutN(storage.Pool.NextIndex, assetId[:], 2)
		err = increaseSupply(trx, 1)

	default: // Single
		trx.Put(storage.Pool.Registry, registryKey(assetId, 1), creator.Bytes())
		trx.Put(storage.Pool.Inventory, holdingKey(creator, assetId, 1), record.Pack())
		err = increaseSupply(trx, 1)
	}
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("minted %s asset: %s", issuance, assetId)
	return record, nil
}
