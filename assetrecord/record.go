// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/util"
)

// limits
const (
	MaximumRoyalty       = 100  // percent
	MaximumEditionCopies = 1000 // for a limited edition
	maximumSaltValue     = 0xffffffff
)

// AssetRecord - one holding of a digital asset
//
// the same struct doubles as the listing snapshot: a listing is a
// copy of the inventory record with the payload replaced by the
// preview sample and the listing fields filled in
type AssetRecord struct {
	Id               AssetIdentifier  `json:"id"`               // content-derived hash
	Creator          *account.Account `json:"creator"`          // immutable royalty recipient
	MintedAt         uint64           `json:"mintedAt"`         // block height at mint
	Royalty          uint8            `json:"royalty"`          // 0..100 percent
	Share            uint8            `json:"share"`            // reserved, always 100
	Payload          []byte           `json:"payload"`          // opaque content or preview sample
	Issuance         Issuance         `json:"issuance"`         // minting policy
	CopyIndex        uint16           `json:"copyIndex"`        // position within an edition, 0 for unlimited template
	Amount           uint64           `json:"amount"`           // fungible quantity held by this record
	Salt             uint32           `json:"salt"`             // collision resolution
	ListedPrice      uint64           `json:"listedPrice"`      // unit price while listed
	ListingExpiresAt uint64           `json:"listingExpiresAt"` // block height the listing lapses
	ListedQuantity   uint64           `json:"listedQuantity"`   // remaining quantity on offer
}

// IsEmpty - a record that was never properly minted
func (record *AssetRecord) IsEmpty() bool {
	return record.Id.IsZero() || nil == record.Creator
}

// Pack - serialise the record
//
// fixed 64 byte id, then counted creator bytes, then Varint64 and
// counted-byte fields in declaration order
func (record *AssetRecord) Pack() []byte {
	packed := make([]byte, 0, AssetIdentifierLength+len(record.Payload)+64)
	packed = append(packed, record.Id[:]...)
	packed = appendCounted(packed, record.Creator.Bytes())
	packed = appendUint64(packed, record.MintedAt)
	packed = appendUint64(packed, uint64(record.Royalty))
	packed = appendUint64(packed, uint64(record.Share))
	packed = appendCounted(packed, record.Payload)
	packed = appendUint64(packed, uint64(record.Issuance))
	packed = appendUint64(packed, uint64(record.CopyIndex))
	packed = appendUint64(packed, record.Amount)
	packed = appendUint64(packed, uint64(record.Salt))
	packed = appendUint64(packed, record.ListedPrice)
	packed = appendUint64(packed, record.ListingExpiresAt)
	packed = appendUint64(packed, record.ListedQuantity)
	return packed
}

// UnpackAssetRecord - deserialise a packed record
func UnpackAssetRecord(buffer []byte) (*AssetRecord, error) {
	record := &AssetRecord{}

	if len(buffer) < AssetIdentifierLength {
		return nil, fault.NotAssetRecord
	}
	copy(record.Id[:], buffer[:AssetIdentifierLength])
	n := AssetIdentifierLength

	creatorBytes, n, ok := takeCounted(buffer, n)
	if !ok {
		return nil, fault.NotAssetRecord
	}
	creator, err := account.AccountFromBytes(creatorBytes)
	if nil != err {
		return nil, err
	}
	record.Creator = creator

	mintedAt, n, ok := takeUint64(buffer, n)
	if !ok {
		return nil, fault.NotAssetRecord
	}
	record.MintedAt = mintedAt

	royalty, royaltyLength := util.ClippedVarint64(buffer[n:], 0, MaximumRoyalty)
	if 0 == royaltyLength {
		return nil, fault.NotAssetRecord
	}
	record.Royalty = uint8(royalty)
	n += royaltyLength

	share, shareLength := util.ClippedVarint64(buffer[n:], 0, MaximumRoyalty)
	if 0 == shareLength {
		return nil, fault.NotAssetRecord
	}
	record.Share = uint8(share)
	n += shareLength

	payload, n, ok := takeCounted(buffer, n)
	if !ok {
		return nil, fault.NotAssetRecord
	}
	record.Payload = payload

	issuance, issuanceLength := util.ClippedVarint64(buffer[n:], 0, int(issuanceLimit)-1)
	if 0 == issuanceLength {
		return nil, fault.NotAssetRecord
	}
	record.Issuance = Issuance(issuance)
	n += issuanceLength

	copyIndex, copyLength := util.ClippedVarint64(buffer[n:], 0, 0xffff)
	if 0 == copyLength {
		return nil, fault.NotAssetRecord
	}
	record.CopyIndex = uint16(copyIndex)
	n += copyLength

	amount, n, ok := takeUint64(buffer, n)
	if !ok {
		return nil, fault.NotAssetRecord
	}
	record.Amount = amount

	salt, saltLength := util.FromVarint64(buffer[n:])
	if 0 == saltLength || salt > maximumSaltValue {
		return nil, fault.NotAssetRecord
	}
	record.Salt = uint32(salt)
	n += saltLength

	record.ListedPrice, n, ok = takeUint64(buffer, n)
	if !ok {
		return nil, fault.NotAssetRecord
	}
	record.ListingExpiresAt, n, ok = takeUint64(buffer, n)
	if !ok {
		return nil, fault.NotAssetRecord
	}
	record.ListedQuantity, n, ok = takeUint64(buffer, n)
	if !ok {
		return nil, fault.NotAssetRecord
	}

	if n != len(buffer) {
		return nil, fault.NotAssetRecord
	}

	return record, nil
}

// internal packing helpers

func appendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, util.ToVarint64(value)...)
}

func appendCounted(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

func takeUint64(buffer []byte, n int) (uint64, int, bool) {
	if n >= len(buffer) {
		return 0, n, false
	}
	value, length := util.FromVarint64(buffer[n:])
	if 0 == length {
		return 0, n, false
	}
	return value, n + length, true
}

func takeCounted(buffer []byte, n int) ([]byte, int, bool) {
	count, n, ok := takeUint64(buffer, n)
	if !ok {
		return nil, n, false
	}
	if uint64(len(buffer)-n) < count {
		return nil, n, false
	}
	data := make([]byte, count)
	copy(data, buffer[n:n+int(count)])
	return data, n + int(count), true
}
