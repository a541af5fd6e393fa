// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"encoding/binary"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/assetrecord"
)

// registry key: asset id ++ 2 byte big endian copy index
func registryKey(assetId assetrecord.AssetIdentifier, index uint16) []byte {
	key := make([]byte, assetrecord.AssetIdentifierLength, assetrecord.AssetIdentifierLength+2)
	copy(key, assetId[:])
	return appendIndex(key, index)
}

// inventory and listing key: owner ++ asset id ++ 2 byte big endian index
func holdingKey(owner *account.Account, assetId assetrecord.AssetIdentifier, index uint16) []byte {
	ownerBytes := owner.Bytes()
	key := make([]byte, 0, len(ownerBytes)+assetrecord.AssetIdentifierLength+2)
	key = append(key, ownerBytes...)
	key = append(key, assetId[:]...)
	return appendIndex(key, index)
}

// sale key: asset id ++ sale id
//
// the fixed-length asset id prefix makes the per-asset history a
// contiguous range
func saleKey(assetId assetrecord.AssetIdentifier, saleId assetrecord.SaleIdentifier) []byte {
	key := make([]byte, 0, assetrecord.AssetIdentifierLength+assetrecord.SaleIdentifierLength)
	key = append(key, assetId[:]...)
	return append(key, saleId[:]...)
}

func appendIndex(key []byte, index uint16) []byte {
	buffer := make([]byte, 2)
	binary.BigEndian.PutUint16(buffer, index)
	return append(key, buffer...)
}
