// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/bitmark-inc/nftd/assetrecord"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// identical payloads minted by the same creator at the same height
// would hash alike, so the salt is bumped until the id is unused
const maximumSaltRetries = 100

// derive a fresh asset id for a record being minted
//
// hashes the packed record, re-salting while the registry already
// holds an asset under the candidate id; the record's salt is left at
// the value that produced the returned id
func deriveIdentifier(trx storage.Transaction, record *assetrecord.AssetRecord) (assetrecord.AssetIdentifier, error) {

	for i := 0; i < maximumSaltRetries; i += 1 {
		assetId := assetrecord.NewAssetIdentifier(record.Pack())
		if !trx.Has(storage.Pool.Registry, registryKey(assetId, 1)) {
			return assetId, nil
		}
		record.Salt += 1
	}

	return assetrecord.AssetIdentifier{}, fault.SaltExhausted
}
