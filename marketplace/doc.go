// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package marketplace - the state-transition engine for minting,
// listing, purchasing, transferring and burning digital assets
//
// all operations run inside a single storage transaction so a failed
// precondition leaves the database untouched
//
// the package keeps five tables:
//
//  1. registry:   asset id ++ copy index -> owner
//  2. inventory:  owner ++ asset id ++ index -> packed asset record
//  3. listings:   owner ++ asset id ++ index -> packed listing snapshot
//  4. sales:      asset id ++ sale id -> packed sale record
//  5. next index: asset id -> next free copy index
//
// and two global counters: total minted supply and total settled sales
package marketplace
