// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. asset id     = content digest as 64 byte SHA3-512(data)
// 4. copy index   = big endian uint16 (2 bytes)
// 5. owner        = account (32 byte public key)
// 6. sale id      = sale record digest as 64 byte SHA3-512(data)
// 7. counter      = big endian uint64 (8 bytes)
//
// Registry:
//
//   R ++ asset id ++ copy index           - canonical ownership
//                                           data: owner
//
// Inventory:
//
//   I ++ owner ++ asset id ++ copy index  - per-owner holdings
//                                           data: packed asset record
//
// Listings:
//
//   L ++ owner ++ asset id ++ copy index  - per-owner active listings
//                                           data: packed asset record snapshot
//
// Sales:
//
//   S ++ asset id ++ sale id              - append-only sale history
//                                           data: packed sale record
//
// Counters:
//
//   N ++ asset id                         - next free copy index
//                                           data: counter
//   G ++ name                             - global counters ("supply", "sales")
//                                           data: counter
//
// Testing:
//
//   Z ++ key                              - testing data
package storage
