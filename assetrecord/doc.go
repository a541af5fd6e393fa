// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assetrecord - the marketplace data model
//
// An asset record describes one holding of a digital asset: the
// content-derived identifier, the creator retained for royalty
// settlement, the issuance policy, the copy index inside an edition,
// the fungible amount for stacks, and the live listing fields.
//
// Records are stored packed: fixed 64 byte identifier, then
// Varint64/counted-byte fields in declaration order. The same wire
// format feeds the identifier derivation, so identical content with
// a different salt yields a different identifier.
package assetrecord
