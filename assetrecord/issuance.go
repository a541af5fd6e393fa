// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

// Issuance - policy governing how many copies of an asset may exist
// and how purchases are fulfilled
//
// fixed at mint time; the single exception is an unlimited-edition
// copy sold, whose issued record is downgraded to Single
type Issuance uint8

// issuance kinds
//
// the zero value is Single so an unset record defaults to a unique asset
const (
	Single    Issuance = iota // exactly one copy
	Limited                   // fixed edition of up to 1000 copies
	Unlimited                 // template minting a fresh copy per purchase
	Stack                     // fungible pool held in arbitrary quantities
	issuanceLimit             // end of list
)

// String - representation for logging
func (issuance Issuance) String() string {
	switch issuance {
	case Single:
		return "Single"
	case Limited:
		return "Limited"
	case Unlimited:
		return "Unlimited"
	case Stack:
		return "Stack"
	default:
		return "*unknown*"
	}
}
