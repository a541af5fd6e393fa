// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/bitmark-inc/nftd/account"
)

// ExistenceRequirement - whether a transfer may empty the paying account
type ExistenceRequirement int

// transfer modes
const (
	AllowDeath ExistenceRequirement = iota // the paying account may be fully drained and reaped
	KeepAlive                              // the paying account must retain its minimum balance
)

// Ledger - narrow interface onto the external currency system
type Ledger interface {

	// Balance - current total balance of an account
	Balance(owner *account.Account) uint64

	// Transfer - move amount between accounts
	//
	// fails with fault.InsufficientFunds when the payer cannot cover
	// the amount, or fault.WouldDrainAccount when a KeepAlive
	// transfer would cut into the minimum balance; a failed transfer
	// moves nothing
	Transfer(from *account.Account, to *account.Account, amount uint64, requirement ExistenceRequirement) error
}
