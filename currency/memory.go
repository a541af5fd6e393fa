// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"sync"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
)

// MemoryLedger - in-process implementation of Ledger
//
// balances keyed by the binary account encoding; an account whose
// balance reaches zero through an AllowDeath transfer is reaped
type MemoryLedger struct {
	sync.Mutex
	minimumBalance uint64
	balances       map[string]uint64
}

// NewMemoryLedger - create an empty ledger
//
// minimumBalance is the amount a KeepAlive payer must retain
func NewMemoryLedger(minimumBalance uint64) *MemoryLedger {
	return &MemoryLedger{
		minimumBalance: minimumBalance,
		balances:       make(map[string]uint64),
	}
}

// Deposit - credit an account
func (ledger *MemoryLedger) Deposit(owner *account.Account, amount uint64) {
	ledger.Lock()
	ledger.balances[string(owner.Bytes())] += amount
	ledger.Unlock()
}

// Balance - current total balance of an account
func (ledger *MemoryLedger) Balance(owner *account.Account) uint64 {
	ledger.Lock()
	defer ledger.Unlock()
	return ledger.balances[string(owner.Bytes())]
}

// Transfer - move amount between accounts
func (ledger *MemoryLedger) Transfer(from *account.Account, to *account.Account, amount uint64, requirement ExistenceRequirement) error {
	ledger.Lock()
	defer ledger.Unlock()

	fromKey := string(from.Bytes())
	balance := ledger.balances[fromKey]

	if balance < amount {
		return fault.InsufficientFunds
	}

	remaining := balance - amount
	if KeepAlive == requirement && remaining < ledger.minimumBalance {
		return fault.WouldDrainAccount
	}

	if 0 == remaining {
		delete(ledger.balances, fromKey) // reaped
	} else {
		ledger.balances[fromKey] = remaining
	}
	ledger.balances[string(to.Bytes())] += amount

	return nil
}
