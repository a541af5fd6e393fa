// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - the balance-transfer collaborator
//
// The marketplace engine never holds balances itself; it settles
// purchases through the narrow Ledger interface. The surrounding
// chain supplies the real implementation; an in-process ledger is
// provided for tests and for running the daemon standalone.
package currency
