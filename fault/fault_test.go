// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/nftd/fault"
)

// test that errors compare by identity and classify correctly
func TestErrorClasses(t *testing.T) {

	if !fault.IsErrNotFound(fault.MissingListing) {
		t.Errorf("missing listing is not a not-found error")
	}

	if !fault.IsErrInvalid(fault.PriceMismatch) {
		t.Errorf("price mismatch is not an invalid error")
	}

	if !fault.IsErrProcess(fault.CounterOverflow) {
		t.Errorf("counter overflow is not a process error")
	}

	if !fault.IsErrExists(fault.AssetRecordIsEmpty) {
		t.Errorf("empty asset record is not an exists error")
	}

	if fault.IsErrNotFound(fault.PriceMismatch) {
		t.Errorf("price mismatch misclassified as not-found")
	}
}

// ensure two distinct errors with the same class are not equal
func TestErrorIdentity(t *testing.T) {
	var e error = fault.MissingListing
	if e != fault.MissingListing {
		t.Errorf("error identity lost through interface")
	}
	if fault.MissingListing == fault.MissingInventoryRecord {
		t.Errorf("distinct errors compare equal")
	}
}
