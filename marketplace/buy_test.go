// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nftd/assetrecord"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/marketplace"
)

// primary sale of a single: full price to the seller, listing consumed
func TestBuySingle(t *testing.T) {
	setup(t)
	defer teardown(t)

	creator := makeAccount(t)
	buyer := makeAccount(t)
	ledger.Deposit(buyer, 200)

	record, err := marketplace.MintSingle(creator, []byte("artwork"), 10)
	require.NoError(t, err, "mint failed")

	require.NoError(t, marketplace.Sell(creator, record.Id, 1, 100, []byte("preview"), 1, 1), "sell failed")

	require.NoError(t, marketplace.Buy(buyer, creator, record.Id, 1, 100, 1), "buy failed")

	// the seller is the creator so no royalty split
	assert.Equal(t, uint64(100), ledger.Balance(buyer), "buyer balance wrong")
	assert.Equal(t, uint64(100), ledger.Balance(creator), "creator balance wrong")

	owner, err := marketplace.OwnerOf(record.Id, 1)
	require.NoError(t, err, "owner lookup failed")
	assert.Equal(t, buyer.Bytes(), owner.Bytes(), "ownership not moved")

	held, err := marketplace.Holding(buyer, record.Id, 1)
	require.NoError(t, err, "holding lookup failed")
	assert.Equal(t, []byte("artwork"), held.Payload, "full payload not delivered")

	_, err = marketplace.Holding(creator, record.Id, 1)
	assert.Equal(t, fault.MissingInventoryRecord, err, "seller still holds the asset")

	_, err = marketplace.Listing(creator, record.Id, 1)
	assert.Equal(t, fault.MissingListing, err, "listing not consumed")

	history, err := marketplace.SaleHistory(record.Id)
	require.NoError(t, err, "history lookup failed")
	require.Len(t, history, 1, "history length wrong")
	assert.Equal(t, uint64(100), history[0].Record.Price, "sale price wrong")
	assert.Equal(t, uint64(1), history[0].Record.Quantity, "sale quantity wrong")
	assert.Equal(t, uint64(1), marketplace.SalesTotal(), "sales counter wrong")
}

// secondary sale splits the price between seller and creator
func TestBuyRoyaltySplit(t *testing.T) {
	setup(t)
	defer teardown(t)

	creator := makeAccount(t)
	first := makeAccount(t)
	second := makeAccount(t)
	ledger.Deposit(first, 200)
	ledger.Deposit(second, 300)

	record, err := marketplace.MintSingle(creator, []byte("artwork"), 10)
	require.NoError(t, err, "mint failed")

	require.NoError(t, marketplace.Sell(creator, record.Id, 1, 100, nil, 1, 1), "primary sell failed")
	require.NoError(t, marketplace.Buy(first, creator, record.Id, 1, 100, 1), "primary buy failed")

	require.NoError(t, marketplace.Sell(first, record.Id, 1, 200, nil, 1, 1), "secondary sell failed")
	require.NoError(t, marketplace.Buy(second, first, record.Id, 1, 200, 1), "secondary buy failed")

	// 10% of 200 to the creator, the rest to the seller
	assert.Equal(t, uint64(100+20), ledger.Balance(creator), "creator royalty wrong")
	assert.Equal(t, uint64(100+180), ledger.Balance(first), "seller proceeds wrong")
	assert.Equal(t, uint64(100), ledger.Balance(second), "buyer balance wrong")

	owner, err := marketplace.OwnerOf(record.Id, 1)
	require.NoError(t, err, "owner lookup failed")
	assert.Equal(t, second.Bytes(), owner.Bytes(), "ownership not moved")
}

// totals not divisible by 100 still split exactly, with at most one
// unit of rounding loss left with the buyer
func TestBuyRoyaltyRounding(t *testing.T) {
	setup(t)
	defer teardown(t)

	creator := makeAccount(t)
	alice := makeAccount(t)
	bob := makeAccount(t)
	ledger.Deposit(alice, 1000)
	ledger.Deposit(bob, 1000)

	// exact split: 10% of 150 is 15
	exact, err := marketplace.MintSingle(creator, []byte("exact"), 10)
	require.NoError(t, err, "mint failed")

	require.NoError(t, marketplace.Sell(creator, exact.Id, 1, 100, nil, 1, 1), "primary sell failed")
	require.NoError(t, marketplace.Buy(alice, creator, exact.Id, 1, 100, 1), "primary buy failed")

	require.NoError(t, marketplace.Sell(alice, exact.Id, 1, 150, nil, 1, 1), "secondary sell failed")
	require.NoError(t, marketplace.Buy(bob, alice, exact.Id, 1, 150, 1), "secondary buy failed")

	assert.Equal(t, uint64(100+15), ledger.Balance(creator), "creator royalty wrong")
	assert.Equal(t, uint64(1000-100+135), ledger.Balance(alice), "seller proceeds wrong")
	assert.Equal(t, uint64(1000-150), ledger.Balance(bob), "buyer balance wrong")

	// rounding split: 10% of 199 floors to 19, the seller leg to 179,
	// one unit stays with the buyer
	rounded, err := marketplace.MintSingle(creator, []byte("rounded"), 10)
	require.NoError(t, err, "mint failed")

	require.NoError(t, marketplace.Sell(creator, rounded.Id, 1, 100, nil, 1, 1), "primary sell failed")
	require.NoError(t, marketplace.Buy(alice, creator, rounded.Id, 1, 100, 1), "primary buy failed")

	require.NoError(t, marketplace.Sell(alice, rounded.Id, 1, 199, nil, 1, 1), "secondary sell failed")
	require.NoError(t, marketplace.Buy(bob, alice, rounded.Id, 1, 199, 1), "secondary buy failed")

	assert.Equal(t, uint64(100+15+100+19), ledger.Balance(creator), "creator royalty wrong")
	assert.Equal(t, uint64(1000-100+135-100+179), ledger.Balance(alice), "seller proceeds wrong")
	assert.Equal(t, uint64(1000-150-198), ledger.Balance(bob), "buyer balance wrong")
}

// a free ride on a zero-quantity purchase is rejected outright
func TestBuyZeroQuantity(t *testing.T) {
	setup(t)
	defer teardown(t)

	creator := makeAccount(t)
	buyer := makeAccount(t)
	ledger.Deposit(buyer, 100)

	record, err := marketplace.MintSingle(creator, []byte("artwork"), 0)
	require.NoError(t, err, "mint failed")
	require.NoError(t, marketplace.Sell(creator, record.Id, 1, 100, nil, 1, 1), "sell failed")

	err = marketplace.Buy(buyer, creator, record.Id, 1, 100, 0)
	assert.Equal(t, fault.QuantityCannotBeZero, err, "expected zero quantity error")

	owner, err := marketplace.OwnerOf(record.Id, 1)
	require.NoError(t, err, "owner lookup failed")
	assert.Equal(t, creator.Bytes(), owner.Bytes(), "ownership moved")
	assert.Equal(t, uint64(0), marketplace.SalesTotal(), "a sale was recorded")
}

func TestBuyPreconditions(t *testing.T) {
	setup(t)
	defer teardown(t)

	creator := makeAccount(t)
	buyer := makeAccount(t)

	record, err := marketplace.MintSingle(creator, []byte("artwork"), 0)
	require.NoError(t, err, "mint failed")

	require.NoError(t, marketplace.Sell(creator, record.Id, 1, 100, nil, 1, 1), "sell failed")

	// a balance equal to the cost is not enough
	ledger.Deposit(buyer, 100)
	err = marketplace.Buy(buyer, creator, record.Id, 1, 100, 1)
	assert.Equal(t, fault.InsufficientFunds, err, "expected insufficient funds")

	ledger.Deposit(buyer, 101)

	err = marketplace.Buy(buyer, creator, record.Id, 1, 99, 1)
	assert.Equal(t, fault.PriceMismatch, err, "expected price mismatch")

	err = marketplace.Buy(buyer, creator, assetrecord.AssetIdentifier{1}, 1, 100, 1)
	assert.Equal(t, fault.MissingListing, err, "expected missing listing")

	// advance past the expiry height
	clock.height += 28001
	err = marketplace.Buy(buyer, creator, record.Id, 1, 100, 1)
	assert.Equal(t, fault.ListingExpired, err, "expected expired listing")

	// nothing settled
	assert.Equal(t, uint64(201), ledger.Balance(buyer), "failed buys moved funds")
	assert.Equal(t, uint64(0), marketplace.SalesTotal(), "failed buys recorded sales")
}

// each unlimited purchase mints fresh single copies and the listing stays live
func TestBuyUnlimited(t *testing.T) {
	setup(t)
	defer teardown(t)

	creator := makeAccount(t)
	buyer := makeAccount(t)
	ledger.Deposit(buyer, 1000)

	record, err := marketplace.MintUnlimited(creator, []byte("template"), 0)
	require.NoError(t, err, "mint failed")

	require.NoError(t, marketplace.Sell(creator, record.Id, 1, 10, nil, 1, 1), "sell failed")

	require.NoError(t, marketplace.Buy(buyer, creator, record.Id, 1, 10, 3), "buy failed")

	assert.Equal(t, uint64(970), ledger.Balance(buyer), "buyer balance wrong")
	assert.Equal(t, uint64(30), ledger.Balance(creator), "creator balance wrong")

	// copies 2..4 issued to the buyer as singles
	for index := uint16(2); index <= 4; index += 1 {
		owner, err := marketplace.OwnerOf(record.Id, index)
		require.NoError(t, err, "owner lookup failed for copy %d", index)
		assert.Equal(t, buyer.Bytes(), owner.Bytes(), "owner wrong for copy %d", index)

		held, err := marketplace.Holding(buyer, record.Id, index)
		require.NoError(t, err, "holding lookup failed for copy %d", index)
		assert.Equal(t, assetrecord.Single, held.Issuance, "copy not downgraded")
		assert.Equal(t, index, held.CopyIndex, "copy index wrong")
	}

	// the template and its listing survive
	_, err = marketplace.Listing(creator, record.Id, 1)
	assert.NoError(t, err, "listing consumed")
	_, err = marketplace.Holding(creator, record.Id, 1)
	assert.NoError(t, err, "template consumed")

	history, err := marketplace.SaleHistory(record.Id)
	require.NoError(t, err, "history lookup failed")
	assert.Len(t, history, 3, "one sale record per copy expected")
	assert.Equal(t, uint64(3), marketplace.SalesTotal(), "sales counter wrong")

	ledger.Deposit(buyer, 10000)
	err = marketplace.Buy(buyer, creator, record.Id, 1, 10, 101)
	assert.Equal(t, fault.PurchaseQuantityTooHigh, err, "expected purchase cap error")
}

// stack purchases split a new holding then merge into it
func TestBuyStackSplitAndMerge(t *testing.T) {
	setup(t)
	defer teardown(t)

	creator := makeAccount(t)
	buyer := makeAccount(t)
	ledger.Deposit(buyer, 1000)

	record, err := marketplace.MintStack(creator, []byte("tokens"), 100, 0)
	require.NoError(t, err, "mint failed")

	require.NoError(t, marketplace.Sell(creator, record.Id, 1, 2, nil, 40, 1), "sell failed")

	// first purchase splits off a new stack
	require.NoError(t, marketplace.Buy(buyer, creator, record.Id, 1, 2, 15), "first buy failed")

	held, err := marketplace.Holding(buyer, record.Id, 1)
	require.NoError(t, err, "buyer holding lookup failed")
	assert.Equal(t, uint64(15), held.Amount, "split amount wrong")
	assert.Equal(t, uint16(2), held.CopyIndex, "allocated index wrong")

	owner, err := marketplace.OwnerOf(record.Id, 2)
	require.NoError(t, err, "owner lookup failed")
	assert.Equal(t, buyer.Bytes(), owner.Bytes(), "registry slot wrong")

	// second purchase merges into the same stack
	require.NoError(t, marketplace.Buy(buyer, creator, record.Id, 1, 2, 10), "second buy failed")

	held, err = marketplace.Holding(buyer, record.Id, 1)
	require.NoError(t, err, "buyer holding lookup failed")
	assert.Equal(t, uint64(25), held.Amount, "merged amount wrong")
	assert.Equal(t, uint16(2), held.CopyIndex, "merge changed the index")

	// units are conserved
	remaining, err := marketplace.Holding(creator, record.Id, 1)
	require.NoError(t, err, "creator holding lookup failed")
	assert.Equal(t, uint64(75), remaining.Amount, "seller amount wrong")

	listing, err := marketplace.Listing(creator, record.Id, 1)
	require.NoError(t, err, "listing lookup failed")
	assert.Equal(t, uint64(15), listing.ListedQuantity, "listed quantity wrong")

	assert.Equal(t, uint64(950), ledger.Balance(buyer), "buyer balance wrong")
	assert.Equal(t, uint64(50), ledger.Balance(creator), "creator balance wrong")

	// over the remaining listed quantity
	err = marketplace.Buy(buyer, creator, record.Id, 1, 2, 16)
	assert.Equal(t, fault.QuantityTooHigh, err, "expected quantity error")
}

// a drained non-creator stack is cleaned out of inventory and registry
func TestBuyStackDrainCleanup(t *testing.T) {
	setup(t)
	defer teardown(t)

	creator := makeAccount(t)
	first := makeAccount(t)
	second := makeAccount(t)
	ledger.Deposit(first, 100)
	ledger.Deposit(second, 100)

	record, err := marketplace.MintStack(creator, []byte("tokens"), 10, 0)
	require.NoError(t, err, "mint failed")

	// creator sells the whole stack
	require.NoError(t, marketplace.Sell(creator, record.Id, 1, 1, nil, 10, 1), "sell failed")
	require.NoError(t, marketplace.Buy(first, creator, record.Id, 1, 1, 10), "buy failed")

	// the creator keeps the empty stack so the asset survives
	remaining, err := marketplace.Holding(creator, record.Id, 1)
	require.NoError(t, err, "creator holding lookup failed")
	assert.Equal(t, uint64(0), remaining.Amount, "creator stack not drained")

	// the drained listing is gone
	_, err = marketplace.Listing(creator, record.Id, 1)
	assert.Equal(t, fault.MissingListing, err, "drained listing not removed")

	// first holder sells everything on
	require.NoError(t, marketplace.Sell(first, record.Id, 1, 1, nil, 10, 1), "resell failed")
	require.NoError(t, marketplace.Buy(second, first, record.Id, 1, 1, 10), "resale buy failed")

	// the drained non-creator holding is cleaned up entirely
	_, err = marketplace.Holding(first, record.Id, 1)
	assert.Equal(t, fault.MissingInventoryRecord, err, "drained holding not removed")
	_, err = marketplace.OwnerOf(record.Id, 2)
	assert.Equal(t, fault.MissingInventoryRecord, err, "drained registry slot not removed")

	held, err := marketplace.Holding(second, record.Id, 1)
	require.NoError(t, err, "second holding lookup failed")
	assert.Equal(t, uint64(10), held.Amount, "units not conserved")
	assert.Equal(t, uint16(3), held.CopyIndex, "allocated index wrong")
}
