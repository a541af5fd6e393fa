// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ProcessError("already initialised")
	AssetRecordIsEmpty      = ExistsError("asset record is empty")
	AvailableAmountTooLow   = InvalidError("available amount lower than quantity")
	BalanceOverflow         = ProcessError("balance overflow")
	CannotDecodeAccount     = InvalidError("cannot decode account")
	ChecksumMismatch        = InvalidError("checksum mismatch")
	CopyIndexOverflow       = ProcessError("copy index overflow")
	CopyLimitExceeded       = InvalidError("copy limit exceeded")
	CounterOverflow         = ProcessError("counter overflow")
	InsufficientFunds       = InvalidError("insufficient funds")
	InvalidKeyLength        = InvalidError("invalid key length")
	InvalidKeyType          = InvalidError("invalid key type")
	InvalidSignature        = InvalidError("invalid signature")
	ListingExpired          = InvalidError("listing expired")
	MissingInventoryRecord  = NotFoundError("missing inventory record")
	MissingListing          = NotFoundError("missing listing")
	NotAssetId              = InvalidError("not an asset id")
	NotAssetRecord          = InvalidError("not an asset record")
	NotInitialised          = ProcessError("not initialised")
	NotPublicKey            = InvalidError("not a public key")
	NotSaleId               = InvalidError("not a sale id")
	NotSaleRecord           = InvalidError("not a sale record")
	PriceMismatch           = InvalidError("price mismatch")
	PurchaseQuantityTooHigh = InvalidError("purchase quantity capped at 100")
	QuantityCannotBeZero    = InvalidError("quantity cannot be zero")
	QuantityMustBeOne       = InvalidError("quantity must be one")
	QuantityTooHigh         = InvalidError("quantity set too high")
	RoyaltyRateTooHigh      = InvalidError("royalty rate over 100")
	SaltExhausted           = ProcessError("asset identifier salt exhausted")
	TransactionInUse        = ProcessError("transaction already in use")
	WouldDrainAccount       = InvalidError("transfer would drain account")
	WrongNetworkForAccount  = InvalidError("wrong network for account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
