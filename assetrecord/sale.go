// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
)

// limits
const (
	SaleIdentifierLength = 64
)

// SaleIdentifier - the key of one settled purchase inside the sale ledger
//
// derived from the packed sale record itself so identical sales at the
// same height never collide silently
type SaleIdentifier [SaleIdentifierLength]byte

// NewSaleIdentifier - create a sale id from a packed sale record
//
// SHA3-512 hash
func NewSaleIdentifier(record []byte) SaleIdentifier {
	return SaleIdentifier(sha3.Sum512(record))
}

// String - convert a binary saleId to hex string for use by the fmt package (for %s)
func (saleId SaleIdentifier) String() string {
	return hex.EncodeToString(saleId[:])
}

// GoString - convert a binary saleId to hex string for use by the fmt package (for %#v)
func (saleId SaleIdentifier) GoString() string {
	return "<sale:" + hex.EncodeToString(saleId[:]) + ">"
}

// MarshalText - convert saleId to hex text
func (saleId SaleIdentifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(saleId))
	buffer := make([]byte, size)
	hex.Encode(buffer, saleId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a saleId
func (saleId *SaleIdentifier) UnmarshalText(s []byte) error {
	if len(saleId) != hex.DecodedLen(len(s)) {
		return fault.NotSaleId
	}
	byteCount, err := hex.Decode(saleId[:], s)
	if nil != err {
		return err
	}
	if SaleIdentifierLength != byteCount {
		return fault.NotSaleId
	}
	return nil
}

// SaleRecord - immutable audit entry for one settled purchase
type SaleRecord struct {
	Height    uint64           `json:"height"`    // block height of settlement
	Seller    *account.Account `json:"seller"`    // previous holder
	Buyer     *account.Account `json:"buyer"`     // new holder
	Price     uint64           `json:"price"`     // unit price, not total
	CopyIndex uint16           `json:"copyIndex"` // copy sold or allocated
	Quantity  uint64           `json:"quantity"`  // units settled
}

// Pack - serialise the sale record
func (sale *SaleRecord) Pack() []byte {
	packed := make([]byte, 0, 128)
	packed = appendUint64(packed, sale.Height)
	packed = appendCounted(packed, sale.Seller.Bytes())
	packed = appendCounted(packed, sale.Buyer.Bytes())
	packed = appendUint64(packed, sale.Price)
	packed = appendUint64(packed, uint64(sale.CopyIndex))
	packed = appendUint64(packed, sale.Quantity)
	return packed
}

// UnpackSaleRecord - deserialise a packed sale record
func UnpackSaleRecord(buffer []byte) (*SaleRecord, error) {
	sale := &SaleRecord{}

	height, n, ok := takeUint64(buffer, 0)
	if !ok {
		return nil, fault.NotSaleRecord
	}
	sale.Height = height

	sellerBytes, n, ok := takeCounted(buffer, n)
	if !ok {
		return nil, fault.NotSaleRecord
	}
	seller, err := account.AccountFromBytes(sellerBytes)
	if nil != err {
		return nil, err
	}
	sale.Seller = seller

	buyerBytes, n, ok := takeCounted(buffer, n)
	if !ok {
		return nil, fault.NotSaleRecord
	}
	buyer, err := account.AccountFromBytes(buyerBytes)
	if nil != err {
		return nil, err
	}
	sale.Buyer = buyer

	sale.Price, n, ok = takeUint64(buffer, n)
	if !ok {
		return nil, fault.NotSaleRecord
	}

	copyIndex, n, ok := takeUint64(buffer, n)
	if !ok || copyIndex > 0xffff {
		return nil, fault.NotSaleRecord
	}
	sale.CopyIndex = uint16(copyIndex)

	sale.Quantity, n, ok = takeUint64(buffer, n)
	if !ok {
		return nil, fault.NotSaleRecord
	}

	if n != len(buffer) {
		return nil, fault.NotSaleRecord
	}

	return sale, nil
}
