// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
)

// helper to generate a test account with its private key
func makeAccount(t *testing.T) (*account.Account, ed25519.PrivateKey) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}
	return &account.Account{
		Test:      true,
		PublicKey: publicKey,
	}, privateKey
}

// round trip through the Base58 text form
func TestBase58RoundTrip(t *testing.T) {
	acc, _ := makeAccount(t)

	encoded := acc.String()

	decoded, err := account.AccountFromBase58(encoded)
	if nil != err {
		t.Fatalf("decode failed: %s", err)
	}
	if !bytes.Equal(acc.PublicKey, decoded.PublicKey) {
		t.Errorf("public key mismatch: %x != %x", acc.PublicKey, decoded.PublicKey)
	}
	if !decoded.IsTesting() {
		t.Errorf("test flag lost")
	}
}

// a corrupted checksum must be detected
func TestChecksumMismatch(t *testing.T) {
	acc, _ := makeAccount(t)

	encoded := []byte(acc.String())
	// flip one character, avoiding an invalid base58 digit
	if encoded[3] == '2' {
		encoded[3] = '3'
	} else {
		encoded[3] = '2'
	}

	_, err := account.AccountFromBase58(string(encoded))
	if fault.ChecksumMismatch != err && fault.CannotDecodeAccount != err {
		t.Errorf("expected checksum or decode error, got: %v", err)
	}
}

// binary round trip as stored in the registry pool
func TestBytesRoundTrip(t *testing.T) {
	acc, _ := makeAccount(t)

	decoded, err := account.AccountFromBytes(acc.Bytes())
	if nil != err {
		t.Fatalf("decode failed: %s", err)
	}
	if !bytes.Equal(acc.PublicKey, decoded.PublicKey) {
		t.Errorf("public key mismatch")
	}
}

// signature verification accepts a valid signature and rejects others
func TestCheckSignature(t *testing.T) {
	acc, privateKey := makeAccount(t)
	other, _ := makeAccount(t)

	message := []byte("list asset for sale")
	signature := account.Signature(ed25519.Sign(privateKey, message))

	if err := acc.CheckSignature(message, signature); nil != err {
		t.Errorf("valid signature rejected: %s", err)
	}
	if err := other.CheckSignature(message, signature); fault.InvalidSignature != err {
		t.Errorf("wrong key accepted: %v", err)
	}
	if err := acc.CheckSignature([]byte("other message"), signature); fault.InvalidSignature != err {
		t.Errorf("wrong message accepted: %v", err)
	}
	if err := acc.CheckSignature(message, signature[:10]); fault.InvalidSignature != err {
		t.Errorf("short signature accepted: %v", err)
	}
}
