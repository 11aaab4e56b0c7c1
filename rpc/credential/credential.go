// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package credential - signed caller identity for state changing
// requests
//
// The caller of a request is the address recovered from a secp256k1
// signature over the method name and the JSON of its arguments.
// A request is accepted once, and only within a window around the
// timestamp it carries.
package credential

import (
	"crypto/ecdsa"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/fault"
)

// DefaultWindow - how far a timestamp may be from the server clock
const DefaultWindow = 5 * time.Minute

// prefix of every signed digest
const domain = "eqledgerd signed request\n"

// Credential - embedded in the arguments of every signed request
type Credential struct {
	Caller    common.Address `json:"caller"`
	Timestamp int64          `json:"timestamp"` // unix nanoseconds
	Signature hexutil.Bytes  `json:"signature"`
}

// Credentials - access for the embedding argument structure
func (c *Credential) Credentials() *Credential {
	return c
}

// Signed - arguments that embed a credential
type Signed interface {
	Credentials() *Credential
}

// Digest - keccak256 of domain ++ method ++ 0x00 ++ JSON(arguments)
//
// the JSON is encoded with an empty signature
func Digest(method string, arguments Signed) (common.Hash, error) {
	c := arguments.Credentials()
	signature := c.Signature
	c.Signature = nil
	defer func() {
		c.Signature = signature
	}()

	data, err := json.Marshal(arguments)
	if nil != err {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash([]byte(domain), []byte(method), []byte{0}, data), nil
}

// Sign - fill in the credential of the arguments
//
// the caller is the address of the key
func Sign(key *ecdsa.PrivateKey, method string, arguments Signed, now time.Time) error {
	c := arguments.Credentials()
	c.Caller = crypto.PubkeyToAddress(key.PublicKey)
	c.Timestamp = now.UnixNano()

	digest, err := Digest(method, arguments)
	if nil != err {
		return err
	}
	signature, err := crypto.Sign(digest[:], key)
	if nil != err {
		return err
	}
	c.Signature = signature
	return nil
}

// Verifier - checks credentials and remembers accepted digests
type Verifier struct {
	window time.Duration
	seen   *cache.Cache
	clock  func() time.Time
}

// NewVerifier - accept timestamps within window of the local clock
func NewVerifier(window time.Duration) *Verifier {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Verifier{
		window: window,
		// a digest older than twice the window fails the timestamp check
		seen:  cache.New(2*window, window),
		clock: time.Now,
	}
}

// Verify - the authenticated caller of the arguments
func (v *Verifier) Verify(method string, arguments Signed) (common.Address, error) {
	c := arguments.Credentials()

	if account.Zero == c.Caller {
		return account.Zero, fault.ErrRequiredCaller
	}
	if crypto.SignatureLength != len(c.Signature) {
		return account.Zero, fault.ErrInvalidSignature
	}

	now := v.clock()
	at := time.Unix(0, c.Timestamp)
	if at.Before(now.Add(-v.window)) || at.After(now.Add(v.window)) {
		return account.Zero, fault.ErrExpiredCredential
	}

	r := new(big.Int).SetBytes(c.Signature[:32])
	s := new(big.Int).SetBytes(c.Signature[32:64])
	if !crypto.ValidateSignatureValues(c.Signature[64], r, s, true) {
		return account.Zero, fault.ErrInvalidSignature
	}

	digest, err := Digest(method, arguments)
	if nil != err {
		return account.Zero, err
	}
	publicKey, err := crypto.SigToPub(digest[:], c.Signature)
	if nil != err {
		return account.Zero, fault.ErrInvalidSignature
	}
	if crypto.PubkeyToAddress(*publicKey) != c.Caller {
		return account.Zero, fault.ErrUnauthorised
	}

	if err := v.seen.Add(digest.Hex(), nil, cache.DefaultExpiration); nil != err {
		return account.Zero, fault.ErrReplayedRequest
	}
	return c.Caller, nil
}
