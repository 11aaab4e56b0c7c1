// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for the RPC tests
package fixtures

import (
	"crypto/ecdsa"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/eqtoken"
	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/rpc/credential"
	"github.com/bitmark-inc/eqledgerd/storage"
)

const (
	testingDirName = "testing"
	LogCategory    = "testing"
	URI            = "https://api.example.com/metadata/{id}.json"
)

// signing keys of the accounts below
var (
	AdminKey  = mustKey("1111111111111111111111111111111111111111111111111111111111111111")
	MinterKey = mustKey("2222222222222222222222222222222222222222222222222222222222222222")
	BurnerKey = mustKey("3333333333333333333333333333333333333333333333333333333333333333")
	UserKey   = mustKey("4444444444444444444444444444444444444444444444444444444444444444")
)

// accounts of an initialised token
var (
	Admin  = crypto.PubkeyToAddress(AdminKey.PublicKey)
	Minter = crypto.PubkeyToAddress(MinterKey.PublicKey)
	Burner = crypto.PubkeyToAddress(BurnerKey.PublicKey)
	User   = crypto.PubkeyToAddress(UserKey.PublicKey)
)

func mustKey(s string) *ecdsa.PrivateKey {
	key, err := crypto.HexToECDSA(s)
	if nil != err {
		panic(err)
	}
	return key
}

// Sign - fill in the credential of arguments for a call of method
func Sign(key *ecdsa.PrivateKey, method string, arguments credential.Signed) {
	if err := credential.Sign(key, method, arguments, time.Now()); nil != err {
		panic(err)
	}
}

// SetupTestLogger - critical level logging to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// Certificate - a fresh self signed PEM certificate and key
func Certificate() (string, string, error) {
	cert, key, err := certgen.NewTLSCertPair("eqledgerd test", time.Now().Add(time.Hour), false, nil)
	if nil != err {
		return "", "", err
	}
	return string(cert), string(key), nil
}

// Deployed - an initialised token over memory storage with an open
// transaction
func Deployed() (*storage.Region, host.Logic, error) {
	region, err := storage.OpenMemory()
	if nil != err {
		return nil, nil, err
	}
	if _, err := region.Begin(); nil != err {
		region.Close()
		return nil, nil, err
	}
	logic := eqtoken.New(region)
	ctx, _ := call.New(Admin, call.Block{Number: 1})
	if err := logic.Initialise(ctx, URI, Minter, Burner, Admin); nil != err {
		region.Close()
		return nil, nil, err
	}
	return region, logic, nil
}

// Run - stands in for host.Executor.Execute against a fixed logic module
func Run(logic host.Logic) func(common.Address, host.Handler) (*host.Receipt, error) {
	return func(caller common.Address, handler host.Handler) (*host.Receipt, error) {
		ctx, log := call.New(caller, call.Block{Number: 2})
		if err := handler(logic, ctx); nil != err {
			return nil, err
		}
		return &host.Receipt{
			Block:  ctx.Block,
			Events: log.Events(),
		}, nil
	}
}

// Query - stands in for host.Executor.Query against a fixed logic module
func Query(logic host.Logic) func(common.Address, host.Handler) error {
	return func(caller common.Address, handler host.Handler) error {
		ctx, _ := call.New(caller, call.Block{Number: 2})
		return handler(logic, ctx)
	}
}
