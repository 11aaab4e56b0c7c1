// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - committed events on ZMQ PUB sockets
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eqledgerd/background"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/zmqutil"
)

// Configuration - the publishing block of the configuration file
//
// keys are optional: without them the sockets are not encrypted
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc broadcaster

	background *background.T

	// set once during initialise
	initialised bool
}

var globalData publishData

// Initialise - bind the sockets and start broadcasting
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses: disabled")
		return nil
	}

	privateKey := []byte(nil)
	publicKey := []byte(nil)
	if "" != configuration.PrivateKey {
		err := error(nil)
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		if err := zmqutil.StartAuthentication(); nil != err {
			return err
		}
	}

	if err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast); nil != err {
		return err
	}

	globalData.initialised = true

	globalData.log.Info("start background…")
	globalData.background = background.Start(background.Processes{&globalData.brdc}, globalData.log)

	return nil
}

// Finalise - stop broadcasting
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
