// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/host"
	"github.com/bitmark-inc/eqledgerd/rpc/certificate"
	"github.com/bitmark-inc/eqledgerd/rpc/credential"
	"github.com/bitmark-inc/eqledgerd/rpc/listeners"
	"github.com/bitmark-inc/eqledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/eqledgerd/rpc/server"
)

const (
	tlsName = "client_rpc"

	// used when the configuration leaves them unset
	defaultRateLimit = 100
	defaultRateBurst = 200
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	count    listeners.Counter
	group    *ratelimit.Group
	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, executor host.Executor, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.GetFiles(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	limit, burst := rates(configuration.RateLimit, configuration.RateBurst)
	globalData.group = ratelimit.NewGroup(limit, burst)

	window := time.Duration(configuration.SignatureWindow) * time.Second
	verifier := credential.NewVerifier(window)

	listener, err := listeners.NewRPC(
		configuration,
		log,
		&globalData.count,
		server.Create(log, version, executor, verifier, &globalData.count, globalData.group),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = listener.Serve()
	if nil != err {
		listener.Close()
		return err
	}
	globalData.listener = listener

	// all data initialised
	globalData.initialised = true

	return nil
}

// UpdateRateLimit - apply new limits to every running service
func UpdateRateLimit(limit float64, burst int) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	limit, burst = rates(limit, burst)
	globalData.log.Infof("rate limit: %f  burst: %d", limit, burst)
	globalData.group.Update(limit, burst)
	return nil
}

func rates(limit float64, burst int) (float64, int) {
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if burst <= 0 {
		burst = defaultRateBurst
	}
	return limit, burst
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
