// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - executes entry point calls against the current logic
// module
//
// Calls are serialised; each one runs in its own storage transaction
// and its events are only published once that transaction commits.
package host

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/account"
	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/messagebus"
	"github.com/bitmark-inc/eqledgerd/storage"
)

// Receipt - result of a committed call
type Receipt struct {
	Block  call.Block    `json:"block"`
	Events []event.Event `json:"events"`
}

// Handler - the work of one call
type Handler func(logic Logic, ctx *call.Context) error

// Host - the single entry into the persistent region
type Host struct {
	sync.Mutex

	log     *logger.L
	region  *storage.Region
	modules Modules
	logic   Logic
	clock   func() time.Time
}

// New - bind to the region, restoring the module recorded in it
func New(region *storage.Region, modules Modules) (*Host, error) {
	h := &Host{
		log:     logger.New("host"),
		region:  region,
		modules: modules,
		clock:   time.Now,
	}

	name := string(region.Pools.Implementation.Get(nil))
	if "" == name {
		h.log.Info("no logic module deployed")
		return h, nil
	}

	constructor, ok := modules[name]
	if !ok {
		h.log.Errorf("recorded logic module: %q is not available", name)
		return nil, fault.ErrUnknownLogicModule
	}
	h.logic = constructor(region)
	h.log.Infof("restored logic module: %q  version: %d", name, h.logic.Version())

	return h, nil
}

// Implementation - name of the current logic module, empty before deploy
func (h *Host) Implementation() string {
	h.Lock()
	defer h.Unlock()

	if nil == h.logic {
		return ""
	}
	return h.logic.Name()
}

// Height - number of committed calls
//
// waits for any call in progress
func (h *Host) Height() uint64 {
	h.Lock()
	defer h.Unlock()

	return h.height()
}

// must hold lock
func (h *Host) height() uint64 {
	n, _ := h.region.Pools.Height.GetN(nil)
	return n
}

// Deploy - bind the first logic module and run its initialisation in
// the same call
func (h *Host) Deploy(caller common.Address, name string, initialise Handler) (*Receipt, error) {
	h.Lock()
	defer h.Unlock()

	if nil != h.logic {
		return nil, fault.ErrAlreadyInitialised
	}
	constructor, ok := h.modules[name]
	if !ok {
		return nil, fault.ErrUnknownLogicModule
	}
	logic := constructor(h.region)

	receipt, err := h.execute(caller, func(_ Logic, ctx *call.Context) error {
		h.bind(ctx, name)
		return initialise(logic, ctx)
	})
	if nil != err {
		h.log.Warnf("deploy: %q  caller: %s  error: %s", name, caller, err)
		return nil, err
	}

	h.logic = logic
	h.log.Infof("deployed: %q", name)
	return receipt, nil
}

// Execute - run one call against the current logic module
func (h *Host) Execute(caller common.Address, handler Handler) (*Receipt, error) {
	h.Lock()
	defer h.Unlock()

	if nil == h.logic {
		return nil, fault.ErrNotDeployed
	}
	return h.execute(caller, handler)
}

// Query - run a read only call, nothing is committed or published
func (h *Host) Query(caller common.Address, handler Handler) error {
	h.Lock()
	defer h.Unlock()

	if nil == h.logic {
		return fault.ErrNotDeployed
	}

	trx, err := h.region.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	ctx, _ := call.New(caller, h.nextBlock())
	return handler(h.logic, ctx)
}

// UpgradeTo - replace the logic module if the current one allows it
//
// a refused upgrade changes nothing and emits nothing
func (h *Host) UpgradeTo(caller common.Address, name string) (*Receipt, error) {
	h.Lock()
	defer h.Unlock()

	if nil == h.logic {
		return nil, fault.ErrNotDeployed
	}
	constructor, ok := h.modules[name]
	if !ok {
		return nil, fault.ErrUnknownLogicModule
	}
	if !h.logic.AuthoriseUpgrade(caller) {
		h.log.Warnf("upgrade to: %q refused for caller: %s", name, caller)
		return nil, fault.ErrUnauthorised
	}
	next := constructor(h.region)

	receipt, err := h.execute(caller, func(_ Logic, ctx *call.Context) error {
		h.bind(ctx, name)
		return next.Upgraded(ctx)
	})
	if nil != err {
		h.log.Errorf("upgrade to: %q  error: %s", name, err)
		return nil, err
	}

	h.logic = next
	h.log.Infof("upgraded to: %q  version: %d", name, next.Version())
	return receipt, nil
}

// record the logic module name in the region
func (h *Host) bind(ctx *call.Context, name string) {
	if name == string(h.region.Pools.Implementation.Get(nil)) {
		return
	}
	h.region.Pools.Implementation.Put(nil, []byte(name))
	ctx.Emit(event.Upgraded{
		Implementation: name,
	})
}

func (h *Host) nextBlock() call.Block {
	return call.Block{
		Number: h.height() + 1,
		Time:   h.clock().UTC(),
	}
}

// must hold lock
func (h *Host) execute(caller common.Address, handler Handler) (*Receipt, error) {
	if account.Zero == caller {
		return nil, fault.ErrRequiredCaller
	}

	trx, err := h.region.Begin()
	if nil != err {
		return nil, err
	}

	block := h.nextBlock()
	ctx, log := call.New(caller, block)

	err = handler(h.logic, ctx)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	h.region.Pools.Height.PutN(nil, block.Number)

	err = trx.Commit()
	if nil != err {
		h.log.Criticalf("commit block: %d  error: %s", block.Number, err)
		return nil, err
	}

	events := log.Events()
	publish(block, events)

	return &Receipt{
		Block:  block,
		Events: events,
	}, nil
}

// send committed events to any listeners
func publish(block call.Block, events []event.Event) {
	number := make([]byte, 8)
	binary.BigEndian.PutUint64(number, block.Number)

	for _, e := range events {
		data, err := json.Marshal(e)
		if nil != err {
			fault.Panicf("host: event: %s  marshal error: %s", e.Name(), err)
		}
		messagebus.Bus.Broadcast.Send(e.Name(), number, data)
	}
}
