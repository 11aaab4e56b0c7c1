// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package call - the explicit context of one entry point invocation
package call

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/event"
)

// Block - position of the call in the host's total order
type Block struct {
	Number uint64    `json:"number"`
	Time   time.Time `json:"time"`
}

// Context - who is calling, when, and where events go
type Context struct {
	Caller common.Address
	Block  Block
	Events event.Emitter
}

// New - context that collects events in its own log
func New(caller common.Address, block Block) (*Context, *event.Log) {
	log := &event.Log{}
	return &Context{
		Caller: caller,
		Block:  block,
		Events: log,
	}, log
}

// Emit - record an event for this call
func (c *Context) Emit(e event.Event) {
	if nil != c.Events {
		c.Events.Emit(e)
	}
}
