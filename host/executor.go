// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/event"
)

// Executor - calls available to the outside world
type Executor interface {
	Deploy(caller common.Address, name string, initialise Handler) (*Receipt, error)
	Execute(caller common.Address, handler Handler) (*Receipt, error)
	Query(caller common.Address, handler Handler) error
	UpgradeTo(caller common.Address, name string) (*Receipt, error)
	Implementation() string
	Height() uint64
}

// Reply - the JSON form of a receipt
type Reply struct {
	Block  call.Block     `json:"block"`
	Events []event.Record `json:"events"`
}

// Reply - convert for the wire
func (r *Receipt) Reply() Reply {
	if nil == r {
		return Reply{
			Events: []event.Record{},
		}
	}
	return Reply{
		Block:  r.Block,
		Events: event.Records(r.Events),
	}
}
