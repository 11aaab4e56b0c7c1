// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package upgrade - one time initialisation, version counter and the
// authorisation of logic replacement
package upgrade

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/eqledgerd/call"
	"github.com/bitmark-inc/eqledgerd/event"
	"github.com/bitmark-inc/eqledgerd/fault"
	"github.com/bitmark-inc/eqledgerd/roles"
	"github.com/bitmark-inc/eqledgerd/storage"
)

// version after initialisation
const InitialVersion = 1

var initialisedFlag = []byte{0x01}

// Handles - storage fields owned by the controller
type Handles struct {
	Initialised storage.Handle
	Version     storage.Handle
}

// Controller - upgrade state of the single program instance
type Controller struct {
	roles       *roles.Registry
	initialised storage.Handle
	version     storage.Handle
}

// New - bind a controller to its storage fields
func New(handles Handles, registry *roles.Registry) *Controller {
	return &Controller{
		roles:       registry,
		initialised: handles.Initialised,
		version:     handles.Version,
	}
}

// IsInitialised - true after the first successful Initialise
func (c *Controller) IsInitialised() bool {
	return c.initialised.Has(nil)
}

// Initialise - one time setup, the version starts at 1
func (c *Controller) Initialise(ctx *call.Context) error {
	if c.IsInitialised() {
		return fault.ErrAlreadyInitialised
	}
	c.initialised.Put(nil, initialisedFlag)
	c.version.PutN(nil, InitialVersion)
	ctx.Emit(event.Initialized{
		Version: InitialVersion,
	})
	return nil
}

// Version - current value, zero before initialisation
func (c *Controller) Version() uint64 {
	v, _ := c.version.GetN(nil)
	return v
}

// GetVersion - current value made observable as an event
func (c *Controller) GetVersion(ctx *call.Context) uint64 {
	v := c.Version()
	ctx.Emit(event.Version{
		Value: v,
	})
	return v
}

// BumpVersion - add exactly one, once per accepted upgrade
func (c *Controller) BumpVersion(ctx *call.Context) (uint64, error) {
	if !c.IsInitialised() {
		return 0, fault.ErrNotInitialised
	}
	v := c.Version()
	if v+1 < v {
		return 0, fault.ErrValueOverflow
	}
	v += 1
	c.version.PutN(nil, v)
	ctx.Emit(event.Version{
		Value: v,
	})
	return v, nil
}

// AuthoriseUpgrade - only a default admin may replace the logic
func (c *Controller) AuthoriseUpgrade(caller common.Address) bool {
	return c.IsInitialised() && c.roles.HasRole(roles.DefaultAdminRole, caller)
}
