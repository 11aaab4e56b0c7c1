// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - request pacing for the RPC services
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/eqledgerd/fault"
)

// Limit - pace a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - pace a request for count items
//
// an invalid count is paced as a single request and rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := Limit(limiter); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Group - limiters that are reconfigured together
type Group struct {
	sync.Mutex
	limit    rate.Limit
	burst    int
	limiters []*rate.Limiter
}

// NewGroup - limiters created from this group start at limit and burst
func NewGroup(limit float64, burst int) *Group {
	return &Group{
		limit: rate.Limit(limit),
		burst: burst,
	}
}

// NewLimiter - a limiter that follows group updates
func (g *Group) NewLimiter() *rate.Limiter {
	g.Lock()
	defer g.Unlock()

	limiter := rate.NewLimiter(g.limit, g.burst)
	g.limiters = append(g.limiters, limiter)
	return limiter
}

// Update - change every limiter of the group
func (g *Group) Update(limit float64, burst int) {
	g.Lock()
	defer g.Unlock()

	g.limit = rate.Limit(limit)
	g.burst = burst
	for _, limiter := range g.limiters {
		limiter.SetLimit(g.limit)
		limiter.SetBurst(g.burst)
	}
}
