// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop long running goroutines
package background

import (
	"sync"
)

// Process - a background task that returns once shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle to a started set of processes
type T struct {
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	register := &T{
		shutdown: make(chan struct{}),
	}

	for _, p := range processes {
		register.wg.Add(1)
		go func(p Process) {
			defer register.wg.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - signal every process and wait for all to return
func (t *T) Stop() {
	if nil == t {
		return
	}
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.wg.Wait()
}
