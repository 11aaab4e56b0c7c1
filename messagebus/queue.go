// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// default listener queue length
const (
	queueSize = 1000
)

// Message - a command with its binary parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - every listener receives every message
type BroadcastQueue struct {
	sync.Mutex
	listeners []chan Message
}

type busses struct {
	Broadcast *BroadcastQueue
}

// Bus - the global queues
var Bus = busses{
	Broadcast: new(BroadcastQueue),
}

// Send - queue a message for every current listener
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.Lock()
	defer queue.Unlock()

	for _, c := range queue.listeners {
		select {
		case c <- m:
		default:
		}
	}
}

// Chan - add a listener, size <= 0 selects the default length
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - close every listener channel
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, c := range queue.listeners {
		close(c)
	}
	queue.listeners = nil
}
