// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

// Emitter - receives events from a running call
type Emitter interface {
	Emit(Event)
}

// Log - the events of one call in emission order
type Log struct {
	events []Event
}

// Emit - append an event
func (l *Log) Emit(e Event) {
	l.events = append(l.events, e)
}

// Events - all events so far
func (l *Log) Events() []Event {
	return l.events
}

// Reset - discard all events
func (l *Log) Reset() {
	l.events = nil
}
