// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fan out of committed events to every listener
//
// a sender never blocks: a listener whose queue is full misses the
// message
package messagebus
