// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison.
// Every ledger failure belongs to exactly one class so that RPC and
// the host can decide how to report it without string matching.
package fault
