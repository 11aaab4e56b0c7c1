// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC over TLS for ledger clients
//
// standard golang RPC clients with the jsonrpc codec can be used to
// access these services
package rpc
