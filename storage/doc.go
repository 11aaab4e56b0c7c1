// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the persistent storage region
//
// A single LevelDB database holds every field of every upgradeable
// component.  Fields are grouped by namespace; each namespace is
// hashed to a slot (see package slot) and each field is placed at a
// fixed offset in the low byte of that slot.  The pools struct below
// is the offset table: it is scanned once when the region is opened
// and must only ever be appended to.
//
// Notes:
// 1. base(ns, n)  = slot(ns) with low byte n (32 bytes)
// 2. ++           = concatenation of byte data
// 3. id           = token identifier (32 bytes)
// 4. role         = role identifier (32 bytes)
// 5. account      = account address (20 bytes)
// 6. amount       = big endian uint256 (32 bytes)
// 7. count        = big endian uint64 (8 bytes)
//
// luna.storage.EqToken:
//
//   base ++ 0 ++ id                   - token existence
//                                       data: 0x01
//   base ++ 1 ++ id ++ account        - balance
//                                       data: amount
//   base ++ 2 ++ id                   - total supply
//                                       data: amount
//   base ++ 3 ++ account ++ account   - operator approval (owner ++ operator)
//                                       data: 0x01
//   base ++ 4                         - metadata URI template
//                                       data: UTF-8 text
//
// luna.storage.AccessControl:
//
//   base ++ 0 ++ role ++ account      - role membership
//                                       data: 0x01
//   base ++ 1 ++ role                 - admin role of role (absent = default admin)
//                                       data: role
//
// luna.storage.Upgrade:
//
//   base ++ 0                         - initialised flag
//                                       data: 0x01
//   base ++ 1                         - version
//                                       data: count
//
// luna.storage.Host:
//
//   base ++ 0                         - number of committed calls
//                                       data: count
//   base ++ 1                         - implementation (logic module name)
//                                       data: UTF-8 text
//
// Database:
//
//   0x00 ++ "VERSION"                 - database format version
//                                       data: big endian uint32
package storage
