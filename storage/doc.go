// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the host key-value database of contract tables
//
// Contracts never touch LevelDB directly: every access goes through
// the iterator handle intrinsics of Host (primary rows) and
// SecondaryIndex (one per key width) which are only valid inside a
// single invocation, see Database.Invoke and Database.View.
//
// Handles:
//   >= 0   a cached row of the invocation
//   -1     no such table / position
//   < -1   end position of a table: -(table cache index + 2)
//
// Notes on key layout:
// 1. each separate pool has a single byte prefix
// 2. ++      = concatenation of byte data
// 3. code, scope, table, primary = big endian uint64 (8 bytes)
// 4. payer   = account charged for the row, big endian uint64
// 5. key64   = big endian uint64 (8 bytes)
//    key128  = big endian Uint128 (16 bytes)
//    key256  = big endian Uint256 (32 bytes)
//
// Tables:
//
//   T ++ code ++ scope ++ table                  - table metadata
//                                                  data: payer ++ row count
//
// Primary rows:
//
//   R ++ code ++ scope ++ table ++ primary       - packed record
//                                                  data: payer ++ record
//
// Secondary indexes (x = a, b, c for 64, 128, 256 bit keys):
//
//   x ++ code ++ scope ++ table ++ key ++ primary - ordered by key, then primary
//                                                  data: payer
//   X ++ code ++ scope ++ table ++ primary       - key of a primary (X = A, B, C)
//                                                  data: key
//
// Usage:
//
//   U ++ payer                                   - bytes charged to payer
//                                                  data: big endian uint64
//
// Version:
//
//   0x00 ++ "VERSION"                            - database version
//                                                  data: big endian uint32
package storage
