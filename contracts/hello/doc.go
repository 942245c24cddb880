// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hello - a sample contract keeping MyData records
//
// the records are indexed by:
//   slot 0  idx64   tag
//   slot 1  idx128  balance
//   slot 2  idx256  SHA3-256 digest of the memo
package hello
