// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package multiindex - typed contract tables with secondary indexes
//
// A MultiIndex keeps one primary table and up to 16 secondary index
// tables of a record type consistent: every stored record has exactly
// one entry in each index holding the record's current secondary value.
//
// All tables are bound to the storage.Host of one invocation, so
// neither tables nor cursors may be kept after the invocation returns.
//
// Secondary index tables use the primary table id with the low 4 bits
// replaced by the slot number of the index.
package multiindex
