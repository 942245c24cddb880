// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiindex

import (
	"github.com/bitmark-inc/multiindex/fault"
)

// Cursor - a position in a primary table
//
// a negative handle is not ok and is never dereferenced: -1 for not
// found or no table, lower values for the end of an existing table.
// the zero Cursor belongs to no table and is not ok
type Cursor[T Record] struct {
	handle     int32
	primary    uint64
	hasPrimary bool
	table      *PrimaryTable[T]
}

// Handle - the host iterator handle
func (c Cursor[T]) Handle() int32 {
	return c.handle
}

// IsOK - true for a row position
func (c Cursor[T]) IsOK() bool {
	return nil != c.table && c.handle >= 0
}

// IsEnd - true for the end of an existing table
//
// false for not found (-1)
func (c Cursor[T]) IsEnd() bool {
	return c.handle < -1
}

// belongsTo - true if the cursor was produced by table p
func (c Cursor[T]) belongsTo(p *PrimaryTable[T]) bool {
	return c.table == p
}

// Expect - abort unless the cursor is a row position
func (c Cursor[T]) Expect(message string) Cursor[T] {
	fault.Check(c.IsOK(), message)
	return c
}

// ExpectNotOK - abort if the cursor is a row position
func (c Cursor[T]) ExpectNotOK(message string) {
	fault.Check(!c.IsOK(), message)
}

// Get - the record at the cursor, false if not ok
func (c Cursor[T]) Get() (T, bool) {
	if nil == c.table {
		var zero T
		return zero, false
	}
	return c.table.Get(c)
}

// Value - the record at the cursor, aborts if not ok
func (c Cursor[T]) Value() T {
	fault.Check(c.IsOK(), "get value of invalid cursor")
	value, _ := c.Get()
	return value
}

// Primary - the primary key of the row, false if not ok
//
// reads the row if the key was not returned by the host
func (c Cursor[T]) Primary() (uint64, bool) {
	if !c.IsOK() {
		return 0, false
	}
	if c.hasPrimary {
		return c.primary, true
	}
	value, ok := c.Get()
	if !ok {
		return 0, false
	}
	return value.GetPrimary(), true
}
