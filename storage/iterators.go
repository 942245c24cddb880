// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/multiindex/fault"
)

// a row position cached by an invocation
type cachedRow[V any] struct {
	table   int // index into iteratorCache.tables
	primary uint64
	payer   uint64
	value   V
	erased  bool
}

type rowID struct {
	table   int
	primary uint64
}

// iteratorCache - the handle space of one kind of table
//
// handles are only meaningful for the invocation that created them
type iteratorCache[V any] struct {
	tables     []tableRef
	tableIndex map[tableRef]int
	rows       []*cachedRow[V]
	handles    map[rowID]int32
}

func newIteratorCache[V any]() *iteratorCache[V] {
	return &iteratorCache[V]{
		tables:     make([]tableRef, 0, 4),
		tableIndex: make(map[tableRef]int),
		rows:       make([]*cachedRow[V], 0, 16),
		handles:    make(map[rowID]int32),
	}
}

// cacheTable - index of a table, adding it when first seen
func (c *iteratorCache[V]) cacheTable(t tableRef) int {
	if i, ok := c.tableIndex[t]; ok {
		return i
	}
	i := len(c.tables)
	c.tables = append(c.tables, t)
	c.tableIndex[t] = i
	return i
}

// endHandle - the end position of a cached table
func (c *iteratorCache[V]) endHandle(table int) int32 {
	return -int32(table) - 2
}

// findTableByEnd - the table of an end handle
func (c *iteratorCache[V]) findTableByEnd(handle int32) (tableRef, int) {
	fault.Check(handle < -1, "not an end iterator")
	i := int(-handle - 2)
	fault.Check(i < len(c.tables), "an invariant was broken, table should be in cache")
	return c.tables[i], i
}

func (c *iteratorCache[V]) table(row *cachedRow[V]) tableRef {
	return c.tables[row.table]
}

// add - cache a row, returning its existing handle if it is already cached
func (c *iteratorCache[V]) add(row *cachedRow[V]) int32 {
	id := rowID{table: row.table, primary: row.primary}
	if handle, ok := c.handles[id]; ok {
		return handle
	}
	handle := int32(len(c.rows))
	c.rows = append(c.rows, row)
	c.handles[id] = handle
	return handle
}

// lookup - the handle of a cached row
func (c *iteratorCache[V]) lookup(table int, primary uint64) (int32, bool) {
	handle, ok := c.handles[rowID{table: table, primary: primary}]
	return handle, ok
}

// get - the row of a valid handle, aborting for end or erased handles
func (c *iteratorCache[V]) get(handle int32) *cachedRow[V] {
	fault.Check(-1 != handle, fault.ErrInvalidIterator.Error())
	fault.Check(handle >= 0, "dereference of end iterator")
	fault.Check(int(handle) < len(c.rows), "iterator out of range")
	row := c.rows[handle]
	fault.Check(!row.erased, "dereference of deleted object")
	return row
}

// remove - mark a row as erased, its handle is never reused
func (c *iteratorCache[V]) remove(handle int32) {
	row := c.get(handle)
	row.erased = true
	delete(c.handles, rowID{table: row.table, primary: row.primary})
}
