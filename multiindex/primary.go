// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiindex

import (
	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/serializer"
	"github.com/bitmark-inc/multiindex/storage"
)

// PrimaryTable - packed records ordered by primary key
type PrimaryTable[T Record] struct {
	host   storage.Host
	code   uint64
	scope  uint64
	table  uint64
	unpack Unpacker[T]
}

// NewPrimaryTable - a primary table of one invocation
func NewPrimaryTable[T Record](host storage.Host, code name.Name, scope name.Name, table name.Name, unpack Unpacker[T]) *PrimaryTable[T] {
	return &PrimaryTable[T]{
		host:   host,
		code:   code.Value(),
		scope:  scope.Value(),
		table:  table.Value(),
		unpack: unpack,
	}
}

func (p *PrimaryTable[T]) cursor(handle int32, primary uint64, known bool) Cursor[T] {
	return Cursor[T]{
		handle:     handle,
		primary:    primary,
		hasPrimary: known && handle >= 0,
		table:      p,
	}
}

// Store - insert packed data, the host aborts on a duplicate id
func (p *PrimaryTable[T]) Store(id uint64, data []byte, payer name.Name) Cursor[T] {
	handle := p.host.StoreI64(p.scope, p.table, payer.Value(), id, data)
	return p.cursor(handle, id, true)
}

// Update - replace the row at the cursor with the packed record
func (p *PrimaryTable[T]) Update(c Cursor[T], record T, payer name.Name) {
	fault.Check(c.IsOK(), "update: invalid cursor")
	fault.Check(c.belongsTo(p), "update: cursor of another table")
	p.host.UpdateI64(c.handle, payer.Value(), serializer.Pack(record))
}

// Remove - delete the row at the cursor
func (p *PrimaryTable[T]) Remove(c Cursor[T]) {
	fault.Check(c.IsOK(), "remove: invalid cursor")
	fault.Check(c.belongsTo(p), "remove: cursor of another table")
	p.host.RemoveI64(c.handle)
}

// Get - the record at the cursor, false if the cursor is not ok
func (p *PrimaryTable[T]) Get(c Cursor[T]) (T, bool) {
	if !c.IsOK() {
		var zero T
		return zero, false
	}
	fault.Check(c.belongsTo(p), "get: cursor of another table")
	value, err := p.unpack(p.host.GetI64(c.handle))
	fault.AbortIfError("unpack", err)
	return value, true
}

// Find - the row with primary key id or a not ok cursor
func (p *PrimaryTable[T]) Find(id uint64) Cursor[T] {
	return p.cursor(p.host.FindI64(p.code, p.scope, p.table, id), id, true)
}

// LowerBound - the first row with primary key >= id
func (p *PrimaryTable[T]) LowerBound(id uint64) Cursor[T] {
	return p.cursor(p.host.LowerBoundI64(p.code, p.scope, p.table, id), 0, false)
}

// UpperBound - the first row with primary key > id
func (p *PrimaryTable[T]) UpperBound(id uint64) Cursor[T] {
	return p.cursor(p.host.UpperBoundI64(p.code, p.scope, p.table, id), 0, false)
}

// End - the position after the last row
func (p *PrimaryTable[T]) End() Cursor[T] {
	return p.cursor(p.host.EndI64(p.code, p.scope, p.table), 0, false)
}

// Next - the following row, or a not ok cursor
func (p *PrimaryTable[T]) Next(c Cursor[T]) Cursor[T] {
	if -1 == c.handle || nil == c.table {
		return p.cursor(-1, 0, false)
	}
	fault.Check(c.belongsTo(p), "next: cursor of another table")
	handle, primary := p.host.NextI64(c.handle)
	return p.cursor(handle, primary, true)
}

// Previous - the preceding row, or a not ok cursor
//
// the previous of End is the last row
func (p *PrimaryTable[T]) Previous(c Cursor[T]) Cursor[T] {
	if -1 == c.handle || nil == c.table {
		return p.cursor(-1, 0, false)
	}
	fault.Check(c.belongsTo(p), "previous: cursor of another table")
	handle, primary := p.host.PreviousI64(c.handle)
	return p.cursor(handle, primary, true)
}
