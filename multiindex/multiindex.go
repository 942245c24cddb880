// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiindex

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/serializer"
	"github.com/bitmark-inc/multiindex/storage"
)

// MultiIndex - a primary table and its secondary indexes
type MultiIndex[T Record] struct {
	code    name.Name
	scope   name.Name
	table   name.Name
	primary *PrimaryTable[T]
	idxdbs  []IndexTable
	log     *logger.L
}

// New - bind a table definition to the host of an invocation
//
// indexes gives the type of each secondary slot in order, the record
// type must report its secondary values in the same order
func New[T Record](host storage.Host, code name.Name, scope name.Name, table name.Name, indexes []SecondaryType, unpack Unpacker[T]) (*MultiIndex[T], error) {
	if len(indexes) > MaximumIndexes {
		return nil, fault.ErrTooManyIndexes
	}

	idxdbs := make([]IndexTable, 0, len(indexes))
	for i, kind := range indexes {
		switch kind {
		case Idx64:
			idxdbs = append(idxdbs, NewIdx64Table(host, code, scope, table, i))
		case Idx128:
			idxdbs = append(idxdbs, NewIdx128Table(host, code, scope, table, i))
		case Idx256:
			idxdbs = append(idxdbs, NewIdx256Table(host, code, scope, table, i))
		case IdxFloat64, IdxFloat128:
			return nil, fault.ErrUnsupportedIndexType
		default:
			return nil, fault.ErrInvalidSecondaryType
		}
	}

	return &MultiIndex[T]{
		code:    code,
		scope:   scope,
		table:   table,
		primary: NewPrimaryTable(host, code, scope, table, unpack),
		idxdbs:  idxdbs,
		log:     logger.New("multiindex"),
	}, nil
}

// Code - account owning the table
func (m *MultiIndex[T]) Code() name.Name {
	return m.code
}

// Scope - scope of the table
func (m *MultiIndex[T]) Scope() name.Name {
	return m.scope
}

// Table - name of the primary table
func (m *MultiIndex[T]) Table() name.Name {
	return m.table
}

// IndexCount - number of secondary indexes
func (m *MultiIndex[T]) IndexCount() int {
	return len(m.idxdbs)
}

// Store - insert a new record
//
// the index entries are written before the primary row
func (m *MultiIndex[T]) Store(record T, payer name.Name) Cursor[T] {
	primary := record.GetPrimary()
	for i, idx := range m.idxdbs {
		idx.Store(primary, record.GetSecondaryValue(i), payer)
	}
	m.log.Debugf("store: table: %s  primary: %d  payer: %s", m.table, primary, payer)
	return m.primary.Store(primary, serializer.Pack(record), payer)
}

// Update - replace the record at the cursor
//
// the primary key of a record cannot change, a payer of zero keeps
// the existing payer
func (m *MultiIndex[T]) Update(c Cursor[T], record T, payer name.Name) {
	fault.Check(c.IsOK(), "update: invalid cursor")
	fault.Check(c.belongsTo(m.primary), "update: cursor of another table")

	primary := record.GetPrimary()
	current, ok := c.Primary()
	fault.Check(ok, "update: cursor has no row")
	fault.Check(current == primary, "update: cannot change primary key")

	for i, idx := range m.idxdbs {
		it, old := idx.FindPrimary(primary)
		fault.Check(it.IsOK(), fault.ErrMissingPrimaryRow.Error())

		value := record.GetSecondaryValue(i)
		if old == value {
			continue
		}
		idx.Update(it, value, payer)
	}

	m.log.Debugf("update: table: %s  primary: %d  payer: %s", m.table, primary, payer)
	m.primary.Update(c, record, payer)
}

// Set - store the record, or update it if its primary key exists
func (m *MultiIndex[T]) Set(record T, payer name.Name) Cursor[T] {
	c := m.primary.Find(record.GetPrimary())
	if c.IsOK() {
		m.Update(c, record, payer)
		return c
	}
	return m.Store(record, payer)
}

// Remove - delete the record at the cursor, nothing if not ok
//
// the index entries are removed before the primary row
func (m *MultiIndex[T]) Remove(c Cursor[T]) {
	if !c.IsOK() {
		return
	}
	fault.Check(c.belongsTo(m.primary), "remove: cursor of another table")

	primary, ok := c.Primary()
	if !ok {
		return
	}

	for _, idx := range m.idxdbs {
		it, _ := idx.FindPrimary(primary)
		fault.Check(it.IsOK(), fault.ErrMissingPrimaryRow.Error())
		idx.Remove(it)
	}

	m.log.Debugf("remove: table: %s  primary: %d", m.table, primary)
	m.primary.Remove(c)
}

// Find - the record with a primary key
func (m *MultiIndex[T]) Find(id uint64) Cursor[T] {
	return m.primary.Find(id)
}

// LowerBound - the first record with primary key >= id
func (m *MultiIndex[T]) LowerBound(id uint64) Cursor[T] {
	return m.primary.LowerBound(id)
}

// UpperBound - the first record with primary key > id
func (m *MultiIndex[T]) UpperBound(id uint64) Cursor[T] {
	return m.primary.UpperBound(id)
}

// End - the position after the last record
func (m *MultiIndex[T]) End() Cursor[T] {
	return m.primary.End()
}

// Next - the record after the cursor
func (m *MultiIndex[T]) Next(c Cursor[T]) Cursor[T] {
	return m.primary.Next(c)
}

// Previous - the record before the cursor
func (m *MultiIndex[T]) Previous(c Cursor[T]) Cursor[T] {
	return m.primary.Previous(c)
}

// Get - the record at the cursor, false if not ok
func (m *MultiIndex[T]) Get(c Cursor[T]) (T, bool) {
	return m.primary.Get(c)
}

// GetByPrimary - the record with a primary key, false if absent
func (m *MultiIndex[T]) GetByPrimary(id uint64) (T, bool) {
	return m.primary.Get(m.primary.Find(id))
}

// GetIdxDB - the secondary index of a slot
func (m *MultiIndex[T]) GetIdxDB(i int) IndexTable {
	fault.Check(i >= 0 && i < len(m.idxdbs), "index slot out of range")
	return m.idxdbs[i]
}

// IdxUpdate - change one secondary value of the record at a secondary cursor
func (m *MultiIndex[T]) IdxUpdate(it SecondaryCursor, value SecondaryValue, payer name.Name) {
	fault.Check(it.IsOK(), "idx update: invalid secondary cursor")
	idx := m.GetIdxDB(it.DBIndex)
	fault.Check(it.belongsTo(idx), "idx update: cursor of another index")

	c := m.primary.Find(it.Primary)
	record := c.Expect(fault.ErrMissingPrimaryRow.Error()).Value()
	record.SetSecondaryValue(idx.DBIndex(), value)

	m.Update(c, record, payer)
	idx.Update(it, value, payer)
}
