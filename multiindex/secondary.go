// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiindex

import (
	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/storage"
)

// maximum number of secondary indexes of a table
const MaximumIndexes = 16

const slotMask = uint64(0xf)

// SecondaryCursor - a position in a secondary index table
//
// the zero SecondaryCursor belongs to no index and is not ok
type SecondaryCursor struct {
	Handle  int32
	Primary uint64
	DBIndex int
	index   IndexTable
}

// IsOK - true for an entry position
func (c SecondaryCursor) IsOK() bool {
	return nil != c.index && c.Handle >= 0
}

// belongsTo - true if the cursor was produced by idx
func (c SecondaryCursor) belongsTo(idx IndexTable) bool {
	return c.index == idx
}

// IndexTable - one secondary index slot of a MultiIndex
//
// the value returned with a cursor is only meaningful if it is ok
type IndexTable interface {
	Type() SecondaryType
	DBIndex() int

	Store(primary uint64, value SecondaryValue, payer name.Name) SecondaryCursor
	Update(cursor SecondaryCursor, value SecondaryValue, payer name.Name)
	Remove(cursor SecondaryCursor)
	FindPrimary(primary uint64) (SecondaryCursor, SecondaryValue)
	Find(value SecondaryValue) (SecondaryCursor, SecondaryValue)
	LowerBound(value SecondaryValue) (SecondaryCursor, SecondaryValue)
	UpperBound(value SecondaryValue) (SecondaryCursor, SecondaryValue)
	End() SecondaryCursor
	Next(cursor SecondaryCursor) (SecondaryCursor, SecondaryValue)
	Previous(cursor SecondaryCursor) (SecondaryCursor, SecondaryValue)
}

// SecondaryTableName - the table holding index slot of a primary table
func SecondaryTableName(table name.Name, slot int) name.Name {
	return name.FromUint64(table.Value()&^slotMask | uint64(slot)&slotMask)
}

// idxTable - IndexTable over the host index of one key width
type idxTable[K comparable] struct {
	host    storage.SecondaryIndex[K]
	code    uint64
	scope   uint64
	table   uint64
	dbIndex int
	kind    SecondaryType
	key     func(SecondaryValue) K
	value   func(K) SecondaryValue
}

// NewIdx64Table - a 64 bit index for slot dbIndex of a primary table
func NewIdx64Table(host storage.Host, code name.Name, scope name.Name, table name.Name, dbIndex int) IndexTable {
	return newIdxTable(host.Idx64(), code, scope, table, dbIndex, Idx64,
		func(v SecondaryValue) uint64 { return v.U64 },
		NewIdx64Value,
	)
}

// NewIdx128Table - a 128 bit index for slot dbIndex of a primary table
func NewIdx128Table(host storage.Host, code name.Name, scope name.Name, table name.Name, dbIndex int) IndexTable {
	return newIdxTable(host.Idx128(), code, scope, table, dbIndex, Idx128,
		func(v SecondaryValue) numeric.Uint128 { return v.U128 },
		NewIdx128Value,
	)
}

// NewIdx256Table - a 256 bit index for slot dbIndex of a primary table
func NewIdx256Table(host storage.Host, code name.Name, scope name.Name, table name.Name, dbIndex int) IndexTable {
	return newIdxTable(host.Idx256(), code, scope, table, dbIndex, Idx256,
		func(v SecondaryValue) numeric.Uint256 { return v.U256 },
		NewIdx256Value,
	)
}

func newIdxTable[K comparable](host storage.SecondaryIndex[K], code name.Name, scope name.Name, table name.Name, dbIndex int, kind SecondaryType, key func(SecondaryValue) K, value func(K) SecondaryValue) *idxTable[K] {
	return &idxTable[K]{
		host:    host,
		code:    code.Value(),
		scope:   scope.Value(),
		table:   SecondaryTableName(table, dbIndex).Value(),
		dbIndex: dbIndex,
		kind:    kind,
		key:     key,
		value:   value,
	}
}

func (x *idxTable[K]) Type() SecondaryType {
	return x.kind
}

func (x *idxTable[K]) DBIndex() int {
	return x.dbIndex
}

// abort if the value does not belong in this index
func (x *idxTable[K]) keyOf(value SecondaryValue) K {
	fault.Check(value.Type == x.kind, fault.ErrSecondaryTypeMismatch.Error())
	return x.key(value)
}

func (x *idxTable[K]) cursor(handle int32, primary uint64) SecondaryCursor {
	return SecondaryCursor{
		Handle:  handle,
		Primary: primary,
		DBIndex: x.dbIndex,
		index:   x,
	}
}

// the stored value of an ok cursor
func (x *idxTable[K]) valueAt(handle int32, primary uint64) SecondaryValue {
	if handle < 0 {
		return SecondaryValue{Type: x.kind}
	}
	_, key := x.host.FindPrimary(x.code, x.scope, x.table, primary)
	return x.value(key)
}

func (x *idxTable[K]) Store(primary uint64, value SecondaryValue, payer name.Name) SecondaryCursor {
	handle := x.host.Store(x.scope, x.table, payer.Value(), primary, x.keyOf(value))
	return x.cursor(handle, primary)
}

func (x *idxTable[K]) Update(c SecondaryCursor, value SecondaryValue, payer name.Name) {
	fault.Check(c.IsOK(), "update: invalid secondary cursor")
	fault.Check(c.belongsTo(x), "update: cursor of another index")
	x.host.Update(c.Handle, payer.Value(), x.keyOf(value))
}

func (x *idxTable[K]) Remove(c SecondaryCursor) {
	fault.Check(c.IsOK(), "remove: invalid secondary cursor")
	fault.Check(c.belongsTo(x), "remove: cursor of another index")
	x.host.Remove(c.Handle)
}

func (x *idxTable[K]) FindPrimary(primary uint64) (SecondaryCursor, SecondaryValue) {
	handle, key := x.host.FindPrimary(x.code, x.scope, x.table, primary)
	return x.cursor(handle, primary), x.value(key)
}

func (x *idxTable[K]) Find(value SecondaryValue) (SecondaryCursor, SecondaryValue) {
	handle, primary := x.host.Find(x.code, x.scope, x.table, x.keyOf(value))
	return x.cursor(handle, primary), value
}

func (x *idxTable[K]) LowerBound(value SecondaryValue) (SecondaryCursor, SecondaryValue) {
	handle, key, primary := x.host.LowerBound(x.code, x.scope, x.table, x.keyOf(value))
	return x.cursor(handle, primary), x.value(key)
}

func (x *idxTable[K]) UpperBound(value SecondaryValue) (SecondaryCursor, SecondaryValue) {
	handle, key, primary := x.host.UpperBound(x.code, x.scope, x.table, x.keyOf(value))
	return x.cursor(handle, primary), x.value(key)
}

func (x *idxTable[K]) End() SecondaryCursor {
	return x.cursor(x.host.End(x.code, x.scope, x.table), 0)
}

func (x *idxTable[K]) Next(c SecondaryCursor) (SecondaryCursor, SecondaryValue) {
	if -1 == c.Handle || nil == c.index {
		return x.cursor(-1, 0), SecondaryValue{Type: x.kind}
	}
	fault.Check(c.belongsTo(x), "next: cursor of another index")
	handle, primary := x.host.Next(c.Handle)
	return x.cursor(handle, primary), x.valueAt(handle, primary)
}

func (x *idxTable[K]) Previous(c SecondaryCursor) (SecondaryCursor, SecondaryValue) {
	if -1 == c.Handle || nil == c.index {
		return x.cursor(-1, 0), SecondaryValue{Type: x.kind}
	}
	fault.Check(c.belongsTo(x), "previous: cursor of another index")
	handle, primary := x.host.Previous(c.Handle)
	return x.cursor(handle, primary), x.valueAt(handle, primary)
}
