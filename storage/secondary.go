// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"
	"math"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/numeric"
)

// keyCodec - the byte form of one secondary key width
//
// encode must preserve the unsigned ordering of the key
type keyCodec[K any] struct {
	name      string
	prefix    byte
	byPrimary byte
	overhead  int64
	encode    func(K) []byte
	decode    func([]byte) (K, error)
}

var idx64Codec = keyCodec[uint64]{
	name:      "idx64",
	prefix:    idx64Prefix,
	byPrimary: idx64Primary,
	overhead:  idx64Overhead,
	encode: func(key uint64) []byte {
		return appendUint64(nil, key)
	},
	decode: func(buffer []byte) (uint64, error) {
		if 8 != len(buffer) {
			return 0, fault.ErrRecordTruncated
		}
		return binary.BigEndian.Uint64(buffer), nil
	},
}

var idx128Codec = keyCodec[numeric.Uint128]{
	name:      "idx128",
	prefix:    idx128Prefix,
	byPrimary: idx128Primary,
	overhead:  idx128Overhead,
	encode:    numeric.Uint128.BigEndian,
	decode:    numeric.Uint128FromBigEndian,
}

var idx256Codec = keyCodec[numeric.Uint256]{
	name:      "idx256",
	prefix:    idx256Prefix,
	byPrimary: idx256Primary,
	overhead:  idx256Overhead,
	encode:    numeric.Uint256.BigEndian,
	decode:    numeric.Uint256FromBigEndian,
}

// prefix ++ code ++ scope ++ table ++ key ++ primary
func (c keyCodec[K]) orderedKey(t tableRef, key K, primary uint64) []byte {
	return appendUint64(append(t.key(c.prefix), c.encode(key)...), primary)
}

// byPrimary ++ code ++ scope ++ table ++ primary
func (c keyCodec[K]) primaryKey(t tableRef, primary uint64) []byte {
	return appendUint64(t.key(c.byPrimary), primary)
}

// key and primary of an ordered key
func (c keyCodec[K]) split(key []byte) (K, uint64, error) {
	if len(key) < 1+tableIdentityLength+8 {
		var zero K
		return zero, 0, fault.ErrRecordTruncated
	}
	k, err := c.decode(key[1+tableIdentityLength : len(key)-8])
	return k, primaryFromKey(key), err
}

// secondaryIndex - SecondaryIndex of one key width bound to a session
type secondaryIndex[K any] struct {
	s     *session
	codec keyCodec[K]
	cache *iteratorCache[K]
}

func newSecondaryIndex[K any](s *session, codec keyCodec[K]) *secondaryIndex[K] {
	return &secondaryIndex[K]{
		s:     s,
		codec: codec,
		cache: newIteratorCache[K](),
	}
}

// cache an entry read from the ordered keys
func (x *secondaryIndex[K]) loadEntry(table int, key []byte, value []byte) (int32, K, uint64) {
	k, primary, err := x.codec.split(key)
	fault.AbortIfError(x.codec.name, err)

	if handle, ok := x.cache.lookup(table, primary); ok {
		return handle, x.cache.rows[handle].value, primary
	}
	fault.Check(8 == len(value), fault.ErrRecordTruncated.Error())

	row := &cachedRow[K]{
		table:   table,
		primary: primary,
		payer:   binary.BigEndian.Uint64(value),
		value:   k,
	}
	return x.cache.add(row), k, primary
}

// index of an existing table, false if there is no such table
func (x *secondaryIndex[K]) existingTable(code uint64, scope uint64, table uint64) (tableRef, int, bool) {
	x.s.live()
	t := tableRef{code: code, scope: scope, table: table}
	if _, found := x.s.findTable(t); !found {
		return t, 0, false
	}
	return t, x.cache.cacheTable(t), true
}

func (x *secondaryIndex[K]) Store(scope uint64, table uint64, payer uint64, id uint64, key K) int32 {
	s := x.s
	s.writable(s.receiver)
	fault.Check(0 != payer, "must specify a valid account to pay for new record")

	t := tableRef{code: s.receiver, scope: scope, table: table}
	_, found := s.get(x.codec.primaryKey(t, id))
	fault.Check(!found, fault.ErrDuplicateSecondaryKey.Error())

	s.findOrCreateTable(t, payer)

	s.access.Put(x.codec.orderedKey(t, key, id), appendUint64(nil, payer))
	s.access.Put(x.codec.primaryKey(t, id), x.codec.encode(key))
	s.changeRowCount(t, 1)
	s.addUsage(payer, x.codec.overhead)

	s.log.Debugf("%s store: scope: %x  table: %x  primary: %d  payer: %x", x.codec.name, scope, table, id, payer)

	row := &cachedRow[K]{
		table:   x.cache.cacheTable(t),
		primary: id,
		payer:   payer,
		value:   key,
	}
	return x.cache.add(row)
}

func (x *secondaryIndex[K]) Update(it int32, payer uint64, key K) {
	s := x.s
	s.live()
	row := x.cache.get(it)
	t := x.cache.table(row)
	s.writable(t.code)

	if 0 == payer {
		payer = row.payer
	}

	s.access.Delete(x.codec.orderedKey(t, row.value, row.primary))
	s.access.Put(x.codec.orderedKey(t, key, row.primary), appendUint64(nil, payer))
	s.access.Put(x.codec.primaryKey(t, row.primary), x.codec.encode(key))

	if payer != row.payer {
		s.addUsage(row.payer, -x.codec.overhead)
		s.addUsage(payer, x.codec.overhead)
	}

	s.log.Debugf("%s update: scope: %x  table: %x  primary: %d  payer: %x", x.codec.name, t.scope, t.table, row.primary, payer)

	row.payer = payer
	row.value = key
}

func (x *secondaryIndex[K]) Remove(it int32) {
	s := x.s
	s.live()
	row := x.cache.get(it)
	t := x.cache.table(row)
	s.writable(t.code)

	s.access.Delete(x.codec.orderedKey(t, row.value, row.primary))
	s.access.Delete(x.codec.primaryKey(t, row.primary))
	s.addUsage(row.payer, -x.codec.overhead)
	s.changeRowCount(t, -1)

	s.log.Debugf("%s remove: scope: %x  table: %x  primary: %d", x.codec.name, t.scope, t.table, row.primary)

	x.cache.remove(it)
}

func (x *secondaryIndex[K]) Next(it int32) (int32, uint64) {
	x.s.live()
	if it < -1 {
		return -1, 0 // cannot increment past end of table
	}
	row := x.cache.get(it)
	t := x.cache.table(row)

	iter := x.s.access.Iterator(t.keyRange(x.codec.prefix))
	defer iter.Release()

	key := x.codec.orderedKey(t, row.value, row.primary)
	ok := iter.Seek(key)
	if ok && bytes.Equal(iter.Key(), key) {
		ok = iter.Next()
	}
	if !ok {
		return x.cache.endHandle(row.table), 0
	}
	handle, _, primary := x.loadEntry(row.table, iter.Key(), iter.Value())
	return handle, primary
}

func (x *secondaryIndex[K]) Previous(it int32) (int32, uint64) {
	x.s.live()

	if it < -1 {
		t, table := x.cache.findTableByEnd(it)

		iter := x.s.access.Iterator(t.keyRange(x.codec.prefix))
		defer iter.Release()

		if !iter.Last() {
			return -1, 0
		}
		handle, _, primary := x.loadEntry(table, iter.Key(), iter.Value())
		return handle, primary
	}

	row := x.cache.get(it)
	t := x.cache.table(row)

	iter := x.s.access.Iterator(t.keyRange(x.codec.prefix))
	defer iter.Release()

	var ok bool
	if iter.Seek(x.codec.orderedKey(t, row.value, row.primary)) {
		ok = iter.Prev()
	} else {
		ok = iter.Last()
	}
	if !ok {
		return -1, 0
	}
	handle, _, primary := x.loadEntry(row.table, iter.Key(), iter.Value())
	return handle, primary
}

func (x *secondaryIndex[K]) FindPrimary(code uint64, scope uint64, table uint64, id uint64) (int32, K) {
	var zero K
	t, tableIndex, ok := x.existingTable(code, scope, table)
	if !ok {
		return -1, zero
	}
	if handle, ok := x.cache.lookup(tableIndex, id); ok {
		return handle, x.cache.rows[handle].value
	}

	value, found := x.s.get(x.codec.primaryKey(t, id))
	if !found {
		return x.cache.endHandle(tableIndex), zero
	}
	key, err := x.codec.decode(value)
	fault.AbortIfError(x.codec.name, err)

	ordered := x.codec.orderedKey(t, key, id)
	payer, found := x.s.get(ordered)
	fault.Check(found, fault.ErrMissingPrimaryRow.Error())

	handle, key, _ := x.loadEntry(tableIndex, ordered, payer)
	return handle, key
}

func (x *secondaryIndex[K]) Find(code uint64, scope uint64, table uint64, key K) (int32, uint64) {
	t, tableIndex, ok := x.existingTable(code, scope, table)
	if !ok {
		return -1, 0
	}

	iter := x.s.access.Iterator(ldb_util.BytesPrefix(append(t.key(x.codec.prefix), x.codec.encode(key)...)))
	defer iter.Release()

	if !iter.First() {
		return x.cache.endHandle(tableIndex), 0
	}
	handle, _, primary := x.loadEntry(tableIndex, iter.Key(), iter.Value())
	return handle, primary
}

func (x *secondaryIndex[K]) LowerBound(code uint64, scope uint64, table uint64, key K) (int32, K, uint64) {
	return x.bound(code, scope, table, key, false)
}

func (x *secondaryIndex[K]) UpperBound(code uint64, scope uint64, table uint64, key K) (int32, K, uint64) {
	return x.bound(code, scope, table, key, true)
}

// first entry with key >= key, or > key for an upper bound
func (x *secondaryIndex[K]) bound(code uint64, scope uint64, table uint64, key K, upper bool) (int32, K, uint64) {
	var zero K
	t, tableIndex, ok := x.existingTable(code, scope, table)
	if !ok {
		return -1, zero, 0
	}

	iter := x.s.access.Iterator(t.keyRange(x.codec.prefix))
	defer iter.Release()

	var found bool
	if upper {
		// the highest primary key of an equal key is the last possible match
		last := x.codec.orderedKey(t, key, math.MaxUint64)
		found = iter.Seek(last)
		if found && bytes.Equal(iter.Key(), last) {
			found = iter.Next()
		}
	} else {
		found = iter.Seek(x.codec.orderedKey(t, key, 0))
	}
	if !found {
		return x.cache.endHandle(tableIndex), zero, 0
	}
	return x.loadEntry(tableIndex, iter.Key(), iter.Value())
}

func (x *secondaryIndex[K]) End(code uint64, scope uint64, table uint64) int32 {
	_, tableIndex, ok := x.existingTable(code, scope, table)
	if !ok {
		return -1
	}
	return x.cache.endHandle(tableIndex)
}
