// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/numeric"
)

// session - the Host of a single invocation
type session struct {
	access   Access
	receiver uint64
	over     bool
	log      *logger.L

	primary *iteratorCache[[]byte]
	idx64   *secondaryIndex[uint64]
	idx128  *secondaryIndex[numeric.Uint128]
	idx256  *secondaryIndex[numeric.Uint256]
}

func newSession(access Access, receiver uint64, log *logger.L) *session {
	s := &session{
		access:   access,
		receiver: receiver,
		log:      log,
		primary:  newIteratorCache[[]byte](),
	}
	s.idx64 = newSecondaryIndex(s, idx64Codec)
	s.idx128 = newSecondaryIndex(s, idx128Codec)
	s.idx256 = newSecondaryIndex(s, idx256Codec)
	return s
}

func (s *session) Receiver() uint64 {
	return s.receiver
}

func (s *session) Idx64() SecondaryIndex[uint64] {
	return s.idx64
}

func (s *session) Idx128() SecondaryIndex[numeric.Uint128] {
	return s.idx128
}

func (s *session) Idx256() SecondaryIndex[numeric.Uint256] {
	return s.idx256
}

// abort if the invocation has returned
func (s *session) live() {
	fault.Check(!s.over, fault.ErrInvocationIsOver.Error())
}

// abort unless the receiver may write tables of code
func (s *session) writable(code uint64) {
	s.live()
	fault.Check(!s.access.ReadOnly(), fault.ErrDatabaseIsReadOnly.Error())
	fault.Check(code == s.receiver, fault.ErrTableNotOwned.Error())
}

// read a key, nil, false if absent
func (s *session) get(key []byte) ([]byte, bool) {
	value, err := s.access.Get(key)
	if leveldb.ErrNotFound == err {
		return nil, false
	}
	fault.AbortIfError("get", err)
	return value, true
}

func (s *session) findTable(t tableRef) (tableInfo, bool) {
	value, found := s.get(t.key(tablePrefix))
	if !found {
		return tableInfo{}, false
	}
	info, ok := tableInfoFromBytes(value)
	fault.Check(ok, fault.ErrRecordTruncated.Error())
	return info, true
}

// create the table metadata on the first row, the payer is charged for it
func (s *session) findOrCreateTable(t tableRef, payer uint64) tableInfo {
	if info, found := s.findTable(t); found {
		return info
	}
	info := tableInfo{payer: payer}
	s.access.Put(t.key(tablePrefix), info.bytes())
	s.addUsage(payer, tableOverhead)
	s.log.Debugf("create table: code: %x  scope: %x  table: %x  payer: %x", t.code, t.scope, t.table, payer)
	return info
}

// adjust the number of rows, erasing the table metadata when it reaches zero
func (s *session) changeRowCount(t tableRef, delta int) {
	info, found := s.findTable(t)
	fault.Check(found, "table does not exist")

	if delta < 0 {
		fault.Check(info.count >= uint64(-delta), fault.ErrInvalidCount.Error())
		info.count -= uint64(-delta)
	} else {
		info.count += uint64(delta)
	}

	if 0 == info.count {
		s.access.Delete(t.key(tablePrefix))
		s.addUsage(info.payer, -tableOverhead)
		s.log.Debugf("remove table: code: %x  scope: %x  table: %x", t.code, t.scope, t.table)
		return
	}
	s.access.Put(t.key(tablePrefix), info.bytes())
}

// cache a primary row read from the database
func (s *session) loadRow(table int, key []byte, value []byte) (int32, uint64) {
	primary := primaryFromKey(key)
	if handle, ok := s.primary.lookup(table, primary); ok {
		return handle, primary
	}
	payer, data, ok := splitPayer(value)
	fault.Check(ok, fault.ErrRecordTruncated.Error())

	row := &cachedRow[[]byte]{
		table:   table,
		primary: primary,
		payer:   payer,
		value:   append([]byte{}, data...),
	}
	return s.primary.add(row), primary
}

func (s *session) StoreI64(scope uint64, table uint64, payer uint64, id uint64, data []byte) int32 {
	s.writable(s.receiver)
	fault.Check(0 != payer, "must specify a valid account to pay for new record")

	t := tableRef{code: s.receiver, scope: scope, table: table}
	key := rowKey(t, id)
	_, found := s.get(key)
	fault.Check(!found, fault.ErrDuplicatePrimaryKey.Error())

	s.findOrCreateTable(t, payer)

	s.access.Put(key, joinPayer(payer, data))
	s.changeRowCount(t, 1)
	s.addUsage(payer, int64(len(data))+primaryOverhead)

	s.log.Debugf("store: scope: %x  table: %x  primary: %d  payer: %x  bytes: %d", scope, table, id, payer, len(data))

	row := &cachedRow[[]byte]{
		table:   s.primary.cacheTable(t),
		primary: id,
		payer:   payer,
		value:   append([]byte{}, data...),
	}
	return s.primary.add(row)
}

func (s *session) UpdateI64(it int32, payer uint64, data []byte) {
	s.live()
	row := s.primary.get(it)
	t := s.primary.table(row)
	s.writable(t.code)

	if 0 == payer {
		payer = row.payer
	}

	s.addUsage(row.payer, -(int64(len(row.value)) + primaryOverhead))
	s.addUsage(payer, int64(len(data))+primaryOverhead)

	s.access.Put(rowKey(t, row.primary), joinPayer(payer, data))

	s.log.Debugf("update: scope: %x  table: %x  primary: %d  payer: %x  bytes: %d", t.scope, t.table, row.primary, payer, len(data))

	row.payer = payer
	row.value = append([]byte{}, data...)
}

func (s *session) RemoveI64(it int32) {
	s.live()
	row := s.primary.get(it)
	t := s.primary.table(row)
	s.writable(t.code)

	s.access.Delete(rowKey(t, row.primary))
	s.addUsage(row.payer, -(int64(len(row.value)) + primaryOverhead))
	s.changeRowCount(t, -1)

	s.log.Debugf("remove: scope: %x  table: %x  primary: %d", t.scope, t.table, row.primary)

	s.primary.remove(it)
}

func (s *session) GetI64(it int32) []byte {
	s.live()
	row := s.primary.get(it)
	return append([]byte{}, row.value...)
}

func (s *session) NextI64(it int32) (int32, uint64) {
	s.live()
	if it < -1 {
		return -1, 0 // cannot increment past end of table
	}
	row := s.primary.get(it)
	t := s.primary.table(row)

	iter := s.access.Iterator(t.keyRange(rowPrefix))
	defer iter.Release()

	key := rowKey(t, row.primary)
	ok := iter.Seek(key)
	if ok && bytes.Equal(iter.Key(), key) {
		ok = iter.Next()
	}
	if !ok {
		return s.primary.endHandle(row.table), 0
	}
	return s.loadRow(row.table, iter.Key(), iter.Value())
}

func (s *session) PreviousI64(it int32) (int32, uint64) {
	s.live()

	if it < -1 {
		t, table := s.primary.findTableByEnd(it)

		iter := s.access.Iterator(t.keyRange(rowPrefix))
		defer iter.Release()

		if !iter.Last() {
			return -1, 0
		}
		return s.loadRow(table, iter.Key(), iter.Value())
	}

	row := s.primary.get(it)
	t := s.primary.table(row)

	iter := s.access.Iterator(t.keyRange(rowPrefix))
	defer iter.Release()

	var ok bool
	if iter.Seek(rowKey(t, row.primary)) {
		ok = iter.Prev()
	} else {
		ok = iter.Last()
	}
	if !ok {
		return -1, 0
	}
	return s.loadRow(row.table, iter.Key(), iter.Value())
}

func (s *session) FindI64(code uint64, scope uint64, table uint64, id uint64) int32 {
	s.live()
	t := tableRef{code: code, scope: scope, table: table}
	if _, found := s.findTable(t); !found {
		return -1
	}
	tableIndex := s.primary.cacheTable(t)
	if handle, ok := s.primary.lookup(tableIndex, id); ok {
		return handle
	}

	key := rowKey(t, id)
	value, found := s.get(key)
	if !found {
		return s.primary.endHandle(tableIndex)
	}
	handle, _ := s.loadRow(tableIndex, key, value)
	return handle
}

func (s *session) LowerBoundI64(code uint64, scope uint64, table uint64, id uint64) int32 {
	return s.bound(code, scope, table, id, false)
}

func (s *session) UpperBoundI64(code uint64, scope uint64, table uint64, id uint64) int32 {
	return s.bound(code, scope, table, id, true)
}

// first row with primary >= id, or > id for an upper bound
func (s *session) bound(code uint64, scope uint64, table uint64, id uint64, upper bool) int32 {
	s.live()
	t := tableRef{code: code, scope: scope, table: table}
	if _, found := s.findTable(t); !found {
		return -1
	}
	tableIndex := s.primary.cacheTable(t)

	iter := s.access.Iterator(t.keyRange(rowPrefix))
	defer iter.Release()

	key := rowKey(t, id)
	ok := iter.Seek(key)
	if ok && upper && bytes.Equal(iter.Key(), key) {
		ok = iter.Next()
	}
	if !ok {
		return s.primary.endHandle(tableIndex)
	}
	handle, _ := s.loadRow(tableIndex, iter.Key(), iter.Value())
	return handle
}

func (s *session) EndI64(code uint64, scope uint64, table uint64) int32 {
	s.live()
	t := tableRef{code: code, scope: scope, table: table}
	if _, found := s.findTable(t); !found {
		return -1
	}
	return s.primary.endHandle(s.primary.cacheTable(t))
}
