// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/multiindex/fault"
)

// Access - the database view of one invocation
type Access interface {
	Abort()
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
	ReadOnly() bool
}

// read-write access through a LevelDB transaction
//
// reads see the writes of the same transaction, table metadata
// written here is staged until commit
type transactionAccess struct {
	trx    *leveldb.Transaction
	tables *tableCache
	staged map[string]cachedTable
}

func newTransactionAccess(db *leveldb.DB, tables *tableCache) (Access, error) {
	trx, err := db.OpenTransaction()
	if nil != err {
		return nil, err
	}
	return &transactionAccess{
		trx:    trx,
		tables: tables,
		staged: make(map[string]cachedTable),
	}, nil
}

func (d *transactionAccess) Put(key []byte, value []byte) {
	err := d.trx.Put(key, value, nil)
	fault.AbortIfError("put", err)

	if tablePrefix == key[0] {
		info, ok := tableInfoFromBytes(value)
		fault.Check(ok, fault.ErrRecordTruncated.Error())
		d.staged[string(key)] = cachedTable{info: info}
	}
}

func (d *transactionAccess) Delete(key []byte) {
	err := d.trx.Delete(key, nil)
	fault.AbortIfError("delete", err)

	if tablePrefix == key[0] {
		d.staged[string(key)] = cachedTable{deleted: true}
	}
}

// metadata from this invocation first, then from earlier commits
func (d *transactionAccess) cached(key []byte) (cachedTable, bool) {
	if tablePrefix != key[0] {
		return cachedTable{}, false
	}
	if entry, ok := d.staged[string(key)]; ok {
		return entry, true
	}
	return d.tables.get(string(key))
}

func (d *transactionAccess) Get(key []byte) ([]byte, error) {
	if entry, found := d.cached(key); found {
		if entry.deleted {
			return nil, leveldb.ErrNotFound
		}
		return entry.info.bytes(), nil
	}
	return d.trx.Get(key, nil)
}

func (d *transactionAccess) Has(key []byte) (bool, error) {
	if entry, found := d.cached(key); found {
		return !entry.deleted, nil
	}
	return d.trx.Has(key, nil)
}

func (d *transactionAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.trx.NewIterator(searchRange, nil)
}

func (d *transactionAccess) Commit() error {
	if err := d.trx.Commit(); nil != err {
		d.tables.clear()
		return err
	}
	d.tables.publish(d.staged)
	return nil
}

func (d *transactionAccess) Abort() {
	d.trx.Discard()
	d.staged = nil
}

func (d *transactionAccess) ReadOnly() bool {
	return false
}

// read-only access through a snapshot
type snapshotAccess struct {
	snapshot *leveldb.Snapshot
}

func newSnapshotAccess(db *leveldb.DB) (Access, error) {
	snapshot, err := db.GetSnapshot()
	if nil != err {
		return nil, err
	}
	return &snapshotAccess{
		snapshot: snapshot,
	}, nil
}

func (d *snapshotAccess) Put(key []byte, value []byte) {
	fault.Check(false, fault.ErrDatabaseIsReadOnly.Error())
}

func (d *snapshotAccess) Delete(key []byte) {
	fault.Check(false, fault.ErrDatabaseIsReadOnly.Error())
}

func (d *snapshotAccess) Get(key []byte) ([]byte, error) {
	return d.snapshot.Get(key, nil)
}

func (d *snapshotAccess) Has(key []byte) (bool, error) {
	return d.snapshot.Has(key, nil)
}

func (d *snapshotAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.snapshot.NewIterator(searchRange, nil)
}

func (d *snapshotAccess) Commit() error {
	d.snapshot.Release()
	return nil
}

func (d *snapshotAccess) Abort() {
	d.snapshot.Release()
}

func (d *snapshotAccess) ReadOnly() bool {
	return true
}
