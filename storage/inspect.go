// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"strconv"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/numeric"
)

// names of the secondary index widths
const (
	Index64  = "idx64"
	Index128 = "idx128"
	Index256 = "idx256"
)

// Table - metadata of one host table
type Table struct {
	Code  uint64 `json:"code"`
	Scope uint64 `json:"scope"`
	Table uint64 `json:"table"`
	Payer uint64 `json:"payer"`
	Count uint64 `json:"count"`
}

// Row - one primary row
type Row struct {
	Primary uint64 `json:"primary"`
	Payer   uint64 `json:"payer"`
	Data    []byte `json:"data"`
}

// IndexEntry - one secondary index entry in key order
type IndexEntry struct {
	Key     string `json:"key"`
	Primary uint64 `json:"primary"`
	Payer   uint64 `json:"payer"`
}

// run a function on a snapshot
func (d *Database) inspect(fn func(Access) error) error {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}

	access, err := newSnapshotAccess(d.db)
	if nil != err {
		return err
	}
	defer access.Abort()

	return fn(access)
}

// Tables - every table in the database
func (d *Database) Tables() ([]Table, error) {
	tables := make([]Table, 0, 16)
	err := d.inspect(func(access Access) error {
		iter := access.Iterator(ldb_util.BytesPrefix([]byte{tablePrefix}))
		defer iter.Release()

		for iter.Next() {
			t := tableRefFromKey(iter.Key())
			info, ok := tableInfoFromBytes(iter.Value())
			if !ok {
				return fault.ErrRecordTruncated
			}
			tables = append(tables, Table{
				Code:  t.code,
				Scope: t.scope,
				Table: t.table,
				Payer: info.payer,
				Count: info.count,
			})
		}
		return iter.Error()
	})
	return tables, err
}

// Rows - the primary rows of a table in primary key order
func (d *Database) Rows(code uint64, scope uint64, table uint64) ([]Row, error) {
	t := tableRef{code: code, scope: scope, table: table}
	rows := make([]Row, 0, 16)
	err := d.inspect(func(access Access) error {
		iter := access.Iterator(t.keyRange(rowPrefix))
		defer iter.Release()

		for iter.Next() {
			payer, data, ok := splitPayer(iter.Value())
			if !ok {
				return fault.ErrRecordTruncated
			}
			rows = append(rows, Row{
				Primary: primaryFromKey(iter.Key()),
				Payer:   payer,
				Data:    append([]byte{}, data...),
			})
		}
		return iter.Error()
	})
	return rows, err
}

// IndexEntries - the entries of a secondary index table in key order
func (d *Database) IndexEntries(index string, code uint64, scope uint64, table uint64) ([]IndexEntry, error) {
	t := tableRef{code: code, scope: scope, table: table}
	var entries []IndexEntry
	err := d.inspect(func(access Access) error {
		var err error
		switch index {
		case Index64:
			entries, err = indexEntries(access, idx64Codec, t, func(k uint64) string {
				return strconv.FormatUint(k, 10)
			})
		case Index128:
			entries, err = indexEntries(access, idx128Codec, t, numeric.Uint128.String)
		case Index256:
			entries, err = indexEntries(access, idx256Codec, t, numeric.Uint256.Hex)
		default:
			err = fault.ErrUnsupportedIndexType
		}
		return err
	})
	return entries, err
}

func indexEntries[K any](access Access, codec keyCodec[K], t tableRef, format func(K) string) ([]IndexEntry, error) {
	iter := access.Iterator(t.keyRange(codec.prefix))
	defer iter.Release()

	entries := make([]IndexEntry, 0, 16)
	for iter.Next() {
		key, primary, err := codec.split(iter.Key())
		if nil != err {
			return nil, err
		}
		payer, _, ok := splitPayer(iter.Value())
		if !ok {
			return nil, fault.ErrRecordTruncated
		}
		entries = append(entries, IndexEntry{
			Key:     format(key),
			Primary: primary,
			Payer:   payer,
		})
	}
	return entries, iter.Error()
}

// Usage - bytes currently charged to a payer
func (d *Database) Usage(payer uint64) (int64, error) {
	usage := int64(0)
	err := d.View(func(host Host) error {
		usage = host.Usage(payer)
		return nil
	})
	return usage, err
}
