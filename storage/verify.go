// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multiindex/fault"
)

// primary and secondary tables of one record type share these bits
const tableGroupMask = ^uint64(0xf)

type verifier struct {
	access      Access
	log         *logger.L
	counts      map[tableRef]uint64
	usage       map[uint64]int64
	primaries   map[tableRef]map[uint64]struct{}
	indexCounts map[tableRef]uint64
}

// Verify - check the referential integrity of the whole database
//
//   every index entry has a matching by-primary entry and refers to an
//   existing row of a table in the same group
//   table metadata counts match the stored rows and entries
//   a group with a single primary table has as many entries in each
//   of its index tables as it has rows
//   stored payer usage matches the stored rows
func (d *Database) Verify() error {
	return d.inspect(func(access Access) error {
		v := &verifier{
			access:      access,
			log:         d.log,
			counts:      make(map[tableRef]uint64),
			usage:       make(map[uint64]int64),
			primaries:   make(map[tableRef]map[uint64]struct{}),
			indexCounts: make(map[tableRef]uint64),
		}
		if err := v.rows(); nil != err {
			return err
		}
		if err := verifyIndex(v, idx64Codec); nil != err {
			return err
		}
		if err := verifyIndex(v, idx128Codec); nil != err {
			return err
		}
		if err := verifyIndex(v, idx256Codec); nil != err {
			return err
		}
		if err := v.tables(); nil != err {
			return err
		}
		if err := v.groups(); nil != err {
			return err
		}
		return v.payers()
	})
}

func (v *verifier) rows() error {
	iter := v.access.Iterator(ldb_util.BytesPrefix([]byte{rowPrefix}))
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		if len(key) != 1+tableIdentityLength+8 {
			return fault.ErrRecordTruncated
		}
		payer, data, ok := splitPayer(iter.Value())
		if !ok {
			return fault.ErrRecordTruncated
		}
		t := tableRefFromKey(key)
		ids, ok := v.primaries[t]
		if !ok {
			ids = make(map[uint64]struct{})
			v.primaries[t] = ids
		}
		ids[primaryFromKey(key)] = struct{}{}
		v.counts[t] += 1
		v.usage[payer] += int64(len(data)) + primaryOverhead
	}
	return iter.Error()
}

// true if a primary table of the group of t holds the primary key
func (v *verifier) hasPrimary(t tableRef, primary uint64) bool {
	for p, ids := range v.primaries {
		if p.code != t.code || p.scope != t.scope || p.table&tableGroupMask != t.table&tableGroupMask {
			continue
		}
		if _, ok := ids[primary]; ok {
			return true
		}
	}
	return false
}

func verifyIndex[K any](v *verifier, codec keyCodec[K]) error {
	ordered := make(map[tableRef]uint64)

	iter := v.access.Iterator(ldb_util.BytesPrefix([]byte{codec.prefix}))
	defer iter.Release()

	for iter.Next() {
		key, primary, err := codec.split(iter.Key())
		if nil != err {
			return err
		}
		payer, _, ok := splitPayer(iter.Value())
		if !ok {
			return fault.ErrRecordTruncated
		}
		t := tableRefFromKey(iter.Key())

		stored, err := v.access.Get(codec.primaryKey(t, primary))
		if nil != err || !bytes.Equal(stored, codec.encode(key)) {
			v.log.Warnf("%s: table: %x  primary: %d  has no matching primary entry", codec.name, t.table, primary)
			return fault.ErrIndexValueMismatch
		}
		if !v.hasPrimary(t, primary) {
			v.log.Warnf("%s: table: %x  primary: %d  has no row", codec.name, t.table, primary)
			return fault.ErrMissingPrimaryRow
		}

		ordered[t] += 1
		v.indexCounts[t] += 1
		v.counts[t] += 1
		v.usage[payer] += codec.overhead
	}
	if err := iter.Error(); nil != err {
		return err
	}

	byPrimary := make(map[tableRef]uint64)
	iterP := v.access.Iterator(ldb_util.BytesPrefix([]byte{codec.byPrimary}))
	defer iterP.Release()

	for iterP.Next() {
		byPrimary[tableRefFromKey(iterP.Key())] += 1
	}
	if err := iterP.Error(); nil != err {
		return err
	}

	if len(byPrimary) != len(ordered) {
		return fault.ErrIndexCountMismatch
	}
	for t, n := range ordered {
		if byPrimary[t] != n {
			v.log.Warnf("%s: table: %x  entries: %d  by primary: %d", codec.name, t.table, n, byPrimary[t])
			return fault.ErrIndexCountMismatch
		}
	}
	return nil
}

func (v *verifier) tables() error {
	iter := v.access.Iterator(ldb_util.BytesPrefix([]byte{tablePrefix}))
	defer iter.Release()

	seen := 0
	for iter.Next() {
		t := tableRefFromKey(iter.Key())
		info, ok := tableInfoFromBytes(iter.Value())
		if !ok {
			return fault.ErrRecordTruncated
		}
		if v.counts[t] != info.count {
			v.log.Warnf("table: %x  count: %d  actual: %d", t.table, info.count, v.counts[t])
			return fault.ErrInvalidCount
		}
		v.usage[info.payer] += tableOverhead
		seen += 1
	}
	if err := iter.Error(); nil != err {
		return err
	}

	// rows or entries without table metadata
	if seen != len(v.counts) {
		return fault.ErrInvalidCount
	}
	return nil
}

func (v *verifier) groups() error {
	for t, n := range v.indexCounts {
		var primary tableRef
		found := 0
		for p := range v.primaries {
			if p.code == t.code && p.scope == t.scope && p.table&tableGroupMask == t.table&tableGroupMask {
				primary = p
				found += 1
			}
		}
		if 1 == found && uint64(len(v.primaries[primary])) != n {
			v.log.Warnf("index table: %x  entries: %d  rows: %d", t.table, n, len(v.primaries[primary]))
			return fault.ErrIndexCountMismatch
		}
	}
	return nil
}

func (v *verifier) payers() error {
	iter := v.access.Iterator(ldb_util.BytesPrefix([]byte{usagePrefix}))
	defer iter.Release()

	seen := 0
	for iter.Next() {
		key := iter.Key()
		value := iter.Value()
		if 9 != len(key) || 8 != len(value) {
			return fault.ErrRecordTruncated
		}
		payer := binary.BigEndian.Uint64(key[1:])
		stored := int64(binary.BigEndian.Uint64(value))
		if v.usage[payer] != stored {
			v.log.Warnf("payer: %x  usage: %d  actual: %d", payer, stored, v.usage[payer])
			return fault.ErrUsageMismatch
		}
		seen += 1
	}
	if err := iter.Error(); nil != err {
		return err
	}
	if seen != len(v.usage) {
		return fault.ErrUsageMismatch
	}
	return nil
}
