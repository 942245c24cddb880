// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// key prefixes, see doc.go
const (
	tablePrefix   = 'T'
	rowPrefix     = 'R'
	usagePrefix   = 'U'
	idx64Prefix   = 'a'
	idx128Prefix  = 'b'
	idx256Prefix  = 'c'
	idx64Primary  = 'A'
	idx128Primary = 'B'
	idx256Primary = 'C'
)

// size of code ++ scope ++ table
const tableIdentityLength = 24

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// tableRef - identity of one host table
type tableRef struct {
	code  uint64
	scope uint64
	table uint64
}

// prefix ++ code ++ scope ++ table
func (t tableRef) key(prefix byte) []byte {
	buffer := make([]byte, 1+tableIdentityLength, 1+tableIdentityLength+40)
	buffer[0] = prefix
	binary.BigEndian.PutUint64(buffer[1:], t.code)
	binary.BigEndian.PutUint64(buffer[9:], t.scope)
	binary.BigEndian.PutUint64(buffer[17:], t.table)
	return buffer
}

// all keys under prefix ++ code ++ scope ++ table
func (t tableRef) keyRange(prefix byte) *ldb_util.Range {
	return ldb_util.BytesPrefix(t.key(prefix))
}

func tableRefFromKey(key []byte) tableRef {
	return tableRef{
		code:  binary.BigEndian.Uint64(key[1:9]),
		scope: binary.BigEndian.Uint64(key[9:17]),
		table: binary.BigEndian.Uint64(key[17:25]),
	}
}

func appendUint64(buffer []byte, n uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	return append(buffer, b[:]...)
}

func rowKey(t tableRef, primary uint64) []byte {
	return appendUint64(t.key(rowPrefix), primary)
}

func usageKey(payer uint64) []byte {
	return appendUint64([]byte{usagePrefix}, payer)
}

// the primary key is the last 8 bytes of row and ordered index keys
func primaryFromKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[len(key)-8:])
}

// tableInfo - decoded table metadata
type tableInfo struct {
	payer uint64
	count uint64
}

func (i tableInfo) bytes() []byte {
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[:8], i.payer)
	binary.BigEndian.PutUint64(buffer[8:], i.count)
	return buffer
}

func tableInfoFromBytes(buffer []byte) (tableInfo, bool) {
	if len(buffer) < 16 {
		return tableInfo{}, false
	}
	return tableInfo{
		payer: binary.BigEndian.Uint64(buffer[:8]),
		count: binary.BigEndian.Uint64(buffer[8:16]),
	}, true
}

// rows and index entries start with the payer
func splitPayer(value []byte) (uint64, []byte, bool) {
	if len(value) < 8 {
		return 0, nil, false
	}
	return binary.BigEndian.Uint64(value[:8]), value[8:], true
}

func joinPayer(payer uint64, data []byte) []byte {
	buffer := make([]byte, 8, 8+len(data))
	binary.BigEndian.PutUint64(buffer, payer)
	return append(buffer, data...)
}
