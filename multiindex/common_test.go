// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiindex_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/multiindex"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/serializer"
	"github.com/bitmark-inc/multiindex/storage"
)

const (
	testingDirName = "testing"
)

var (
	testCode  = name.MustNew("hello")
	testPayer = name.MustNew("alice")
	testScope = name.MustNew("test")
	testTable = name.MustNew("items")
)

// a record with a 64 bit tag index and a 128 bit balance index
type item struct {
	id      uint64
	tag     uint64
	balance numeric.Uint128
	memo    string
}

func (i *item) GetPrimary() uint64 {
	return i.id
}

func (i *item) GetSecondaryValue(slot int) multiindex.SecondaryValue {
	switch slot {
	case 0:
		return multiindex.NewIdx64Value(i.tag)
	case 1:
		return multiindex.NewIdx128Value(i.balance)
	default:
		return multiindex.SecondaryValue{}
	}
}

func (i *item) SetSecondaryValue(slot int, value multiindex.SecondaryValue) {
	switch slot {
	case 0:
		i.tag = value.U64
	case 1:
		i.balance = value.U128
	}
}

func (i *item) Pack(enc *serializer.Encoder) {
	enc.PackUint64(i.id)
	enc.PackUint64(i.tag)
	enc.PackUint128(i.balance)
	enc.PackString(i.memo)
}

func (i *item) Size() int {
	return 8 + 8 + 16 + serializer.LengthSize(len(i.memo)) + len(i.memo)
}

func unpackItem(data []byte) (*item, error) {
	dec := serializer.NewDecoder(data)
	i := &item{}
	var err error
	if i.id, err = dec.UnpackUint64(); nil != err {
		return nil, err
	}
	if i.tag, err = dec.UnpackUint64(); nil != err {
		return nil, err
	}
	if i.balance, err = dec.UnpackUint128(); nil != err {
		return nil, err
	}
	if i.memo, err = dec.UnpackString(); nil != err {
		return nil, err
	}
	return i, nil
}

var itemIndexes = []multiindex.SecondaryType{multiindex.Idx64, multiindex.Idx128}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	_ = fault.Initialise()
}

func teardownTestLogger() {
	fault.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) *storage.Database {
	setupTestLogger()

	db, err := storage.OpenMemory()
	require.Nil(t, err, "open memory database")
	return db
}

// post test cleanup
func teardown(db *storage.Database) {
	_ = db.Close()
	teardownTestLogger()
}

// run fn with the item table of a new invocation
func invoke(t *testing.T, db *storage.Database, fn func(*multiindex.MultiIndex[*item])) error {
	return db.Invoke(testCode.Value(), func(host storage.Host) error {
		table, err := multiindex.New(host, testCode, testScope, testTable, itemIndexes, unpackItem)
		require.Nil(t, err, "new table")
		fn(table)
		return nil
	})
}

// check the table and the whole database
func requireConsistent(t *testing.T, db *storage.Database) {
	err := db.View(func(host storage.Host) error {
		table, err := multiindex.New(host, testCode, testScope, testTable, itemIndexes, unpackItem)
		if nil != err {
			return err
		}
		return table.CheckConsistency()
	})
	require.Nil(t, err, "table consistency")
	require.Nil(t, db.Verify(), "database verify")
}

func requireAbort(t *testing.T, err error) {
	require.NotNil(t, err, "expected an abort")
	require.True(t, fault.IsErrAbort(err), "expected an abort, got: %s", err)
}
