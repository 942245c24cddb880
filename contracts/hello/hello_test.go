// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hello_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/multiindex/contracts/hello"
	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/serializer"
	"github.com/bitmark-inc/multiindex/storage"
)

const (
	testingDirName = "testing"
)

var (
	self  = name.MustNew("hello")
	payer = name.MustNew("alice")
	scope = name.MustNew("test")
)

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

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func setup(t *testing.T) *storage.Database {
	setupTestLogger()
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open memory database")
	return db
}

func teardown(db *storage.Database) {
	_ = db.Close()
	fault.Finalise()
	removeFiles()
}

func run(t *testing.T, db *storage.Database, fn func(*hello.Contract) error) error {
	return db.Invoke(self.Value(), func(host storage.Host) error {
		contract, err := hello.New(host, scope)
		require.Nil(t, err, "new contract")
		return fn(contract)
	})
}

func ids(records []*hello.MyData) []uint64 {
	result := make([]uint64, 0, len(records))
	for _, r := range records {
		result = append(result, r.A1)
	}
	return result
}

func insertSamples(t *testing.T, db *storage.Database) {
	err := run(t, db, func(c *hello.Contract) error {
		samples := []struct {
			id      uint64
			tag     uint64
			balance uint64
			memo    string
		}{
			{1, 100, 30, "one"},
			{2, 50, 10, "two"},
			{3, 100, 20, "three"},
			{4, 75, 40, "two"},
		}
		for _, s := range samples {
			if err := c.Insert(payer, s.id, s.tag, numeric.NewUint128(s.balance), s.memo); nil != err {
				return err
			}
		}
		return nil
	})
	require.Nil(t, err, "insert samples")
}

func TestRecordPack(t *testing.T) {
	record := &hello.MyData{
		A1:      1,
		A2:      2,
		Balance: numeric.Uint128{Lo: 3, Hi: 4},
		Digest:  hello.MemoDigest("memo"),
		Memo:    "memo",
	}
	packed := serializer.Pack(record)
	assert.Equal(t, record.Size(), len(packed), "wrong size")

	unpacked, err := hello.UnpackMyData(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, record, unpacked, "round trip")

	_, err = hello.UnpackMyData(packed[:20])
	assert.Equal(t, fault.ErrRecordTruncated, err, "truncated record")
}

func TestInsertAndList(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	insertSamples(t, db)

	err := run(t, db, func(c *hello.Contract) error {
		assert.Equal(t, []uint64{1, 2, 3, 4}, ids(c.List()), "wrong list")
		assert.Equal(t, []uint64{1, 3}, ids(c.ListByTag(100)), "wrong tag list")
		assert.Equal(t, []uint64{3, 1, 4}, ids(c.ListByBalance(numeric.NewUint128(15))), "wrong balance list")
		assert.Equal(t, []uint64{2, 4}, ids(c.FindByMemo("two")), "wrong memo list")
		assert.Equal(t, 0, len(c.FindByMemo("none")), "unknown memo")

		err := c.Insert(payer, 1, 0, numeric.Uint128{}, "again")
		assert.Equal(t, fault.ErrDuplicatePrimaryKey, err, "duplicate insert")
		return c.Check()
	})
	assert.Nil(t, err, "run")
}

func TestTagAndRetag(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	insertSamples(t, db)

	err := run(t, db, func(c *hello.Contract) error {
		if err := c.Tag(payer, 2, 100); nil != err {
			return err
		}
		assert.Equal(t, []uint64{1, 2, 3}, ids(c.ListByTag(100)), "wrong tag list after tag")

		n := c.Retag(payer, 100, 7)
		assert.Equal(t, 3, n, "wrong retag count")
		assert.Equal(t, 0, len(c.ListByTag(100)), "old tag still present")
		assert.Equal(t, []uint64{1, 2, 3}, ids(c.ListByTag(7)), "wrong new tag list")

		record, ok := c.Get(3)
		assert.True(t, ok, "get")
		assert.Equal(t, uint64(7), record.A2, "record not retagged")

		assert.Equal(t, fault.ErrRecordNotFound, c.Tag(payer, 99, 1), "tag of missing record")
		return c.Check()
	})
	assert.Nil(t, err, "run")
	assert.Nil(t, db.Verify(), "verify")
}

func TestDepositAndErase(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	insertSamples(t, db)

	err := run(t, db, func(c *hello.Contract) error {
		if err := c.Deposit(payer, 2, numeric.NewUint128(100)); nil != err {
			return err
		}
		record, _ := c.Get(2)
		assert.Equal(t, numeric.NewUint128(110), record.Balance, "wrong balance")
		assert.Equal(t, []uint64{2}, ids(c.ListByBalance(numeric.NewUint128(50))), "wrong balance list")

		overflow := numeric.Uint128{Lo: 0xffffffffffffffff, Hi: 0xffffffffffffffff}
		assert.Equal(t, fault.ErrInvalidCount, c.Deposit(payer, 2, overflow), "overflow")

		for _, id := range []uint64{1, 2, 3, 4} {
			if err := c.Erase(id); nil != err {
				return err
			}
		}
		assert.Equal(t, fault.ErrRecordNotFound, c.Erase(1), "erase of missing record")
		assert.Equal(t, 0, len(c.List()), "records left")
		return nil
	})
	assert.Nil(t, err, "run")

	usage, err := db.Usage(payer.Value())
	assert.Nil(t, err, "usage")
	assert.Equal(t, int64(0), usage, "usage should return to zero")
}

func TestFailedActionIsDiscarded(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	insertSamples(t, db)

	err := run(t, db, func(c *hello.Contract) error {
		if err := c.Erase(1); nil != err {
			return err
		}
		return c.Erase(1)
	})
	assert.Equal(t, fault.ErrRecordNotFound, err, "second erase")

	err = run(t, db, func(c *hello.Contract) error {
		_, ok := c.Get(1)
		assert.True(t, ok, "erase of failed invocation was committed")
		return nil
	})
	assert.Nil(t, err, "run")
}
