// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/storage"
)

// primary -> tag
var tags = []struct {
	primary uint64
	tag     uint64
}{
	{primary: 1, tag: 100},
	{primary: 2, tag: 50},
	{primary: 3, tag: 100},
	{primary: 4, tag: 75},
}

func storeTags(t *testing.T, db *storage.Database) {
	err := db.Invoke(codeAlice, func(host storage.Host) error {
		for _, item := range tags {
			host.Idx64().Store(scopeTest, tableTags, codeAlice, item.primary, item.tag)
		}
		return nil
	})
	assert.Nil(t, err, "store tags")
}

func TestSecondaryOrder(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	storeTags(t, db)

	err := db.View(func(host storage.Host) error {
		idx := host.Idx64()

		it, key, primary := idx.LowerBound(codeAlice, scopeTest, tableTags, 0)
		assert.Equal(t, uint64(50), key, "wrong first key")
		primaries := []uint64{primary}
		for {
			it, primary = idx.Next(it)
			if it < 0 {
				break
			}
			primaries = append(primaries, primary)
		}
		// equal keys are ordered by primary
		assert.Equal(t, []uint64{2, 4, 1, 3}, primaries, "wrong order")
		assert.Equal(t, idx.End(codeAlice, scopeTest, tableTags), it, "should stop at end")

		last, primary := idx.Previous(it)
		assert.Equal(t, uint64(3), primary, "wrong last primary")
		_, primary = idx.Previous(last)
		assert.Equal(t, uint64(1), primary, "wrong previous primary")
		return nil
	})
	assert.Nil(t, err, "view")
}

func TestSecondaryLookup(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	storeTags(t, db)

	err := db.View(func(host storage.Host) error {
		idx := host.Idx64()

		it, primary := idx.Find(codeAlice, scopeTest, tableTags, 100)
		assert.GreaterOrEqual(t, it, int32(0), "find should succeed")
		assert.Equal(t, uint64(1), primary, "find gives lowest primary")

		missing, _ := idx.Find(codeAlice, scopeTest, tableTags, 60)
		assert.Equal(t, idx.End(codeAlice, scopeTest, tableTags), missing, "missing key should give end")

		byPrimary, key := idx.FindPrimary(codeAlice, scopeTest, tableTags, 4)
		assert.Equal(t, uint64(75), key, "wrong key of primary")
		assert.GreaterOrEqual(t, byPrimary, int32(0), "find primary should succeed")

		_, key, primary = idx.LowerBound(codeAlice, scopeTest, tableTags, 76)
		assert.Equal(t, uint64(100), key, "wrong lower bound key")
		assert.Equal(t, uint64(1), primary, "wrong lower bound primary")

		_, key, primary = idx.UpperBound(codeAlice, scopeTest, tableTags, 75)
		assert.Equal(t, uint64(100), key, "wrong upper bound key")
		assert.Equal(t, uint64(1), primary, "wrong upper bound primary")

		end, _, _ := idx.UpperBound(codeAlice, scopeTest, tableTags, 100)
		assert.Equal(t, idx.End(codeAlice, scopeTest, tableTags), end, "upper bound of largest key should be end")

		absent, _ := idx.FindPrimary(codeAlice, scopeTest, tableData, 4)
		assert.Equal(t, int32(-1), absent, "missing table should give -1")
		return nil
	})
	assert.Nil(t, err, "view")
}

func TestSecondaryUpdateAndRemove(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	storeTags(t, db)

	err := db.Invoke(codeAlice, func(host storage.Host) error {
		idx := host.Idx64()

		it, _ := idx.FindPrimary(codeAlice, scopeTest, tableTags, 2)
		idx.Update(it, 0, 200)

		it, _ = idx.FindPrimary(codeAlice, scopeTest, tableTags, 3)
		idx.Remove(it)
		return nil
	})
	assert.Nil(t, err, "invoke")

	entries, err := db.IndexEntries(storage.Index64, codeAlice, scopeTest, tableTags)
	assert.Nil(t, err, "index entries")
	assert.Equal(t, []storage.IndexEntry{
		{Key: "75", Primary: 4, Payer: codeAlice},
		{Key: "100", Primary: 1, Payer: codeAlice},
		{Key: "200", Primary: 2, Payer: codeAlice},
	}, entries, "wrong entries")
}

func TestSecondaryDuplicateAborts(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	err := db.Invoke(codeAlice, func(host storage.Host) error {
		host.Idx64().Store(scopeTest, tableTags, codeAlice, 1, 10)
		host.Idx64().Store(scopeTest, tableTags, codeAlice, 1, 20)
		return nil
	})
	assert.Equal(t, fault.ErrDuplicateSecondaryKey.Error(), err.Error(), "wrong abort")
}

func TestWideKeys(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	small := numeric.Uint128{Lo: 0xffffffffffffffff}
	large := numeric.Uint128{Hi: 1}

	var digest [32]byte
	digest[0] = 0x80
	high := numeric.Uint256FromDigest(digest)

	err := db.Invoke(codeAlice, func(host storage.Host) error {
		host.Idx128().Store(scopeTest, tableTags, codeAlice, 1, large)
		host.Idx128().Store(scopeTest, tableTags, codeAlice, 2, small)
		host.Idx256().Store(scopeTest, tableTags, codeAlice, 1, high)
		host.Idx256().Store(scopeTest, tableTags, codeAlice, 2, numeric.NewUint256(7))
		return nil
	})
	assert.Nil(t, err, "invoke")

	err = db.View(func(host storage.Host) error {
		_, key, primary := host.Idx128().LowerBound(codeAlice, scopeTest, tableTags, numeric.Uint128{})
		assert.Equal(t, small, key, "wrong smallest 128 bit key")
		assert.Equal(t, uint64(2), primary, "wrong primary")

		_, key256, primary := host.Idx256().UpperBound(codeAlice, scopeTest, tableTags, numeric.NewUint256(7))
		assert.Equal(t, high, key256, "wrong 256 bit upper bound")
		assert.Equal(t, uint64(1), primary, "wrong primary")
		return nil
	})
	assert.Nil(t, err, "view")

	usage, err := db.Usage(codeAlice)
	assert.Nil(t, err, "usage")
	assert.Equal(t, int64(112+2*40+2*56), usage, "wrong usage")
}

func TestSecondaryNextOfEnd(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	storeTags(t, db)

	err := db.View(func(host storage.Host) error {
		idx := host.Idx64()
		end := idx.End(codeAlice, scopeTest, tableTags)
		next, _ := idx.Next(end)
		assert.Equal(t, int32(-1), next, "next of end should be -1")
		return nil
	})
	assert.Nil(t, err, "view")

	err = db.View(func(host storage.Host) error {
		host.Idx64().Previous(-1)
		return nil
	})
	assert.True(t, fault.IsErrAbort(err), "previous of -1 should abort")
}
