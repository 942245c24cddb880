// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiindex_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multiindex/multiindex"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/storage/mocks"
)

var (
	mockCode  = testCode.Value()
	mockScope = testScope.Value()
	mockTable = testTable.Value()
	mockSlot1 = multiindex.SecondaryTableName(testTable, 1).Value()
)

func newMockedTable(t *testing.T, ctl *gomock.Controller) (*multiindex.MultiIndex[*item], *mocks.MockHost, *mocks.MockSecondaryIndex[uint64], *mocks.MockSecondaryIndex[numeric.Uint128]) {
	host := mocks.NewMockHost(ctl)
	idx64 := mocks.NewMockSecondaryIndex[uint64](ctl)
	idx128 := mocks.NewMockSecondaryIndex[numeric.Uint128](ctl)

	host.EXPECT().Idx64().Return(idx64).Times(1)
	host.EXPECT().Idx128().Return(idx128).Times(1)

	m, err := multiindex.New(host, testCode, testScope, testTable, itemIndexes, unpackItem)
	assert.Nil(t, err, "new")
	return m, host, idx64, idx128
}

func TestUpdateSkipsUnchangedIndex(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m, host, idx64, idx128 := newMockedTable(t, ctl)

	host.EXPECT().FindI64(mockCode, mockScope, mockTable, uint64(1)).Return(int32(0)).Times(1)
	idx64.EXPECT().FindPrimary(mockCode, mockScope, mockTable, uint64(1)).Return(int32(3), uint64(10)).Times(1)
	idx128.EXPECT().FindPrimary(mockCode, mockScope, mockSlot1, uint64(1)).Return(int32(4), numeric.NewUint128(5)).Times(1)
	idx64.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	idx128.EXPECT().Update(int32(4), testPayer.Value(), numeric.NewUint128(6)).Times(1)
	host.EXPECT().UpdateI64(int32(0), testPayer.Value(), gomock.Any()).Times(1)

	c := m.Find(1)
	m.Update(c, &item{id: 1, tag: 10, balance: numeric.NewUint128(6)}, testPayer)
}

func TestStoreWritesIndexesFirst(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m, host, idx64, idx128 := newMockedTable(t, ctl)

	record := &item{id: 1, tag: 10, balance: numeric.NewUint128(5)}
	gomock.InOrder(
		idx64.EXPECT().Store(mockScope, mockTable, testPayer.Value(), uint64(1), uint64(10)).Return(int32(0)),
		idx128.EXPECT().Store(mockScope, mockSlot1, testPayer.Value(), uint64(1), numeric.NewUint128(5)).Return(int32(0)),
		host.EXPECT().StoreI64(mockScope, mockTable, testPayer.Value(), uint64(1), gomock.Any()).Return(int32(0)),
	)

	c := m.Store(record, testPayer)
	assert.True(t, c.IsOK(), "store cursor")
}

func TestRemoveNotOKDoesNothing(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m, host, idx64, idx128 := newMockedTable(t, ctl)

	host.EXPECT().FindI64(mockCode, mockScope, mockTable, uint64(1)).Return(int32(-2)).Times(1)
	host.EXPECT().RemoveI64(gomock.Any()).Times(0)
	idx64.EXPECT().FindPrimary(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	idx128.EXPECT().Remove(gomock.Any()).Times(0)

	m.Remove(m.Find(1))
}

func TestRemoveIndexesFirst(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m, host, idx64, idx128 := newMockedTable(t, ctl)

	host.EXPECT().FindI64(mockCode, mockScope, mockTable, uint64(1)).Return(int32(0)).Times(1)
	gomock.InOrder(
		idx64.EXPECT().FindPrimary(mockCode, mockScope, mockTable, uint64(1)).Return(int32(1), uint64(10)),
		idx64.EXPECT().Remove(int32(1)),
		idx128.EXPECT().FindPrimary(mockCode, mockScope, mockSlot1, uint64(1)).Return(int32(2), numeric.NewUint128(5)),
		idx128.EXPECT().Remove(int32(2)),
		host.EXPECT().RemoveI64(int32(0)),
	)

	m.Remove(m.Find(1))
}
