// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package numeric_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/numeric"
)

func TestUint128Compare(t *testing.T) {
	items := []struct {
		a        numeric.Uint128
		b        numeric.Uint128
		expected int
	}{
		{numeric.Uint128{}, numeric.Uint128{}, 0},
		{numeric.NewUint128(1), numeric.NewUint128(2), -1},
		{numeric.NewUint128(2), numeric.NewUint128(1), 1},
		{numeric.Uint128{Hi: 1}, numeric.NewUint128(0xffffffffffffffff), 1},
		{numeric.Uint128{Hi: 1, Lo: 5}, numeric.Uint128{Hi: 1, Lo: 5}, 0},
		{numeric.Uint128{Hi: 0, Lo: 9}, numeric.Uint128{Hi: 2, Lo: 0}, -1},
	}

	for i, item := range items {
		assert.Equal(t, item.expected, item.a.Compare(item.b), "%d: compare", i)

		// byte order must agree with numeric order
		assert.Equal(t, item.expected, bytes.Compare(item.a.BigEndian(), item.b.BigEndian()), "%d: bytes", i)
	}
}

func TestUint128Arithmetic(t *testing.T) {
	max64 := numeric.NewUint128(0xffffffffffffffff)
	sum := max64.Add(numeric.NewUint128(1))
	assert.Equal(t, numeric.Uint128{Hi: 1, Lo: 0}, sum, "carry")
	assert.Equal(t, max64, sum.Sub(numeric.NewUint128(1)), "borrow")
	assert.Equal(t, "18446744073709551616", sum.String(), "text")
	assert.True(t, numeric.Uint128{}.IsZero())
}

func TestUint128Bytes(t *testing.T) {
	u := numeric.Uint128{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10}
	buffer := u.BigEndian()
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, buffer)

	v, err := numeric.Uint128FromBigEndian(buffer)
	assert.Nil(t, err)
	assert.Equal(t, u, v)

	_, err = numeric.Uint128FromBigEndian(buffer[:15])
	assert.Equal(t, fault.ErrRecordTruncated, err)
}

func TestUint128Big(t *testing.T) {
	b, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	u, err := numeric.Uint128FromBig(b)
	assert.Nil(t, err)
	assert.Equal(t, numeric.Uint128{Hi: 0xffffffffffffffff, Lo: 0xffffffffffffffff}, u)
	assert.Equal(t, 0, b.Cmp(u.Big()))

	_, err = numeric.Uint128FromBig(new(big.Int).Add(b, big.NewInt(1)))
	assert.Equal(t, fault.ErrInvalidCount, err)

	_, err = numeric.Uint128FromBig(big.NewInt(-1))
	assert.Equal(t, fault.ErrInvalidCount, err)
}

func TestUint256Compare(t *testing.T) {
	small := numeric.NewUint256(100)
	large := numeric.Uint256{numeric.NewUint128(1), numeric.Uint128{}}

	assert.Equal(t, -1, small.Compare(large))
	assert.Equal(t, 1, large.Compare(small))
	assert.Equal(t, 0, large.Compare(large))
	assert.Equal(t, -1, bytes.Compare(small.BigEndian(), large.BigEndian()))
	assert.False(t, large.IsZero())
	assert.True(t, numeric.Uint256{}.IsZero())
}

func TestUint256Digest(t *testing.T) {
	digest := [32]byte{}
	digest[0] = 0x80
	digest[31] = 0x01
	u := numeric.Uint256FromDigest(digest)

	assert.Equal(t, uint64(0x8000000000000000), u[0].Hi)
	assert.Equal(t, uint64(1), u[1].Lo)
	assert.Equal(t, "8000000000000000000000000000000000000000000000000000000000000001", u.Hex())

	v, err := numeric.Uint256FromBig(u.Big())
	assert.Nil(t, err)
	assert.Equal(t, u, v)
}

func TestJSON(t *testing.T) {
	item := struct {
		Balance numeric.Uint128 `json:"balance"`
		Digest  numeric.Uint256 `json:"digest"`
	}{
		Balance: numeric.Uint128{Hi: 1, Lo: 2},
		Digest:  numeric.NewUint256(255),
	}

	buffer, err := json.Marshal(item)
	assert.Nil(t, err)
	assert.Equal(t, `{"balance":"18446744073709551618","digest":"00000000000000000000000000000000000000000000000000000000000000ff"}`, string(buffer))

	item.Balance = numeric.Uint128{}
	item.Digest = numeric.Uint256{}
	err = json.Unmarshal(buffer, &item)
	assert.Nil(t, err)
	assert.Equal(t, numeric.Uint128{Hi: 1, Lo: 2}, item.Balance)
	assert.Equal(t, numeric.NewUint256(255), item.Digest)

	_, err = numeric.ParseUint128("-1")
	assert.Equal(t, fault.ErrInvalidCount, err)
	_, err = numeric.ParseUint128("abc")
	assert.Equal(t, fault.ErrInvalidCount, err)
}
