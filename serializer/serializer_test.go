// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serializer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/serializer"
)

func TestFixedWidthLayout(t *testing.T) {
	enc := serializer.NewEncoder(0)
	enc.PackBool(true)
	enc.PackUint8(0x12)
	enc.PackUint16(0x3456)
	enc.PackUint32(0x789abcde)
	enc.PackUint64(0x0102030405060708)

	expected := []byte{
		0x01,
		0x12,
		0x56, 0x34,
		0xde, 0xbc, 0x9a, 0x78,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	assert.Equal(t, expected, enc.Bytes())
	assert.Equal(t, len(expected), enc.Len())
}

func TestWideIntegerLayout(t *testing.T) {
	enc := serializer.NewEncoder(48)
	enc.PackUint128(numeric.Uint128{Hi: 2, Lo: 1})
	enc.PackUint256(numeric.Uint256{numeric.NewUint128(4), numeric.NewUint128(3)})

	b := enc.Bytes()
	assert.Equal(t, 48, len(b))
	assert.Equal(t, byte(1), b[0], "Uint128 low half first")
	assert.Equal(t, byte(2), b[8], "Uint128 high half second")
	assert.Equal(t, byte(3), b[16], "Uint256 low half first")
	assert.Equal(t, byte(4), b[32], "Uint256 high half second")

	dec := serializer.NewDecoder(b)
	u128, err := dec.UnpackUint128()
	assert.Nil(t, err)
	assert.Equal(t, numeric.Uint128{Hi: 2, Lo: 1}, u128)

	u256, err := dec.UnpackUint256()
	assert.Nil(t, err)
	assert.Equal(t, numeric.Uint256{numeric.NewUint128(4), numeric.NewUint128(3)}, u256)
	assert.Equal(t, 0, dec.Remaining())
}

func TestVariableLength(t *testing.T) {
	long := strings.Repeat("x", 200)

	enc := serializer.NewEncoder(0)
	enc.PackString("hi")
	enc.PackBytes([]byte{})
	enc.PackString(long)
	enc.PackName(name.MustNew("alice"))

	b := enc.Bytes()
	assert.Equal(t, []byte{0x02, 'h', 'i', 0x00, 0xc8, 0x01}, b[:6])
	assert.Equal(t, 2, serializer.LengthSize(200))

	dec := serializer.NewDecoder(b)
	s, err := dec.UnpackString()
	assert.Nil(t, err)
	assert.Equal(t, "hi", s)

	e, err := dec.UnpackBytes()
	assert.Nil(t, err)
	assert.Equal(t, []byte{}, e)

	s, err = dec.UnpackString()
	assert.Nil(t, err)
	assert.Equal(t, long, s)

	n, err := dec.UnpackName()
	assert.Nil(t, err)
	assert.Equal(t, "alice", n.String())
	assert.Equal(t, 0, dec.Remaining())
	assert.Equal(t, len(b), dec.Position())
}

func TestTruncated(t *testing.T) {
	dec := serializer.NewDecoder([]byte{0x01, 0x02, 0x03})
	_, err := dec.UnpackUint64()
	assert.Equal(t, fault.ErrRecordTruncated, err)

	// length prefix claims more data than present
	dec = serializer.NewDecoder([]byte{0x05, 'a', 'b'})
	_, err = dec.UnpackString()
	assert.Equal(t, fault.ErrRecordTruncated, err)

	dec = serializer.NewDecoder([]byte{})
	_, err = dec.UnpackBytes()
	assert.Equal(t, fault.ErrRecordTruncated, err)
}

func TestInvalidBool(t *testing.T) {
	dec := serializer.NewDecoder([]byte{0x02})
	_, err := dec.UnpackBool()
	assert.Equal(t, fault.ErrCannotDecodeRecord, err)
}

type pair struct {
	a uint64
	b string
}

func (p pair) Pack(enc *serializer.Encoder) {
	enc.PackUint64(p.a)
	enc.PackString(p.b)
}

func (p pair) Size() int {
	return 8 + serializer.LengthSize(len(p.b)) + len(p.b)
}

func TestPackHelper(t *testing.T) {
	p := pair{a: 7, b: "seven"}
	b := serializer.Pack(p)
	assert.Equal(t, p.Size(), len(b))
	assert.Equal(t, p.Size(), cap(b))
}
