// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serializer

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/util"
)

// Packer - anything that can write itself to an encoder
type Packer interface {
	Pack(*Encoder)
	Size() int
}

// Encoder - accumulates a packed record
type Encoder struct {
	buffer []byte
}

// NewEncoder - create an encoder with an initial capacity hint
func NewEncoder(size int) *Encoder {
	if size < 0 {
		size = 0
	}
	return &Encoder{
		buffer: make([]byte, 0, size),
	}
}

// Pack - pack a complete value
func Pack(p Packer) []byte {
	enc := NewEncoder(p.Size())
	p.Pack(enc)
	return enc.Bytes()
}

// Bytes - the packed data
func (enc *Encoder) Bytes() []byte {
	return enc.buffer
}

// Len - number of bytes packed so far
func (enc *Encoder) Len() int {
	return len(enc.buffer)
}

func (enc *Encoder) PackBool(b bool) {
	if b {
		enc.buffer = append(enc.buffer, 1)
	} else {
		enc.buffer = append(enc.buffer, 0)
	}
}

func (enc *Encoder) PackUint8(n uint8) {
	enc.buffer = append(enc.buffer, n)
}

func (enc *Encoder) PackUint16(n uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], n)
	enc.buffer = append(enc.buffer, b[:]...)
}

func (enc *Encoder) PackUint32(n uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], n)
	enc.buffer = append(enc.buffer, b[:]...)
}

func (enc *Encoder) PackUint64(n uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], n)
	enc.buffer = append(enc.buffer, b[:]...)
}

func (enc *Encoder) PackInt32(n int32) {
	enc.PackUint32(uint32(n))
}

func (enc *Encoder) PackInt64(n int64) {
	enc.PackUint64(uint64(n))
}

func (enc *Encoder) PackFloat64(f float64) {
	enc.PackUint64(math.Float64bits(f))
}

func (enc *Encoder) PackUint128(n numeric.Uint128) {
	enc.PackUint64(n.Lo)
	enc.PackUint64(n.Hi)
}

func (enc *Encoder) PackUint256(n numeric.Uint256) {
	enc.PackUint128(n[1])
	enc.PackUint128(n[0])
}

func (enc *Encoder) PackName(n name.Name) {
	enc.PackUint64(n.Value())
}

// PackLength - varint length prefix
func (enc *Encoder) PackLength(n int) {
	enc.buffer = util.AppendVarint64(enc.buffer, uint64(n))
}

func (enc *Encoder) PackBytes(b []byte) {
	enc.PackLength(len(b))
	enc.buffer = append(enc.buffer, b...)
}

func (enc *Encoder) PackString(s string) {
	enc.PackLength(len(s))
	enc.buffer = append(enc.buffer, s...)
}

// LengthSize - bytes needed by a length prefix
func LengthSize(n int) int {
	return len(util.ToVarint64(uint64(n)))
}
