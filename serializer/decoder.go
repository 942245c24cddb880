// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serializer

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/util"
)

// maximumLength - largest length prefix accepted
const maximumLength = math.MaxInt32

// Decoder - reads a packed record
type Decoder struct {
	buffer   []byte
	position int
}

// NewDecoder - create a decoder over a packed record
func NewDecoder(buffer []byte) *Decoder {
	return &Decoder{
		buffer: buffer,
	}
}

// Remaining - number of bytes not yet unpacked
func (dec *Decoder) Remaining() int {
	return len(dec.buffer) - dec.position
}

// Position - number of bytes already unpacked
func (dec *Decoder) Position() int {
	return dec.position
}

func (dec *Decoder) read(n int) ([]byte, error) {
	if n < 0 || dec.Remaining() < n {
		return nil, fault.ErrRecordTruncated
	}
	b := dec.buffer[dec.position : dec.position+n]
	dec.position += n
	return b, nil
}

func (dec *Decoder) UnpackBool() (bool, error) {
	b, err := dec.read(1)
	if nil != err {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrCannotDecodeRecord
	}
}

func (dec *Decoder) UnpackUint8() (uint8, error) {
	b, err := dec.read(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

func (dec *Decoder) UnpackUint16() (uint16, error) {
	b, err := dec.read(2)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (dec *Decoder) UnpackUint32() (uint32, error) {
	b, err := dec.read(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (dec *Decoder) UnpackUint64() (uint64, error) {
	b, err := dec.read(8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (dec *Decoder) UnpackInt32() (int32, error) {
	n, err := dec.UnpackUint32()
	return int32(n), err
}

func (dec *Decoder) UnpackInt64() (int64, error) {
	n, err := dec.UnpackUint64()
	return int64(n), err
}

func (dec *Decoder) UnpackFloat64() (float64, error) {
	n, err := dec.UnpackUint64()
	return math.Float64frombits(n), err
}

func (dec *Decoder) UnpackUint128() (numeric.Uint128, error) {
	lo, err := dec.UnpackUint64()
	if nil != err {
		return numeric.Uint128{}, err
	}
	hi, err := dec.UnpackUint64()
	if nil != err {
		return numeric.Uint128{}, err
	}
	return numeric.Uint128{Lo: lo, Hi: hi}, nil
}

func (dec *Decoder) UnpackUint256() (numeric.Uint256, error) {
	lo, err := dec.UnpackUint128()
	if nil != err {
		return numeric.Uint256{}, err
	}
	hi, err := dec.UnpackUint128()
	if nil != err {
		return numeric.Uint256{}, err
	}
	return numeric.Uint256{hi, lo}, nil
}

func (dec *Decoder) UnpackName() (name.Name, error) {
	n, err := dec.UnpackUint64()
	return name.FromUint64(n), err
}

// UnpackLength - varint length prefix, bounded by the remaining data
func (dec *Decoder) UnpackLength() (int, error) {
	limit := dec.Remaining()
	if limit > maximumLength {
		limit = maximumLength
	}
	n, count := util.ClippedVarint64(dec.buffer[dec.position:], 0, limit)
	if 0 == count {
		return 0, fault.ErrRecordTruncated
	}
	dec.position += count
	return n, nil
}

// UnpackBytes - a copy of a length prefixed byte string
func (dec *Decoder) UnpackBytes() ([]byte, error) {
	n, err := dec.UnpackLength()
	if nil != err {
		return nil, err
	}
	b, err := dec.read(n)
	if nil != err {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

func (dec *Decoder) UnpackString() (string, error) {
	n, err := dec.UnpackLength()
	if nil != err {
		return "", err
	}
	b, err := dec.read(n)
	if nil != err {
		return "", err
	}
	return string(b), nil
}
