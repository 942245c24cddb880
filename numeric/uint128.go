// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package numeric

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"math/bits"

	"github.com/bitmark-inc/multiindex/fault"
)

// Uint128Length - number of bytes in the binary form
const Uint128Length = 16

// Uint128 - unsigned 128 bit integer
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// NewUint128 - widen a 64 bit value
func NewUint128(value uint64) Uint128 {
	return Uint128{Lo: value}
}

// Compare - -1, 0, +1 as u is less than, equal to or greater than v
func (u Uint128) Compare(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// IsZero - true if value is zero
func (u Uint128) IsZero() bool {
	return 0 == u.Hi && 0 == u.Lo
}

// Add - sum modulo 2^128
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Lo: lo, Hi: hi}
}

// Sub - difference modulo 2^128
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Lo: lo, Hi: hi}
}

// BigEndian - key form
func (u Uint128) BigEndian() []byte {
	buffer := make([]byte, Uint128Length)
	binary.BigEndian.PutUint64(buffer[:8], u.Hi)
	binary.BigEndian.PutUint64(buffer[8:], u.Lo)
	return buffer
}

// Uint128FromBigEndian - decode key form
func Uint128FromBigEndian(buffer []byte) (Uint128, error) {
	if len(buffer) < Uint128Length {
		return Uint128{}, fault.ErrRecordTruncated
	}
	return Uint128{
		Hi: binary.BigEndian.Uint64(buffer[:8]),
		Lo: binary.BigEndian.Uint64(buffer[8:16]),
	}, nil
}

// Big - convert to big integer
func (u Uint128) Big() *big.Int {
	return new(big.Int).SetBytes(u.BigEndian())
}

// Uint128FromBig - convert a non-negative big integer that fits in 128 bits
func Uint128FromBig(value *big.Int) (Uint128, error) {
	if value.Sign() < 0 || value.BitLen() > 128 {
		return Uint128{}, fault.ErrInvalidCount
	}
	buffer := make([]byte, Uint128Length)
	value.FillBytes(buffer)
	return Uint128FromBigEndian(buffer)
}

// String - decimal text
func (u Uint128) String() string {
	if 0 == u.Hi {
		return big.NewInt(0).SetUint64(u.Lo).String()
	}
	return u.Big().String()
}

// Float128 - opaque quad precision value in little endian byte order
type Float128 [16]byte

// String - hex text
func (f Float128) String() string {
	return hex.EncodeToString(f[:])
}

// ParseUint128 - convert decimal text
func ParseUint128(s string) (Uint128, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, fault.ErrInvalidCount
	}
	return Uint128FromBig(value)
}

// MarshalText - convert to decimal text for JSON
func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText - convert from decimal text
func (u *Uint128) UnmarshalText(s []byte) error {
	value, err := ParseUint128(string(s))
	if nil != err {
		return err
	}
	*u = value
	return nil
}
