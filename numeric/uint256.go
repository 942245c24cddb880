// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package numeric

import (
	"encoding/hex"
	"math/big"

	"github.com/bitmark-inc/multiindex/fault"
)

// Uint256Length - number of bytes in the binary form
const Uint256Length = 32

// Uint256 - unsigned 256 bit integer as two 128 bit halves
//
// index 0 holds the most significant half
type Uint256 [2]Uint128

// NewUint256 - widen a 64 bit value
func NewUint256(value uint64) Uint256 {
	return Uint256{Uint128{}, NewUint128(value)}
}

// Uint256FromDigest - interpret a 32 byte digest as a big endian number
func Uint256FromDigest(digest [32]byte) Uint256 {
	u, _ := Uint256FromBigEndian(digest[:])
	return u
}

// Compare - -1, 0, +1 as u is less than, equal to or greater than v
func (u Uint256) Compare(v Uint256) int {
	if c := u[0].Compare(v[0]); 0 != c {
		return c
	}
	return u[1].Compare(v[1])
}

// IsZero - true if value is zero
func (u Uint256) IsZero() bool {
	return u[0].IsZero() && u[1].IsZero()
}

// BigEndian - key form
func (u Uint256) BigEndian() []byte {
	return append(u[0].BigEndian(), u[1].BigEndian()...)
}

// Uint256FromBigEndian - decode key form
func Uint256FromBigEndian(buffer []byte) (Uint256, error) {
	if len(buffer) < Uint256Length {
		return Uint256{}, fault.ErrRecordTruncated
	}
	hi, _ := Uint128FromBigEndian(buffer[:Uint128Length])
	lo, _ := Uint128FromBigEndian(buffer[Uint128Length:Uint256Length])
	return Uint256{hi, lo}, nil
}

// Big - convert to big integer
func (u Uint256) Big() *big.Int {
	return new(big.Int).SetBytes(u.BigEndian())
}

// Uint256FromBig - convert a non-negative big integer that fits in 256 bits
func Uint256FromBig(value *big.Int) (Uint256, error) {
	if value.Sign() < 0 || value.BitLen() > 256 {
		return Uint256{}, fault.ErrInvalidCount
	}
	buffer := make([]byte, Uint256Length)
	value.FillBytes(buffer)
	return Uint256FromBigEndian(buffer)
}

// Hex - fixed width hex text, as used for digests
func (u Uint256) Hex() string {
	return hex.EncodeToString(u.BigEndian())
}

// String - decimal text
func (u Uint256) String() string {
	return u.Big().String()
}

// MarshalText - convert to hex text for JSON
func (u Uint256) MarshalText() ([]byte, error) {
	return []byte(u.Hex()), nil
}

// UnmarshalText - convert from hex text
func (u *Uint256) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if Uint256Length != n {
		return fault.ErrRecordTruncated
	}
	value, err := Uint256FromBigEndian(buffer)
	if nil != err {
		return err
	}
	*u = value
	return nil
}
