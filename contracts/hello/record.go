// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hello

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/multiindex/multiindex"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/serializer"
)

// index slots of MyData
const (
	TagIndex     = 0
	BalanceIndex = 1
	DigestIndex  = 2
)

// Indexes - the secondary index types of MyData in slot order
var Indexes = []multiindex.SecondaryType{
	multiindex.Idx64,
	multiindex.Idx128,
	multiindex.Idx256,
}

// MyData - one record of the contract
type MyData struct {
	A1      uint64          `json:"id"`
	A2      uint64          `json:"tag"`
	Balance numeric.Uint128 `json:"balance"`
	Digest  numeric.Uint256 `json:"digest"`
	Memo    string          `json:"memo"`
}

// MemoDigest - the index key of a memo
func MemoDigest(memo string) numeric.Uint256 {
	return numeric.Uint256FromDigest(sha3.Sum256([]byte(memo)))
}

// GetPrimary - the record id
func (d *MyData) GetPrimary() uint64 {
	return d.A1
}

// GetSecondaryValue - the value of an index slot
func (d *MyData) GetSecondaryValue(slot int) multiindex.SecondaryValue {
	switch slot {
	case TagIndex:
		return multiindex.NewIdx64Value(d.A2)
	case BalanceIndex:
		return multiindex.NewIdx128Value(d.Balance)
	case DigestIndex:
		return multiindex.NewIdx256Value(d.Digest)
	default:
		return multiindex.SecondaryValue{}
	}
}

// SetSecondaryValue - change the field of an index slot
func (d *MyData) SetSecondaryValue(slot int, value multiindex.SecondaryValue) {
	switch slot {
	case TagIndex:
		d.A2 = value.U64
	case BalanceIndex:
		d.Balance = value.U128
	case DigestIndex:
		d.Digest = value.U256
	}
}

// Pack - binary form
func (d *MyData) Pack(enc *serializer.Encoder) {
	enc.PackUint64(d.A1)
	enc.PackUint64(d.A2)
	enc.PackUint128(d.Balance)
	enc.PackUint256(d.Digest)
	enc.PackString(d.Memo)
}

// Size - length of the binary form
func (d *MyData) Size() int {
	return 8 + 8 + numeric.Uint128Length + numeric.Uint256Length + serializer.LengthSize(len(d.Memo)) + len(d.Memo)
}

// UnpackMyData - decode the binary form
func UnpackMyData(data []byte) (*MyData, error) {
	dec := serializer.NewDecoder(data)
	d := &MyData{}

	var err error
	if d.A1, err = dec.UnpackUint64(); nil != err {
		return nil, err
	}
	if d.A2, err = dec.UnpackUint64(); nil != err {
		return nil, err
	}
	if d.Balance, err = dec.UnpackUint128(); nil != err {
		return nil, err
	}
	if d.Digest, err = dec.UnpackUint256(); nil != err {
		return nil, err
	}
	if d.Memo, err = dec.UnpackString(); nil != err {
		return nil, err
	}
	return d, nil
}
