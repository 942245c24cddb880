// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiindex

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/multiindex/numeric"
)

// SecondaryType - width class of a secondary index
type SecondaryType int

// secondary index types, the float types are reserved
const (
	Idx64 SecondaryType = iota
	Idx128
	Idx256
	IdxFloat64
	IdxFloat128
)

func (t SecondaryType) String() string {
	switch t {
	case Idx64:
		return "idx64"
	case Idx128:
		return "idx128"
	case Idx256:
		return "idx256"
	case IdxFloat64:
		return "idx_double"
	case IdxFloat128:
		return "idx_long_double"
	default:
		return "unknown(" + strconv.Itoa(int(t)) + ")"
	}
}

// SecondaryValue - a secondary key tagged with its type
//
// only the field selected by Type is meaningful
type SecondaryValue struct {
	Type SecondaryType
	U64  uint64
	U128 numeric.Uint128
	U256 numeric.Uint256
	F64  float64
	F128 numeric.Float128
}

// NewIdx64Value - a 64 bit secondary value
func NewIdx64Value(value uint64) SecondaryValue {
	return SecondaryValue{Type: Idx64, U64: value}
}

// NewIdx128Value - a 128 bit secondary value
func NewIdx128Value(value numeric.Uint128) SecondaryValue {
	return SecondaryValue{Type: Idx128, U128: value}
}

// NewIdx256Value - a 256 bit secondary value
func NewIdx256Value(value numeric.Uint256) SecondaryValue {
	return SecondaryValue{Type: Idx256, U256: value}
}

// Compare - -1, 0, +1 in the order kept by the index
//
// values of different types are ordered by type
func (v SecondaryValue) Compare(w SecondaryValue) int {
	if v.Type != w.Type {
		if v.Type < w.Type {
			return -1
		}
		return 1
	}
	switch v.Type {
	case Idx64:
		switch {
		case v.U64 < w.U64:
			return -1
		case v.U64 > w.U64:
			return 1
		}
		return 0
	case Idx128:
		return v.U128.Compare(w.U128)
	case Idx256:
		return v.U256.Compare(w.U256)
	case IdxFloat64:
		switch {
		case v.F64 < w.F64:
			return -1
		case v.F64 > w.F64:
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (v SecondaryValue) String() string {
	switch v.Type {
	case Idx64:
		return strconv.FormatUint(v.U64, 10)
	case Idx128:
		return v.U128.String()
	case Idx256:
		return v.U256.Hex()
	case IdxFloat64:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case IdxFloat128:
		return v.F128.String()
	default:
		return fmt.Sprintf("%s:?", v.Type)
	}
}
