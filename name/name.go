// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package name - 64 bit account, scope and table names
//
// A name is up to 13 characters packed five bits each into a uint64:
// the first 12 characters from the set ".12345a-z" and an optional
// 13th character restricted to the first 16 symbols ".12345a-j".
package name

import (
	"strings"

	"github.com/bitmark-inc/multiindex/fault"
)

// MaximumLength - number of characters in the longest name
const MaximumLength = 13

const charmap = ".12345abcdefghijklmnopqrstuvwxyz"

// Name - packed name value
type Name uint64

// New - convert text to a name
func New(s string) (Name, error) {
	if len(s) > MaximumLength {
		return 0, fault.ErrInvalidNameLength
	}

	value := uint64(0)
	for i := 0; i < len(s); i += 1 {
		symbol, ok := charToSymbol(s[i])
		if !ok {
			return 0, fault.ErrInvalidName
		}
		if i < 12 {
			value |= (symbol & 0x1f) << (64 - 5*(uint(i)+1))
		} else {
			if symbol > 0x0f {
				return 0, fault.ErrInvalidName
			}
			value |= symbol & 0x0f
		}
	}
	return Name(value), nil
}

// MustNew - convert text known to be valid, panics otherwise
func MustNew(s string) Name {
	n, err := New(s)
	if nil != err {
		panic("name: " + s + ": " + err.Error())
	}
	return n
}

// FromUint64 - wrap a raw value
func FromUint64(value uint64) Name {
	return Name(value)
}

// Value - raw 64 bit value
func (n Name) Value() uint64 {
	return uint64(n)
}

// String - text form with trailing dots removed
func (n Name) String() string {
	buffer := make([]byte, MaximumLength)
	tmp := uint64(n)
	for i := 0; i < MaximumLength; i += 1 {
		if 0 == i {
			buffer[12] = charmap[tmp&0x0f]
			tmp >>= 4
		} else {
			buffer[12-i] = charmap[tmp&0x1f]
			tmp >>= 5
		}
	}
	return strings.TrimRight(string(buffer), ".")
}

// MarshalText - for JSON output
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText - for JSON input
func (n *Name) UnmarshalText(s []byte) error {
	v, err := New(string(s))
	if nil != err {
		return err
	}
	*n = v
	return nil
}

func charToSymbol(c byte) (uint64, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 6, true
	case c >= '1' && c <= '5':
		return uint64(c-'1') + 1, true
	case '.' == c:
		return 0, true
	}
	return 0, false
}
