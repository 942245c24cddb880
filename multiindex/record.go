// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiindex

import (
	"github.com/bitmark-inc/multiindex/serializer"
)

// Record - a value stored in a MultiIndex
//
// GetSecondaryValue must return a value for every configured index
// slot, with the type the index was configured with. SetSecondaryValue
// is used by IdxUpdate, so records are normally pointer types.
type Record interface {
	serializer.Packer
	GetPrimary() uint64
	GetSecondaryValue(slot int) SecondaryValue
	SetSecondaryValue(slot int, value SecondaryValue)
}

// Unpacker - decode a stored record
type Unpacker[T Record] func([]byte) (T, error)
