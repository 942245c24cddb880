// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/multiindex/numeric"
)

// Host - key-value intrinsics available to one contract invocation
//
// every method aborts the invocation (panics with fault.AbortError)
// on misuse: a stale or end handle, a duplicate primary key, a write
// to a table whose code is not the receiver or a write in a view
type Host interface {
	// Receiver - the account the invocation runs as, the only code it may write
	Receiver() uint64

	StoreI64(scope uint64, table uint64, payer uint64, id uint64, data []byte) int32
	UpdateI64(it int32, payer uint64, data []byte)
	RemoveI64(it int32)
	GetI64(it int32) []byte
	NextI64(it int32) (int32, uint64)
	PreviousI64(it int32) (int32, uint64)
	FindI64(code uint64, scope uint64, table uint64, id uint64) int32
	LowerBoundI64(code uint64, scope uint64, table uint64, id uint64) int32
	UpperBoundI64(code uint64, scope uint64, table uint64, id uint64) int32
	EndI64(code uint64, scope uint64, table uint64) int32

	Idx64() SecondaryIndex[uint64]
	Idx128() SecondaryIndex[numeric.Uint128]
	Idx256() SecondaryIndex[numeric.Uint256]

	// Usage - bytes currently charged to a payer
	Usage(payer uint64) int64
}

// SecondaryIndex - intrinsics of the secondary index tables of one key width
//
// a table holds at most one entry per primary key, entries are
// ordered by key then by primary key
type SecondaryIndex[K any] interface {
	Store(scope uint64, table uint64, payer uint64, id uint64, key K) int32
	Update(it int32, payer uint64, key K)
	Remove(it int32)
	Next(it int32) (int32, uint64)
	Previous(it int32) (int32, uint64)
	FindPrimary(code uint64, scope uint64, table uint64, id uint64) (int32, K)
	Find(code uint64, scope uint64, table uint64, key K) (int32, uint64)
	LowerBound(code uint64, scope uint64, table uint64, key K) (int32, K, uint64)
	UpperBound(code uint64, scope uint64, table uint64, key K) (int32, K, uint64)
	End(code uint64, scope uint64, table uint64) int32
}
