// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/multiindex/fault"
)

// bytes charged in addition to the data of each row
const (
	tableOverhead   int64 = 112
	primaryOverhead int64 = 112
	idx64Overhead   int64 = 24
	idx128Overhead  int64 = 40
	idx256Overhead  int64 = 56
)

func (s *session) Usage(payer uint64) int64 {
	s.live()
	return readUsage(s.access, payer)
}

func readUsage(access Access, payer uint64) int64 {
	value, err := access.Get(usageKey(payer))
	if leveldb.ErrNotFound == err {
		return 0
	}
	fault.AbortIfError("usage", err)
	fault.Check(8 == len(value), fault.ErrRecordTruncated.Error())
	return int64(binary.BigEndian.Uint64(value))
}

// charge (delta > 0) or refund (delta < 0) a payer
func (s *session) addUsage(payer uint64, delta int64) {
	if 0 == delta {
		return
	}
	total := readUsage(s.access, payer) + delta
	fault.Check(total >= 0, "usage of payer became negative")

	key := usageKey(payer)
	if 0 == total {
		s.access.Delete(key)
		return
	}
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(total))
	s.access.Put(key, value)
}
