// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiindex

import (
	"github.com/bitmark-inc/multiindex/fault"
)

// CheckConsistency - verify every record against every index
//
// each record must have an entry in each index holding its current
// secondary value, and each index must hold no other entries
func (m *MultiIndex[T]) CheckConsistency() error {
	rows := 0
	for c := m.LowerBound(0); c.IsOK(); c = m.Next(c) {
		record, _ := m.Get(c)
		primary := record.GetPrimary()

		for i, idx := range m.idxdbs {
			it, value := idx.FindPrimary(primary)
			if !it.IsOK() {
				m.log.Warnf("table: %s  primary: %d  missing from index: %d", m.table, primary, i)
				return fault.ErrIndexCountMismatch
			}
			if value != record.GetSecondaryValue(i) {
				m.log.Warnf("table: %s  primary: %d  index: %d  value: %s  expected: %s", m.table, primary, i, value, record.GetSecondaryValue(i))
				return fault.ErrIndexValueMismatch
			}
		}
		rows += 1
	}

	for i, idx := range m.idxdbs {
		entries := 0
		it, _ := idx.LowerBound(SecondaryValue{Type: idx.Type()})
		for it.IsOK() {
			if !m.Find(it.Primary).IsOK() {
				m.log.Warnf("table: %s  index: %d  primary: %d  has no record", m.table, i, it.Primary)
				return fault.ErrMissingPrimaryRow
			}
			entries += 1
			it, _ = idx.Next(it)
		}
		if entries != rows {
			m.log.Warnf("table: %s  index: %d  entries: %d  records: %d", m.table, i, entries, rows)
			return fault.ErrIndexCountMismatch
		}
	}
	return nil
}
