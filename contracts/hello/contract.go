// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hello

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/multiindex"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/storage"
)

// TableName - the table holding MyData records
var TableName = name.MustNew("mydata")

// Contract - the actions of one invocation
type Contract struct {
	self  name.Name
	table *multiindex.MultiIndex[*MyData]
	log   *logger.L
}

// New - the contract running as the receiver of host, on one scope
func New(host storage.Host, scope name.Name) (*Contract, error) {
	self := name.FromUint64(host.Receiver())
	table, err := multiindex.New(host, self, scope, TableName, Indexes, UnpackMyData)
	if nil != err {
		return nil, err
	}
	return &Contract{
		self:  self,
		table: table,
		log:   logger.New("hello"),
	}, nil
}

// Insert - add a new record
func (c *Contract) Insert(payer name.Name, id uint64, tag uint64, balance numeric.Uint128, memo string) error {
	if c.table.Find(id).IsOK() {
		return fault.ErrDuplicatePrimaryKey
	}
	record := &MyData{
		A1:      id,
		A2:      tag,
		Balance: balance,
		Digest:  MemoDigest(memo),
		Memo:    memo,
	}
	c.table.Store(record, payer)
	c.log.Infof("insert: id: %d  tag: %d  payer: %s", id, tag, payer)
	return nil
}

// Tag - change the tag of a record
func (c *Contract) Tag(payer name.Name, id uint64, tag uint64) error {
	cursor := c.table.Find(id)
	if !cursor.IsOK() {
		return fault.ErrRecordNotFound
	}
	record := cursor.Value()
	record.A2 = tag
	c.table.Update(cursor, record, payer)
	c.log.Infof("tag: id: %d  tag: %d", id, tag)
	return nil
}

// Deposit - add to the balance of a record
func (c *Contract) Deposit(payer name.Name, id uint64, amount numeric.Uint128) error {
	cursor := c.table.Find(id)
	if !cursor.IsOK() {
		return fault.ErrRecordNotFound
	}
	record := cursor.Value()
	total := record.Balance.Add(amount)
	if total.Compare(record.Balance) < 0 {
		return fault.ErrInvalidCount
	}
	record.Balance = total
	c.table.Update(cursor, record, payer)
	c.log.Infof("deposit: id: %d  balance: %s", id, total)
	return nil
}

// Retag - move every record with one tag to another through the tag index
//
// returns the number of records changed
func (c *Contract) Retag(payer name.Name, from uint64, to uint64) int {
	if from == to {
		return 0
	}
	idx := c.table.GetIdxDB(TagIndex)

	// collect first, each update moves the entry out of the range
	cursors := []multiindex.SecondaryCursor{}
	value := multiindex.NewIdx64Value(from)
	for it, v := idx.LowerBound(value); it.IsOK() && v == value; it, v = idx.Next(it) {
		cursors = append(cursors, it)
	}

	for _, it := range cursors {
		c.table.IdxUpdate(it, multiindex.NewIdx64Value(to), payer)
	}
	c.log.Infof("retag: from: %d  to: %d  count: %d", from, to, len(cursors))
	return len(cursors)
}

// Erase - remove a record
func (c *Contract) Erase(id uint64) error {
	cursor := c.table.Find(id)
	if !cursor.IsOK() {
		return fault.ErrRecordNotFound
	}
	c.table.Remove(cursor)
	c.log.Infof("erase: id: %d", id)
	return nil
}

// Get - one record
func (c *Contract) Get(id uint64) (*MyData, bool) {
	return c.table.GetByPrimary(id)
}

// List - all records in id order
func (c *Contract) List() []*MyData {
	records := []*MyData{}
	for cursor := c.table.LowerBound(0); cursor.IsOK(); cursor = c.table.Next(cursor) {
		records = append(records, cursor.Value())
	}
	return records
}

// ListByTag - the records with a tag in id order
func (c *Contract) ListByTag(tag uint64) []*MyData {
	return c.listEqual(TagIndex, multiindex.NewIdx64Value(tag))
}

// ListByBalance - records with balance >= minimum in balance order
func (c *Contract) ListByBalance(minimum numeric.Uint128) []*MyData {
	idx := c.table.GetIdxDB(BalanceIndex)
	records := []*MyData{}
	for it, _ := idx.LowerBound(multiindex.NewIdx128Value(minimum)); it.IsOK(); it, _ = idx.Next(it) {
		record, ok := c.table.GetByPrimary(it.Primary)
		fault.Check(ok, fault.ErrMissingPrimaryRow.Error())
		records = append(records, record)
	}
	return records
}

// FindByMemo - the records whose memo has the same digest
func (c *Contract) FindByMemo(memo string) []*MyData {
	return c.listEqual(DigestIndex, multiindex.NewIdx256Value(MemoDigest(memo)))
}

// records with an index value equal to value
func (c *Contract) listEqual(slot int, value multiindex.SecondaryValue) []*MyData {
	idx := c.table.GetIdxDB(slot)
	records := []*MyData{}
	for it, v := idx.LowerBound(value); it.IsOK() && v == value; it, v = idx.Next(it) {
		record, ok := c.table.GetByPrimary(it.Primary)
		fault.Check(ok, fault.ErrMissingPrimaryRow.Error())
		records = append(records, record)
	}
	return records
}

// Check - verify the table against its indexes
func (c *Contract) Check() error {
	return c.table.CheckConsistency()
}
