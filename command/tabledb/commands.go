// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/multiindex/contracts/hello"
	"github.com/bitmark-inc/multiindex/multiindex"
	"github.com/bitmark-inc/multiindex/name"
)

type tableItem struct {
	Code  name.Name `json:"code"`
	Scope name.Name `json:"scope"`
	Table name.Name `json:"table"`
	Payer name.Name `json:"payer"`
	Count uint64    `json:"count"`
}

type rowItem struct {
	Primary uint64        `json:"primary"`
	Payer   name.Name     `json:"payer"`
	Data    string        `json:"data"`
	Record  *hello.MyData `json:"record,omitempty"`
}

type indexItem struct {
	Key     string    `json:"key"`
	Primary uint64    `json:"primary"`
	Payer   name.Name `json:"payer"`
}

type usageItem struct {
	Payer name.Name `json:"payer"`
	Bytes int64     `json:"bytes"`
}

func runTables(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	tables, err := m.db.Tables()
	if nil != err {
		return err
	}

	items := make([]tableItem, 0, len(tables))
	for _, t := range tables {
		items = append(items, tableItem{
			Code:  name.FromUint64(t.Code),
			Scope: name.FromUint64(t.Scope),
			Table: name.FromUint64(t.Table),
			Payer: name.FromUint64(t.Payer),
			Count: t.Count,
		})
	}
	return printJson(m.w, items)
}

func runRows(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	code, scope, table, err := tableNames(c)
	if nil != err {
		return err
	}

	rows, err := m.db.Rows(code.Value(), scope.Value(), table.Value())
	if nil != err {
		return err
	}

	decode := c.Bool("hello")
	items := make([]rowItem, 0, len(rows))
	for _, r := range rows {
		item := rowItem{
			Primary: r.Primary,
			Payer:   name.FromUint64(r.Payer),
			Data:    hex.EncodeToString(r.Data),
		}
		if decode {
			record, err := hello.UnpackMyData(r.Data)
			if nil != err {
				return fmt.Errorf("row: %d decode error: %s", r.Primary, err)
			}
			item.Record = record
		}
		items = append(items, item)
	}
	return printJson(m.w, items)
}

func runIndex(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	code, scope, table, err := tableNames(c)
	if nil != err {
		return err
	}

	slot := c.Int("slot")
	if slot < 0 || slot >= multiindex.MaximumIndexes {
		return fmt.Errorf("slot: %d is out of range", slot)
	}
	indexTable := multiindex.SecondaryTableName(table, slot)

	if m.verbose {
		fmt.Fprintf(m.e, "index table: %s\n", indexTable)
	}

	entries, err := m.db.IndexEntries(c.String("type"), code.Value(), scope.Value(), indexTable.Value())
	if nil != err {
		return err
	}

	items := make([]indexItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, indexItem{
			Key:     e.Key,
			Primary: e.Primary,
			Payer:   name.FromUint64(e.Payer),
		})
	}
	return printJson(m.w, items)
}

func runUsage(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	payer, err := requiredName(c, "payer")
	if nil != err {
		return err
	}

	bytes, err := m.db.Usage(payer.Value())
	if nil != err {
		return err
	}
	return printJson(m.w, usageItem{Payer: payer, Bytes: bytes})
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := m.db.Verify(); nil != err {
		m.log.Errorf("verify failed: %s", err)
		return err
	}
	fmt.Fprintf(m.w, "ok\n")
	return nil
}

func tableNames(c *cli.Context) (name.Name, name.Name, name.Name, error) {
	code, err := requiredName(c, "code")
	if nil != err {
		return 0, 0, 0, err
	}
	scope, err := requiredName(c, "scope")
	if nil != err {
		return 0, 0, 0, err
	}
	table, err := requiredName(c, "table")
	if nil != err {
		return 0, 0, 0, err
	}
	return code, scope, table, nil
}

func requiredName(c *cli.Context, flag string) (name.Name, error) {
	s := c.String(flag)
	if "" == s {
		return 0, fmt.Errorf("%s is required", flag)
	}
	return name.New(s)
}
