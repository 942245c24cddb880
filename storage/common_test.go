// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/storage"
)

const (
	testingDirName = "testing"
)

// accounts and tables used by the tests
var (
	codeAlice = name.MustNew("alice").Value()
	codeBob   = name.MustNew("bob").Value()
	scopeTest = name.MustNew("test").Value()
	tableData = name.MustNew("mydata").Value()
	tableTags = name.MustNew("tags").Value()
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	_ = fault.Initialise()
}

func teardownTestLogger() {
	fault.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) *storage.Database {
	setupTestLogger()

	db, err := storage.OpenMemory()
	require.Nil(t, err, "open memory database")
	return db
}

// post test cleanup
func teardown(db *storage.Database) {
	_ = db.Close()
	teardownTestLogger()
}

// store rows in one committed invocation
func storeRows(t *testing.T, db *storage.Database, payer uint64, rows map[uint64]string) {
	err := db.Invoke(codeAlice, func(host storage.Host) error {
		for id, data := range rows {
			host.StoreI64(scopeTest, tableData, payer, id, []byte(data))
		}
		return nil
	})
	require.Nil(t, err, "store rows")
}
