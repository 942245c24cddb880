// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multiindex/configuration"
	"github.com/bitmark-inc/multiindex/fault"
)

const sampleConfiguration = `
local M = {}

M.data_directory = "."

M.database = {
    directory = "db",
    name = "sample.leveldb",
    read_only = true,
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "warn",
    },
}

return M
`

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "test.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	assert.Nil(t, err, "write configuration")
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, sampleConfiguration)

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "get configuration")

	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "db"), options.Database.Directory, "database directory")
	assert.Equal(t, "sample.leveldb", options.Database.Name, "database name")
	assert.True(t, options.Database.ReadOnly, "read only")
	assert.Equal(t, filepath.Join(dir, "db", "sample.leveldb"), options.DatabasePath(), "database path")

	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, "tabledb.log", options.Logging.File, "default log file")
	assert.Equal(t, 4096, options.Logging.Size, "log size")
	assert.Equal(t, 3, options.Logging.Count, "log count")
	assert.Equal(t, "warn", options.Logging.Levels["DEFAULT"], "default level")

	info, err := os.Stat(options.Logging.Directory)
	assert.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "get configuration")

	assert.Equal(t, filepath.Join(dir, "data", "tables.leveldb"), options.DatabasePath(), "database path")
	assert.False(t, options.Database.ReadOnly, "read only")
	assert.Equal(t, 10, options.Logging.Count, "log count")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration(filepath.Join(t.TempDir(), "absent.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")
}

func TestGetConfigurationInvalid(t *testing.T) {
	_, fileName := writeConfiguration(t, `return { data_directory = "" }`)
	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "blank data directory")

	_, fileName = writeConfiguration(t, `return { data_directory = ".", database = { name = "a/b.leveldb" } }`)
	_, err = configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "database name with path")

	_, fileName = writeConfiguration(t, `return { data_directory = ". `)
	_, err = configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "lua syntax error")
}
