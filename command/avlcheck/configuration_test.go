// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/fault"
)

func writeConfiguration(t *testing.T, dir string, text string) string {
	name := filepath.Join(dir, "avlcheck.conf")
	require.NoError(t, os.WriteFile(name, []byte(text), 0o600), "write configuration")
	return name
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir := t.TempDir()
	name := writeConfiguration(t, dir, `
local M = {}
M.data_directory = "."
return M
`)

	options, err := getConfiguration(name)
	require.NoError(t, err, "get configuration")

	expectedDir, err := filepath.Abs(dir)
	require.NoError(t, err, "abs")

	assert.Equal(t, filepath.Clean(expectedDir), options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(expectedDir, defaultLogDirectory), options.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, options.Logging.File, "log file")
	assert.Equal(t, "", options.LevelDB.Database, "no database")

	assert.Equal(t, WorkloadType{
		Seed:          defaultSeed,
		Rounds:        defaultRounds,
		Operations:    defaultOperations,
		KeyRange:      defaultKeyRange,
		RemovePercent: defaultRemovePercent,
		CheckEvery:    defaultCheckEvery,
	}, options.Workload, "workload defaults")
}

func TestGetConfigurationValues(t *testing.T) {
	dir := t.TempDir()
	name := writeConfiguration(t, dir, `
local M = {}
M.data_directory = arg[0]:match("(.*/)")
M.workload = {
    seed = 99,
    rounds = 0,
    operations = 10,
    key_range = 20,
    remove_percent = 0,
    check_every = -3,
}
M.leveldb = {
    database = "keys.leveldb",
    prefix = "ab",
}
M.logging = {
    directory = "/var/log/avlcheck",
    file = "check.log",
    size = 4096,
    count = 2,
    console = true,
    levels = {
        DEFAULT = "debug",
    },
}
return M
`)

	options, err := getConfiguration(name)
	require.NoError(t, err, "get configuration")

	assert.Equal(t, int64(99), options.Workload.Seed, "seed")
	assert.Equal(t, defaultRounds, options.Workload.Rounds, "zero rounds replaced")
	assert.Equal(t, 10, options.Workload.Operations, "operations")
	assert.Equal(t, 20, options.Workload.KeyRange, "key range")
	assert.Equal(t, 0, options.Workload.RemovePercent, "explicit zero kept")
	assert.Equal(t, 0, options.Workload.CheckEvery, "negative check interval")

	assert.Equal(t, filepath.Join(options.DataDirectory, "keys.leveldb"), options.LevelDB.Database, "database")
	assert.Equal(t, "ab", options.LevelDB.Prefix, "prefix")

	assert.Equal(t, "/var/log/avlcheck", options.Logging.Directory, "absolute log directory")
	assert.Equal(t, "check.log", options.Logging.File, "log file")
	assert.EqualValues(t, 4096, options.Logging.Size, "log size")
	assert.EqualValues(t, 2, options.Logging.Count, "log count")
	assert.True(t, options.Logging.Console, "console")
	assert.Equal(t, "debug", options.Logging.Levels["DEFAULT"], "level")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		text   string
		errorF func(error) bool
	}{
		{
			name:   "percentage",
			text:   `return { data_directory = ".", workload = { remove_percent = 101 } }`,
			errorF: fault.IsErrInvalid,
		},
		{
			name:   "negative percentage",
			text:   `return { data_directory = ".", workload = { remove_percent = -1 } }`,
			errorF: fault.IsErrInvalid,
		},
		{
			name:   "home directory",
			text:   `return { data_directory = "~" }`,
			errorF: fault.IsErrInvalid,
		},
		{
			name:   "missing data directory",
			text:   `return { data_directory = "` + filepath.Join(dir, "absent") + `" }`,
			errorF: func(e error) bool { return errors.Is(e, fs.ErrNotExist) },
		},
	}

	for _, item := range tests {
		name := writeConfiguration(t, dir, item.text)
		_, err := getConfiguration(name)
		require.Error(t, err, item.name)
		assert.True(t, item.errorF(err), "%s: %v", item.name, err)
	}

	_, err := getConfiguration(filepath.Join(dir, "no-such.conf"))
	assert.True(t, fault.IsErrNotFound(err), "missing file: %v", err)
}
