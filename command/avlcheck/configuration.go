// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultSeed          = 1
	defaultRounds        = 4
	defaultOperations    = 2000
	defaultKeyRange      = 5000
	defaultRemovePercent = 40
	defaultCheckEvery    = 1
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// WorkloadType - parameters of the randomised insert/remove run
type WorkloadType struct {
	Seed          int64 `gluamapper:"seed" json:"seed"`
	Rounds        int   `gluamapper:"rounds" json:"rounds"`
	Operations    int   `gluamapper:"operations" json:"operations"`
	KeyRange      int   `gluamapper:"key_range" json:"key_range"`
	RemovePercent int   `gluamapper:"remove_percent" json:"remove_percent"`
	CheckEvery    int   `gluamapper:"check_every" json:"check_every"` // 0 => only at end of round
}

// LevelDBType - database to load keys from, prefix is in hex
type LevelDBType struct {
	Database string `gluamapper:"database" json:"database"`
	Prefix   string `gluamapper:"prefix" json:"prefix"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Workload      WorkloadType         `gluamapper:"workload" json:"workload"`
	LevelDB       LevelDBType          `gluamapper:"leveldb" json:"leveldb"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Workload: WorkloadType{
			Seed:          defaultSeed,
			Rounds:        defaultRounds,
			Operations:    defaultOperations,
			KeyRange:      defaultKeyRange,
			RemovePercent: defaultRemovePercent,
			CheckEvery:    defaultCheckEvery,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, fmt.Errorf("data directory: %q  error: %w", options.DataDirectory, err)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	if "" != options.LevelDB.Database {
		mustBeAbsolute = append(mustBeAbsolute, &options.LevelDB.Database)
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	w := &options.Workload
	if w.Rounds <= 0 {
		w.Rounds = defaultRounds
	}
	if w.Operations <= 0 {
		w.Operations = defaultOperations
	}
	if w.KeyRange <= 0 {
		w.KeyRange = defaultKeyRange
	}
	if w.CheckEvery < 0 {
		w.CheckEvery = 0
	}
	if w.RemovePercent < 0 || w.RemovePercent > 100 {
		return nil, fmt.Errorf("remove_percent: %d  error: %w", w.RemovePercent, fault.ErrInvalidPercentage)
	}

	return options, nil
}
