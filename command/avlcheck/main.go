// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err := os.MkdirAll(theConfiguration.Logging.Directory, 0o700); nil != err {
		exitwithstatus.Message("%s: cannot create log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	command := "workload"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "workload":
		result, err := runWorkload(logger.New("workload"), theConfiguration.Workload)
		if nil != err {
			log.Criticalf("workload error: %s", err)
			exitwithstatus.Message("%s: workload error: %s", program, err)
		}
		if !quiet {
			fmt.Printf("inserted: %d  duplicates: %d  removed: %d  absent: %d\n", result.Inserted, result.Duplicates, result.Removed, result.Absent)
			fmt.Printf("count: %d  max height: %d  checks: %d\n", result.Count, result.MaxHeight, result.Checks)
		}

	case "leveldb", "print":
		tree, err := loadDatabase(logger.New("leveldb"), theConfiguration.LevelDB)
		if nil != err {
			log.Criticalf("leveldb error: %s", err)
			exitwithstatus.Message("%s: leveldb error: %s", program, err)
		}
		if "print" == command {
			tree.Print(os.Stdout, verbose)
		} else if !quiet {
			fmt.Printf("count: %d  height: %d\n", tree.Count(), tree.Height())
		}

	default:
		log.Errorf("unknown command: %q", command)
		exitwithstatus.Message("%s: %s: %q", program, fault.ErrUnknownCommand, command)
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--version] --config-file=FILE [command]\n", program)
	fmt.Printf("where [command] is:\n")
	fmt.Printf("  workload  - run randomised inserts and removes against a reference model (default)\n")
	fmt.Printf("  leveldb   - load the keys of a leveldb database and verify their order\n")
	fmt.Printf("  print     - load the keys of a leveldb database and draw the tree\n")
	fmt.Printf("             (--verbose includes the values)\n")
}
