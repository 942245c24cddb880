// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/multiindex/configuration"
	"github.com/bitmark-inc/multiindex/contracts/hello"
	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/name"
	"github.com/bitmark-inc/multiindex/numeric"
	"github.com/bitmark-inc/multiindex/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultAccount = "hello"

// number of arguments after the action name
var actionArguments = map[string]int{
	"insert":       4,
	"tag":          2,
	"deposit":      2,
	"retag":        2,
	"erase":        1,
	"get":          1,
	"list":         0,
	"find-tag":     1,
	"find-balance": 1,
	"find-memo":    1,
	"check":        0,
}

// actions that do not change the database
var readOnlyActions = map[string]bool{
	"get":          true,
	"list":         true,
	"find-tag":     true,
	"find-balance": true,
	"find-memo":    true,
	"check":        true,
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "account", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'a'},
		{Long: "scope", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "payer", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || 1 != len(options["config-file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--account=NAME] [--scope=NAME] [--payer=NAME] --config-file=FILE action [args...]\n"+
			"  insert ID TAG BALANCE MEMO\n"+
			"  tag ID TAG\n"+
			"  deposit ID AMOUNT\n"+
			"  retag FROM-TAG TO-TAG\n"+
			"  erase ID\n"+
			"  get ID\n"+
			"  list\n"+
			"  find-tag TAG\n"+
			"  find-balance MINIMUM\n"+
			"  find-memo MEMO\n"+
			"  check", program)
	}

	verbose := len(options["verbose"]) > 0

	action := arguments[0]
	arguments = arguments[1:]
	count, ok := actionArguments[action]
	if !ok {
		exitwithstatus.Message("%s: unknown action: %q", program, action)
	}
	if count != len(arguments) {
		exitwithstatus.Message("%s: action: %s requires %d arguments", program, action, count)
	}

	account := optionalName(program, options, "account", defaultAccount)
	scope := optionalName(program, options, "scope", account.String())
	payer := optionalName(program, options, "payer", account.String())

	masterConfiguration, err := configuration.GetConfiguration(options["config-file"][0])
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, options["config-file"][0], err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// abort messages
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("starting: version: %s  action: %s", version, action)

	readOnly := masterConfiguration.Database.ReadOnly || readOnlyActions[action]
	if masterConfiguration.Database.ReadOnly && !readOnlyActions[action] {
		exitwithstatus.Message("%s: action: %s not allowed on a read-only database", program, action)
	}

	db, err := storage.Open(masterConfiguration.DatabasePath(), readOnly)
	if nil != err {
		log.Criticalf("storage setup failed with error: %s", err)
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer db.Close()

	if verbose {
		fmt.Printf("account: %s  scope: %s  payer: %s  database: %q\n", account, scope, payer, masterConfiguration.DatabasePath())
	}

	var result interface{}
	run := func(host storage.Host) error {
		contract, err := hello.New(host, scope)
		if nil != err {
			return err
		}
		result, err = perform(contract, payer, action, arguments)
		return err
	}

	if readOnly {
		err = db.ViewAs(account.Value(), run)
	} else {
		err = db.Invoke(account.Value(), run)
	}
	if nil != err {
		log.Errorf("action: %s  error: %s", action, err)
		exitwithstatus.Message("%s: action: %s failed with error: %s", program, action, err)
	}

	log.Info("finished")

	if nil != result {
		b, err := json.MarshalIndent(result, "", "  ")
		if nil != err {
			exitwithstatus.Message("%s: json error: %s", program, err)
		}
		fmt.Printf("%s\n", b)
	}
}

// run one action on the contract
func perform(contract *hello.Contract, payer name.Name, action string, arguments []string) (interface{}, error) {
	switch action {
	case "insert":
		id, err := parseUint64(arguments[0])
		if nil != err {
			return nil, err
		}
		tag, err := parseUint64(arguments[1])
		if nil != err {
			return nil, err
		}
		balance, err := numeric.ParseUint128(arguments[2])
		if nil != err {
			return nil, err
		}
		return nil, contract.Insert(payer, id, tag, balance, arguments[3])

	case "tag":
		id, err := parseUint64(arguments[0])
		if nil != err {
			return nil, err
		}
		tag, err := parseUint64(arguments[1])
		if nil != err {
			return nil, err
		}
		return nil, contract.Tag(payer, id, tag)

	case "deposit":
		id, err := parseUint64(arguments[0])
		if nil != err {
			return nil, err
		}
		amount, err := numeric.ParseUint128(arguments[1])
		if nil != err {
			return nil, err
		}
		return nil, contract.Deposit(payer, id, amount)

	case "retag":
		from, err := parseUint64(arguments[0])
		if nil != err {
			return nil, err
		}
		to, err := parseUint64(arguments[1])
		if nil != err {
			return nil, err
		}
		return map[string]int{"changed": contract.Retag(payer, from, to)}, nil

	case "erase":
		id, err := parseUint64(arguments[0])
		if nil != err {
			return nil, err
		}
		return nil, contract.Erase(id)

	case "get":
		id, err := parseUint64(arguments[0])
		if nil != err {
			return nil, err
		}
		record, ok := contract.Get(id)
		if !ok {
			return nil, fmt.Errorf("id: %d not found", id)
		}
		return record, nil

	case "list":
		return contract.List(), nil

	case "find-tag":
		tag, err := parseUint64(arguments[0])
		if nil != err {
			return nil, err
		}
		return contract.ListByTag(tag), nil

	case "find-balance":
		minimum, err := numeric.ParseUint128(arguments[0])
		if nil != err {
			return nil, err
		}
		return contract.ListByBalance(minimum), nil

	case "find-memo":
		return contract.FindByMemo(arguments[0]), nil

	case "check":
		return nil, contract.Check()

	default:
		return nil, fmt.Errorf("unknown action: %q", action)
	}
}

func optionalName(program string, options map[string][]string, option string, defaultValue string) name.Name {
	s := defaultValue
	if len(options[option]) > 0 {
		s = options[option][0]
	}
	n, err := name.New(s)
	if nil != err {
		exitwithstatus.Message("%s: invalid %s: %q  error: %s", program, option, s, err)
	}
	return n
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
