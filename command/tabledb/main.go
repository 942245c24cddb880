// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/multiindex/configuration"
	"github.com/bitmark-inc/multiindex/fault"
	"github.com/bitmark-inc/multiindex/storage"
)

type metadata struct {
	config  *configuration.Configuration
	db      *storage.Database
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "tabledb"
	app.Usage = "inspect a contract table database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	tableFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "code, C",
			Value: "",
			Usage: "*contract account `NAME`",
		},
		cli.StringFlag{
			Name:  "scope, s",
			Value: "",
			Usage: "*table scope `NAME`",
		},
		cli.StringFlag{
			Name:  "table, t",
			Value: "",
			Usage: "*table `NAME`",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "tabledb.conf",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "tables",
			Usage:  "list all tables with their payer and row count",
			Action: runTables,
		},
		{
			Name:      "rows",
			Usage:     "list the rows of a table in primary key order",
			ArgsUsage: "\n   (* = required)",
			Flags: append(tableFlags,
				cli.BoolFlag{
					Name:  "hello, H",
					Usage: " decode rows as hello contract records",
				},
			),
			Action: runRows,
		},
		{
			Name:      "index",
			Usage:     "list the entries of a secondary index in key order",
			ArgsUsage: "\n   (* = required)",
			Flags: append(tableFlags,
				cli.StringFlag{
					Name:  "type, T",
					Value: storage.Index64,
					Usage: " index `TYPE` [idx64|idx128|idx256]",
				},
				cli.IntFlag{
					Name:  "slot, n",
					Value: 0,
					Usage: " index `SLOT` of the table [0..15]",
				},
			),
			Action: runIndex,
		},
		{
			Name:      "usage",
			Usage:     "show the storage charged to a payer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*payer account `NAME`",
				},
			},
			Action: runUsage,
		},
		{
			Name:   "check",
			Usage:  "verify rows, indexes, table counts and payer usage",
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display tabledb version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the database
	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		verbose := c.GlobalBool("verbose")
		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "reading config file: %s\n", file)
		}

		options, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		if err := logger.Initialise(options.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}
		log := logger.New("main")
		log.Infof("tabledb version: %s", version)
		log.Infof("database: %q", options.DatabasePath())

		db, err := storage.Open(options.DatabasePath(), storage.ReadOnly)
		if nil != err {
			log.Criticalf("open database error: %s", err)
			fault.Finalise()
			logger.Finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:  options,
			db:      db,
			log:     log,
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		err := m.db.Close()
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
