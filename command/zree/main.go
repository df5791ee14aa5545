// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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

	"github.com/bitmark-inc/zree/configuration"
)

type metadata struct {
	file       string
	config     *configuration.Configuration
	stringKeys bool
	verbose    bool
	logging    bool
	tempLog    string // removed on exit
	log        *logger.L
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "zree"
	app.Usage = "ordered multiset of keys held in an AVL tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "strings, s",
			Usage: " treat keys as strings",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " trace tree operations",
		},
	}

	keyFlag := cli.StringFlag{
		Name:  "key, k",
		Value: "",
		Usage: "*the `KEY` to look for",
	}

	app.Commands = []cli.Command{
		{
			Name:           "sort",
			Usage:          "list keys in ascending order",
			ArgsUsage:      "KEY...",
			SkipArgReorder: true,
			Action:         action(runSort[int], runSort[string]),
		},
		{
			Name:           "reverse",
			Usage:          "list keys in descending order",
			ArgsUsage:      "KEY...",
			SkipArgReorder: true,
			Action:         action(runReverse[int], runReverse[string]),
		},
		{
			Name:           "dump",
			Usage:          "pre-order dump of the tree",
			ArgsUsage:      "KEY...",
			SkipArgReorder: true,
			Action:         action(runDump[int], runDump[string]),
		},
		{
			Name:           "graph",
			Usage:          "draw the tree",
			ArgsUsage:      "KEY...",
			SkipArgReorder: true,
			Action:         action(runGraph[int], runGraph[string]),
		},
		{
			Name:           "outline",
			Usage:          "draw the tree as an indented outline",
			ArgsUsage:      "KEY...",
			SkipArgReorder: true,
			Action:         action(runOutline[int], runOutline[string]),
		},
		{
			Name:           "min",
			Usage:          "lowest key",
			ArgsUsage:      "KEY...",
			SkipArgReorder: true,
			Action:         action(runMinimum[int], runMinimum[string]),
		},
		{
			Name:           "max",
			Usage:          "highest key",
			ArgsUsage:      "KEY...",
			SkipArgReorder: true,
			Action:         action(runMaximum[int], runMaximum[string]),
		},
		{
			Name:           "contains",
			Usage:          "test if a key is present",
			ArgsUsage:      "KEY...\n   (* = required)",
			SkipArgReorder: true,
			Flags:          []cli.Flag{keyFlag},
			Action:         action(runContains[int], runContains[string]),
		},
		{
			Name:           "remove",
			Usage:          "remove one occurrence of a key and dump the tree",
			ArgsUsage:      "KEY...\n   (* = required)",
			SkipArgReorder: true,
			Flags:          []cli.Flag{keyFlag},
			Action:         action(runRemove[int], runRemove[string]),
		},
		{
			Name:           "check",
			Usage:          "verify the tree and report its shape as JSON",
			ArgsUsage:      "KEY...",
			SkipArgReorder: true,
			Action:         action(runCheck[int], runCheck[string]),
		},
		{
			Name:  "version",
			Usage: "display zree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		m := &metadata{
			file:    c.GlobalString("config-file"),
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if "" == m.file {
			m.config = configuration.Default()
		} else {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", m.file)
			}
			config, err := configuration.GetConfiguration(m.file)
			if nil != err {
				return err
			}
			m.config = config
		}

		m.stringKeys = configuration.StringKeys == m.config.KeyType || c.GlobalBool("strings")

		if err := startLogging(m); nil != err {
			return err
		}

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		return stopLogging(m)
	}

	return app
}

// logging is only started when there is somewhere to send it
func startLogging(m *metadata) error {

	if "" == m.file {
		if !m.verbose {
			return nil
		}
		directory, err := os.MkdirTemp("", "zree-log-")
		if nil != err {
			return err
		}
		m.config.Logging.Directory = directory
		m.tempLog = directory
		m.config.Logging.Console = true
		m.config.Logging.Levels = map[string]string{
			logger.DefaultTag: "trace",
		}
	} else if m.verbose {
		m.config.Logging.Levels[treeLogTag] = "trace"
	}

	if err := logger.Initialise(m.config.Logging); nil != err {
		_ = stopLogging(m)
		return err
	}
	m.logging = true

	log := logger.New("main")
	log.Infof("version: %s  key type: %s  configured keys: %d", version, m.config.KeyType, len(m.config.Keys))

	if m.verbose {
		m.log = logger.New(treeLogTag)
	}
	return nil
}

// flush the logs and discard a temporary log directory
func stopLogging(m *metadata) error {
	if m.logging {
		logger.Finalise()
		m.logging = false
	}
	if "" == m.tempLog {
		return nil
	}
	err := os.RemoveAll(m.tempLog)
	m.tempLog = ""
	return err
}
