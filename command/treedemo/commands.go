// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtree/avl"
	"github.com/bitmark-inc/searchtree/fault"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	case "help", "h", "?":
		fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]\n", program)

		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
		fmt.Fprintf(w, "  version                    (v)      - display version sting\n\n")
		fmt.Fprintf(w, "  config                              - display the sessions as JSON\n\n")
		fmt.Fprintf(w, "  demo                                - replay each session showing the trees (default)\n\n")
		fmt.Fprintf(w, "  check                               - replay each session silently and verify the trees\n\n")

	default:
		return false
	}
	return true
}

// configuration command handler
//
// commands that only examine the configuration
func processConfigCommand(w io.Writer, arguments []string, options *Configuration) bool {

	command := arguments[0]

	switch command {
	case "config":
		b, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			fmt.Fprintf(w, "error: %s\n", err)
			return true
		}
		fmt.Fprintf(w, "%s\n", b)

	default:
		return false
	}
	return true
}

// demo command handler
//
// replays the configured sessions
func processDemoCommand(w io.Writer, log *logger.L, arguments []string, options *Configuration) error {

	command := "demo"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "demo":
		for i := range options.Sessions {
			if i > 0 {
				fmt.Fprintf(w, "\n")
			}
			_, err := runSession(w, log, &options.Sessions[i])
			if nil != err {
				return err
			}
		}

	case "check":
		for i := range options.Sessions {
			session := &options.Sessions[i]
			tree, err := runSession(ioutil.Discard, log, session)
			if nil != err {
				return err
			}
			if err := tree.Check(); nil != err {
				return fmt.Errorf("session[%d]: %w", i, err)
			}
			created, released := avl.Stats()
			log.Debugf("nodes created: %d  released: %d", created, released)
			fmt.Fprintf(w, "session[%d] %s: %d keys  height: %d  balance: %d\n", i, session.Kind, tree.Count(), tree.Height(), tree.Balance())
		}

	default:
		return fmt.Errorf("%w: %q", fault.ErrUnsupportedTreeCommand, command)
	}
	return nil
}
