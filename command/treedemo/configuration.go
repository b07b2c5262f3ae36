// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtree/avl"
	"github.com/bitmark-inc/searchtree/configuration"
	"github.com/bitmark-inc/searchtree/fault"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "treedemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	treeLogCategory = "avl"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// StepType - one action applied to the session's tree
type StepType struct {
	Action string `gluamapper:"action" json:"action"`
	Keys   []int  `gluamapper:"keys" json:"keys,omitempty"`
	Order  string `gluamapper:"order" json:"order,omitempty"`
	Text   string `gluamapper:"text" json:"text,omitempty"`
}

// SessionType - a tree kind and the steps to replay on it
type SessionType struct {
	Title string     `gluamapper:"title" json:"title"`
	Kind  string     `gluamapper:"kind" json:"kind"`
	Steps []StepType `gluamapper:"steps" json:"steps"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Sessions []SessionType        `gluamapper:"sessions" json:"sessions"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// actions accepted in a step
var actions = map[string]struct{}{
	"insert":   {},
	"delete":   {},
	"search":   {},
	"print":    {},
	"inorder":  {},
	"traverse": {},
	"root":     {},
	"balance":  {},
	"check":    {},
	"echo":     {},
}

// the session from the module documentation: a plain tree is
// built, edited and queried, then an AVL tree is taken through the
// same edits until rotations occur
func defaultSessions() []SessionType {
	initial := []int{5, 4, 7, 2, 11}

	return []SessionType{
		{
			Title: fmt.Sprintf("Building a binary search tree with this list: %v", initial),
			Kind:  avl.KindBST,
			Steps: []StepType{
				{Action: "insert", Keys: initial},
				{Action: "print"},
				{Action: "inorder"},
				{Action: "search", Keys: []int{4, 14}},
				{Action: "delete", Keys: []int{2}, Text: "Deleting 2 (leaf)..."},
				{Action: "inorder"},
				{Action: "insert", Keys: []int{2}},
				{Action: "inorder"},
				{Action: "search", Keys: []int{11}},
				{Action: "delete", Keys: []int{7}, Text: "Deleting 7 (one child)..."},
				{Action: "inorder"},
				{Action: "insert", Keys: []int{7}},
				{Action: "inorder"},
				{Action: "search", Keys: []int{11}},
				{Action: "delete", Keys: []int{5}, Text: "Deleting 5 (root)..."},
				{Action: "root"},
				{Action: "inorder"},
				{Action: "insert", Keys: []int{5, 10, 12, 3, 13, 14, 15}},
				{Action: "print"},
			},
		},
		{
			Title: "Now creating an AVL tree...",
			Kind:  avl.KindAVL,
			Steps: []StepType{
				{Action: "insert", Keys: initial},
				{Action: "print"},
				{Action: "delete", Keys: []int{5}},
				{Action: "insert", Keys: []int{5, 10, 12, 3, 13}},
				{Action: "print"},
				{Action: "insert", Keys: []int{14}, Text: "Inserting 14, which should result in re-balance..."},
				{Action: "print"},
				{Action: "insert", Keys: []int{15}, Text: "Inserting 15, which should result in re-balance..."},
				{Action: "print"},
				{Action: "balance"},
				{Action: "check"},
			},
		},
	}
}

// will read decode and verify the configuration
// an empty file name gives the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    LoglevelMap{},
		},
	}
	for k, v := range defaultLogLevels {
		options.Logging.Levels[k] = v
	}

	dataDirectory := ""
	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		dataDirectory, _ = filepath.Split(fileName)

		variables := map[string]string{
			"data_directory": dataDirectory,
		}
		if err := configuration.ParseConfigurationFile(fileName, options, variables); err != nil {
			return nil, err
		}
	}

	if 0 == len(options.Sessions) {
		options.Sessions = defaultSessions()
	}

	for i := range options.Sessions {
		if err := validateSession(&options.Sessions[i]); nil != err {
			return nil, fmt.Errorf("session[%d]: %w", i, err)
		}
	}

	// relative log directory is taken from the configuration file
	if nil == options.Logging.Levels {
		options.Logging.Levels = map[string]string{}
	}
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}

// normalise names and reject anything that cannot be replayed
func validateSession(session *SessionType) error {
	session.Kind = strings.ToLower(strings.TrimSpace(session.Kind))
	if "" == session.Kind {
		session.Kind = avl.KindBST
	}
	if _, err := avl.NewKind(session.Kind); nil != err {
		return fmt.Errorf("kind: %q  error: %w", session.Kind, err)
	}

	for i := range session.Steps {
		step := &session.Steps[i]
		step.Action = strings.ToLower(strings.TrimSpace(step.Action))
		if _, ok := actions[step.Action]; !ok {
			return fmt.Errorf("step[%d] action: %q  error: %w", i, step.Action, fault.ErrUnsupportedTreeCommand)
		}
		switch step.Action {
		case "insert", "delete", "search":
			if 0 == len(step.Keys) {
				return fmt.Errorf("step[%d] action: %q  error: %w", i, step.Action, fault.ErrMissingKeys)
			}
		case "traverse":
			if _, err := avl.ParseOrder(step.Order); nil != err {
				return fmt.Errorf("step[%d] order: %q  error: %w", i, step.Order, err)
			}
		}
	}
	return nil
}
