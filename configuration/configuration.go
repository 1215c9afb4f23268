// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (the log directory is relative to the configuration file)
const (
	defaultIgnoreDuplicates = true
	defaultStrategy         = "recursive"
	defaultTraversal        = "in_order"
	defaultFreeList         = 0

	defaultLogDirectory = "log"
	defaultLogFile      = "avl.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - tree settings and the logging setup
type Configuration struct {
	IgnoreDuplicates bool                 `gluamapper:"ignore_duplicates" json:"ignore_duplicates"`
	Strategy         string               `gluamapper:"strategy" json:"strategy"`
	Traversal        string               `gluamapper:"traversal" json:"traversal"`
	FreeList         int                  `gluamapper:"free_list" json:"free_list"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if fileInfo, err := os.Stat(configurationFileName); nil != err || fileInfo.IsDir() {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the directory holding the file
	baseDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		IgnoreDuplicates: defaultIgnoreDuplicates,
		Strategy:         defaultStrategy,
		Traversal:        defaultTraversal,
		FreeList:         defaultFreeList,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{ // fresh map, the mapper merges into it
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// reject names now rather than when a tree is built
	if _, err := avl.ParseStrategy(options.Strategy); nil != err {
		return nil, err
	}
	if _, err := avl.ParseOrder(options.Traversal); nil != err {
		return nil, err
	}
	if options.FreeList < 0 {
		return nil, fault.ErrInvalidFreeList
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(baseDirectory, options.Logging.Directory)
	}

	return options, nil
}

// Options - the tree options selected by the configuration
func (c *Configuration) Options() ([]avl.Option, error) {
	strategy, err := avl.ParseStrategy(c.Strategy)
	if nil != err {
		return nil, err
	}
	if c.FreeList < 0 {
		return nil, fault.ErrInvalidFreeList
	}
	return []avl.Option{
		avl.IgnoreDuplicates(c.IgnoreDuplicates),
		avl.WithStrategy(strategy),
		avl.WithFreeList(c.FreeList),
	}, nil
}

// Order - the configured depth first traversal order
func (c *Configuration) Order() (avl.Order, error) {
	return avl.ParseOrder(c.Traversal)
}
