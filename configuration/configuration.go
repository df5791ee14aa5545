// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/zree/fault"
)

// key types
const (
	IntKeys    = "int"
	StringKeys = "string"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultKeyType = IntKeys

	defaultLogDirectory = "log"
	defaultLogFile      = "zree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// a fresh map each time since decoding writes into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// Configuration - the decoded configuration file
type Configuration struct {
	KeyType string               `gluamapper:"key_type" json:"key_type"`
	Keys    []interface{}        `gluamapper:"keys" json:"keys"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - the configuration used when no file is given
func Default() *Configuration {
	return &Configuration{
		KeyType: defaultKeyType,
		Keys:    []interface{}{},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}
}

// GetConfiguration - read, decode and verify the configuration file
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if fileInfo, err := os.Stat(configurationFileName); nil != err || fileInfo.IsDir() {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the directory holding the configuration
	baseDirectory, _ := filepath.Split(configurationFileName)

	options := Default()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(strings.TrimSpace(options.KeyType))
	switch options.KeyType {
	case "":
		options.KeyType = defaultKeyType
	case IntKeys, StringKeys:
	default:
		return nil, fault.ErrInvalidKeyType
	}

	if nil == options.Keys {
		options.Keys = []interface{}{}
	}

	// the log file must be a simple name in the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = ensureAbsolute(baseDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
