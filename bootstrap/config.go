// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package bootstrap loads the hosting service's own logging parameters
// from a section/key configuration store. It configures the process, not
// any SMPP session, and runs once at startup.
package bootstrap

import (
	"github.com/absmach/smpp-client/logger"
	"github.com/spf13/viper"
)

const section = "smpp-client"

const (
	defLogLevel      = "info"
	defLogFile       = "/var/log/smpp-client/service.log"
	defLogFormat     = "json"
	defLogDateFormat = "2006-01-02 15:04:05"
)

// Config carries the service logging parameters. Immutable after Load.
type Config struct {
	LogLevel      logger.Level
	LogFile       string
	LogFormat     string
	LogDateFormat string
}

// Load reads the four logging keys from the store's smpp-client section,
// substituting a literal default for every absent key. The severity level
// name is parsed into its numeric severity; an unrecognized name surfaces
// the parser's error. There is no write-back path.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault(section+".log_level", defLogLevel)
	v.SetDefault(section+".log_file", defLogFile)
	v.SetDefault(section+".log_format", defLogFormat)
	v.SetDefault(section+".log_date_format", defLogDateFormat)

	var lvl logger.Level
	if err := lvl.UnmarshalText(v.GetString(section + ".log_level")); err != nil {
		return Config{}, err
	}

	return Config{
		LogLevel:      lvl,
		LogFile:       v.GetString(section + ".log_file"),
		LogFormat:     v.GetString(section + ".log_format"),
		LogDateFormat: v.GetString(section + ".log_date_format"),
	}, nil
}
