// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// environment maps each configuration key onto its environment variable.  The
// variables are unprefixed, since deployment tooling sets PORT and CORS_ORIGIN directly.
var environment = map[string]string{
	PortKey:              "PORT",
	CORSOriginKey:        "CORS_ORIGIN",
	LogLevelKey:          "LOG_LEVEL",
	MetricsAddressKey:    "METRICS_ADDRESS",
	MaxConnectionsKey:    "MAX_CONNECTIONS",
	ReadHeaderTimeoutKey: "READ_HEADER_TIMEOUT",
	IdleTimeoutKey:       "IDLE_TIMEOUT",
}

// flags maps each command line flag onto its configuration key
var flags = map[string]string{
	"port":            PortKey,
	"cors-origin":     CORSOriginKey,
	"log-level":       LogLevelKey,
	"metrics-address": MetricsAddressKey,
	"max-connections": MaxConnectionsKey,
}

// NewViper produces a Viper instance bound to the beacon environment variables, with defaults
// for every key.  No configuration file is ever read.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, variable := range environment {
		// BindEnv only fails when given no arguments
		v.BindEnv(key, variable)
	}

	v.SetDefault(PortKey, DefaultPort)
	v.SetDefault(CORSOriginKey, DefaultCORSOrigin)
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(MetricsAddressKey, "")
	v.SetDefault(MaxConnectionsKey, 0)
	v.SetDefault(ReadHeaderTimeoutKey, DefaultReadHeaderTimeout.String())
	v.SetDefault(IdleTimeoutKey, DefaultIdleTimeout.String())

	return v
}

// NewFlagSet produces the command line flags understood by a beacon process.  Flags that are
// explicitly set take precedence over the environment.
func NewFlagSet(applicationName string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.Int("port", DefaultPort, "the TCP port of the primary server (env PORT)")
	fs.String("cors-origin", DefaultCORSOrigin, "the Access-Control-Allow-Origin value (env CORS_ORIGIN)")
	fs.String("log-level", DefaultLogLevel, "debug, info, warn, or error (env LOG_LEVEL)")
	fs.String("metrics-address", "", "listen address of the metrics server, disabled if empty (env METRICS_ADDRESS)")
	fs.Int("max-connections", 0, "maximum concurrent connections, unlimited if not positive (env MAX_CONNECTIONS)")

	return fs
}

// ParseAndBind parses the given flag set using the supplied arguments and then binds
// each flag to its configuration key.  If arguments is nil, os.Args[1:] is used instead.
func ParseAndBind(v *viper.Viper, fs *pflag.FlagSet, arguments []string) error {
	if arguments == nil {
		arguments = os.Args[1:]
	}

	if err := fs.Parse(arguments); err != nil {
		return err
	}

	for name, key := range flags {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	return nil
}
