// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Configuration keys, as known to viper
const (
	PortKey              = "port"
	CORSOriginKey        = "cors_origin"
	LogLevelKey          = "log_level"
	MetricsAddressKey    = "metrics_address"
	MaxConnectionsKey    = "max_connections"
	ReadHeaderTimeoutKey = "read_header_timeout"
	IdleTimeoutKey       = "idle_timeout"
)

// ErrInvalidPort is returned when the configured port is not an integer in [1, 65535]
var ErrInvalidPort = errors.New("invalid port")

// Configuration is the fully resolved configuration of a beacon process.  It is produced once,
// at startup, and is never modified afterwards.
type Configuration struct {
	// Port is the TCP port of the primary server.  It is parsed separately from the other
	// fields so that a malformed value can be reported precisely.
	Port int `mapstructure:"-"`

	// CORSOrigin is written verbatim into Access-Control-Allow-Origin
	CORSOrigin string `mapstructure:"cors_origin"`

	LogLevel string `mapstructure:"log_level"`

	// MetricsAddress is the listen address of the metrics server.  Empty disables it.
	MetricsAddress string `mapstructure:"metrics_address"`

	// MaxConnections caps the concurrent connections to the primary server.  Nonpositive means unlimited.
	MaxConnections int `mapstructure:"max_connections"`

	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
}

// Address returns the listen address of the primary server, which is always bound to every interface.
func (c Configuration) Address() string {
	return net.JoinHostPort(BindHost, strconv.Itoa(c.Port))
}

// URL returns the base URL announced at startup
func (c Configuration) URL() string {
	return "http://" + c.Address()
}

// ParsePort converts a raw configuration value into a port number.  A nil or blank value yields DefaultPort.
// Anything that is not a base 10 integer in [1, 65535] is an error wrapping ErrInvalidPort.
func ParsePort(raw interface{}) (int, error) {
	text, err := cast.ToStringE(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPort, err)
	}

	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(text)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, text)
	}

	return port, nil
}

// LoadConfiguration resolves a Configuration from a viper instance, normally one produced by NewViper.
func LoadConfiguration(v *viper.Viper) (Configuration, error) {
	var c Configuration
	err := v.Unmarshal(
		&c,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		),
	)

	if err != nil {
		return Configuration{}, fmt.Errorf("unable to unmarshal configuration: %w", err)
	}

	c.Port, err = ParsePort(v.Get(PortKey))
	if err != nil {
		return Configuration{}, err
	}

	if len(c.CORSOrigin) == 0 {
		c.CORSOrigin = DefaultCORSOrigin
	}

	if len(c.LogLevel) == 0 {
		c.LogLevel = DefaultLogLevel
	}

	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}

	if c.IdleTimeout <= 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}

	return c, nil
}
