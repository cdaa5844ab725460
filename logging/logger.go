// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// StdoutFile is the output path that sends log output to os.Stdout
	StdoutFile = "stdout"

	// StderrFile is the output path that sends log output to os.Stderr
	StderrFile = "stderr"

	// DefaultLevel is used when Options does not specify a level
	DefaultLevel = "info"
)

var (
	messageKey   = "msg"
	errorKey     = "error"
	timestampKey = "ts"
)

// MessageKey returns the logging key to be used for the textual message of the log entry
func MessageKey() string {
	return messageKey
}

// ErrorKey returns the logging key to be used for error instances
func ErrorKey() string {
	return errorKey
}

// TimestampKey returns the logging key to be used for the timestamp
func TimestampKey() string {
	return timestampKey
}

// Options stores the configuration of a Logger.
type Options struct {
	// Level is the minimum level to output: debug, info, warn, or error.  The empty
	// string is equivalent to DefaultLevel.
	Level string `json:"level"`

	// Development puts the logger in development mode, which changes the behavior of DPanic
	// and takes stacktraces more liberally.
	Development bool `json:"development"`

	// OutputPaths are the zap sinks for log output.  Defaults to stdout.
	OutputPaths []string `json:"outputPaths"`

	// ErrorOutputPaths are the zap sinks for internal logger errors.  Defaults to stderr.
	ErrorOutputPaths []string `json:"errorOutputPaths"`
}

func (o *Options) level() string {
	if o != nil && len(o.Level) > 0 {
		return strings.ToLower(o.Level)
	}

	return DefaultLevel
}

func (o *Options) development() bool {
	if o != nil {
		return o.Development
	}

	return false
}

func (o *Options) outputPaths() []string {
	if o != nil && len(o.OutputPaths) > 0 {
		return o.OutputPaths
	}

	return []string{StdoutFile}
}

func (o *Options) errorOutputPaths() []string {
	if o != nil && len(o.ErrorOutputPaths) > 0 {
		return o.ErrorOutputPaths
	}

	return []string{StderrFile}
}

// Config produces the zap.Config described by these options.  The options object can be nil,
// in which case a JSON configuration at DefaultLevel that writes to os.Stdout is returned.
func (o *Options) Config() (zap.Config, error) {
	level, err := zap.ParseAtomicLevel(o.level())
	if err != nil {
		return zap.Config{}, fmt.Errorf("invalid log level %q: %w", o.level(), err)
	}

	c := zap.NewProductionConfig()
	c.Level = level
	c.Development = o.development()

	// every request line matters for a probe, so nothing is sampled away
	c.Sampling = nil
	c.OutputPaths = o.outputPaths()
	c.ErrorOutputPaths = o.errorOutputPaths()
	c.EncoderConfig.MessageKey = MessageKey()
	c.EncoderConfig.TimeKey = TimestampKey()
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return c, nil
}

// New creates a zap Logger from a set of options.  The options object can be nil.
func New(o *Options) (*zap.Logger, error) {
	c, err := o.Config()
	if err != nil {
		return nil, err
	}

	return c.Build()
}
