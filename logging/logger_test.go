// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func testConfigDefault(t *testing.T, o *Options) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	c, err := o.Config()
	require.NoError(err)
	assert.Equal(zapcore.InfoLevel, c.Level.Level())
	assert.False(c.Development)
	assert.Nil(c.Sampling)
	assert.Equal([]string{StdoutFile}, c.OutputPaths)
	assert.Equal([]string{StderrFile}, c.ErrorOutputPaths)
	assert.Equal(TimestampKey(), c.EncoderConfig.TimeKey)
	assert.Equal(MessageKey(), c.EncoderConfig.MessageKey)
}

func testConfigCustom(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		o = &Options{
			Level:            "DEBUG",
			Development:      true,
			OutputPaths:      []string{StderrFile},
			ErrorOutputPaths: []string{StdoutFile},
		}
	)

	c, err := o.Config()
	require.NoError(err)
	assert.Equal(zapcore.DebugLevel, c.Level.Level())
	assert.True(c.Development)
	assert.Equal([]string{StderrFile}, c.OutputPaths)
	assert.Equal([]string{StdoutFile}, c.ErrorOutputPaths)
}

func testConfigInvalidLevel(t *testing.T) {
	_, err := (&Options{Level: "loud"}).Config()
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	t.Run("Nil", func(t *testing.T) { testConfigDefault(t, nil) })
	t.Run("Empty", func(t *testing.T) { testConfigDefault(t, new(Options)) })
	t.Run("Custom", testConfigCustom)
	t.Run("InvalidLevel", testConfigInvalidLevel)
}

func TestNew(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		logger, err := New(nil)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		logger, err := New(&Options{Level: "loud"})
		assert.Error(t, err)
		assert.Nil(t, logger)
	})
}
