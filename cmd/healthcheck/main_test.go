// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xmidt-org/beacon/health"
)

func TestRun(t *testing.T) {
	healthy := httptest.NewServer(health.NewHandler())
	defer healthy.Close()

	unhealthy := httptest.NewServer(http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
		response.WriteHeader(http.StatusServiceUnavailable)
	}))

	defer unhealthy.Close()

	t.Run("Flag", func(t *testing.T) {
		t.Setenv(URLEnvironmentVariable, "")
		var stderr bytes.Buffer
		assert.Equal(t, 0, run([]string{"--url", healthy.URL + health.Path}, &stderr))
		assert.Empty(t, stderr.String())
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv(URLEnvironmentVariable, healthy.URL+health.Path)
		var stderr bytes.Buffer
		assert.Equal(t, 0, run([]string{}, &stderr))
	})

	t.Run("FlagOverridesEnvironment", func(t *testing.T) {
		t.Setenv(URLEnvironmentVariable, unhealthy.URL+health.Path)
		var stderr bytes.Buffer
		assert.Equal(t, 0, run([]string{"--url", healthy.URL + health.Path, "--retries", "-1"}, &stderr))
	})

	t.Run("Unhealthy", func(t *testing.T) {
		t.Setenv(URLEnvironmentVariable, "")
		var stderr bytes.Buffer
		assert.Equal(t, 1, run([]string{"--url", unhealthy.URL + health.Path, "--retries", "-1"}, &stderr))
		assert.Contains(t, stderr.String(), applicationName)
	})

	t.Run("BadFlag", func(t *testing.T) {
		var stderr bytes.Buffer
		assert.Equal(t, 1, run([]string{"--nosuchflag"}, &stderr))
	})

	t.Run("Help", func(t *testing.T) {
		var stderr bytes.Buffer
		assert.Equal(t, 0, run([]string{"--help"}, &stderr))
		assert.Contains(t, stderr.String(), "--url")
	})
}
