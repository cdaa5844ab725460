// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"time"
)

const (
	// DefaultServerName is the name used for logging and metrics when none is supplied
	DefaultServerName = "beacon"

	// DefaultPort is the default value for the port of the primary server
	DefaultPort = 8080

	// BindHost is the host the primary server binds to.  It is always every interface.
	BindHost = "0.0.0.0"

	// DefaultCORSOrigin is the allowed origin when none is configured
	DefaultCORSOrigin = "*"

	DefaultLogLevel          = "info"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultIdleTimeout       = 60 * time.Second

	// metricsSuffix is appended to the server name to produce the metrics server name
	metricsSuffix = ".metrics"
)

// MetricsName produces the name of the metrics server that accompanies the named primary server
func MetricsName(name string) string {
	return name + metricsSuffix
}
