// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xmidt-org/beacon/xmetrics"
)

const (
	APIRequestsTotal       = "api_requests_total"
	InFlightRequests       = "in_flight_requests"
	RequestDurationSeconds = "request_duration_seconds"
	ActiveConnections      = "active_connections"
	RejectedConnections    = "rejected_connections_total"
)

// Metrics is the module function for this package that describes the request handling
// and listener metrics.
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       APIRequestsTotal,
			Type:       xmetrics.CounterType,
			Help:       "A counter for requests to the handler",
			LabelNames: []string{"code", "method"},
		},
		{
			Name: InFlightRequests,
			Type: xmetrics.GaugeType,
			Help: "A gauge of requests currently being served by the handler.",
		},
		{
			Name:       RequestDurationSeconds,
			Type:       xmetrics.HistogramType,
			Help:       "A histogram of latencies for requests.",
			Buckets:    []float64{.005, .01, .025, .05, .1, .25, .5, 1},
			LabelNames: []string{"code", "method"},
		},
		{
			Name: ActiveConnections,
			Type: xmetrics.GaugeType,
			Help: "The number of active connections associated with the primary listener",
		},
		{
			Name: RejectedConnections,
			Type: xmetrics.CounterType,
			Help: "The number of connections rejected because the primary listener was at capacity",
		},
	}
}

// NewInstrumenter returns an Alice-style constructor that records request counts, latencies, and
// in-flight requests in the given registry, which must contain the metrics from Metrics().
func NewInstrumenter(r xmetrics.Registry) func(http.Handler) http.Handler {
	var (
		requests = r.NewCounterVec(APIRequestsTotal)
		inFlight = r.NewGaugeVec(InFlightRequests).WithLabelValues()
		duration = r.NewHistogramVec(RequestDurationSeconds)
	)

	return func(next http.Handler) http.Handler {
		return promhttp.InstrumentHandlerInFlight(
			inFlight,
			promhttp.InstrumentHandlerCounter(
				requests,
				promhttp.InstrumentHandlerDuration(duration, next),
			),
		)
	}
}
