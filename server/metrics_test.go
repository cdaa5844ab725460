// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/beacon/xmetrics"
)

func TestMetrics(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	r, err := xmetrics.NewRegistry(&xmetrics.Options{
		DisableGoCollector:      true,
		DisableProcessCollector: true,
		Metrics:                 Metrics(),
	})

	require.NoError(err)
	require.NotNil(r)

	assert.NotNil(r.NewCounterVec(APIRequestsTotal))
	assert.NotNil(r.NewGaugeVec(InFlightRequests))
	assert.NotNil(r.NewHistogramVec(RequestDurationSeconds))
	assert.NotNil(r.NewGauge(ActiveConnections))
	assert.NotNil(r.NewCounter(RejectedConnections))
}

func TestNewInstrumenter(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	r, err := xmetrics.NewRegistry(&xmetrics.Options{
		DisableGoCollector:      true,
		DisableProcessCollector: true,
		Metrics:                 Metrics(),
	})

	require.NoError(err)

	var inFlight float64
	handler := NewInstrumenter(r)(
		http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
			inFlight = testutil.ToFloat64(r.NewGaugeVec(InFlightRequests).WithLabelValues())
			response.WriteHeader(http.StatusAccepted)
		}),
	)

	for i := 0; i < 3; i++ {
		response := httptest.NewRecorder()
		handler.ServeHTTP(response, httptest.NewRequest("GET", "/", nil))
		assert.Equal(http.StatusAccepted, response.Code)
	}

	assert.Equal(1.0, inFlight)
	assert.Zero(testutil.ToFloat64(r.NewGaugeVec(InFlightRequests).WithLabelValues()))
	assert.Equal(3.0, testutil.ToFloat64(r.NewCounterVec(APIRequestsTotal).WithLabelValues("202", "get")))
	assert.Equal(1, testutil.CollectAndCount(r.NewHistogramVec(RequestDurationSeconds)))
}
