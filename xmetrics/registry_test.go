// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistryPreregistered(t *testing.T) {
	var (
		require = require.New(t)

		o = &Options{
			Namespace:               "test",
			Subsystem:               "basic",
			Pedantic:                true,
			DisableGoCollector:      true,
			DisableProcessCollector: true,
			Metrics: []Metric{
				{Name: "counter", Type: CounterType, Help: "a test counter", LabelNames: []string{"code"}},
				{Name: "gauge", Type: GaugeType, Help: "a test gauge"},
				{Name: "histogram", Type: HistogramType, Buckets: []float64{0.5, 1.0, 1.5}},
			},
		}
	)

	r, err := NewRegistry(o)
	require.NoError(err)
	require.NotNil(r)

	t.Run("CounterVec", func(t *testing.T) {
		assert := assert.New(t)
		preregistered := r.NewCounterVec("counter")
		assert.NotNil(preregistered)
		assert.Equal(preregistered, r.NewCounterVec("counter"))

		adHoc := r.NewCounterVec("new_counter")
		assert.NotNil(adHoc)
		assert.Equal(adHoc, r.NewCounterVec("new_counter"))

		assert.Panics(func() { r.NewCounterVec("gauge") })
		assert.Panics(func() { r.NewCounterVec("histogram") })
	})

	t.Run("GaugeVec", func(t *testing.T) {
		assert := assert.New(t)
		preregistered := r.NewGaugeVec("gauge")
		assert.NotNil(preregistered)
		assert.Equal(preregistered, r.NewGaugeVec("gauge"))

		assert.Panics(func() { r.NewGaugeVec("counter") })
		assert.Panics(func() { r.NewGaugeVec("histogram") })
	})

	t.Run("HistogramVec", func(t *testing.T) {
		assert := assert.New(t)
		preregistered := r.NewHistogramVec("histogram")
		assert.NotNil(preregistered)
		assert.Equal(preregistered, r.NewHistogramVec("histogram"))

		assert.Panics(func() { r.NewHistogramVec("counter") })
	})

	t.Run("GoKit", func(t *testing.T) {
		assert := assert.New(t)
		gauge := r.NewGauge("gauge")
		require.NotNil(gauge)
		gauge.Add(2.0)
		gauge.Add(-1.0)

		counter := r.NewCounter("ad_hoc_counter")
		require.NotNil(counter)
		counter.Add(1.0)

		families, err := r.Gather()
		require.NoError(err)

		values := make(map[string]float64)
		for _, f := range families {
			for _, m := range f.GetMetric() {
				switch {
				case m.GetGauge() != nil:
					values[f.GetName()] = m.GetGauge().GetValue()
				case m.GetCounter() != nil:
					values[f.GetName()] = m.GetCounter().GetValue()
				}
			}
		}

		assert.Equal(1.0, values["test_basic_gauge"])
		assert.Equal(1.0, values["test_basic_ad_hoc_counter"])
	})

	t.Run("Handler", func(t *testing.T) {
		assert := assert.New(t)
		response := httptest.NewRecorder()
		r.Handler().ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(http.StatusOK, response.Code)

		body, err := io.ReadAll(response.Body)
		require.NoError(err)
		assert.Contains(string(body), "test_basic_gauge")
	})
}

func testRegistryDuplicate(t *testing.T) {
	r, err := NewRegistry(&Options{
		DisableGoCollector:      true,
		DisableProcessCollector: true,
		Metrics: []Metric{
			{Name: "dupe", Type: CounterType},
			{Name: "dupe", Type: GaugeType},
		},
	})

	assert.Error(t, err)
	assert.Nil(t, r)
}

func testRegistryInvalidMetric(t *testing.T) {
	r, err := NewRegistry(&Options{
		DisableGoCollector:      true,
		DisableProcessCollector: true,
		Metrics:                 []Metric{{Name: "bad", Type: "nosuch"}},
	})

	assert.Error(t, err)
	assert.Nil(t, r)
}

func testRegistryDefaults(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)
	require.NotNil(t, r)

	families, err := r.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestRegistry(t *testing.T) {
	t.Run("Preregistered", testRegistryPreregistered)
	t.Run("Duplicate", testRegistryDuplicate)
	t.Run("InvalidMetric", testRegistryInvalidMetric)
	t.Run("Defaults", testRegistryDefaults)
}
