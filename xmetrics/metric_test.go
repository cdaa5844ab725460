// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector(t *testing.T) {
	testData := []struct {
		name     string
		metric   Metric
		expected interface{}
	}{
		{"Counter", Metric{Name: "c", Type: CounterType, LabelNames: []string{"code"}}, (*prometheus.CounterVec)(nil)},
		{"Gauge", Metric{Name: "g", Type: GaugeType, Help: "a gauge"}, (*prometheus.GaugeVec)(nil)},
		{"Histogram", Metric{Name: "h", Type: HistogramType, Buckets: []float64{1, 2}}, (*prometheus.HistogramVec)(nil)},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			c, err := NewCollector("ns", "sub", record.metric)
			require.NoError(t, err)
			assert.IsType(t, record.expected, c)
		})
	}

	t.Run("NoName", func(t *testing.T) {
		c, err := NewCollector("ns", "sub", Metric{Type: CounterType})
		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("BadType", func(t *testing.T) {
		c, err := NewCollector("ns", "sub", Metric{Name: "x", Type: "summary"})
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}
