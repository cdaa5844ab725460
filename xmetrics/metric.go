// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	CounterType   = "counter"
	GaugeType     = "gauge"
	HistogramType = "histogram"
)

// Metric describes a single metric that will be preregistered.  This type loosely
// corresponds with Prometheus' Opts struct.
type Metric struct {
	// Name is the required name of this metric.
	Name string

	// Type is the required type of metric.  This value must be one of the constants defined in this package.
	Type string

	// Help is the help string for this metric.  If not supplied, the metric's name is used
	Help string

	// LabelNames are the Prometheus label names for this metric.  This field is optional.
	LabelNames []string

	// Buckets describes the observation buckets for a histogram.  This field is ignored for other metric types.
	Buckets []float64
}

// NewCollector creates a Prometheus metric vector from a Metric descriptor.  The name must not be empty.
func NewCollector(namespace, subsystem string, m Metric) (prometheus.Collector, error) {
	if len(m.Name) == 0 {
		return nil, errors.New("a name is required for a metric")
	}

	help := m.Help
	if len(help) == 0 {
		help = m.Name
	}

	switch m.Type {
	case CounterType:
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      m.Name,
			Help:      help,
		}, m.LabelNames), nil

	case GaugeType:
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      m.Name,
			Help:      help,
		}, m.LabelNames), nil

	case HistogramType:
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      m.Name,
			Help:      help,
			Buckets:   m.Buckets,
		}, m.LabelNames), nil

	default:
		return nil, fmt.Errorf("unsupported metric type: %s", m.Type)
	}
}
