// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	DefaultNamespace = "beacon"
	DefaultSubsystem = "server"
)

// Options is the configurable options for creating a Prometheus registry
type Options struct {
	// Namespace is the namespace for all metrics in the registry.  If not supplied, DefaultNamespace is used.
	Namespace string

	// Subsystem is the subsystem for all metrics in the registry.  If not supplied, DefaultSubsystem is used.
	Subsystem string

	// Pedantic indicates whether the registry is created via NewPedanticRegistry().  By default, this is false.  Set
	// to true for testing or development.
	Pedantic bool

	// DisableGoCollector controls whether the Go Collector is registered with the Registry.
	DisableGoCollector bool

	// DisableProcessCollector controls whether the Process Collector is registered with the Registry.
	DisableProcessCollector bool

	// Metrics defines the set of predefined metrics.  Duplicate names cause an error.
	Metrics []Metric
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil && len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o *Options) metrics() []Metric {
	if o != nil {
		return o.Metrics
	}

	return nil
}

func (o *Options) registry() *prometheus.Registry {
	var pr *prometheus.Registry
	if o != nil && o.Pedantic {
		pr = prometheus.NewPedanticRegistry()
	} else {
		pr = prometheus.NewRegistry()
	}

	if o == nil || !o.DisableGoCollector {
		pr.MustRegister(collectors.NewGoCollector())
	}

	if o == nil || !o.DisableProcessCollector {
		pr.MustRegister(collectors.NewProcessCollector(
			collectors.ProcessCollectorOpts{
				Namespace: o.namespace(),
			},
		))
	}

	return pr
}
