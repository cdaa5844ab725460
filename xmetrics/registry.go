// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the core abstraction for this package.  It is a Prometheus registry that also
// hands out go-kit wrappers for its metrics.
//
// Metrics that were preregistered via Options are returned by name.  Any other name produces an
// ad hoc, unlabeled metric which is cached and returned by subsequent calls.  Asking for a metric
// with a type that differs from the registered one panics.
type Registry interface {
	prometheus.Gatherer
	prometheus.Registerer

	NewCounterVec(name string) *prometheus.CounterVec
	NewGaugeVec(name string) *prometheus.GaugeVec
	NewHistogramVec(name string) *prometheus.HistogramVec

	NewCounter(name string) metrics.Counter
	NewGauge(name string) metrics.Gauge

	// Handler returns the http.Handler that exposes this registry in the Prometheus text format
	Handler() http.Handler
}

type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string

	lock  sync.Mutex
	cache map[string]prometheus.Collector
}

// collector returns the cached collector with the given name, registering the result of
// adHoc if there is none.
func (r *registry) collector(name string, adHoc func() prometheus.Collector) prometheus.Collector {
	r.lock.Lock()
	defer r.lock.Unlock()

	if existing, ok := r.cache[name]; ok {
		return existing
	}

	c := adHoc()
	if err := r.Registry.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			c = already.ExistingCollector
		} else {
			panic(err)
		}
	}

	r.cache[name] = c
	return c
}

func (r *registry) NewCounterVec(name string) *prometheus.CounterVec {
	c := r.collector(name, func() prometheus.Collector {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	counterVec, ok := c.(*prometheus.CounterVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a counter", name))
	}

	return counterVec
}

func (r *registry) NewCounter(name string) metrics.Counter {
	return gokitprometheus.NewCounter(r.NewCounterVec(name))
}

func (r *registry) NewGaugeVec(name string) *prometheus.GaugeVec {
	c := r.collector(name, func() prometheus.Collector {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	gaugeVec, ok := c.(*prometheus.GaugeVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a gauge", name))
	}

	return gaugeVec
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	return gokitprometheus.NewGauge(r.NewGaugeVec(name))
}

func (r *registry) NewHistogramVec(name string) *prometheus.HistogramVec {
	c := r.collector(name, func() prometheus.Collector {
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	histogramVec, ok := c.(*prometheus.HistogramVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a histogram", name))
	}

	return histogramVec
}

func (r *registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}

// NewRegistry creates a Registry and preregisters every metric in the options.
func NewRegistry(o *Options) (Registry, error) {
	r := &registry{
		Registry:  o.registry(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]prometheus.Collector),
	}

	for _, m := range o.metrics() {
		if _, ok := r.cache[m.Name]; ok {
			return nil, fmt.Errorf("duplicate metric: %s", m.Name)
		}

		c, err := NewCollector(r.namespace, r.subsystem, m)
		if err != nil {
			return nil, err
		}

		if err := r.Registry.Register(c); err != nil {
			return nil, fmt.Errorf("error while preregistering metric %s: %w", m.Name, err)
		}

		r.cache[m.Name] = c
	}

	return r, nil
}
