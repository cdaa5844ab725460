// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/beacon/cors"
	"github.com/xmidt-org/beacon/health"
	"github.com/xmidt-org/beacon/instance"
	"github.com/xmidt-org/beacon/logging"
	"github.com/xmidt-org/beacon/xhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	// DefaultName is the operation name reported by the tracing decorator
	DefaultName = "beacon"

	RootPath = "/"
	APIPath  = "/api"
)

var (
	// readMethods are served by every route.  HEAD answers with the GET status and headers.
	readMethods = []string{http.MethodGet, http.MethodHead}

	notFound         = xhttp.Constant{Code: http.StatusNotFound}
	methodNotAllowed = xhttp.Constant{Code: http.StatusMethodNotAllowed}
)

// Options describes the primary handler
type Options struct {
	// ID is the process identifier served on every non-health GET path.  It is required.
	ID instance.ID

	// CORSOrigin is the allowed origin.  If empty, cors.Wildcard is used.
	CORSOrigin string

	// Logger is placed into each request's context.  If nil, the sallust default logger is used.
	Logger *zap.Logger

	// Instrument is an optional outermost decorator, normally server.NewInstrumenter
	Instrument func(http.Handler) http.Handler

	// Name is the tracing operation name.  If unset, DefaultName is used.
	Name string
}

func (o *Options) name() string {
	if len(o.Name) > 0 {
		return o.Name
	}

	return DefaultName
}

// NewRouter builds the router for the primary server.  Paths are matched exactly as sent: no
// cleaning and no redirects.  The catch-all route is registered last, so named routes take precedence.
func NewRouter(o Options) (*mux.Router, error) {
	idHandler, err := instance.NewHandler(o.ID)
	if err != nil {
		return nil, err
	}

	var (
		router = mux.NewRouter()
		access = alice.New(logging.Access).Then(idHandler)
	)

	router.SkipClean(true)
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = methodNotAllowed

	router.Handle(health.Path, health.NewHandler()).Methods(readMethods...)
	router.Handle(RootPath, access).Methods(readMethods...)
	router.Handle(APIPath, access).Methods(readMethods...)
	router.Handle(APIPath+"/", access).Methods(readMethods...)

	// last resort: any other path still yields the identifier
	router.PathPrefix(RootPath).Handler(access).Methods(readMethods...)

	return router, nil
}

// NewHandler produces the complete primary handler: cross-origin decoration and preflight handling
// wrapped around the router, with the request logger in context.
func NewHandler(o Options) (http.Handler, error) {
	router, err := NewRouter(o)
	if err != nil {
		return nil, err
	}

	chain := alice.New()
	if o.Instrument != nil {
		chain = chain.Append(o.Instrument)
	}

	chain = chain.Append(
		cors.NewConstructor(o.CORSOrigin),
		logging.Enrich(o.Logger),
	)

	return otelhttp.NewHandler(chain.Then(router), o.name()), nil
}
