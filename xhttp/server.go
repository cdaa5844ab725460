// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"errors"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewServerLogger adapts a zap Logger onto a golang Logger in a way that is appropriate
// for http.Server.ErrorLog.
func NewServerLogger(logger *zap.Logger) *stdlog.Logger {
	if logger == nil {
		logger = sallust.Default()
	}

	errorLog, err := zap.NewStdLogAt(logger, zapcore.ErrorLevel)
	if err != nil {
		// only possible with an invalid level, and ErrorLevel is always valid
		return zap.NewStdLog(logger)
	}

	return errorLog
}

// NewServerConnStateLogger adapts a zap Logger onto a connection state handler appropriate
// for http.Server.ConnState.
func NewServerConnStateLogger(logger *zap.Logger) func(net.Conn, http.ConnState) {
	if logger == nil {
		logger = sallust.Default()
	}

	return func(c net.Conn, cs http.ConnState) {
		logger.Debug(
			"connection state change",
			zap.Stringer("remoteAddress", c.RemoteAddr()),
			zap.Stringer("state", cs),
		)
	}
}

// StartOptions represents the subset of server options that have to do with how
// an HTTP server is started.
type StartOptions struct {
	// Logger is the zap Logger to use for server startup and error logging.  If not
	// supplied, sallust.Default() is used instead.
	Logger *zap.Logger `json:"-"`

	// Listener is the optional net.Listener to use.  If not supplied, the http.Server default
	// listener is used.
	Listener net.Listener `json:"-"`

	// DisableKeepAlives indicates whether the server should honor keep alives
	DisableKeepAlives bool `json:"disableKeepAlives,omitempty"`
}

// NewStarter returns a starter closure for the given HTTP server.  The start options are first
// applied to the server instance, and the server instance must not have already been started prior
// to invoking this method.
//
// The returned closure calls Serve when a Listener is configured and ListenAndServe otherwise.
func NewStarter(o StartOptions, s httpServer) func() error {
	if o.Logger == nil {
		o.Logger = sallust.Default()
	}

	s.SetKeepAlivesEnabled(!o.DisableKeepAlives)

	var starter func() error
	if o.Listener != nil {
		starter = func() error {
			return s.Serve(o.Listener)
		}
	} else {
		starter = s.ListenAndServe
	}

	return func() error {
		o.Logger.Info("starting server")
		err := starter()
		if errors.Is(err, http.ErrServerClosed) {
			o.Logger.Info("server closed")
		} else {
			o.Logger.Error("server exited", zap.Error(err))
		}

		return err
	}
}

// httpServer exposes the set of methods expected of an http.Server by this package.
type httpServer interface {
	ListenAndServe() error
	Serve(net.Listener) error
	SetKeepAlivesEnabled(bool)
}

// ServerOptions describes the superset of options for both construction an http.Server and
// starting it.
type ServerOptions struct {
	// Logger is the zap Logger to use for server startup and error logging.  If not
	// supplied, sallust.Default() is used instead.
	Logger *zap.Logger `json:"-"`

	// Address is the bind address of the server.  If not supplied, defaults to the internal net/http default.
	Address string `json:"address,omitempty"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `json:"readTimeout,omitempty"`

	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout,omitempty"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration `json:"writeTimeout,omitempty"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration `json:"idleTimeout,omitempty"`

	// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header's
	// keys and values.
	MaxHeaderBytes int `json:"maxHeaderBytes,omitempty"`

	// Listener is the optional net.Listener to use.  If not supplied, the http.Server default
	// listener is used.
	Listener net.Listener `json:"-"`

	// DisableKeepAlives indicates whether the server should honor keep alives
	DisableKeepAlives bool `json:"disableKeepAlives,omitempty"`
}

// StartOptions produces a StartOptions with the corresponding values from this ServerOptions
func (so *ServerOptions) StartOptions() StartOptions {
	logger := so.Logger
	if logger == nil {
		logger = sallust.Default()
	}

	return StartOptions{
		Logger:            logger.With(zap.String("address", so.Address)),
		Listener:          so.Listener,
		DisableKeepAlives: so.DisableKeepAlives,
	}
}

// NewServer creates a Server from a supplied set of options.
func NewServer(o ServerOptions, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              o.Address,
		Handler:           handler,
		ReadTimeout:       o.ReadTimeout,
		ReadHeaderTimeout: o.ReadHeaderTimeout,
		WriteTimeout:      o.WriteTimeout,
		IdleTimeout:       o.IdleTimeout,
		MaxHeaderBytes:    o.MaxHeaderBytes,
		ErrorLog:          NewServerLogger(o.Logger),
		ConnState:         NewServerConnStateLogger(o.Logger),
	}
}
