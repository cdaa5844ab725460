// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/xmidt-org/beacon/xhttp"
	"github.com/xmidt-org/beacon/xlistener"
	"github.com/xmidt-org/beacon/xmetrics"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// ErrNotStarted is returned by operations that require a running server
var ErrNotStarted = errors.New("server has not been started")

// Server binds a listener and serves a handler on it.  Binding happens synchronously in Start,
// so that a port conflict is reported to the caller rather than from a background goroutine.
type Server struct {
	// Name is the human-readable identifier for this server, used in logging
	Name string

	Options xhttp.ServerOptions
	Handler http.Handler

	// MaxConnections, Active, and Rejected are passed to the listener.  See xlistener.Options.
	MaxConnections int
	Active         xmetrics.Adder
	Rejected       xmetrics.Adder

	// OnExit, if set, is invoked when the server stops for any reason other than Stop.
	OnExit func(error)

	lock       sync.Mutex
	listener   net.Listener
	httpServer *http.Server
}

func (s *Server) logger() *zap.Logger {
	logger := s.Options.Logger
	if logger == nil {
		logger = sallust.Default()
	}

	return logger.With(zap.String("server", s.Name))
}

// Start binds the listener and begins serving in a separate goroutine.  Start is not idempotent:
// a second call returns an error.
func (s *Server) Start(context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.httpServer != nil {
		return fmt.Errorf("server %s has already been started", s.Name)
	}

	logger := s.logger()
	l, err := xlistener.New(xlistener.Options{
		Logger:         logger,
		MaxConnections: s.MaxConnections,
		Active:         s.Active,
		Rejected:       s.Rejected,
		Address:        s.Options.Address,
	})

	if err != nil {
		return fmt.Errorf("unable to bind server %s to %s: %w", s.Name, s.Options.Address, err)
	}

	o := s.Options
	o.Logger = logger
	o.Listener = l

	s.listener = l
	s.httpServer = xhttp.NewServer(o, s.Handler)
	starter := xhttp.NewStarter(o.StartOptions(), s.httpServer)

	go func() {
		if err := starter(); !errors.Is(err, http.ErrServerClosed) && s.OnExit != nil {
			s.OnExit(err)
		}
	}()

	return nil
}

// Addr returns the bound address, or nil if the server has not been started.
func (s *Server) Addr() net.Addr {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener != nil {
		return s.listener.Addr()
	}

	return nil
}

// Stop gracefully shuts down the server, waiting on active requests until the context is done.
func (s *Server) Stop(ctx context.Context) error {
	s.lock.Lock()
	httpServer := s.httpServer
	s.lock.Unlock()

	if httpServer == nil {
		return ErrNotStarted
	}

	return httpServer.Shutdown(ctx)
}
