// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/xmidt-org/beacon/api"
	"github.com/xmidt-org/beacon/instance"
	"github.com/xmidt-org/beacon/logging"
	"github.com/xmidt-org/beacon/server"
	"github.com/xmidt-org/beacon/xhttp"
	"github.com/xmidt-org/beacon/xmetrics"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const applicationName = server.DefaultServerName

// Primary is the server that answers health and identifier requests
type Primary struct {
	*server.Server
}

// PrimaryIn is the set of components needed to build the primary server
type PrimaryIn struct {
	fx.In

	Configuration server.Configuration
	Logger        *zap.Logger
	ID            instance.ID
	Registry      xmetrics.Registry
}

func newRegistry() (xmetrics.Registry, error) {
	return xmetrics.NewRegistry(&xmetrics.Options{
		Metrics: server.Metrics(),
	})
}

func newPrimary(in PrimaryIn) (Primary, error) {
	handler, err := api.NewHandler(api.Options{
		ID:         in.ID,
		CORSOrigin: in.Configuration.CORSOrigin,
		Logger:     in.Logger,
		Instrument: server.NewInstrumenter(in.Registry),
		Name:       applicationName,
	})

	if err != nil {
		return Primary{}, err
	}

	return Primary{
		Server: &server.Server{
			Name: applicationName,
			Options: xhttp.ServerOptions{
				Logger:            in.Logger,
				Address:           in.Configuration.Address(),
				ReadHeaderTimeout: in.Configuration.ReadHeaderTimeout,
				IdleTimeout:       in.Configuration.IdleTimeout,
			},
			Handler:        handler,
			MaxConnections: in.Configuration.MaxConnections,
			Active:         in.Registry.NewGauge(server.ActiveConnections),
			Rejected:       in.Registry.NewCounter(server.RejectedConnections),
		},
	}, nil
}

// exitOnFailure shuts the application down with a nonzero status when a server dies unexpectedly
func exitOnFailure(logger *zap.Logger, shutdowner fx.Shutdowner) func(error) {
	return func(err error) {
		logger.Error("server failed", zap.Error(err))
		shutdowner.Shutdown(fx.ExitCode(1))
	}
}

func startPrimary(lc fx.Lifecycle, sh fx.Shutdowner, cfg server.Configuration, logger *zap.Logger, id instance.ID, p Primary) {
	p.OnExit = exitOnFailure(logger, sh)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Start(ctx); err != nil {
				return err
			}

			logger.Info(
				"beacon listening",
				zap.String("url", cfg.URL()),
				zap.String("corsOrigin", cfg.CORSOrigin),
				zap.Stringer("id", id),
			)

			return nil
		},
		OnStop: p.Stop,
	})
}

// startMetrics runs the Prometheus server, if one is configured
func startMetrics(lc fx.Lifecycle, sh fx.Shutdowner, cfg server.Configuration, logger *zap.Logger, r xmetrics.Registry) {
	if len(cfg.MetricsAddress) == 0 {
		logger.Info("metrics server disabled")
		return
	}

	s := &server.Server{
		Name: server.MetricsName(applicationName),
		Options: xhttp.ServerOptions{
			Logger:            logger,
			Address:           cfg.MetricsAddress,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		Handler: r.Handler(),
		OnExit:  exitOnFailure(logger, sh),
	}

	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})
}

// configure resolves the configuration and logger prior to building the application, so that
// invalid settings are reported before anything is bound.  Usage and flag errors go to output.
func configure(arguments []string, output io.Writer) (server.Configuration, *zap.Logger, error) {
	var (
		v  = server.NewViper()
		fs = server.NewFlagSet(applicationName)
	)

	fs.SetOutput(output)

	if err := server.ParseAndBind(v, fs, arguments); err != nil {
		return server.Configuration{}, nil, err
	}

	cfg, err := server.LoadConfiguration(v)
	if err != nil {
		return server.Configuration{}, nil, err
	}

	logger, err := logging.New(&logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return server.Configuration{}, nil, fmt.Errorf("unable to create logger: %w", err)
	}

	return cfg, logger, nil
}

func newApp(cfg server.Configuration, logger *zap.Logger, options ...fx.Option) *fx.App {
	return fx.New(
		fx.Supply(cfg, logger),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		fx.Provide(
			instance.NewID,
			newRegistry,
			newPrimary,
		),
		fx.Invoke(
			startPrimary,
			startMetrics,
		),
		fx.Options(options...),
	)
}

func run(arguments []string, stderr io.Writer) int {
	cfg, logger, err := configure(arguments, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", applicationName, err)
		return 1
	}

	defer logger.Sync()

	app := newApp(cfg, logger)
	if err := app.Err(); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", applicationName, err)
		return 1
	}

	if err := app.Start(context.Background()); err != nil {
		logger.Error("unable to start", zap.Error(err))
		fmt.Fprintf(stderr, "%s: %s\n", applicationName, err)
		return 1
	}

	signal := <-app.Wait()
	logger.Info("shutting down", zap.Any("signal", signal.Signal), zap.Int("exitCode", signal.ExitCode))

	ctx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("unclean shutdown", zap.Error(err))
		if signal.ExitCode == 0 {
			return 1
		}
	}

	return signal.ExitCode
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
