// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xlistener

import (
	"errors"
	"net"
	"strconv"
	"sync"
	"syscall"

	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/beacon/xmetrics"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// netListen is the factory function for creating a net.Listener.  Only tests would change this variable.
var netListen = net.Listen

// Options defines the available options for configuring a listener
type Options struct {
	// Logger is the zap logger to use for output.  If unset, sallust.Default() is used.
	Logger *zap.Logger

	// MaxConnections is the maximum number of active connections the listener will permit.  If this
	// value is not positive, there is no limit to the number of connections.
	MaxConnections int

	// Rejected is incremented each time the listener rejects a connection.  If unset, a go-kit discard Counter is used.
	Rejected xmetrics.Adder

	// Active is updated to reflect the current number of active connections.  If unset, a go-kit discard Gauge is used.
	Active xmetrics.Adder

	// Network is the network to listen on.  This value is only used if Next is unset.  Defaults to "tcp" if unset.
	Network string

	// Address is the address to listen on.  This value is only used if Next is unset.  Defaults to ":http" if unset.
	Address string

	// Next is the net.Listener to decorate.  If this field is set, Network and Address are ignored.
	Next net.Listener
}

// New constructs a new net.Listener using a set of options.
//
// If Next is set, that listener is decorated with connection limiting and metrics.
// Otherwise, a new net.Listener is created and decorated.  In that case the returned listener
// occupies a port and should be cleaned up via Close() if higher level errors occur.
func New(o Options) (net.Listener, error) {
	if o.Logger == nil {
		o.Logger = sallust.Default()
	}

	var semaphore chan struct{}
	if o.MaxConnections > 0 {
		semaphore = make(chan struct{}, o.MaxConnections)
	}

	if o.Rejected == nil {
		o.Rejected = discard.NewCounter()
	}

	if o.Active == nil {
		o.Active = discard.NewGauge()
	}

	next := o.Next
	if next == nil {
		if len(o.Network) == 0 {
			o.Network = "tcp"
		}

		if len(o.Address) == 0 {
			o.Address = ":http"
		}

		var err error
		next, err = netListen(o.Network, o.Address)
		if err != nil {
			return nil, err
		}
	}

	return &listener{
		Listener: next,
		logger: o.Logger.With(
			zap.String("listenNetwork", next.Addr().Network()),
			zap.String("listenAddress", next.Addr().String()),
		),
		semaphore: semaphore,
		rejected:  o.Rejected,
		active:    o.Active,
	}, nil
}

// listener decorates a net.Listener with metrics and optional maximum connection enforcement
type listener struct {
	net.Listener
	logger    *zap.Logger
	semaphore chan struct{}
	rejected  xmetrics.Adder
	active    xmetrics.Adder
}

// acquire attempts to obtain a semaphore resource.  Without a semaphore (i.e. no maximum connections)
// this method immediately returns true.  Otherwise, the semaphore must be immediately acquired or this method returns false.
func (l *listener) acquire() bool {
	if l.semaphore == nil {
		l.active.Add(1.0)
		return true
	}

	select {
	case l.semaphore <- struct{}{}:
		l.active.Add(1.0)
		return true
	default:
		return false
	}
}

// release returns a semaphore resource to the pool, if set.  This method also decrements the active connection gauge.
func (l *listener) release() {
	l.active.Add(-1.0)
	if l.semaphore != nil {
		<-l.semaphore
	}
}

// Accept invokes the delegate net.Listener's Accept method, then attempts to acquire the semaphore.
// If the semaphore was set and could not be acquired, the accepted connection is immediately closed.
func (l *listener) Accept() (net.Conn, error) {
	for {
		c, err := l.Listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil, err
			}

			sysValue := ""
			var errno syscall.Errno
			if errors.As(err, &errno) {
				sysValue = "0x" + strconv.FormatInt(int64(errno), 16)
			}

			l.logger.Error("failed to accept connection", zap.Error(err), zap.String("sysValue", sysValue))
			if errors.Is(err, syscall.ENFILE) {
				l.logger.Error("ENFILE received.  translating to EMFILE")
				return nil, syscall.EMFILE
			}

			return nil, err
		}

		if !l.acquire() {
			l.logger.Error("rejected connection", zap.String("remoteAddress", c.RemoteAddr().String()))
			l.rejected.Add(1.0)
			c.Close()
			continue
		}

		l.logger.Debug("accepted connection", zap.String("remoteAddress", c.RemoteAddr().String()))
		return &conn{Conn: c, release: l.release}, nil
	}
}

// conn is a decorated net.Conn that supplies feedback to a listener when the connection is closed.
type conn struct {
	net.Conn
	releaseOnce sync.Once
	release     func()
}

// Close closes the decorated connection and invokes release on the listener that created it.  The release
// operation is idempotent.
func (c *conn) Close() error {
	err := c.Conn.Close()
	c.releaseOnce.Do(c.release)
	return err
}
