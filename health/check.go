// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	DefaultURL          = "http://localhost:8080" + Path
	DefaultRetryMax     = 2
	DefaultRetryWaitMin = 250 * time.Millisecond
	DefaultRetryWaitMax = 2 * time.Second
	DefaultTimeout      = 5 * time.Second
)

// ErrUnhealthy indicates that the health endpoint answered, but not with a healthy response
var ErrUnhealthy = errors.New("unhealthy")

// CheckOptions configures a single health probe
type CheckOptions struct {
	// URL is the full health endpoint URL.  Defaults to DefaultURL.
	URL string

	// RetryMax is the number of retries after the first attempt.  Negative values disable retries.
	// Zero means DefaultRetryMax.
	RetryMax int

	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Timeout bounds each individual attempt.  Defaults to DefaultTimeout.
	Timeout time.Duration

	// Logger receives the retry client's output.  If unset, sallust.Default() is used.
	Logger *zap.Logger
}

func (o CheckOptions) url() string {
	if len(o.URL) > 0 {
		return o.URL
	}

	return DefaultURL
}

func (o CheckOptions) retryMax() int {
	switch {
	case o.RetryMax < 0:
		return 0
	case o.RetryMax == 0:
		return DefaultRetryMax
	default:
		return o.RetryMax
	}
}

func (o CheckOptions) newClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = o.retryMax()
	client.RetryWaitMin = DefaultRetryWaitMin
	if o.RetryWaitMin > 0 {
		client.RetryWaitMin = o.RetryWaitMin
	}

	client.RetryWaitMax = DefaultRetryWaitMax
	if o.RetryWaitMax > 0 {
		client.RetryWaitMax = o.RetryWaitMax
	}

	client.HTTPClient.Timeout = DefaultTimeout
	if o.Timeout > 0 {
		client.HTTPClient.Timeout = o.Timeout
	}

	logger := o.Logger
	if logger == nil {
		logger = sallust.Default()
	}

	client.Logger = leveledLogger{logger.Sugar()}
	return client
}

// Check performs a GET against the health endpoint and returns nil only for a 200 response
// whose body is exactly Body.
func Check(ctx context.Context, o CheckOptions) error {
	request, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, o.url(), nil)
	if err != nil {
		return fmt.Errorf("unable to create health request: %w", err)
	}

	response, err := o.newClient().Do(request)
	if err != nil {
		return fmt.Errorf("health request to %s failed: %w", o.url(), err)
	}

	defer response.Body.Close()
	body, err := io.ReadAll(io.LimitReader(response.Body, 1024))
	if err != nil {
		return fmt.Errorf("unable to read health response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, response.StatusCode)
	}

	if text := strings.TrimSpace(string(body)); text != Body {
		return fmt.Errorf("%w: body %q", ErrUnhealthy, text)
	}

	return nil
}

// leveledLogger adapts zap onto retryablehttp.LeveledLogger
type leveledLogger struct {
	*zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.Errorw(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.Infow(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.Warnw(msg, keysAndValues...)
}

var _ retryablehttp.LeveledLogger = leveledLogger{}
