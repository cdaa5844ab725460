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
	"github.com/xmidt-org/beacon/health"
	"github.com/xmidt-org/beacon/logging"
	"go.uber.org/zap"
)

const applicationName = "healthcheck"

// URLEnvironmentVariable overrides the default health URL.  The --url flag overrides both.
const URLEnvironmentVariable = "HEALTH_URL"

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.String("url", "", fmt.Sprintf("the health URL to probe (env %s, default %s)", URLEnvironmentVariable, health.DefaultURL))
	fs.Int("retries", health.DefaultRetryMax, "retries after the first attempt, negative to disable")
	fs.Duration("timeout", health.DefaultTimeout, "timeout for each attempt")
	fs.Bool("verbose", false, "log each attempt to stderr")
	return fs
}

func checkOptions(fs *pflag.FlagSet) (health.CheckOptions, error) {
	var (
		o   health.CheckOptions
		err error
	)

	if o.URL, err = fs.GetString("url"); err != nil {
		return o, err
	}

	if len(o.URL) == 0 {
		o.URL = os.Getenv(URLEnvironmentVariable)
	}

	if o.RetryMax, err = fs.GetInt("retries"); err != nil {
		return o, err
	}

	if o.Timeout, err = fs.GetDuration("timeout"); err != nil {
		return o, err
	}

	verbose, err := fs.GetBool("verbose")
	if err != nil {
		return o, err
	}

	if verbose {
		o.Logger, err = logging.New(&logging.Options{
			Level:       "debug",
			OutputPaths: []string{logging.StderrFile},
		})
	} else {
		o.Logger = zap.NewNop()
	}

	return o, err
}

func run(arguments []string, stderr io.Writer) int {
	fs := newFlagSet()
	fs.SetOutput(stderr)
	if err := fs.Parse(arguments); errors.Is(err, pflag.ErrHelp) {
		return 0
	} else if err != nil {
		return 1
	}

	o, err := checkOptions(fs)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", applicationName, err)
		return 1
	}

	if err := health.Check(context.Background(), o); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", applicationName, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
