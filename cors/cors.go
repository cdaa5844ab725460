// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package cors decorates every response with a fixed set of cross-origin headers and
// answers preflight requests before any routing happens.
package cors

import (
	"net/http"

	"github.com/xmidt-org/beacon/xhttp"
)

const (
	// Wildcard is the origin used when no origin is configured
	Wildcard = "*"

	AllowOriginHeader  = "Access-Control-Allow-Origin"
	AllowMethodsHeader = "Access-Control-Allow-Methods"
	AllowHeadersHeader = "Access-Control-Allow-Headers"
	VaryHeader         = "Vary"

	AllowedMethods = "GET,OPTIONS"
	AllowedHeaders = "Content-Type,Authorization"
)

// preflight is the response to any OPTIONS request
var preflight = xhttp.Constant{Code: http.StatusNoContent}

// Origin returns the given origin, or Wildcard if it is empty.  No other validation is done.
func Origin(origin string) string {
	if len(origin) > 0 {
		return origin
	}

	return Wildcard
}

// Headers returns the cross-origin headers written to every response for the given origin.
func Headers(origin string) http.Header {
	return http.Header{
		AllowOriginHeader:  {Origin(origin)},
		VaryHeader:         {"Origin"},
		AllowMethodsHeader: {AllowedMethods},
		AllowHeadersHeader: {AllowedHeaders},
	}
}

// NewConstructor returns an Alice-style constructor that writes Headers(origin) into every response.
// OPTIONS requests, for any path, are answered with 204 and never reach the decorated handler.
func NewConstructor(origin string) func(http.Handler) http.Handler {
	static := xhttp.StaticHeaders(Headers(origin))
	return func(next http.Handler) http.Handler {
		return static(http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			if request.Method == http.MethodOptions {
				preflight.ServeHTTP(response, request)
				return
			}

			next.ServeHTTP(response, request)
		}))
	}
}
