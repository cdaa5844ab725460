// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"net/http"
	"time"

	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/sallust/sallusthttp"
	"go.uber.org/zap"
)

// Enrich returns an Alice-style constructor that places the given logger into each request's context.
// Downstream handlers retrieve it with sallusthttp.Get.  A nil logger leaves requests untouched.
func Enrich(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			next.ServeHTTP(
				response,
				request.WithContext(sallust.With(request.Context(), logger)),
			)
		})
	}
}

// Access is an Alice-style constructor that writes one info line per request, carrying the
// request time, the method, and the request URI.  The logger is taken from the request context.
func Access(next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		sallusthttp.Get(request).Info(
			"request",
			zap.Time("requestTime", time.Now().UTC()),
			zap.String("method", request.Method),
			zap.String("path", request.URL.RequestURI()),
		)

		next.ServeHTTP(response, request)
	})
}
