// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"
	"net/textproto"
)

// StaticHeaders returns an Alice-style constructor that emits a static set of headers
// into every response, before the decorated handler runs.  Each response receives its own
// copy of the values, so a handler that appends to one of these headers cannot leak into
// later responses.  If the set of headers is empty, the constructor does no decoration.
func StaticHeaders(extra http.Header) func(http.Handler) http.Handler {
	if len(extra) > 0 {
		// canonicalize once, so headers built without the http.Header methods still work
		preprocessed := make(http.Header, len(extra))
		for k, v := range extra {
			preprocessed[textproto.CanonicalMIMEHeaderKey(k)] = v
		}

		extra = preprocessed
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
				header := response.Header()
				for k, v := range extra {
					header[k] = append(make([]string, 0, len(v)), v...)
				}

				next.ServeHTTP(response, request)
			})
		}
	}

	return func(next http.Handler) http.Handler {
		return next
	}
}
