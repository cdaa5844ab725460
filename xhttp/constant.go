// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"
	"net/textproto"
	"strconv"
)

// Constant is an http.Handler that writes a prebuilt response.  Header keys are canonicalized as they
// are written, so literal http.Header values need not use canonical keys.
//
// A nonempty Body is announced with Content-Length.  HEAD requests receive the same status and headers
// as GET, but no body.
type Constant struct {
	Code   int
	Header http.Header
	Body   []byte
}

// ServeHTTP writes the configured information out to the response.
func (c Constant) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	header := response.Header()
	for k, values := range c.Header {
		k = textproto.CanonicalMIMEHeaderKey(k)
		for _, v := range values {
			header.Add(k, v)
		}
	}

	if len(c.Body) > 0 {
		header.Set("Content-Length", strconv.Itoa(len(c.Body)))
	}

	response.WriteHeader(c.Code)
	if len(c.Body) > 0 && request.Method != http.MethodHead {
		response.Write(c.Body)
	}
}
