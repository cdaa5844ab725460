// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"net/http"

	"github.com/xmidt-org/beacon/xhttp"
)

const (
	// Path is the route infrastructure uses to decide whether this process receives traffic
	Path = "/health"

	// Body is the exact text of a healthy response
	Body = "ok"

	ContentType = "text/plain; charset=utf-8"
)

// NewHandler returns the handler for Path, which always answers 200 with Body.
func NewHandler() http.Handler {
	return xhttp.Constant{
		Code:   http.StatusOK,
		Header: http.Header{"Content-Type": {ContentType}},
		Body:   []byte(Body),
	}
}
