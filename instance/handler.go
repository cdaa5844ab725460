// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package instance

import (
	"net/http"

	"github.com/ugorji/go/codec"
	"github.com/xmidt-org/beacon/xhttp"
)

const ContentType = "application/json; charset=utf-8"

var jsonHandle = &codec.JsonHandle{
	BasicHandle: codec.BasicHandle{
		TypeInfos: codec.NewTypeInfos([]string{"json"}),
	},
}

// Response is the body returned for every identifier request
type Response struct {
	ID string `json:"id"`
}

// MarshalBody encodes the JSON response body for this identifier.
func MarshalBody(id ID) ([]byte, error) {
	if len(id) == 0 {
		return nil, ErrEmptyID
	}

	var body []byte
	if err := codec.NewEncoderBytes(&body, jsonHandle).Encode(Response{ID: id.String()}); err != nil {
		return nil, err
	}

	return body, nil
}

// NewHandler returns an http.Handler that writes the identifier as JSON with a 200 status.  The body is
// encoded once, here, and every request receives the same bytes.
func NewHandler(id ID) (http.Handler, error) {
	body, err := MarshalBody(id)
	if err != nil {
		return nil, err
	}

	return xhttp.Constant{
		Code:   http.StatusOK,
		Header: http.Header{"Content-Type": {ContentType}},
		Body:   body,
	}, nil
}
