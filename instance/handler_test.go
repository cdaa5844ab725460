// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package instance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID ID = "3f2c5a9e-8b1d-4c7e-9a0f-6d4b2e1c8a75"

func TestMarshalBody(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		body, err := MarshalBody("")
		assert.ErrorIs(t, err, ErrEmptyID)
		assert.Nil(t, body)
	})

	t.Run("Valid", func(t *testing.T) {
		body, err := MarshalBody(testID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"3f2c5a9e-8b1d-4c7e-9a0f-6d4b2e1c8a75"}`, string(body))
	})
}

func TestNewHandler(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		h, err := NewHandler("")
		assert.ErrorIs(t, err, ErrEmptyID)
		assert.Nil(t, h)
	})

	t.Run("Stable", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
		)

		h, err := NewHandler(testID)
		require.NoError(err)
		require.NotNil(h)

		for _, path := range []string{"/", "/api", "/api/", "/some/other/path"} {
			response := httptest.NewRecorder()
			h.ServeHTTP(response, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(http.StatusOK, response.Code)
			assert.Equal(ContentType, response.Header().Get("Content-Type"))

			var actual Response
			require.NoError(json.Unmarshal(response.Body.Bytes(), &actual))
			assert.Equal(testID.String(), actual.ID)
		}
	})
}
