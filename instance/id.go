// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package instance generates the identifier that marks one run of the process and serves it over HTTP.
package instance

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrEmptyID is returned when an operation requires an identifier that was never generated
var ErrEmptyID = errors.New("the instance identifier is empty")

// ID is the random identifier of a single process run.  It is generated once at startup and never changes.
type ID string

// NewID generates a version 4 UUID in its canonical, lowercase form.
func NewID() (ID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("unable to generate instance identifier: %w", err)
	}

	return ID(u.String()), nil
}

func (id ID) String() string {
	return string(id)
}
