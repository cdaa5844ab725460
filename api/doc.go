// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package api assembles the primary beacon handler.  Every request receives the cross-origin
headers and OPTIONS requests are answered before routing.  The router then serves the health
path, and the identifier on every other GET path.
*/
package api
