// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds the zap loggers used by beacon and provides the HTTP
decorators that carry a logger through each request.
*/
package logging
