// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics provides configurability for Prometheus-based metrics.  The more general go-kit interfaces
are exposed alongside the raw Prometheus vectors, so that infrastructure such as listeners can remain
agnostic of the metrics backend.
*/
package xmetrics
