// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package health provides the liveness endpoint used by load balancers, along with a client
that probes it.  The endpoint carries no statistics: a running process answers "ok".
*/
package health
