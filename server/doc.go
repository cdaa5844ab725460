// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package server provides the standard approach to configuring and executing the beacon
HTTP servers: the primary server that answers probes and the optional metrics server.
*/
package server
