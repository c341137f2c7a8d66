// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It probes the dashboard server, then hands the terminal over to the UI
// until the user quits or the process is interrupted.
package client
