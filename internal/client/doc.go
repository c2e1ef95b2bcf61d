// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive picker application runtime.
//
// It wires the terminal picker, the agent services and the local storage
// into a single process lifecycle.
package client
