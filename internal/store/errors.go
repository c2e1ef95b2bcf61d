// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrUsageNotFound is returned when no usage record exists for a key.
	ErrUsageNotFound = errors.New("usage record not found")
)
