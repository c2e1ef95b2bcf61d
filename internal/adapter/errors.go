// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrHostAction is returned when the helper process answers with a
	// non-"ok" status. The wrapped message carries the helper's own
	// diagnostic text.
	ErrHostAction = errors.New("host action failed")

	// ErrBadRequest, ErrNotFound and ErrInternal are mapped from the
	// collaborator's HTTP status codes.
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
	ErrInternal   = errors.New("internal error")
)
