// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fill

import (
	"context"

	"github.com/MKhiriev/go-pass-autofill/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/page_agent_mock.go -package=mock

// PageAgent is the round-trip boundary to the script injected into page
// frames. Every call is one message send that resolves or fails within
// the configured injection timeout; the dispatcher never retries a
// failed round-trip.
type PageAgent interface {
	// InjectTopFrame injects the agent into the top frame. Failure is
	// fatal for the whole fill action.
	InjectTopFrame(ctx context.Context) error

	// InjectAllFrames is the best-effort injection into every
	// sub-frame. Failure narrows later attempts to the top frame.
	InjectAllFrames(ctx context.Context) error

	// FillLogin dispatches one fill instruction to the frames selected
	// by scope and merges the per-frame answers.
	FillLogin(ctx context.Context, scope FrameScope, request models.FillRequest) (models.FillResult, error)

	// FocusOrSubmit focuses the filled form, or submits it when the
	// request carries AutoSubmit, at the given scope.
	FocusOrSubmit(ctx context.Context, scope FrameScope, request models.FillRequest) error
}

// PolicyStore persists the per-origin foreign-fill decisions consulted
// and updated by the dispatcher.
type PolicyStore interface {
	// ForeignFillPolicy returns the recorded decisions for one page
	// origin, keyed by foreign origin. An empty map means no decision
	// was ever recorded.
	ForeignFillPolicy(ctx context.Context, origin string) (models.ForeignFillPolicy, error)

	// SaveForeignFillDecision records one user decision for the
	// (origin, foreignOrigin) pair, overwriting any previous one.
	SaveForeignFillDecision(ctx context.Context, origin, foreignOrigin string, allow bool) error
}
