// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FillRequest is the instruction sent to the page agent in one frame.
// Ephemeral; never persisted.
type FillRequest struct {
	// Origin is the scheme+host+port of the top-level page.
	Origin string `json:"origin"`

	// Login is the entry name, shown by the agent in foreign-frame
	// confirmation prompts.
	Login string `json:"login"`

	// Fields maps credential field names to the values to inject.
	Fields map[string]string `json:"fields"`

	// AllowForeign permits filling into frames whose origin differs
	// from Origin, subject to a per-frame user confirmation.
	AllowForeign bool `json:"allowForeign"`

	// AllowNoSecret relaxes the requirement that a fillable form
	// must contain a password input.
	AllowNoSecret bool `json:"allowNoSecret"`

	// ForeignFills carries the previously recorded per-foreign-origin
	// decisions for Origin so the agent can skip re-prompting.
	ForeignFills map[string]bool `json:"foreignFills,omitempty"`

	// AutoSubmit asks the agent to submit the form instead of only
	// focusing it. Used by focus-or-submit instructions.
	AutoSubmit bool `json:"autoSubmit,omitempty"`
}

// FillResult is the page agent's answer for one frame.
type FillResult struct {
	// FilledFields lists the credential field names the agent
	// actually injected into the frame.
	FilledFields []string `json:"filledFields"`

	// ForeignFill is the user's confirmation decision when the fill
	// targeted a foreign-origin frame; nil when no decision was made.
	ForeignFill *bool `json:"foreignFill,omitempty"`

	// ForeignOrigin is the origin of the foreign frame the decision
	// applies to.
	ForeignOrigin string `json:"foreignOrigin,omitempty"`
}

// ForeignFillPolicy records, per foreign origin, whether the user
// approved filling into foreign-origin frames embedded under one
// top-level origin. Policies never auto-expire.
type ForeignFillPolicy map[string]bool
