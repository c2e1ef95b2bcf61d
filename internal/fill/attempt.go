// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fill

import (
	"slices"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// FrameScope selects which frames a page-agent instruction targets.
type FrameScope string

const (
	// ScopeTopFrame targets the top frame only.
	ScopeTopFrame FrameScope = "top"

	// ScopeAllFrames targets every injected frame. Foreign-origin
	// frames within the scope are still gated by AllowForeign.
	ScopeAllFrames FrameScope = "all"
)

// Attempt is one step of the escalation plan: which frames to address,
// whether foreign-origin frames may be filled, and whether a form
// without a password input is acceptable. The escalation policy is the
// ordered list of these descriptors, not control flow.
type Attempt struct {
	Scope         FrameScope
	AllowForeign  bool
	AllowNoSecret bool
}

// relaxed reports whether this attempt belongs to the relaxation pass,
// which retries earlier frame scopes with the password-input
// requirement lifted.
func (a Attempt) relaxed(baseAllowNoSecret bool) bool {
	return a.AllowNoSecret && !baseAllowNoSecret
}

// satisfied reports whether the attempt's result ends the escalation.
// Base-pass attempts require the important field; relaxation-pass
// attempts accept any filled field.
func (a Attempt) satisfied(result models.FillResult, important string, baseAllowNoSecret bool) bool {
	if a.relaxed(baseAllowNoSecret) {
		return len(result.FilledFields) > 0
	}
	return slices.Contains(result.FilledFields, important)
}

// importantField names the field whose presence in a fill result counts
// as success: openid when requested, the secret otherwise.
func importantField(fields map[string]string) string {
	if _, ok := fields[models.FieldOpenid]; ok {
		return models.FieldOpenid
	}
	return models.FieldSecret
}

// planAttempts builds the escalation sequence for one fill action.
//
// The base pass prefers the frame the user is looking at, widens to
// same-origin frames when all-frames injection succeeded, and reaches
// into foreign frames last, only when the recorded policy does not
// forbid it. When the request includes a secret, the whole sequence is
// repeated with AllowNoSecret set, accommodating login-only forms; the
// dispatcher walks that tail only when the base pass filled nothing.
func planAttempts(fields map[string]string, injectedAllFrames, foreignAllowed bool) []Attempt {
	baseAllowNoSecret := !requestsSecret(fields)

	base := []Attempt{{Scope: ScopeTopFrame, AllowNoSecret: baseAllowNoSecret}}
	if injectedAllFrames {
		base = append(base, Attempt{Scope: ScopeAllFrames, AllowNoSecret: baseAllowNoSecret})
	}
	if foreignAllowed {
		base = append(base, Attempt{Scope: scopeFor(injectedAllFrames), AllowForeign: true, AllowNoSecret: baseAllowNoSecret})
	}

	if baseAllowNoSecret {
		return base
	}

	attempts := slices.Clone(base)
	for _, a := range base {
		a.AllowNoSecret = true
		attempts = append(attempts, a)
	}
	return attempts
}

func scopeFor(injectedAllFrames bool) FrameScope {
	if injectedAllFrames {
		return ScopeAllFrames
	}
	return ScopeTopFrame
}

func requestsSecret(fields map[string]string) bool {
	_, ok := fields[models.FieldSecret]
	return ok
}

// foreignAttemptAllowed gates the foreign-frame escalation step: it is
// skipped only when every recorded decision for the origin is an
// explicit refusal. No recorded decision means the page agent may ask.
func foreignAttemptAllowed(policy models.ForeignFillPolicy) bool {
	if len(policy) == 0 {
		return true
	}
	for _, allow := range policy {
		if allow {
			return true
		}
	}
	return false
}
