// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fill

import "errors"

var (
	// ErrNoFillableForm is returned when every escalation attempt was
	// exhausted with zero filled fields. The wrapped message names the
	// requested fields.
	ErrNoFillableForm = errors.New("no fillable form")

	// ErrTopFrameInjection is returned when the page agent could not be
	// injected into the top frame. Without the top frame no fill can
	// proceed.
	ErrTopFrameInjection = errors.New("top frame injection failed")

	// ErrDecisionAbandoned is returned by [PendingDecision.Wait] when
	// the decision was superseded or cancelled before being resolved.
	ErrDecisionAbandoned = errors.New("pending decision abandoned")
)
