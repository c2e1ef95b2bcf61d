// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fill drives the escalating form-fill state machine: inject the
// page agent, then try the top frame, same-origin frames, and finally
// foreign-origin frames until the requested credential fields land in a
// form. Foreign-frame fills are gated by a persisted per-origin policy
// fed by explicit user decisions.
package fill

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// state labels for dispatcher logging.
type state string

const (
	stateNotInjected       state = "not_injected"
	stateTopFrameInjected  state = "top_frame_injected"
	stateAllFramesInjected state = "all_frames_injected"
	stateTopFrameOnly      state = "top_frame_only"
	stateFilled            state = "filled"
	stateExhausted         state = "exhausted"
)

// Request is one user-initiated fill action.
type Request struct {
	// Origin is the scheme+host+port of the page being filled.
	Origin string

	// Login is the entry name of the credential being filled.
	Login string

	// Fields maps the credential field names to inject onto their
	// values. Which names are present drives the escalation plan.
	Fields map[string]string

	// AutoSubmit carries the resolved auto-submit preference for the
	// closing focus-or-submit instruction.
	AutoSubmit bool
}

// Dispatcher runs fill requests against a page through the agent. One
// dispatcher may serve many sequential requests; each user-initiated
// fill is a single serialized flow, so no locking is done around the
// policy writes.
type Dispatcher struct {
	agent  PageAgent
	policy PolicyStore
	log    *logger.Logger
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(agent PageAgent, policy PolicyStore, log *logger.Logger) *Dispatcher {
	return &Dispatcher{agent: agent, policy: policy, log: log}
}

// Dispatch runs the escalation plan for one request and returns the
// names of every field filled across all attempts, deduplicated in
// first-seen order.
//
// Top-frame injection failure is fatal. All-frames injection failure is
// not: it narrows the plan to top-frame attempts. A user decision
// returned by a foreign-frame attempt is persisted into the policy store
// immediately, before any further attempt. The relaxation pass (retrying
// with the password-input requirement lifted) is entered only when the
// base pass filled nothing. When an attempt succeeds, one
// focus-or-submit instruction is issued at the same scope and foreign-
// permission level that produced the fill. If every attempt produced
// zero fills the request fails with [ErrNoFillableForm] naming the
// requested fields.
func (d *Dispatcher) Dispatch(ctx context.Context, request Request) ([]string, error) {
	log := d.log.GetChildLogger()
	log.Debug().Str("origin", request.Origin).Str("state", string(stateNotInjected)).Msg("fill started")

	if err := d.agent.InjectTopFrame(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTopFrameInjection, err)
	}
	currentState := stateTopFrameInjected

	injectedAllFrames := true
	if err := d.agent.InjectAllFrames(ctx); err != nil {
		log.Debug().Err(err).Msg("all-frames injection failed, narrowing to top frame")
		injectedAllFrames = false
		currentState = stateTopFrameOnly
	} else {
		currentState = stateAllFramesInjected
	}
	log.Debug().Str("state", string(currentState)).Msg("page agent injected")

	policy, err := d.policy.ForeignFillPolicy(ctx, request.Origin)
	if err != nil {
		return nil, fmt.Errorf("load foreign-fill policy for %q: %w", request.Origin, err)
	}
	if policy == nil {
		policy = models.ForeignFillPolicy{}
	}

	attempts := planAttempts(request.Fields, injectedAllFrames, foreignAttemptAllowed(policy))
	important := importantField(request.Fields)
	baseAllowNoSecret := !requestsSecret(request.Fields)

	var filled []string
	var winning *Attempt
	for _, attempt := range attempts {
		attempt := attempt
		// the relaxation pass only runs when the base pass filled nothing
		if attempt.relaxed(baseAllowNoSecret) && len(filled) > 0 {
			break
		}

		result, err := d.agent.FillLogin(ctx, attempt.Scope, d.fillRequest(request, attempt, policy))
		if err != nil {
			return nil, fmt.Errorf("fill attempt (scope=%s foreign=%t nosecret=%t): %w",
				attempt.Scope, attempt.AllowForeign, attempt.AllowNoSecret, err)
		}

		if result.ForeignFill != nil {
			if err := d.persistDecision(ctx, request.Origin, result, policy); err != nil {
				return nil, err
			}
		}

		filled = mergeFields(filled, result.FilledFields)

		if attempt.satisfied(result, important, baseAllowNoSecret) {
			winning = &attempt
			break
		}
		if winning == nil && len(result.FilledFields) > 0 {
			winning = &attempt
		}
	}

	if len(filled) == 0 {
		log.Debug().Str("state", string(stateExhausted)).Msg("fill exhausted")
		return nil, fmt.Errorf("%w: requested fields %s", ErrNoFillableForm, strings.Join(fieldNames(request.Fields), ", "))
	}

	focusReq := d.fillRequest(request, *winning, policy)
	focusReq.AutoSubmit = request.AutoSubmit
	if err := d.agent.FocusOrSubmit(ctx, winning.Scope, focusReq); err != nil {
		return nil, fmt.Errorf("focus or submit: %w", err)
	}

	log.Debug().Str("state", string(stateFilled)).Strs("fields", filled).Msg("fill done")
	return filled, nil
}

// fillRequest materializes one attempt into the wire request sent to the
// page agent.
func (d *Dispatcher) fillRequest(request Request, attempt Attempt, policy models.ForeignFillPolicy) models.FillRequest {
	return models.FillRequest{
		Origin:        request.Origin,
		Login:         request.Login,
		Fields:        request.Fields,
		AllowForeign:  attempt.AllowForeign,
		AllowNoSecret: attempt.AllowNoSecret,
		ForeignFills:  policy,
	}
}

// persistDecision records a user confirmation carried back by a
// foreign-frame attempt, both at rest and in the in-flight policy view.
func (d *Dispatcher) persistDecision(ctx context.Context, origin string, result models.FillResult, policy models.ForeignFillPolicy) error {
	allow := *result.ForeignFill
	if err := d.policy.SaveForeignFillDecision(ctx, origin, result.ForeignOrigin, allow); err != nil {
		return fmt.Errorf("save foreign-fill decision for %q: %w", origin, err)
	}
	policy[result.ForeignOrigin] = allow
	return nil
}

// mergeFields appends the names of newly filled fields, preserving
// first-seen order.
func mergeFields(merged, next []string) []string {
	for _, name := range next {
		seen := false
		for _, have := range merged {
			if have == name {
				seen = true
				break
			}
		}
		if !seen {
			merged = append(merged, name)
		}
	}
	return merged
}

func fieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
