// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fill

import (
	"context"
	"sync"
)

// PendingDecision is an explicit continuation for an action suspended on
// a user confirmation. The asking side blocks in [PendingDecision.Wait];
// the answering side calls [PendingDecision.Resolve] exactly once, or
// [PendingDecision.Abandon] when the question became moot. Both are safe
// to call multiple times and from multiple goroutines; only the first
// call wins.
type PendingDecision struct {
	once sync.Once
	done chan struct{}

	allow     bool
	abandoned bool
}

// NewPendingDecision returns an unresolved decision handle.
func NewPendingDecision() *PendingDecision {
	return &PendingDecision{done: make(chan struct{})}
}

// Resolve answers the decision.
func (d *PendingDecision) Resolve(allow bool) {
	d.once.Do(func() {
		d.allow = allow
		close(d.done)
	})
}

// Abandon discards the decision; a blocked Wait returns
// [ErrDecisionAbandoned].
func (d *PendingDecision) Abandon() {
	d.once.Do(func() {
		d.abandoned = true
		close(d.done)
	})
}

// Wait blocks until the decision is resolved, abandoned, or ctx ends.
func (d *PendingDecision) Wait(ctx context.Context) (bool, error) {
	select {
	case <-d.done:
		if d.abandoned {
			return false, ErrDecisionAbandoned
		}
		return d.allow, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Resolved reports whether the decision has been answered or abandoned.
func (d *PendingDecision) Resolved() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}
