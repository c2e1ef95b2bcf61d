// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the agent's two pieces of durable state: usage
// statistics keyed by a one-way credential hash, and the per-origin
// foreign-fill policy. Secrets and entry contents are never written here.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-autofill/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UsageRepository stores per-credential usage statistics. Keys are the
// chained hash of (origin, store, login) computed by utils.UsageKey, so
// nothing at rest reveals which sites or entries were used.
type UsageRepository interface {
	// Get returns the record for one key. Returns [ErrUsageNotFound]
	// when the credential was never used.
	Get(ctx context.Context, key string) (models.UsageRecord, error)

	// GetBatch returns the records for all given keys in one query.
	// Missing keys are simply absent from the result map.
	GetBatch(ctx context.Context, keys []string) (map[string]models.UsageRecord, error)

	// RecordUse registers one use at time now. A repeat use within the
	// debounce window refreshes the timestamp without incrementing the
	// count, so rapid repeated actions do not inflate frequency
	// ranking. Returns the stored record.
	RecordUse(ctx context.Context, key string, now time.Time, debounce time.Duration) (models.UsageRecord, error)
}

// ForeignFillRepository stores the per-origin foreign-fill decisions.
// It satisfies the fill dispatcher's policy port.
type ForeignFillRepository interface {
	// ForeignFillPolicy returns all recorded decisions for one page
	// origin, keyed by foreign origin.
	ForeignFillPolicy(ctx context.Context, origin string) (models.ForeignFillPolicy, error)

	// SaveForeignFillDecision upserts one decision for the
	// (origin, foreignOrigin) pair.
	SaveForeignFillDecision(ctx context.Context, origin, foreignOrigin string, allow bool) error
}
