// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the agent's business operations on top of
// the helper-process adapter, the page bridge and the local storage:
// candidate listing and ranking, credential fetch/copy, fill
// orchestration, badge counts, pairing, and pending authentication
// challenges.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-autofill/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ListingService builds the ranked login listing for one page origin.
type ListingService interface {
	// Candidates lists, ranks and filters the logins available for
	// origin. The query and currentDomainOnly semantics follow the
	// picker search contract.
	Candidates(ctx context.Context, origin, query string, currentDomainOnly bool) ([]models.LoginCandidate, error)
}

// CredentialService fetches and interprets single credential entries.
type CredentialService interface {
	// Fetch decrypts and parses one entry.
	Fetch(ctx context.Context, origin, storeID, login string) (models.Credential, error)

	// Copy places one credential field on the system clipboard and
	// schedules its removal. For the otp field a fresh token is
	// generated at copy time.
	Copy(ctx context.Context, origin, storeID, login, field string) error

	// GenerateTOTP returns the current one-time password for an entry.
	GenerateTOTP(ctx context.Context, storeID, login string) (string, error)

	// Save encrypts contents into an entry file.
	Save(ctx context.Context, storeID, login, contents string) error

	// Delete removes an entry file.
	Delete(ctx context.Context, storeID, login string) error
}

// FillService orchestrates one fill action end to end.
type FillService interface {
	// Fill fetches the credential, runs the fill escalation against
	// the page and records the use. Returns the filled field names.
	Fill(ctx context.Context, request models.FillActionRequest) (models.FillActionResponse, error)
}

// BadgeService answers how many logins match an origin, with caching.
type BadgeService interface {
	// Badge returns the number of candidates filed under the origin's
	// host. Served from cache when fresh; a stale entry triggers one
	// guarded refresh.
	Badge(ctx context.Context, origin string) (models.BadgeResponse, error)

	// Invalidate drops the cached count for one origin, or all origins
	// when origin is empty.
	Invalidate(origin string)
}

// AuthService pairs popup clients with the agent and validates their
// session tokens.
type AuthService interface {
	// Pair exchanges the shared pairing key for a session token.
	Pair(ctx context.Context, request models.PairRequest) (models.PairResponse, error)

	// ParseToken validates a session token string and returns the
	// typed token with its client ID.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
