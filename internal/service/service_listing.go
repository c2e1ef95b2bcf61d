// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/origin"
	"github.com/MKhiriev/go-pass-autofill/internal/rank"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

const entrySuffix = ".gpg"

// listingService builds the ranked login listing: helper listing →
// host matching → usage lookup → ranking.
type listingService struct {
	host   adapter.HostAdapter
	usage  store.UsageRepository
	stores map[string]models.Store

	logger *logger.Logger
}

// NewListingService constructs a [ListingService].
func NewListingService(host adapter.HostAdapter, usage store.UsageRepository, cfg config.AgentConfig, logger *logger.Logger) ListingService {
	logger.Debug().Msg("creating listing service")
	return &listingService{
		host:   host,
		usage:  usage,
		stores: cfg.Stores,
		logger: logger,
	}
}

// Candidates implements [ListingService].
//
// Candidates are built fresh on every call: one helper round-trip for
// the file listing, one batched usage lookup, then ranking. Stores are
// walked in ID order so that the pre-rank insertion order, which breaks
// ranking ties, is deterministic.
func (s *listingService) Candidates(ctx context.Context, pageOrigin, query string, currentDomainOnly bool) ([]models.LoginCandidate, error) {
	log := logger.FromContext(ctx)

	currentHost, currentPort, err := splitOrigin(pageOrigin)
	if err != nil {
		return nil, err
	}

	listing, err := s.host.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	candidates := s.buildCandidates(listing, pageOrigin, currentHost, currentPort)

	if err = s.attachUsage(ctx, pageOrigin, candidates); err != nil {
		return nil, err
	}

	ranked := rank.Rank(candidates, query, currentDomainOnly)
	log.Debug().
		Str("origin", pageOrigin).
		Int("total", len(candidates)).
		Int("ranked", len(ranked)).
		Msg("candidate listing built")

	return ranked, nil
}

// buildCandidates converts the raw helper listing into unranked
// candidates with host-match context.
func (s *listingService) buildCandidates(listing models.HostListData, pageOrigin, currentHost, currentPort string) []models.LoginCandidate {
	storeIDs := make([]string, 0, len(listing.Files))
	for storeID := range listing.Files {
		storeIDs = append(storeIDs, storeID)
	}
	sort.Strings(storeIDs)

	var candidates []models.LoginCandidate
	index := 0
	for _, storeID := range storeIDs {
		storeName := storeID
		if st, ok := s.stores[storeID]; ok && st.Name != "" {
			storeName = st.Name
		}

		for _, file := range listing.Files[storeID] {
			login, ok := strings.CutSuffix(file, entrySuffix)
			if !ok {
				continue
			}

			match := origin.MatchHost(login, currentHost)
			candidate := models.LoginCandidate{
				StoreID:       storeID,
				StoreName:     storeName,
				Login:         login,
				Index:         index,
				InCurrentHost: origin.InCurrentHost(match, currentHost, currentPort),
			}
			if match != nil {
				candidate.Host = match.Hostname
				candidate.HostPort = match.Port
			}

			candidates = append(candidates, candidate)
			index++
		}
	}

	return candidates
}

// attachUsage fills in the usage records for all candidates with one
// batched lookup.
func (s *listingService) attachUsage(ctx context.Context, pageOrigin string, candidates []models.LoginCandidate) error {
	keys := make([]string, len(candidates))
	for i, c := range candidates {
		keys[i] = utils.UsageKey(pageOrigin, c.StoreID, c.Login)
	}

	records, err := s.usage.GetBatch(ctx, keys)
	if err != nil {
		return fmt.Errorf("load usage records: %w", err)
	}

	for i := range candidates {
		candidates[i].Recent = records[keys[i]]
	}
	return nil
}

// splitOrigin extracts hostname and port from a page origin string.
func splitOrigin(pageOrigin string) (host, port string, err error) {
	u, err := url.Parse(pageOrigin)
	if err != nil || u.Hostname() == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidOrigin, pageOrigin)
	}
	return strings.ToLower(u.Hostname()), u.Port(), nil
}
