// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// badgeEntry is one cached per-origin count.
type badgeEntry struct {
	count     int
	refreshed time.Time
}

// badgeService caches per-origin candidate counts so that the popup
// badge can be updated on every tab switch without a helper round-trip.
type badgeService struct {
	listing ListingService
	ttl     time.Duration

	mu       sync.Mutex
	cache    map[string]badgeEntry
	inFlight map[string]chan struct{}

	now func() time.Time

	logger *logger.Logger
}

// NewBadgeService constructs a [BadgeService]. The cache TTL is the
// badge refresh interval of the worker configuration.
func NewBadgeService(listing ListingService, cfg config.AgentConfig, logger *logger.Logger) BadgeService {
	logger.Debug().Msg("creating badge service")
	return &badgeService{
		listing:  listing,
		ttl:      cfg.Workers.BadgeRefreshInterval,
		cache:    make(map[string]badgeEntry),
		inFlight: make(map[string]chan struct{}),
		now:      time.Now,
		logger:   logger,
	}
}

// Badge implements [BadgeService]. Concurrent requests for the same
// stale origin share a single refresh; the waiters reuse its result.
func (s *badgeService) Badge(ctx context.Context, origin string) (models.BadgeResponse, error) {
	for {
		s.mu.Lock()
		if entry, ok := s.cache[origin]; ok && s.now().Sub(entry.refreshed) < s.ttl {
			s.mu.Unlock()
			return models.BadgeResponse{Origin: origin, Count: entry.count}, nil
		}

		if wait, ok := s.inFlight[origin]; ok {
			s.mu.Unlock()
			select {
			case <-wait:
				continue // re-check the cache
			case <-ctx.Done():
				return models.BadgeResponse{}, ctx.Err()
			}
		}

		done := make(chan struct{})
		s.inFlight[origin] = done
		s.mu.Unlock()

		count, err := s.countForOrigin(ctx, origin)

		s.mu.Lock()
		delete(s.inFlight, origin)
		close(done)
		if err != nil {
			s.mu.Unlock()
			return models.BadgeResponse{}, err
		}
		s.cache[origin] = badgeEntry{count: count, refreshed: s.now()}
		s.mu.Unlock()

		return models.BadgeResponse{Origin: origin, Count: count}, nil
	}
}

// Invalidate implements [BadgeService].
func (s *badgeService) Invalidate(origin string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if origin == "" {
		s.cache = make(map[string]badgeEntry)
		return
	}
	delete(s.cache, origin)
}

// countForOrigin counts the candidates filed under the origin's host.
func (s *badgeService) countForOrigin(ctx context.Context, origin string) (int, error) {
	candidates, err := s.listing.Candidates(ctx, origin, "", false)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, c := range candidates {
		if c.InCurrentHost {
			count++
		}
	}

	logger.FromContext(ctx).Debug().Str("origin", origin).Int("count", count).Msg("badge count refreshed")
	return count, nil
}
