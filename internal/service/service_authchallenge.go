// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
)

// ChallengeAnswer identifies the credential chosen to answer a pending
// basic-auth challenge.
type ChallengeAnswer struct {
	StoreID string `json:"store_id"`
	Login   string `json:"login"`
}

// pendingChallenge is one unanswered basic-auth challenge.
type pendingChallenge struct {
	urlPrefix string

	once      sync.Once
	done      chan struct{}
	answer    ChallengeAnswer
	abandoned bool
}

func newPendingChallenge(urlPrefix string) *pendingChallenge {
	return &pendingChallenge{urlPrefix: urlPrefix, done: make(chan struct{})}
}

// resolve delivers the answer. Only the first resolve or abandon wins.
func (p *pendingChallenge) resolve(answer ChallengeAnswer) {
	p.once.Do(func() {
		p.answer = answer
		close(p.done)
	})
}

// abandon releases every waiter without an answer.
func (p *pendingChallenge) abandon() {
	p.once.Do(func() {
		p.abandoned = true
		close(p.done)
	})
}

// ChallengeTracker holds basic-auth challenges waiting for the user to
// pick a credential. Challenges are keyed by URL prefix; the browser
// retries a challenged request with fresh state, so a newer challenge
// for the same prefix supersedes the older pending one.
type ChallengeTracker struct {
	mu      sync.Mutex
	pending map[string]*pendingChallenge

	logger *logger.Logger
}

// NewChallengeTracker constructs a ChallengeTracker.
func NewChallengeTracker(logger *logger.Logger) *ChallengeTracker {
	logger.Debug().Msg("creating auth-challenge tracker")
	return &ChallengeTracker{
		pending: make(map[string]*pendingChallenge),
		logger:  logger,
	}
}

// Await registers a challenge for urlPrefix and blocks until a
// credential is chosen, the challenge is superseded or abandoned, or ctx
// expires. An existing pending challenge for the same prefix is
// abandoned first.
func (t *ChallengeTracker) Await(ctx context.Context, urlPrefix string) (ChallengeAnswer, error) {
	urlPrefix = normalizePrefix(urlPrefix)

	t.mu.Lock()
	if old, ok := t.pending[urlPrefix]; ok {
		old.abandon()
	}
	challenge := newPendingChallenge(urlPrefix)
	t.pending[urlPrefix] = challenge
	t.mu.Unlock()

	t.logger.Debug().Str("url_prefix", urlPrefix).Msg("auth challenge registered")

	defer func() {
		t.mu.Lock()
		if t.pending[urlPrefix] == challenge {
			delete(t.pending, urlPrefix)
		}
		t.mu.Unlock()
	}()

	select {
	case <-challenge.done:
		if challenge.abandoned {
			return ChallengeAnswer{}, ErrChallengeAbandoned
		}
		return challenge.answer, nil
	case <-ctx.Done():
		challenge.abandon()
		return ChallengeAnswer{}, ctx.Err()
	}
}

// Resolve answers the pending challenge whose prefix matches url. The
// longest registered prefix wins when several match. Returns false when
// no pending challenge matches.
func (t *ChallengeTracker) Resolve(url string, answer ChallengeAnswer) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	var best *pendingChallenge
	for prefix, challenge := range t.pending {
		if !strings.HasPrefix(url, prefix) {
			continue
		}
		if best == nil || len(prefix) > len(best.urlPrefix) {
			best = challenge
		}
	}
	if best == nil {
		return false
	}

	best.resolve(answer)
	delete(t.pending, best.urlPrefix)
	t.logger.Debug().Str("url_prefix", best.urlPrefix).Str("login", answer.Login).Msg("auth challenge resolved")
	return true
}

// Pending lists the URL prefixes of unanswered challenges.
func (t *ChallengeTracker) Pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	prefixes := make([]string, 0, len(t.pending))
	for prefix := range t.pending {
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}

func normalizePrefix(urlPrefix string) string {
	return strings.TrimSuffix(urlPrefix, "/")
}
