package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
)

func TestChallengeTracker_AwaitResolve(t *testing.T) {
	tracker := NewChallengeTracker(logger.Nop())

	answered := make(chan ChallengeAnswer, 1)
	go func() {
		answer, err := tracker.Await(context.Background(), "https://example.com/admin/")
		assert.NoError(t, err)
		answered <- answer
	}()

	require.Eventually(t, func() bool {
		return tracker.Resolve("https://example.com/admin/index.html", ChallengeAnswer{
			StoreID: "personal",
			Login:   "example.com/alice",
		})
	}, time.Second, 10*time.Millisecond)

	answer := <-answered
	assert.Equal(t, "example.com/alice", answer.Login)
	assert.Empty(t, tracker.Pending())
}

func TestChallengeTracker_NewerChallengeSupersedes(t *testing.T) {
	tracker := NewChallengeTracker(logger.Nop())

	firstDone := make(chan error, 1)
	go func() {
		_, err := tracker.Await(context.Background(), "https://example.com")
		firstDone <- err
	}()

	require.Eventually(t, func() bool {
		return len(tracker.Pending()) == 1
	}, time.Second, 10*time.Millisecond)

	secondDone := make(chan ChallengeAnswer, 1)
	go func() {
		answer, err := tracker.Await(context.Background(), "https://example.com")
		assert.NoError(t, err)
		secondDone <- answer
	}()

	// the first waiter is released without an answer
	assert.ErrorIs(t, <-firstDone, ErrChallengeAbandoned)

	require.Eventually(t, func() bool {
		return tracker.Resolve("https://example.com/login", ChallengeAnswer{Login: "alice"})
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "alice", (<-secondDone).Login)
}

func TestChallengeTracker_LongestPrefixWins(t *testing.T) {
	tracker := NewChallengeTracker(logger.Nop())

	broad := make(chan ChallengeAnswer, 1)
	narrow := make(chan ChallengeAnswer, 1)
	go func() {
		answer, _ := tracker.Await(context.Background(), "https://example.com")
		broad <- answer
	}()
	go func() {
		answer, _ := tracker.Await(context.Background(), "https://example.com/admin")
		narrow <- answer
	}()

	require.Eventually(t, func() bool {
		return len(tracker.Pending()) == 2
	}, time.Second, 10*time.Millisecond)

	require.True(t, tracker.Resolve("https://example.com/admin/index.html", ChallengeAnswer{Login: "admin"}))
	assert.Equal(t, "admin", (<-narrow).Login)

	require.True(t, tracker.Resolve("https://example.com/blog", ChallengeAnswer{Login: "alice"}))
	assert.Equal(t, "alice", (<-broad).Login)
}

func TestChallengeTracker_ContextCancel(t *testing.T) {
	tracker := NewChallengeTracker(logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := tracker.Await(ctx, "https://example.com")
		done <- err
	}()

	require.Eventually(t, func() bool {
		return len(tracker.Pending()) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestChallengeTracker_ResolveWithoutPending(t *testing.T) {
	tracker := NewChallengeTracker(logger.Nop())
	assert.False(t, tracker.Resolve("https://example.com", ChallengeAnswer{}))
}
