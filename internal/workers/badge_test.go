// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// countingBadgeService records Invalidate calls.
type countingBadgeService struct {
	mu          sync.Mutex
	invalidated int
}

func (c *countingBadgeService) Badge(ctx context.Context, origin string) (models.BadgeResponse, error) {
	return models.BadgeResponse{}, nil
}

func (c *countingBadgeService) Invalidate(origin string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
}

func (c *countingBadgeService) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidated
}

func TestBadgeCacheWorker_InvalidatesPeriodically(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	badges := &countingBadgeService{}
	worker := NewBadgeCacheWorker(ctx, badges, 10*time.Millisecond, logger.Nop())
	worker.Run()

	require.Eventually(t, func() bool {
		return badges.count() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond) // let the loop observe the cancel
	settled := badges.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, badges.count())
}

func TestBadgeCacheWorker_DisabledWithoutInterval(t *testing.T) {
	badges := &countingBadgeService{}
	worker := NewBadgeCacheWorker(context.Background(), badges, 0, logger.Nop())
	worker.Run()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, badges.count())
}
