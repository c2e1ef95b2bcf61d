// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
)

// BadgeCacheWorker periodically drops the cached per-origin badge
// counts so that store changes made outside the agent become visible
// without waiting for a fill or copy action.
type BadgeCacheWorker struct {
	badges   service.BadgeService
	interval time.Duration

	ctx    context.Context
	logger *logger.Logger
}

// NewBadgeCacheWorker constructs a BadgeCacheWorker. The worker stops
// when ctx is cancelled.
func NewBadgeCacheWorker(ctx context.Context, badges service.BadgeService, interval time.Duration, logger *logger.Logger) *BadgeCacheWorker {
	return &BadgeCacheWorker{
		badges:   badges,
		interval: interval,
		ctx:      ctx,
		logger:   logger,
	}
}

// Run implements [Worker]. It spawns the invalidation loop and returns.
func (w *BadgeCacheWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().Msg("badge cache worker disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("badge cache worker started")
		for {
			select {
			case <-ticker.C:
				w.badges.Invalidate("")
				w.logger.Debug().Msg("badge cache invalidated")
			case <-w.ctx.Done():
				w.logger.Info().Msg("badge cache worker stopped")
				return
			}
		}
	}()
}
