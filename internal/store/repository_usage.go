// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// usageRepository is the SQLite-backed implementation of [UsageRepository]
// over the "usage_stats" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type usageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUsageRepository constructs a [UsageRepository] backed by the provided
// database connection and logger.
func NewUsageRepository(db *DB, logger *logger.Logger) UsageRepository {
	logger.Debug().Msg("creating usage repository")
	return &usageRepository{
		db:     db,
		logger: logger,
	}
}

// Get implements [UsageRepository].
func (r *usageRepository) Get(ctx context.Context, key string) (models.UsageRecord, error) {
	log := logger.FromContext(ctx)

	var record models.UsageRecord
	err := r.db.QueryRowContext(ctx, getUsageRecord, key).Scan(&record.When, &record.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UsageRecord{}, ErrUsageNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*usageRepository.Get").Msg("usage record lookup failed")
		return models.UsageRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// GetBatch implements [UsageRepository]. One IN query serves an entire
// listing refresh.
func (r *usageRepository) GetBatch(ctx context.Context, keys []string) (map[string]models.UsageRecord, error) {
	log := logger.FromContext(ctx)

	records := make(map[string]models.UsageRecord, len(keys))
	if len(keys) == 0 {
		return records, nil
	}

	query, args, err := sq.
		Select("key", "used_at", "count").
		From("usage_stats").
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build usage batch query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*usageRepository.GetBatch").Msg("usage batch lookup failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var record models.UsageRecord
		if err = rows.Scan(&key, &record.When, &record.Count); err != nil {
			log.Err(err).Str("func", "*usageRepository.GetBatch").Msg("scanning error")
			return nil, err
		}
		records[key] = record
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return records, nil
}

// RecordUse implements [UsageRepository]. The read-modify-write is not
// guarded by a transaction: each user-initiated action is a single
// serialized flow, so two concurrent writers for one key do not occur.
func (r *usageRepository) RecordUse(ctx context.Context, key string, now time.Time, debounce time.Duration) (models.UsageRecord, error) {
	log := logger.FromContext(ctx)

	record, err := r.Get(ctx, key)
	switch {
	case errors.Is(err, ErrUsageNotFound):
		record = models.UsageRecord{When: now.UnixMilli(), Count: 1}
	case err != nil:
		return models.UsageRecord{}, err
	default:
		if !withinDebounce(record, now, debounce) {
			record.Count++
		}
		record.When = now.UnixMilli()
	}

	if _, err = r.db.ExecContext(ctx, upsertUsageRecord, key, record.When, record.Count); err != nil {
		log.Err(err).Str("func", "*usageRepository.RecordUse").Msg("usage upsert failed")
		return models.UsageRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

func withinDebounce(previous models.UsageRecord, now time.Time, debounce time.Duration) bool {
	return now.Sub(time.UnixMilli(previous.When)) < debounce
}
