// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// foreignFillRepository is the SQLite-backed implementation of
// [ForeignFillRepository] over the "foreign_fill_policy" table.
type foreignFillRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewForeignFillRepository constructs a [ForeignFillRepository] backed by
// the provided database connection and logger.
func NewForeignFillRepository(db *DB, logger *logger.Logger) ForeignFillRepository {
	logger.Debug().Msg("creating foreign-fill repository")
	return &foreignFillRepository{
		db:     db,
		logger: logger,
	}
}

// ForeignFillPolicy implements [ForeignFillRepository]. An origin with no
// recorded decisions yields an empty, non-nil map.
func (r *foreignFillRepository) ForeignFillPolicy(ctx context.Context, origin string) (models.ForeignFillPolicy, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getForeignFillPolicy, origin)
	if err != nil {
		log.Err(err).Str("func", "*foreignFillRepository.ForeignFillPolicy").Msg("policy lookup failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	policy := models.ForeignFillPolicy{}
	for rows.Next() {
		var foreignOrigin string
		var allow bool
		if err = rows.Scan(&foreignOrigin, &allow); err != nil {
			log.Err(err).Str("func", "*foreignFillRepository.ForeignFillPolicy").Msg("scanning error")
			return nil, err
		}
		policy[foreignOrigin] = allow
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return policy, nil
}

// SaveForeignFillDecision implements [ForeignFillRepository].
func (r *foreignFillRepository) SaveForeignFillDecision(ctx context.Context, origin, foreignOrigin string, allow bool) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertForeignFillDecision, origin, foreignOrigin, allow, time.Now().UnixMilli())
	if err != nil {
		log.Err(err).Str("func", "*foreignFillRepository.SaveForeignFillDecision").Msg("decision upsert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
