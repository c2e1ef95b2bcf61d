// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getUsageRecord = `SELECT used_at, count
		FROM usage_stats
		WHERE key = ?;`

	upsertUsageRecord = `INSERT INTO usage_stats (key, used_at, count)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET used_at = excluded.used_at, count = excluded.count;`

	getForeignFillPolicy = `SELECT foreign_origin, allow
		FROM foreign_fill_policy
		WHERE origin = ?;`

	upsertForeignFillDecision = `INSERT INTO foreign_fill_policy (origin, foreign_origin, allow, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(origin, foreign_origin) DO UPDATE SET allow = excluded.allow, updated_at = excluded.updated_at;`
)
