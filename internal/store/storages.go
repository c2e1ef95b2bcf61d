// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-pass-autofill/internal/logger"

// Storages bundles the agent's repositories for dependency injection.
type Storages struct {
	UsageRepository       UsageRepository
	ForeignFillRepository ForeignFillRepository
}

func NewStorages(db *DB, logger *logger.Logger) Storages {
	return Storages{
		UsageRepository:       NewUsageRepository(db, logger),
		ForeignFillRepository: NewForeignFillRepository(db, logger),
	}
}
