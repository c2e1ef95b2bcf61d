// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/fill"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
)

// Services bundles every business service of the agent.
type Services struct {
	ListingService
	CredentialService
	FillService
	BadgeService
	AuthService

	Challenges *ChallengeTracker
}

// NewServices wires the full service layer: the helper adapter and page
// bridge on one side, the local storage on the other.
func NewServices(host adapter.HostAdapter, bridge adapter.Bridge, storages store.Storages, cfg config.AgentConfig, logger *logger.Logger) *Services {
	logger.Debug().Msg("creating services")

	listing := NewListingService(host, storages.UsageRepository, cfg, logger)
	credentials := NewCredentialService(host, storages.UsageRepository, cfg, logger)
	dispatcher := fill.NewDispatcher(bridge, storages.ForeignFillRepository, logger)

	return &Services{
		ListingService:    listing,
		CredentialService: credentials,
		FillService:       NewFillService(credentials, dispatcher, storages.UsageRepository, cfg, logger),
		BadgeService:      NewBadgeService(listing, cfg, logger),
		AuthService:       NewAuthService(cfg, logger),
		Challenges:        NewChallengeTracker(logger),
	}
}
