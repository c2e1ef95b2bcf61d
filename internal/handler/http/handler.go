// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local popup API of the agent. It provides
// the chi router, middleware (tracing, logging, JWT session auth), route
// handlers, and the error-to-status mapping applied before responses
// leave the transport layer.
package http

import (
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	version   string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewActionValidator(),
		version:   version,
		logger:    logger,
	}
}
