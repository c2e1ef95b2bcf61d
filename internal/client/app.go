// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/tui"
)

// App runs the terminal picker for one page origin.
type App struct {
	services   *service.Services
	ui         *tui.TUI
	pageOrigin string

	logger *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, pageOrigin string, logger *logger.Logger) (*App, error) {
	if pageOrigin == "" {
		return nil, errors.New("no page origin was provided")
	}

	return &App{
		services:   services,
		ui:         ui,
		pageOrigin: pageOrigin,
		logger:     logger,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	err := a.ui.Pick(ctx, a.pageOrigin)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("picker closed by user")
		return nil
	}
	return err
}
