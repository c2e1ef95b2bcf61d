// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal credential picker: a ranked,
// searchable login list for one page origin with fill, copy and detail
// actions, plus the confirmation overlay for foreign-frame fills.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-autofill/internal/fill"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
)

var ErrUserQuit = errors.New("user quit the picker")

// foreignPrompt carries one pending foreign-frame decision into the
// running picker.
type foreignPrompt struct {
	decision      *fill.PendingDecision
	login         string
	foreignOrigin string
}

type TUI struct {
	services *service.Services
	prompts  chan foreignPrompt
}

func New(services *service.Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services: services,
		prompts:  make(chan foreignPrompt, 4),
	}, nil
}

// Pick runs the picker for one page origin and blocks until the user
// fills a credential, copies a field, or quits.
func (t *TUI) Pick(ctx context.Context, pageOrigin string) error {
	model := newPickerModel(ctx, t.services, pageOrigin, t.prompts)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(pickerModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// ConfirmForeignFill shows the foreign-frame confirmation overlay in the
// running picker and returns the decision handle the caller can wait on.
// When no picker is consuming prompts the decision is abandoned so that
// the fill proceeds as a denial instead of hanging.
func (t *TUI) ConfirmForeignFill(login, foreignOrigin string) *fill.PendingDecision {
	decision := fill.NewPendingDecision()

	select {
	case t.prompts <- foreignPrompt{decision: decision, login: login, foreignOrigin: foreignOrigin}:
	default:
		decision.Abandon()
	}
	return decision
}
