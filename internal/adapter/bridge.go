// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/fill"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// Page-agent bridge endpoints.
const (
	bridgeInjectTopEndpoint    = "/api/page/inject-top"
	bridgeInjectFramesEndpoint = "/api/page/inject-frames"
	bridgeFillEndpoint         = "/api/page/fill"
	bridgeFocusEndpoint        = "/api/page/focus"
)

// bridgeInstruction is the wire envelope for frame-scoped page-agent
// instructions.
type bridgeInstruction struct {
	Scope   fill.FrameScope    `json:"scope"`
	Request models.FillRequest `json:"request"`
}

type httpBridge struct {
	client        *utils.HTTPClient
	injectTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPBridge constructs the HTTP implementation of [Bridge]. Injection
// calls get their own bounded wait (bridgeCfg.InjectTimeout): an injection
// that does not resolve within it is a failed attempt, never a hang.
//
// Returns an error if bridgeCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPBridge(bridgeCfg config.AgentBridge, logger *logger.Logger) (Bridge, error) {
	baseURL, err := normalizeBaseURL(bridgeCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid bridge address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(bridgeCfg.RequestTimeout)

	return &httpBridge{client: client, injectTimeout: bridgeCfg.InjectTimeout, logger: logger}, nil
}

// InjectTopFrame implements [fill.PageAgent].
func (b *httpBridge) InjectTopFrame(ctx context.Context) error {
	return b.inject(ctx, bridgeInjectTopEndpoint)
}

// InjectAllFrames implements [fill.PageAgent].
func (b *httpBridge) InjectAllFrames(ctx context.Context) error {
	return b.inject(ctx, bridgeInjectFramesEndpoint)
}

func (b *httpBridge) inject(ctx context.Context, endpoint string) error {
	ctx, cancel := context.WithTimeout(ctx, b.injectTimeout)
	defer cancel()

	resp, err := b.client.R().
		SetContext(ctx).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("inject request: %w", err)
	}
	return mapHTTPError(resp)
}

// FillLogin implements [fill.PageAgent]. The bridge fans the instruction
// out to every frame in scope and answers with the merged result.
func (b *httpBridge) FillLogin(ctx context.Context, scope fill.FrameScope, request models.FillRequest) (models.FillResult, error) {
	var result models.FillResult
	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(bridgeInstruction{Scope: scope, Request: request}).
		SetResult(&result).
		Post(bridgeFillEndpoint)
	if err != nil {
		return models.FillResult{}, fmt.Errorf("fill request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FillResult{}, err
	}
	return result, nil
}

// FocusOrSubmit implements [fill.PageAgent].
func (b *httpBridge) FocusOrSubmit(ctx context.Context, scope fill.FrameScope, request models.FillRequest) error {
	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(bridgeInstruction{Scope: scope, Request: request}).
		Post(bridgeFocusEndpoint)
	if err != nil {
		return fmt.Errorf("focus request: %w", err)
	}
	return mapHTTPError(resp)
}
