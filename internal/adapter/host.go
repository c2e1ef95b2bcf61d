// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

const hostEndpoint = "/api/host"

type httpHostAdapter struct {
	client *utils.HTTPClient
	stores map[string]models.Store

	logger *logger.Logger
}

// NewHTTPHostAdapter constructs the HTTP implementation of [HostAdapter].
// The settings block sent with every request is built once from the
// configured stores; the helper needs it to locate and decrypt entries.
//
// Returns an error if hostCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPHostAdapter(hostCfg config.AgentHost, stores map[string]models.Store, logger *logger.Logger) (HostAdapter, error) {
	baseURL, err := normalizeBaseURL(hostCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid host address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(hostCfg.RequestTimeout)

	return &httpHostAdapter{client: client, stores: stores, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// roundTrip performs one helper request and decodes the "ok" payload into
// out (when out is non-nil). A transport failure, a non-2xx answer and a
// non-"ok" status are all terminal for the initiating user action.
func (h *httpHostAdapter) roundTrip(ctx context.Context, request models.HostRequest, out any) error {
	request.Settings = models.HostSettings{Stores: h.stores}

	var response models.HostResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post(hostEndpoint)
	if err != nil {
		return fmt.Errorf("host %s request: %w", request.Action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("host %s: %w", request.Action, err)
	}

	if response.Status != models.HostStatusOK {
		return fmt.Errorf("host %s: %w: %s", request.Action, ErrHostAction, response.Message)
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(response.Data, out); err != nil {
		return fmt.Errorf("host %s: decode response data: %w", request.Action, err)
	}
	return nil
}

// List implements [HostAdapter].
func (h *httpHostAdapter) List(ctx context.Context) (models.HostListData, error) {
	var data models.HostListData
	if err := h.roundTrip(ctx, models.HostRequest{Action: models.HostActionList}, &data); err != nil {
		return models.HostListData{}, err
	}
	return data, nil
}

// Tree implements [HostAdapter].
func (h *httpHostAdapter) Tree(ctx context.Context) (models.HostListData, error) {
	var data models.HostListData
	if err := h.roundTrip(ctx, models.HostRequest{Action: models.HostActionTree}, &data); err != nil {
		return models.HostListData{}, err
	}
	return data, nil
}

// Fetch implements [HostAdapter]. It returns the decrypted plaintext of
// one entry; the contents never touch the agent's persistent state.
func (h *httpHostAdapter) Fetch(ctx context.Context, storeID, file string) (string, error) {
	request := models.HostRequest{Action: models.HostActionFetch, StoreID: storeID, File: file}

	var data models.HostFetchData
	if err := h.roundTrip(ctx, request, &data); err != nil {
		return "", err
	}
	return data.Contents, nil
}

// Save implements [HostAdapter].
func (h *httpHostAdapter) Save(ctx context.Context, storeID, file, contents string) error {
	request := models.HostRequest{
		Action:   models.HostActionSave,
		StoreID:  storeID,
		File:     file,
		Contents: contents,
	}
	return h.roundTrip(ctx, request, nil)
}

// Delete implements [HostAdapter].
func (h *httpHostAdapter) Delete(ctx context.Context, storeID, file string) error {
	request := models.HostRequest{Action: models.HostActionDelete, StoreID: storeID, File: file}
	return h.roundTrip(ctx, request, nil)
}

// Configure implements [HostAdapter].
func (h *httpHostAdapter) Configure(ctx context.Context) (models.HostConfigureData, error) {
	var data models.HostConfigureData
	if err := h.roundTrip(ctx, models.HostRequest{Action: models.HostActionConfigure}, &data); err != nil {
		return models.HostConfigureData{}, err
	}
	return data, nil
}
