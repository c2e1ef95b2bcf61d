// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the agent's two
// external collaborators: the privileged helper process that owns the
// password stores ([HostAdapter]) and the page-agent bridge that reaches
// into browser frames ([Bridge]).
//
// Both collaborators speak JSON over a local HTTP endpoint through resty.
// Error values defined in errors.go are mapped from transport responses so
// that callers can use [errors.Is] without knowing the wire details.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-autofill/internal/fill"
	"github.com/MKhiriev/go-pass-autofill/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/host_adapter_mock.go -package=mock

// HostAdapter is the request/response boundary to the helper process. A
// single round-trip is made per call; any non-"ok" answer is an
// unrecoverable error for that request, and no retries are performed.
type HostAdapter interface {
	// List returns, per store, the relative paths of all encrypted
	// credential files.
	List(ctx context.Context) (models.HostListData, error)

	// Tree returns, per store, the relative paths of all directories.
	Tree(ctx context.Context) (models.HostListData, error)

	// Fetch decrypts and returns the plaintext contents of one entry.
	Fetch(ctx context.Context, storeID, file string) (string, error)

	// Save encrypts contents into one entry file, creating it if needed.
	Save(ctx context.Context, storeID, file, contents string) error

	// Delete removes one entry file.
	Delete(ctx context.Context, storeID, file string) error

	// Configure reads the per-store settings files.
	Configure(ctx context.Context) (models.HostConfigureData, error)
}

// Bridge extends the dispatcher's page-agent port with lifecycle wiring.
// The concrete implementation talks to the page-agent endpoint that
// proxies instructions into browser frames.
type Bridge interface {
	fill.PageAgent
}
