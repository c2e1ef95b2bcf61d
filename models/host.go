// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Actions accepted by the helper process.
const (
	HostActionList      = "list"
	HostActionTree      = "tree"
	HostActionFetch     = "fetch"
	HostActionSave      = "save"
	HostActionDelete    = "delete"
	HostActionConfigure = "configure"
)

// Helper-process response statuses.
const (
	HostStatusOK    = "ok"
	HostStatusError = "error"
)

// HostSettings is the settings block sent with every helper request.
type HostSettings struct {
	// Stores maps store IDs to their configuration.
	Stores map[string]Store `json:"stores"`
}

// HostRequest is the envelope sent to the helper process. Exactly one
// round-trip is made per request; a failed round-trip is terminal for
// the initiating user action.
type HostRequest struct {
	Settings HostSettings `json:"settings"`
	Action   string       `json:"action"`

	// StoreID and File select the target entry for fetch, save and
	// delete actions.
	StoreID string `json:"storeId,omitempty"`
	File    string `json:"file,omitempty"`

	// Contents is the plaintext entry body for save actions.
	Contents string `json:"contents,omitempty"`
}

// HostResponse is the helper-process answer. Any status other than
// "ok" is an unrecoverable error for that request.
type HostResponse struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// HostListData is the decoded payload of a list response: per store,
// the relative paths of all encrypted entry files.
type HostListData struct {
	Files map[string][]string `json:"files"`
}

// HostFetchData is the decoded payload of a fetch response.
type HostFetchData struct {
	Contents string `json:"contents"`
}

// HostConfigureData is the decoded payload of a configure response:
// per-store settings read by the helper from each store's settings file.
type HostConfigureData struct {
	StoreSettings map[string]StoreSettings `json:"storeSettings"`
}
