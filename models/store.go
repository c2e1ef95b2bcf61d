// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Store identifies one named collection of encrypted credential files
// managed by the helper process.
type Store struct {
	// ID is the stable store identifier assigned by configuration.
	ID string `json:"id"`

	// Name is the human-readable store name shown in listings.
	Name string `json:"name"`

	// Path is the filesystem path of the store on the helper side.
	Path string `json:"path"`

	// Settings holds per-store overrides applied to every entry of
	// the store unless the entry overrides them itself.
	Settings StoreSettings `json:"settings"`
}

// StoreSettings are per-store setting overrides. A nil field means the
// store does not override the global value.
type StoreSettings struct {
	// AutoSubmit requests form submission after a successful fill.
	AutoSubmit *bool `json:"autosubmit,omitempty"`

	// EnableOTP toggles one-time-password parsing for entries of the
	// store.
	EnableOTP *bool `json:"enableOTP,omitempty"`

	// Username is the default login used when an entry neither
	// carries a login-aliased line nor a usable path tail.
	Username *string `json:"username,omitempty"`
}

// StoreFile identifies one encrypted entry before parsing. Immutable;
// produced by the helper-process listing.
type StoreFile struct {
	// StoreID is the identifier of the store the file belongs to.
	StoreID string `json:"storeId"`

	// RelativePath is the store-relative path of the encrypted file,
	// including the ".gpg" suffix.
	RelativePath string `json:"relativePath"`
}
