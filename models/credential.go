// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the shared domain types of go-pass-autofill:
// password-store entries, parsed credentials, ranked login candidates,
// fill protocol messages, and the envelopes exchanged with the native
// helper process and the popup API.
package models

// Credential is the fully parsed form of one decrypted password-store
// entry. Raw keeps the decrypted text verbatim so that unknown lines are
// preserved on save; Fields carries the typed values extracted from it.
type Credential struct {
	// Raw is the decrypted entry text exactly as received from the
	// helper process. Never persisted by this application.
	Raw string `json:"-"`

	// Fields holds the typed credential values resolved from Raw.
	Fields CredentialFields `json:"fields"`

	// Settings holds per-entry settings parsed from Raw (e.g. an
	// "autosubmit:" line). Entry settings take precedence over store
	// and global settings.
	Settings EntrySettings `json:"settings"`
}

// CredentialFields carries the values extracted from an entry body.
// Secret and Login are always present after parsing because both have
// fallback rules; the remaining fields are nil when the entry has no
// matching line.
type CredentialFields struct {
	// Secret is the password. Falls back to the first non-empty line
	// of the entry when no secret-aliased key is present.
	Secret string `json:"secret"`

	// Login is the username. Falls back to the configured default
	// username or the last path segment of the entry name. Login is
	// the only field that may carry an explicitly empty value.
	Login string `json:"login"`

	// Openid is the OpenID identity URL, when present.
	Openid *string `json:"openid,omitempty"`

	// Otp is the parsed one-time-password specification, when OTP
	// support is enabled and the entry carries an otp field.
	Otp *OtpSpec `json:"otp,omitempty"`

	// URL is the launch URL associated with the entry, when present.
	URL *string `json:"url,omitempty"`
}

// EntrySettings are per-entry overrides parsed from the entry body.
// A nil field means the entry does not override the setting.
type EntrySettings struct {
	// AutoSubmit requests form submission after a successful fill.
	AutoSubmit *bool `json:"autosubmit,omitempty"`

	// EnableOTP toggles one-time-password parsing for this entry.
	EnableOTP *bool `json:"enableOTP,omitempty"`
}

// Canonical credential field names used in fill requests, filled-field
// result lists, and the popup API.
const (
	FieldSecret = "secret"
	FieldLogin  = "login"
	FieldOpenid = "openid"
	FieldOtp    = "otp"
	FieldURL    = "url"
)
