// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OtpSpec is the parsed one-time-password description of an entry.
// It is produced from either a full otpauth:// URI or a bare base32
// seed; Raw preserves the original text for round-tripping on save.
type OtpSpec struct {
	// Raw is the otp field value exactly as it appears in the entry.
	Raw string `json:"raw"`

	// Params holds the decoded generation parameters.
	Params OtpParams `json:"params"`
}

// OtpParams describes how one-time passwords are generated for an entry.
// Defaults follow the otpauth convention: sha1, 6 digits, 30 seconds.
type OtpParams struct {
	// Type is the OTP flavour, normally "totp". Derived from the
	// otpauth URI host; a bare seed always yields "totp".
	Type string `json:"type"`

	// Secret is the base32 seed, upper-cased on storage.
	Secret string `json:"secret"`

	// Algorithm is the HMAC algorithm name: sha1, sha256 or sha512.
	// Any other value is rejected at token-generation time.
	Algorithm string `json:"algorithm"`

	// Digits is the length of the generated code.
	Digits int `json:"digits"`

	// Period is the time step in seconds for totp generation.
	Period int `json:"period"`
}
