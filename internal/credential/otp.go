// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-autofill/models"
)

const otpURIPrefix = "otpauth://"

// OTP generation defaults per the otpauth convention.
const (
	defaultOtpAlgorithm = "sha1"
	defaultOtpDigits    = 6
	defaultOtpPeriod    = 30
)

// ParseOtp decodes the value of an otp field into an [models.OtpSpec].
//
// Two input shapes are accepted: a full otpauth:// URI, or a bare base32
// seed. The URI scheme is rewritten to http before parsing because URL
// parsers disagree on how to populate the host field for non-standard
// schemes. The seed is always upper-cased on storage.
//
// Returns [ErrOtpSecretMissing] for a URI without a secret parameter and a
// wrapped [ErrInvalidOtpURI] when the URI cannot be decoded at all.
func ParseOtp(raw string) (*models.OtpSpec, error) {
	raw = strings.TrimSpace(raw)
	spec := &models.OtpSpec{
		Raw: raw,
		Params: models.OtpParams{
			Type:      "totp",
			Algorithm: defaultOtpAlgorithm,
			Digits:    defaultOtpDigits,
			Period:    defaultOtpPeriod,
		},
	}

	if len(raw) < len(otpURIPrefix) || !strings.EqualFold(raw[:len(otpURIPrefix)], otpURIPrefix) {
		// bare seed form
		spec.Params.Secret = strings.ToUpper(raw)
		return spec, nil
	}

	// rewrite the scheme so the URL parser fills the host field the same
	// way for every parser version
	u, err := url.Parse("http://" + raw[len(otpURIPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOtpURI, err)
	}

	if host := strings.ToLower(u.Host); host != "" && host != "otp" {
		spec.Params.Type = host
	}

	query := u.Query()
	secret := query.Get("secret")
	if secret == "" {
		return nil, ErrOtpSecretMissing
	}
	spec.Params.Secret = strings.ToUpper(secret)

	if algorithm := query.Get("algorithm"); algorithm != "" {
		spec.Params.Algorithm = strings.ToLower(algorithm)
	}
	if digits, err := strconv.Atoi(query.Get("digits")); err == nil && digits > 0 {
		spec.Params.Digits = digits
	}
	if period, err := strconv.Atoi(query.Get("period")); err == nil && period > 0 {
		spec.Params.Period = period
	}

	return spec, nil
}

// GenerateOTP computes the one-time password for the given parameters at
// time now (RFC 6238 over the RFC 4226 truncation).
//
// Returns [ErrUnsupportedOTPAlgorithm] for any algorithm other than sha1,
// sha256 or sha512 — the unsupported-algorithm condition is deliberately
// raised here, at generation time, not at parse time.
func GenerateOTP(params models.OtpParams, now time.Time) (string, error) {
	var newHash func() hash.Hash
	switch params.Algorithm {
	case "sha1":
		newHash = sha1.New
	case "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOTPAlgorithm, params.Algorithm)
	}

	seed, err := decodeBase32Seed(params.Secret)
	if err != nil {
		return "", fmt.Errorf("decode otp seed: %w", err)
	}

	period := params.Period
	if period <= 0 {
		period = defaultOtpPeriod
	}
	digits := params.Digits
	if digits <= 0 {
		digits = defaultOtpDigits
	}

	counter := uint64(now.Unix() / int64(period))
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], counter)

	mac := hmac.New(newHash, seed)
	mac.Write(counterBytes[:])
	sum := mac.Sum(nil)

	// dynamic truncation (RFC 4226 §5.3)
	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	mod := uint32(1)
	for i := 0; i < digits; i++ {
		mod *= 10
	}

	return fmt.Sprintf("%0*d", digits, code%mod), nil
}

// decodeBase32Seed decodes a base32 seed, tolerating missing padding and
// internal whitespace as produced by common authenticator exports.
func decodeBase32Seed(secret string) ([]byte, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(secret, " ", ""))
	normalized = strings.TrimRight(normalized, "=")
	return base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(normalized)
}
