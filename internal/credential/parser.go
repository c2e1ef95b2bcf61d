// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credential turns decrypted password-store entry text into typed
// [models.Credential] records: line-oriented `key: value` field extraction
// with the well-known first-line-is-the-secret convention, otpauth URI
// parsing, one-time-password generation, and entry/store/global setting
// resolution.
package credential

import (
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// ParseConfig carries the context a single entry is parsed in. It replaces
// any ambient state: everything the parser needs is passed explicitly.
type ParseConfig struct {
	// EntryName is the store-relative entry name without the ".gpg"
	// suffix; its last path segment is the final login fallback.
	EntryName string

	// Store is the store the entry belongs to; its settings sit between
	// the entry's own settings and the globals.
	Store models.Store

	// DefaultUsername is the globally configured fallback login.
	DefaultUsername string

	// EnableOTP is the global one-time-password toggle.
	EnableOTP bool
}

// parsedLine is one non-empty entry line split at its first colon.
type parsedLine struct {
	key   string // lower-cased, trimmed first token
	value string // trimmed remainder
}

// Parse extracts the typed credential record from one decrypted entry body.
//
// It is total for malformed text: lines without a colon, with an empty key,
// or with an empty value for a field that disallows empty are silently
// skipped. The only error condition is an otp field whose otpauth URI
// cannot be decoded.
//
// Field resolution follows the entry-text convention: for each field group
// the aliases are tried in order and the first line whose key matches
// assigns the value; later duplicate lines for an already-matched field are
// ignored. If no secret-aliased line exists, the first non-empty line of
// the body is the secret. If no login-aliased line exists, the login falls
// back to the store or global default username, then to the last path
// segment of the entry name.
func Parse(raw string, cfg ParseConfig) (models.Credential, error) {
	cred := models.Credential{Raw: raw}

	lines, firstLine := splitLines(raw)

	matched := make(map[string]string, len(fieldRules))
	for _, rule := range fieldRules {
		if value, ok := matchField(rule, lines); ok {
			matched[rule.name] = value
		}
	}

	if secret, ok := matched[models.FieldSecret]; ok {
		cred.Fields.Secret = secret
	} else {
		// well-known convention: the first line of an entry is its secret
		cred.Fields.Secret = firstLine
	}

	if login, ok := matched[models.FieldLogin]; ok {
		cred.Fields.Login = login
	} else {
		cred.Fields.Login = fallbackLogin(cfg)
	}

	if openid, ok := matched[models.FieldOpenid]; ok {
		cred.Fields.Openid = &openid
	}
	if rawURL, ok := matched[models.FieldURL]; ok {
		cred.Fields.URL = &rawURL
	}

	cred.Settings = parseSettings(lines)

	if otpValue, ok := matched[models.FieldOtp]; ok && otpEnabled(cred.Settings, cfg) {
		spec, err := ParseOtp(otpValue)
		if err != nil {
			return models.Credential{}, fmt.Errorf("parse otp field of %q: %w", cfg.EntryName, err)
		}
		cred.Fields.Otp = spec
	}

	return cred, nil
}

// splitLines breaks raw into parsed key/value lines, dropping blank lines
// and lines that cannot carry a field. Bare otpauth:// lines synthesize an
// "otp" key. The returned firstLine is the first non-empty line verbatim,
// used by the implicit-secret convention.
func splitLines(raw string) ([]parsedLine, string) {
	var lines []parsedLine
	var firstLine string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if firstLine == "" {
			firstLine = line
		}

		if isBareOtpURI(line) {
			lines = append(lines, parsedLine{key: models.FieldOtp, value: strings.TrimSpace(line)})
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}

		lines = append(lines, parsedLine{key: key, value: strings.TrimSpace(value)})
	}

	return lines, firstLine
}

// isBareOtpURI reports whether the whole line is an otpauth URI with no
// leading key.
func isBareOtpURI(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= len(otpURIPrefix) &&
		strings.EqualFold(trimmed[:len(otpURIPrefix)], otpURIPrefix)
}

// matchField finds the value of one field group: aliases in order, first
// matching line wins, empty values rejected unless the rule allows them.
func matchField(rule fieldRule, lines []parsedLine) (string, bool) {
	for _, alias := range rule.aliases {
		for _, line := range lines {
			if line.key != alias {
				continue
			}
			if line.value == "" && !rule.allowEmpty {
				continue
			}
			return line.value, true
		}
	}
	return "", false
}

// parseSettings extracts the boolean per-entry settings using the same
// first-match convention as field groups. Value coercion accepts "true"
// and "yes" case-insensitively; everything else is false.
func parseSettings(lines []parsedLine) models.EntrySettings {
	var settings models.EntrySettings

	for _, rule := range settingRules {
		for _, alias := range rule.aliases {
			for _, line := range lines {
				if line.key != alias || line.value == "" {
					continue
				}
				v := coerceBool(line.value)
				switch rule.name {
				case "autosubmit":
					if settings.AutoSubmit == nil {
						settings.AutoSubmit = &v
					}
				case "enableotp":
					if settings.EnableOTP == nil {
						settings.EnableOTP = &v
					}
				}
			}
		}
	}

	return settings
}

func coerceBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes":
		return true
	default:
		return false
	}
}

// fallbackLogin resolves the login for an entry with no login-aliased
// line: store username, then global default, then the entry name tail.
func fallbackLogin(cfg ParseConfig) string {
	if cfg.Store.Settings.Username != nil && *cfg.Store.Settings.Username != "" {
		return *cfg.Store.Settings.Username
	}
	if cfg.DefaultUsername != "" {
		return cfg.DefaultUsername
	}
	return path.Base(cfg.EntryName)
}

// otpEnabled resolves the one-time-password toggle for the entry being
// parsed: entry setting over store setting over global.
func otpEnabled(entry models.EntrySettings, cfg ParseConfig) bool {
	return resolveBool(entry.EnableOTP, cfg.Store.Settings.EnableOTP, cfg.EnableOTP)
}
