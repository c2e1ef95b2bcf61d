// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import "github.com/MKhiriev/go-pass-autofill/models"

// fieldRule describes one credential field group: its canonical name, the
// ordered list of accepted key aliases, and whether an explicitly empty
// value still counts as a match.
//
// The parser iterates the rules uniformly; fallback behaviour for secret
// and login lives in Parse itself because both depend on parse context
// (entry body and entry name respectively).
type fieldRule struct {
	name       string
	aliases    []string
	allowEmpty bool
}

// fieldRules is the fixed, ordered set of field groups recognised in an
// entry body. Alias order matters: within a group the first alias that
// matches any line wins.
var fieldRules = []fieldRule{
	{name: models.FieldSecret, aliases: []string{"secret", "password", "pass"}},
	{name: models.FieldLogin, aliases: []string{"login", "username", "user"}, allowEmpty: true},
	{name: models.FieldOpenid, aliases: []string{"openid"}},
	{name: models.FieldOtp, aliases: []string{"otp", "totp"}},
	{name: models.FieldURL, aliases: []string{"url", "uri", "website", "site", "link", "launch"}},
}

// settingRule describes one boolean per-entry setting line.
type settingRule struct {
	name    string
	aliases []string
}

var settingRules = []settingRule{
	{name: "autosubmit", aliases: []string{"autosubmit"}},
	{name: "enableotp", aliases: []string{"enableotp"}},
}
