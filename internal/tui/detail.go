// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// detailState is the read-only credential view. The secret stays masked
// until revealed; the raw entry text is never shown.
type detailState struct {
	candidate  models.LoginCandidate
	credential models.Credential
	reveal     bool
}

func (d *detailState) view() string {
	var out strings.Builder
	out.WriteString(titleStyle.Render(d.candidate.Login) + "\n")
	out.WriteString(storeStyle.Render("store: "+d.candidate.StoreName) + "\n\n")

	out.WriteString("login:  " + d.credential.Fields.Login + "\n")

	secret := strings.Repeat("*", 8)
	if d.reveal {
		secret = d.credential.Fields.Secret
	}
	out.WriteString("secret: " + secret + "\n")

	if d.credential.Fields.URL != nil {
		out.WriteString("url:    " + *d.credential.Fields.URL + "\n")
	}
	if d.credential.Fields.Openid != nil {
		out.WriteString("openid: " + *d.credential.Fields.Openid + "\n")
	}
	if d.credential.Fields.Otp != nil {
		out.WriteString("otp:    configured\n")
	}

	out.WriteString("\n" + helpStyle.Render("r reveal   esc back"))
	return out.String()
}
