// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-pass-autofill/internal/fill"
)

// confirmState is the foreign-frame fill confirmation overlay. While it
// is visible all other picker input is suspended; y resolves the
// decision with allow, n with deny, esc abandons it.
type confirmState struct {
	decision      *fill.PendingDecision
	login         string
	foreignOrigin string
}

func (c *confirmState) view() string {
	question := fmt.Sprintf(
		"Fill %q into a frame from\n%s ?",
		c.login, c.foreignOrigin,
	)
	return overlayBoxStyle.Render(
		titleStyle.Render("Foreign frame") + "\n\n" +
			question + "\n\n" +
			helpStyle.Render("y allow   n deny   esc dismiss"),
	)
}
