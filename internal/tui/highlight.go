// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// renderHighlighted renders text with the matched runs emphasized. Runs
// carry rune offsets, so the text is split on runes, not bytes.
func renderHighlighted(text string, runs []models.HighlightRun) string {
	if len(runs) == 0 {
		return text
	}

	chars := []rune(text)
	var out strings.Builder
	next := 0
	for _, run := range runs {
		if run.Start < next || run.End > len(chars) || run.Start >= run.End {
			continue
		}
		out.WriteString(string(chars[next:run.Start]))
		out.WriteString(highlightStyle.Render(string(chars[run.Start:run.End])))
		next = run.End
	}
	out.WriteString(string(chars[next:]))
	return out.String()
}

// renderCandidate renders one listing row: the path portion faint, the
// display portion plain, query matches emphasized in both.
func renderCandidate(c models.LoginCandidate) string {
	display := renderHighlighted(c.Display, c.DisplayHighlights)
	if c.Path == "/" {
		return display
	}
	return storeStyle.Render(renderHighlighted(c.Path, c.PathHighlights)+"/") + display
}
