// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rank

import (
	"sort"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// attachHighlights converts accumulated byte-offset match positions into
// contiguous [models.HighlightRun] spans on the candidate, split at the
// path/display boundary and expressed as rune offsets into each portion.
func attachHighlights(c *models.LoginCandidate, bytePositions []int) {
	if len(bytePositions) == 0 {
		return
	}

	runeOffsets := toRuneOffsets(c.Login, bytePositions)
	if len(runeOffsets) == 0 {
		return
	}

	boundary := 0
	if c.Path != "/" {
		boundary = utf8.RuneCountInString(c.Path)
	}

	for _, run := range contiguousRuns(runeOffsets) {
		switch {
		case run.End <= boundary:
			c.PathHighlights = append(c.PathHighlights, run)
		case run.Start >= boundary:
			c.DisplayHighlights = append(c.DisplayHighlights,
				models.HighlightRun{Start: run.Start - boundary, End: run.End - boundary})
		default:
			c.PathHighlights = append(c.PathHighlights,
				models.HighlightRun{Start: run.Start, End: boundary})
			c.DisplayHighlights = append(c.DisplayHighlights,
				models.HighlightRun{Start: 0, End: run.End - boundary})
		}
	}
}

// toRuneOffsets maps byte offsets of rune starts in s to sorted unique
// rune offsets. Offsets that do not fall on a rune start are dropped.
func toRuneOffsets(s string, bytePositions []int) []int {
	byteToRune := make(map[int]int, len(s))
	runeIdx := 0
	for byteIdx := range s {
		byteToRune[byteIdx] = runeIdx
		runeIdx++
	}

	seen := make(map[int]bool, len(bytePositions))
	var offsets []int
	for _, bp := range bytePositions {
		ri, ok := byteToRune[bp]
		if !ok || seen[ri] {
			continue
		}
		seen[ri] = true
		offsets = append(offsets, ri)
	}
	sort.Ints(offsets)
	return offsets
}

// contiguousRuns groups sorted unique rune offsets into half-open runs.
func contiguousRuns(offsets []int) []models.HighlightRun {
	var runs []models.HighlightRun
	start, prev := offsets[0], offsets[0]
	for _, off := range offsets[1:] {
		if off == prev+1 {
			prev = off
			continue
		}
		runs = append(runs, models.HighlightRun{Start: start, End: prev + 1})
		start, prev = off, off
	}
	return append(runs, models.HighlightRun{Start: start, End: prev + 1})
}
