// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rank orders login candidates for presentation: usage frequency
// and recency first, then an optional search query with fuzzy matching
// and character-level highlight spans.
package rank

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/sahilm/fuzzy"
)

// Rank returns the candidates ordered for display. The input slice is not
// modified.
//
// Ordering without a query: the most recently used candidate with a
// nonzero usage count sorts first, then descending usage count, then (in
// current-domain mode) descending domain specificity of the login name,
// then case-aware lexicographic login name. The sort is stable, so ties
// keep their insertion order and ranking its own output is idempotent.
//
// In current-domain mode the working set is narrowed to candidates with a
// nonzero usage count plus unused candidates belonging to the current
// host; everything else is dropped.
//
// A query is split on whitespace. Unless it starts with a space, the
// first token fuzzy-matches against login and store name and re-orders
// the result by relevance score; the remaining tokens are case-
// insensitive substring filters over the login name. A leading space
// disables fuzzy matching and makes every token a substring filter.
// Matched character positions from both mechanisms are merged into
// highlight runs on the surviving candidates.
func Rank(candidates []models.LoginCandidate, query string, currentDomainOnly bool) []models.LoginCandidate {
	working := make([]models.LoginCandidate, len(candidates))
	copy(working, candidates)

	for i := range working {
		working[i].Path, working[i].Display = splitPath(working[i].Login)
		working[i].PathHighlights = nil
		working[i].DisplayHighlights = nil
	}

	if currentDomainOnly {
		working = filterCurrentDomain(working)
	}

	sortCandidates(working, currentDomainOnly)

	if len(strings.Fields(query)) > 0 {
		working = applyQuery(working, query)
	}

	return working
}

// splitPath derives the presentation split of a login name at its last
// slash. Root-level entries get a path of "/".
func splitPath(login string) (path, display string) {
	if i := strings.LastIndex(login, "/"); i >= 0 {
		return login[:i+1], login[i+1:]
	}
	return "/", login
}

// filterCurrentDomain keeps candidates that were ever used plus unused
// candidates filed under the current host.
func filterCurrentDomain(cs []models.LoginCandidate) []models.LoginCandidate {
	kept := cs[:0]
	for _, c := range cs {
		if c.Recent.Count > 0 || c.InCurrentHost {
			kept = append(kept, c)
		}
	}
	return kept
}

// candidateKey identifies one candidate across reordering.
type candidateKey struct {
	storeID string
	login   string
	index   int
}

func keyOf(c models.LoginCandidate) candidateKey {
	return candidateKey{storeID: c.StoreID, login: c.Login, index: c.Index}
}

// mostRecentKey finds the candidate with a nonzero usage count and the
// latest use timestamp. Earlier candidates win timestamp ties.
func mostRecentKey(cs []models.LoginCandidate) (candidateKey, bool) {
	var best candidateKey
	var bestWhen int64
	found := false
	for _, c := range cs {
		if c.Recent.Count == 0 {
			continue
		}
		if !found || c.Recent.When > bestWhen {
			best, bestWhen, found = keyOf(c), c.Recent.When, true
		}
	}
	return best, found
}

func sortCandidates(cs []models.LoginCandidate, currentDomainOnly bool) {
	recent, hasRecent := mostRecentKey(cs)

	sort.SliceStable(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]

		if hasRecent {
			am, bm := keyOf(a) == recent, keyOf(b) == recent
			if am != bm {
				return am
			}
		}
		if a.Recent.Count != b.Recent.Count {
			return a.Recent.Count > b.Recent.Count
		}
		if currentDomainOnly {
			if al, bl := domainLevels(a.Login), domainLevels(b.Login); al != bl {
				return al > bl
			}
		}
		return loginLess(a.Login, b.Login)
	})
}

// domainLevels counts the dot-separated levels of a login name; deeper
// hosts (login.example.com) outrank shallower ones (example.com).
func domainLevels(login string) int {
	return strings.Count(login, ".")
}

// loginLess is a case-aware lexicographic comparison: case-insensitive
// first, byte order as the tiebreak.
func loginLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// scored carries a candidate through query filtering together with its
// accumulated match positions (byte offsets into Login) and fuzzy score.
type scored struct {
	cand      models.LoginCandidate
	positions []int
	score     int
}

func applyQuery(cs []models.LoginCandidate, query string) []models.LoginCandidate {
	tokens := strings.Fields(query)

	substrTokens := tokens
	fuzzyToken := ""
	if !strings.HasPrefix(query, " ") {
		fuzzyToken, substrTokens = tokens[0], tokens[1:]
	}

	working := make([]scored, len(cs))
	for i, c := range cs {
		working[i] = scored{cand: c}
	}

	for _, token := range substrTokens {
		working = filterSubstring(working, token)
	}

	if fuzzyToken != "" {
		working = filterFuzzy(working, fuzzyToken)
	}

	result := make([]models.LoginCandidate, 0, len(working))
	for _, s := range working {
		attachHighlights(&s.cand, s.positions)
		result = append(result, s.cand)
	}
	return result
}

// filterSubstring keeps candidates whose login name contains token
// case-insensitively, recording the first occurrence for highlighting.
func filterSubstring(working []scored, token string) []scored {
	lowerToken := strings.ToLower(token)

	kept := working[:0]
	for _, s := range working {
		lowerLogin := strings.ToLower(s.cand.Login)
		at := strings.Index(lowerLogin, lowerToken)
		if at < 0 {
			continue
		}
		s.positions = append(s.positions, matchedByteOffsets(s.cand.Login, lowerLogin, at, len(lowerToken))...)
		kept = append(kept, s)
	}
	return kept
}

// matchedByteOffsets maps a matched byte range of the lower-cased login
// back to rune-start byte offsets of the original login. Lower-casing
// preserves rune count, so matched runes line up one-to-one even when
// their byte widths differ.
func matchedByteOffsets(login, lowerLogin string, at, length int) []int {
	startRune := utf8.RuneCountInString(lowerLogin[:at])
	endRune := startRune + utf8.RuneCountInString(lowerLogin[at:at+length])

	var offsets []int
	runeIdx := 0
	for byteIdx := range login {
		if runeIdx >= startRune && runeIdx < endRune {
			offsets = append(offsets, byteIdx)
		}
		runeIdx++
	}
	return offsets
}

// filterFuzzy keeps fuzzy hits against the login name or, failing that,
// the store name, and re-orders the survivors by relevance score. Equal
// scores keep the pre-query order.
func filterFuzzy(working []scored, token string) []scored {
	logins := make([]string, len(working))
	for i, s := range working {
		logins[i] = s.cand.Login
	}

	matched := make(map[int]bool, len(working))
	for _, m := range fuzzy.Find(token, logins) {
		working[m.Index].score = m.Score
		working[m.Index].positions = append(working[m.Index].positions, m.MatchedIndexes...)
		matched[m.Index] = true
	}

	// second chance for login misses: the store name
	var missIdx []int
	var missNames []string
	for i, s := range working {
		if !matched[i] {
			missIdx = append(missIdx, i)
			missNames = append(missNames, s.cand.StoreName)
		}
	}
	for _, m := range fuzzy.Find(token, missNames) {
		at := missIdx[m.Index]
		working[at].score = m.Score
		matched[at] = true
	}

	kept := make([]scored, 0, len(matched))
	for i, s := range working {
		if matched[i] {
			kept = append(kept, s)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })
	return kept
}
