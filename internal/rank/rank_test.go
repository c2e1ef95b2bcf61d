// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rank

import (
	"testing"

	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(login string, count int, when int64, inCurrentHost bool) models.LoginCandidate {
	return models.LoginCandidate{
		StoreID:       "default",
		StoreName:     "default",
		Login:         login,
		InCurrentHost: inCurrentHost,
		Recent:        models.UsageRecord{When: when, Count: count},
	}
}

func logins(cs []models.LoginCandidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Login
	}
	return out
}

func TestRank_UsedBeatsCurrentHostOnly(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("a/b", 0, 0, true),
		candidate("c", 3, 100, false),
	}

	out := Rank(in, "", true)
	assert.Equal(t, []string{"c", "a/b"}, logins(out))
}

func TestRank_MostRecentFirst(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("often", 10, 50, false),
		candidate("latest", 1, 200, false),
	}

	out := Rank(in, "", false)
	assert.Equal(t, []string{"latest", "often"}, logins(out),
		"latest use outranks higher count")
}

func TestRank_CountDescendingAfterMostRecent(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("two", 2, 10, false),
		candidate("five", 5, 20, false),
		candidate("three", 3, 30, false),
	}

	out := Rank(in, "", false)
	// "three" is most recent, then by count
	assert.Equal(t, []string{"three", "five", "two"}, logins(out))
}

func TestRank_LexicographicTiebreak(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("bravo", 0, 0, false),
		candidate("alpha", 0, 0, false),
		candidate("Charlie", 0, 0, false),
	}

	out := Rank(in, "", false)
	assert.Equal(t, []string{"alpha", "bravo", "Charlie"}, logins(out))
}

func TestRank_SpecificityInCurrentDomainMode(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("example.com", 0, 0, true),
		candidate("login.example.com", 0, 0, true),
	}

	out := Rank(in, "", true)
	assert.Equal(t, []string{"login.example.com", "example.com"}, logins(out))
}

func TestRank_CurrentDomainDropsUnrelated(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("here", 0, 0, true),
		candidate("elsewhere-unused", 0, 0, false),
		candidate("elsewhere-used", 2, 10, false),
	}

	out := Rank(in, "", true)
	assert.Equal(t, []string{"elsewhere-used", "here"}, logins(out))
}

func TestRank_Idempotent(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("bravo", 2, 20, true),
		candidate("alpha", 2, 10, true),
		candidate("delta", 0, 0, true),
	}

	once := Rank(in, "", false)
	twice := Rank(once, "", false)
	assert.Equal(t, logins(once), logins(twice))
}

func TestRank_InputNotModified(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("zulu", 0, 0, false),
		candidate("alpha", 0, 0, false),
	}

	_ = Rank(in, "", false)
	assert.Equal(t, []string{"zulu", "alpha"}, logins(in))
}

func TestRank_PathDisplaySplit(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("web/example.com/alice", 0, 0, false),
		candidate("rootentry", 0, 0, false),
	}

	out := Rank(in, "", false)
	require.Len(t, out, 2)

	assert.Equal(t, "rootentry", out[0].Login)
	assert.Equal(t, "/", out[0].Path)
	assert.Equal(t, "rootentry", out[0].Display)

	assert.Equal(t, "web/example.com/", out[1].Path)
	assert.Equal(t, "alice", out[1].Display)
}

func TestRank_LeadingSpaceIsSubstringOnly(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("alice-bob-co", 0, 0, false),
		candidate("alice-co", 0, 0, false),
	}

	out := Rank(in, " alice bob", false)
	assert.Equal(t, []string{"alice-bob-co"}, logins(out))
}

func TestRank_SubstringFiltersIntersect(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("mail/alice", 0, 0, false),
		candidate("mail/bob", 0, 0, false),
		candidate("bank/alice", 0, 0, false),
	}

	out := Rank(in, " mail alice", false)
	assert.Equal(t, []string{"mail/alice"}, logins(out))
}

func TestRank_SubstringCaseInsensitive(t *testing.T) {
	in := []models.LoginCandidate{candidate("Mail/Alice", 0, 0, false)}

	out := Rank(in, " ALICE", false)
	assert.Equal(t, []string{"Mail/Alice"}, logins(out))
}

func TestRank_FuzzyKeepsOnlyHits(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("github.com", 0, 0, false),
		candidate("bank", 0, 0, false),
	}

	out := Rank(in, "gthb", false)
	assert.Equal(t, []string{"github.com"}, logins(out))
}

func TestRank_FuzzyRelevanceSupersedesUsage(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("xaxbxcx", 9, 100, false), // heavy use, weak match
		candidate("abc", 0, 0, false),       // unused, consecutive match
	}

	out := Rank(in, "abc", false)
	assert.Equal(t, []string{"abc", "xaxbxcx"}, logins(out))
}

func TestRank_FuzzyMatchesStoreName(t *testing.T) {
	in := []models.LoginCandidate{
		{StoreID: "work", StoreName: "workstore", Login: "zzz"},
		{StoreID: "other", StoreName: "personal", Login: "yyy"},
	}

	out := Rank(in, "workstore", false)
	require.Equal(t, []string{"zzz"}, logins(out))
	assert.Empty(t, out[0].PathHighlights, "store-name hits carry no login highlights")
	assert.Empty(t, out[0].DisplayHighlights)
}

func TestRank_FuzzyHighlightsDisplay(t *testing.T) {
	in := []models.LoginCandidate{candidate("alice", 0, 0, false)}

	out := Rank(in, "ali", false)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].PathHighlights)
	assert.Equal(t, []models.HighlightRun{{Start: 0, End: 3}}, out[0].DisplayHighlights)
}

func TestRank_SubstringHighlightSplitsAtBoundary(t *testing.T) {
	in := []models.LoginCandidate{candidate("web/example.com", 0, 0, false)}

	out := Rank(in, " example", false)
	require.Len(t, out, 1)

	assert.Equal(t, "web/", out[0].Path)
	assert.Equal(t, "example.com", out[0].Display)
	assert.Empty(t, out[0].PathHighlights)
	assert.Equal(t, []models.HighlightRun{{Start: 0, End: 7}}, out[0].DisplayHighlights)
}

func TestRank_SubstringHighlightSurvivesCaseFoldWidthChange(t *testing.T) {
	// lower-casing İ (2 bytes) yields i (1 byte), shifting byte offsets
	in := []models.LoginCandidate{candidate("logins/İstanbul", 0, 0, false)}

	out := Rank(in, " istanbul", false)
	require.Len(t, out, 1)

	assert.Empty(t, out[0].PathHighlights)
	assert.Equal(t, []models.HighlightRun{{Start: 0, End: 8}}, out[0].DisplayHighlights)
}

func TestRank_HighlightRunSpansBoundary(t *testing.T) {
	in := []models.LoginCandidate{candidate("web/site", 0, 0, false)}

	out := Rank(in, " eb/si", false)
	require.Len(t, out, 1)

	// "web/" | "site": the run w[eb/][si]te splits at the boundary
	assert.Equal(t, []models.HighlightRun{{Start: 1, End: 4}}, out[0].PathHighlights)
	assert.Equal(t, []models.HighlightRun{{Start: 0, End: 2}}, out[0].DisplayHighlights)
}

func TestRank_EmptyQueryKeepsOrder(t *testing.T) {
	in := []models.LoginCandidate{
		candidate("beta", 0, 0, false),
		candidate("alpha", 0, 0, false),
	}

	spaced := Rank(in, "   ", false)
	plain := Rank(in, "", false)
	assert.Equal(t, logins(plain), logins(spaced))
}

func TestRank_EmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, "query", true))
}
