// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UsageRecord is the persisted usage statistic of one credential for
// one origin. Records are keyed by a chained one-way hash so that no
// plaintext origin or entry path is stored at rest.
type UsageRecord struct {
	// When is the last-use timestamp in epoch milliseconds.
	When int64 `json:"when"`

	// Count is the number of recorded uses. Repeat uses inside the
	// debounce window refresh When without incrementing Count.
	Count int `json:"count"`
}

// HighlightRun marks one contiguous run of matched characters inside
// the path or display portion of a candidate's login name. Start and
// End are rune offsets into the respective portion, End exclusive.
type HighlightRun struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// LoginCandidate is one entry of the ranked, searchable login listing.
// Candidates are built fresh on every listing refresh from the raw
// store files plus ranking context and are discarded when the listing
// session ends.
type LoginCandidate struct {
	// StoreID identifies the store the candidate comes from.
	StoreID string `json:"storeId"`

	// StoreName is the display name of that store; fuzzy queries
	// match against it in addition to the login name.
	StoreName string `json:"storeName"`

	// Login is the entry name relative to the store, without the
	// ".gpg" suffix.
	Login string `json:"login"`

	// Index is the position of the candidate in the raw listing,
	// used to address the candidate across popup round-trips.
	Index int `json:"index"`

	// Host is the hostname matched from the entry path, or empty
	// when no path segment matched the current page.
	Host string `json:"host,omitempty"`

	// HostPort is the explicit port carried by the matched host
	// segment, empty when the segment has no port.
	HostPort string `json:"hostPort,omitempty"`

	// InCurrentHost reports whether the candidate belongs to the
	// origin the listing was built for. Computed once per refresh.
	InCurrentHost bool `json:"inCurrentHost"`

	// Recent is the usage statistic looked up for (origin, store,
	// login); zero-valued when the credential was never used.
	Recent UsageRecord `json:"recent"`

	// Path and Display are the presentation split of Login at its
	// last slash. Root-level entries get a Path of "/".
	Path    string `json:"path"`
	Display string `json:"display"`

	// PathHighlights and DisplayHighlights carry the merged query
	// match runs for each portion; nil when no query was applied.
	PathHighlights    []HighlightRun `json:"pathHighlights,omitempty"`
	DisplayHighlights []HighlightRun `json:"displayHighlights,omitempty"`
}
