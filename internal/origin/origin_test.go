// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package origin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchHost_DeepestSegmentWins(t *testing.T) {
	m := MatchHost("example.com/login.example.com/entry", "login.example.com")
	require.NotNil(t, m)
	assert.Equal(t, "login.example.com", m.Hostname)
}

func TestMatchHost_SkipsEntryName(t *testing.T) {
	m := MatchHost("web/example.com/my-entry", "example.com")
	require.NotNil(t, m)
	assert.Equal(t, "example.com", m.Hostname)
	assert.Empty(t, m.Port)
}

func TestMatchHost_SkipsNamespaceSegments(t *testing.T) {
	m := MatchHost("example.com/alice@example.com", "example.com")
	require.NotNil(t, m)
	assert.Equal(t, "example.com", m.Hostname)
}

func TestMatchHost_NoMatch(t *testing.T) {
	assert.Nil(t, MatchHost("personal/banking/entry", "example.com"))
	assert.Nil(t, MatchHost("", "example.com"))
}

func TestMatchHost_PublicSuffixRequired(t *testing.T) {
	// "notarealtld" is not a recognized public suffix
	assert.Nil(t, MatchHost("host.notarealtld/entry", "example.com"))

	m := MatchHost("host.co.uk/entry", "example.com")
	require.NotNil(t, m)
	assert.Equal(t, "host.co.uk", m.Hostname)
}

func TestMatchHost_BareSuffixRejected(t *testing.T) {
	// a public suffix alone has no registrable part
	assert.Nil(t, MatchHost("co.uk/entry", "example.com"))
}

func TestMatchHost_ExactCurrentHost(t *testing.T) {
	// single-label hosts only match the current page's hostname
	m := MatchHost("localhost/entry", "localhost")
	require.NotNil(t, m)
	assert.Equal(t, "localhost", m.Hostname)

	assert.Nil(t, MatchHost("localhost/entry", "example.com"))
}

func TestMatchHost_CurrentHostSubdomainOfSegment(t *testing.T) {
	m := MatchHost("intranet.corp/entry", "wiki.intranet.corp")
	require.NotNil(t, m)
	assert.Equal(t, "intranet.corp", m.Hostname)
}

func TestMatchHost_ExplicitPort(t *testing.T) {
	m := MatchHost("localhost:8080/entry", "localhost")
	require.NotNil(t, m)
	assert.Equal(t, "localhost", m.Hostname)
	assert.Equal(t, "8080", m.Port)
}

func TestMatchHost_CaseInsensitive(t *testing.T) {
	m := MatchHost("Example.COM/entry", "EXAMPLE.com")
	require.NotNil(t, m)
	assert.Equal(t, "example.com", m.Hostname)
}

func TestInCurrentHost(t *testing.T) {
	tests := []struct {
		name        string
		match       *Match
		currentHost string
		currentPort string
		want        bool
	}{
		{name: "nil match", match: nil, currentHost: "example.com", want: false},
		{name: "exact", match: &Match{Hostname: "example.com"}, currentHost: "example.com", want: true},
		{name: "current is subdomain", match: &Match{Hostname: "example.com"}, currentHost: "login.example.com", want: true},
		{name: "match is subdomain", match: &Match{Hostname: "login.example.com"}, currentHost: "example.com", want: true},
		{name: "unrelated", match: &Match{Hostname: "example.com"}, currentHost: "example.org", want: false},
		{name: "single label exact only", match: &Match{Hostname: "localhost"}, currentHost: "intranet.localhost", want: false},
		{name: "not a suffix boundary", match: &Match{Hostname: "example.com"}, currentHost: "badexample.com", want: false},
		{name: "port matches", match: &Match{Hostname: "localhost", Port: "8080"}, currentHost: "localhost", currentPort: "8080", want: true},
		{name: "port mismatch", match: &Match{Hostname: "localhost", Port: "8080"}, currentHost: "localhost", currentPort: "443", want: false},
		{name: "port required but absent", match: &Match{Hostname: "localhost", Port: "8080"}, currentHost: "localhost", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InCurrentHost(tt.match, tt.currentHost, tt.currentPort))
		})
	}
}
