// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package origin maps store-relative entry paths onto page hosts. Entries
// are conventionally filed under directories named after the hosts they
// belong to, so the path itself encodes which origins an entry targets.
package origin

import (
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Match is the host a path segment resolved to. Port is empty when the
// segment carried no explicit port.
type Match struct {
	Hostname string
	Port     string
}

// hostnamePattern accepts syntactically plausible dotted domain names,
// lower-cased, with an alphabetic final label.
var hostnamePattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z][a-z0-9-]*$`)

// MatchHost finds the host a storage-relative path targets, given the
// hostname of the page currently shown.
//
// The path is split into slash-delimited segments; segments containing "@"
// are namespacing, not host information, and are skipped. Segments are
// tried from the deepest (rightmost) to the shallowest, so
// "example.com/login.example.com/entry" resolves to login.example.com
// before falling back to example.com. A segment is accepted when it is a
// valid domain under a recognized public suffix, when it equals the
// current hostname exactly, or when the current hostname is a strict
// dotted subdomain of it. Returns nil when no segment qualifies.
func MatchHost(path string, currentHost string) *Match {
	currentHost = strings.ToLower(currentHost)

	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := strings.ToLower(strings.TrimSpace(segments[i]))
		if segment == "" || strings.Contains(segment, "@") {
			continue
		}

		hostname, port := splitHostPort(segment)
		if hostname == "" {
			continue
		}

		if acceptHost(hostname, currentHost) {
			return &Match{Hostname: hostname, Port: port}
		}
	}

	return nil
}

// InCurrentHost reports whether a matched host belongs to the origin the
// page is served from.
//
// Hostnames match on equality, or on a dotted-subdomain relationship in
// either direction when the matched hostname contains a dot. Single-label
// hosts like "localhost" only match exactly. A match that carries an
// explicit port additionally requires the current origin's port to equal
// it.
func InCurrentHost(m *Match, currentHost, currentPort string) bool {
	if m == nil {
		return false
	}
	currentHost = strings.ToLower(currentHost)

	if m.Port != "" && m.Port != currentPort {
		return false
	}

	if m.Hostname == currentHost {
		return true
	}
	if !strings.Contains(m.Hostname, ".") {
		return false
	}

	return isDottedSubdomain(currentHost, m.Hostname) || isDottedSubdomain(m.Hostname, currentHost)
}

// acceptHost applies the segment acceptance rule of [MatchHost].
func acceptHost(hostname, currentHost string) bool {
	if hostname == currentHost {
		return true
	}
	if currentHost != "" && isDottedSubdomain(currentHost, hostname) {
		return true
	}
	return hasRecognizedSuffix(hostname)
}

// hasRecognizedSuffix reports whether hostname is a well-formed domain
// with a registrable part under an ICANN-managed public suffix.
func hasRecognizedSuffix(hostname string) bool {
	if !hostnamePattern.MatchString(hostname) {
		return false
	}
	suffix, icann := publicsuffix.PublicSuffix(hostname)
	return icann && len(hostname) > len(suffix)
}

// isDottedSubdomain reports whether child is a strict subdomain of parent.
func isDottedSubdomain(child, parent string) bool {
	return strings.HasSuffix(child, "."+parent)
}

// splitHostPort separates a trailing all-digit port from a segment.
// Unlike net.SplitHostPort it treats the port as optional.
func splitHostPort(segment string) (string, string) {
	host, port, found := strings.Cut(segment, ":")
	if !found {
		return segment, ""
	}
	if port == "" || strings.ContainsAny(port, ":/") {
		return "", ""
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return "", ""
		}
	}
	return host, port
}
