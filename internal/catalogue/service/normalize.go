package service

import (
	"regexp"
	"strings"
)

// Identifier values arrive with inconsistent casing, whitespace and zero
// padding across source systems, so every comparison in this package runs
// on canonical forms. All three normalizers are total: unusable input
// degrades to "" and empty keys never enter an index.

// keep lowercase letters, digits and whitespace
var reNameJunk = regexp.MustCompile(`[^a-z0-9\s]+`)

var reLeadingZeros = regexp.MustCompile(`^0+`)

// NormalizeCode canonicalizes a code-like identifier: trim + upper-case.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeNumeric canonicalizes a numeric identifier (EAN and the like):
// trim and strip leading zero padding, leaving at least one digit.
func NormalizeNumeric(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	out := reLeadingZeros.ReplaceAllString(s, "")
	if out == "" {
		// all zeros: keep a single digit rather than dropping the value
		return "0"
	}
	return out
}

// NormalizeName canonicalizes a free-text name for fuzzy comparison:
// lower-case, strip punctuation, collapse whitespace. Idempotent.
func NormalizeName(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToLower(raw)
	s = reNameJunk.ReplaceAllString(s, "")
	return collapseSpaces(s)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
