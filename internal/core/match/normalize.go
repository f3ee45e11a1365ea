// Package match contains the pure name-resolution logic: normalization of
// noisy identity strings and scoring of candidates from the registry.
// This is part of the Functional Core - no I/O, only pure functions.
package match

import (
	"strings"
	"unicode"
)

// foldTable maps every Turkish letter variant to its base Latin form.
// The table must cover the full alphabet in use; a missing entry is a
// correctness bug, not a tolerated gap.
var foldTable = map[rune]rune{
	'ç': 'c', 'Ç': 'c',
	'ğ': 'g', 'Ğ': 'g',
	'ı': 'i', 'I': 'i', 'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ş': 's', 'Ş': 's',
	'ü': 'u', 'Ü': 'u',
}

// combiningDotAbove shows up when a dotted capital İ was decomposed
// upstream (e.g. by a lowercasing pass in the intent layer).
const combiningDotAbove = '̇'

// Normalize canonicalizes a raw identity string for comparison: runs of
// whitespace collapse to single spaces, the result is trimmed, lowercased,
// and Turkish letter variants fold to their base Latin form.
//
// Normalize is deterministic, total, and idempotent. Any input, including
// the empty string, yields a valid normalized string.
func Normalize(raw string) string {
	collapsed := strings.Join(strings.Fields(raw), " ")

	var b strings.Builder
	b.Grow(len(collapsed))
	for _, r := range collapsed {
		if r == combiningDotAbove {
			continue
		}
		if folded, ok := foldTable[r]; ok {
			b.WriteRune(folded)
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Tokens returns the whitespace-separated tokens of the normalized form.
func Tokens(raw string) []string {
	return strings.Fields(Normalize(raw))
}
