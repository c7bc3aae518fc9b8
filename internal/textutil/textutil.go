// Package textutil provides text normalization helpers shared by the
// ingestion and outline packages.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	trailingDigits = regexp.MustCompile(`\d+$`)
	digitRuns      = regexp.MustCompile(`\d+`)
	pageOfPattern  = regexp.MustCompile(`(?i)page\s*\d+\s*of\s*\d+`)

	folder = cases.Fold()
)

// Collapse normalizes text to NFC form and collapses whitespace runs to
// single spaces, trimming the ends
func Collapse(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Fold returns a case-folded form of the text for case-insensitive
// comparison
func Fold(s string) string {
	return folder.String(s)
}

// ContainsFold reports whether s contains substr under case folding
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// StripTrailingDigits removes a trailing digit run from the text
func StripTrailingDigits(s string) string {
	return strings.TrimSpace(trailingDigits.ReplaceAllString(s, ""))
}

// StripDigits removes every digit run from the text
func StripDigits(s string) string {
	return strings.TrimSpace(digitRuns.ReplaceAllString(s, ""))
}

// StripPageMarkers removes "Page X of Y"-style patterns (case-insensitive)
func StripPageMarkers(s string) string {
	return strings.TrimSpace(pageOfPattern.ReplaceAllString(s, ""))
}

// IsNumeric reports whether the text consists entirely of digits
// (ignoring surrounding whitespace)
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsAllCaps reports whether the text contains at least one uppercase letter
// and no lowercase letters
func IsAllCaps(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// WordCount returns the number of whitespace-separated words in the text
func WordCount(s string) int {
	return len(strings.Fields(s))
}
