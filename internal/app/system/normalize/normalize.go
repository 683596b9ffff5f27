// internal/app/system/normalize/normalize.go

// Package normalize trims and folds user-supplied input before it reaches
// the store. Mutations treat a value that normalizes to empty as a missing
// precondition and no-op.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder lowercases after decomposing and stripping combining marks, so
// "Café" and "cafe" fold to the same key.
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name normalizes a display name: trims whitespace, preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Title normalizes a group, project, or task title: trims whitespace,
// preserves case.
func Title(s string) string {
	return strings.TrimSpace(s)
}

// Email normalizes an email address: trims and lowercases.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Blank reports whether the text is empty or whitespace-only. Message
// bodies are kept verbatim when non-blank, so this checks without trimming
// the stored value.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Fold returns a case-insensitive, diacritic-insensitive search key.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
