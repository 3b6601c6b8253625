package phone

import (
	"regexp"
	"strings"
)

var (
	// extensionRe matches a trailing extension introduced by "x", "ext",
	// "(ext)" or "extension", with optional punctuation before the digits.
	extensionRe = regexp.MustCompile(`(?i)\s*(?:\(ext\)|extension|ext|x)\s*\.?\s*:?\s*(\d+)\s*$`)

	// nonstandardExtensionRe covers only the "ext"/"(ext)" spellings. The
	// canonical suggested form always renders extensions as " x<digits>",
	// so these spellings force a tag invalid even when the number parses.
	nonstandardExtensionRe = regexp.MustCompile(`(?i)\s*(?:\(ext\)|ext)\s*\.?\s*:?\s*\d+\s*$`)
)

// StripExtension returns the dialable core preceding any trailing extension
// marker, trimmed. Input without a marker is returned unchanged.
func StripExtension(s string) string {
	if loc := extensionRe.FindStringIndex(s); loc != nil {
		return strings.TrimSpace(s[:loc[0]])
	}
	return s
}

// HasNonstandardExtension reports whether the value spells its extension in
// a form other than the canonical bare "x".
func HasNonstandardExtension(s string) bool {
	return nonstandardExtensionRe.MatchString(s)
}
