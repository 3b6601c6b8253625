// Package diff computes a digit-aligned, format-aware character diff between
// an original phone tag value and its suggested replacement. The digits the
// two renderings share stay visually stable; only prefixes, separators and
// formatting light up.
package diff

import (
	"strings"

	"github.com/arrival-spring/osm-phones-sub000/internal/phone"
)

// Status classifies one diff segment.
type Status int

const (
	Unchanged Status = iota
	Added
	Removed
)

// Segment is a run of characters sharing one status. Concatenating a side's
// segment texts reproduces that side's input string exactly.
type Segment struct {
	Text   string
	Status Status
}

// Diff annotates both sides of an (original, suggested) pair. The original
// side carries Unchanged and Removed segments, the suggested side Unchanged
// and Added. Multi-number values are segmented with the tag splitter's
// separator vocabulary and paired positionally.
func Diff(original, suggested string) ([]Segment, []Segment) {
	if original == suggested {
		return unchanged(original), unchanged(suggested)
	}

	originalTokens := phone.Segments(original)
	suggestedTokens := phone.Segments(suggested)

	var originalSide, suggestedSide []Segment
	paired := min(len(originalTokens), len(suggestedTokens))
	for i := 0; i < paired; i++ {
		o, s := originalTokens[i], suggestedTokens[i]
		switch {
		case o == s:
			originalSide = append(originalSide, unchanged(o)...)
			suggestedSide = append(suggestedSide, unchanged(s)...)
		case hasDigit(o) || hasDigit(s):
			so, ss := numberDiff(o, s)
			originalSide = append(originalSide, so...)
			suggestedSide = append(suggestedSide, ss...)
		default:
			so, ss := charDiff(o, s)
			originalSide = append(originalSide, so...)
			suggestedSide = append(suggestedSide, ss...)
		}
	}
	for _, token := range originalTokens[paired:] {
		originalSide = append(originalSide, Segment{Text: token, Status: Removed})
	}
	for _, token := range suggestedTokens[paired:] {
		suggestedSide = append(suggestedSide, Segment{Text: token, Status: Added})
	}

	return coalesce(originalSide), coalesce(suggestedSide)
}

// numberDiff aligns two renderings of one number on their digit streams.
// Digits common to both sides stay unchanged; the original's formatting is
// discarded in favor of the suggestion's, except a shared leading "+" and
// spaces that coincide by position.
func numberDiff(original, suggested string) ([]Segment, []Segment) {
	originalRunes := []rune(original)
	suggestedRunes := []rune(suggested)
	matchedOriginal, matchedSuggested := lcsMatch(digitsOf(originalRunes), digitsOf(suggestedRunes))

	var originalSide []Segment
	digit := 0
	for i, r := range originalRunes {
		status := Removed
		switch {
		case isDigit(r):
			if matchedOriginal[digit] {
				status = Unchanged
			}
			digit++
		case i == 0 && r == '+' && strings.HasPrefix(suggested, "+"):
			status = Unchanged
		}
		originalSide = appendRune(originalSide, r, status)
	}

	var suggestedSide []Segment
	digit = 0
	for i, r := range suggestedRunes {
		status := Added
		switch {
		case isDigit(r):
			if matchedSuggested[digit] {
				status = Unchanged
			}
			digit++
		case i == 0 && r == '+' && strings.HasPrefix(original, "+"):
			status = Unchanged
		case r == ' ' && i < len(originalRunes) && originalRunes[i] == ' ':
			status = Unchanged
		}
		suggestedSide = appendRune(suggestedSide, r, status)
	}

	return originalSide, suggestedSide
}

// charDiff is a plain character-level diff for separator tokens.
func charDiff(original, suggested string) ([]Segment, []Segment) {
	originalRunes := []rune(original)
	suggestedRunes := []rune(suggested)
	matchedOriginal, matchedSuggested := lcsMatch(originalRunes, suggestedRunes)

	var originalSide, suggestedSide []Segment
	for i, r := range originalRunes {
		status := Removed
		if matchedOriginal[i] {
			status = Unchanged
		}
		originalSide = appendRune(originalSide, r, status)
	}
	for i, r := range suggestedRunes {
		status := Added
		if matchedSuggested[i] {
			status = Unchanged
		}
		suggestedSide = appendRune(suggestedSide, r, status)
	}
	return originalSide, suggestedSide
}

// lcsMatch marks, per side, which elements belong to a longest common
// subsequence of the two sequences.
func lcsMatch(a, b []rune) ([]bool, []bool) {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	matchedA := make([]bool, len(a))
	matchedB := make([]bool, len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			matchedA[i] = true
			matchedB[j] = true
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			i++
		default:
			j++
		}
	}
	return matchedA, matchedB
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func digitsOf(runes []rune) []rune {
	var digits []rune
	for _, r := range runes {
		if isDigit(r) {
			digits = append(digits, r)
		}
	}
	return digits
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func unchanged(s string) []Segment {
	if s == "" {
		return nil
	}
	return []Segment{{Text: s, Status: Unchanged}}
}

func appendRune(segments []Segment, r rune, status Status) []Segment {
	if n := len(segments); n > 0 && segments[n-1].Status == status {
		segments[n-1].Text += string(r)
		return segments
	}
	return append(segments, Segment{Text: string(r), Status: status})
}

func coalesce(segments []Segment) []Segment {
	var out []Segment
	for _, segment := range segments {
		if n := len(out); n > 0 && out[n-1].Status == segment.Status {
			out[n-1].Text += segment.Text
			continue
		}
		out = append(out, segment)
	}
	return out
}
