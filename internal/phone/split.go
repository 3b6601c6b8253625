package phone

import (
	"regexp"
	"strings"
)

// CanonicalSeparator joins multiple numbers in a suggested tag value.
const CanonicalSeparator = "; "

var (
	// separatorRe matches every accepted or tolerated delimiter between
	// numbers in one tag value: the semicolon form plus comma, slash and
	// the words "or" and "and", each optionally padded with whitespace.
	separatorRe = regexp.MustCompile(`\s*(?:[;,/]|\bor\b|\band\b)\s*`)

	// badSeparatorRe matches every delimiter except the semicolon form.
	// A tag matching it is flagged regardless of the numbers it carries.
	badSeparatorRe = regexp.MustCompile(`\s*(?:[,/]|\bor\b|\band\b)\s*`)
)

// Candidate is one number extracted from a multi-value tag. Pos is the byte
// offset of the trimmed text within the raw value.
type Candidate struct {
	Text string
	Pos  int
}

// Split partitions a raw tag value into ordered, trimmed, non-empty number
// candidates. A lone "+" produced by the split is re-merged with the segment
// that follows it, so an international prefix is never a token of its own.
func Split(raw string) []Candidate {
	var candidates []Candidate
	prev := 0
	locs := separatorRe.FindAllStringIndex(raw, -1)
	for i := 0; i <= len(locs); i++ {
		end := len(raw)
		if i < len(locs) {
			end = locs[i][0]
		}
		if text, pos, ok := trimmedAt(raw, prev, end); ok {
			candidates = append(candidates, Candidate{Text: text, Pos: pos})
		}
		if i < len(locs) {
			prev = locs[i][1]
		}
	}
	return consolidatePlus(candidates)
}

// HasBadSeparator reports whether the value delimits its numbers with
// anything other than the semicolon form.
func HasBadSeparator(raw string) bool {
	return badSeparatorRe.MatchString(raw)
}

// Segments partitions a value into interleaved number and separator tokens,
// using the same separator vocabulary as Split. Tokens are not trimmed;
// concatenating them reproduces the input exactly.
func Segments(s string) []string {
	var tokens []string
	prev := 0
	for _, loc := range separatorRe.FindAllStringIndex(s, -1) {
		if loc[0] > prev {
			tokens = append(tokens, s[prev:loc[0]])
		}
		tokens = append(tokens, s[loc[0]:loc[1]])
		prev = loc[1]
	}
	if prev < len(s) {
		tokens = append(tokens, s[prev:])
	}
	// Same lone "+" consolidation as Split: a digitless token carrying an
	// international prefix absorbs the token after it.
	for i := 0; i < len(tokens)-1; {
		if isLonePlus(tokens[i]) {
			tokens[i] += tokens[i+1]
			tokens = append(tokens[:i+1], tokens[i+2:]...)
			continue
		}
		i++
	}
	return tokens
}

// isLonePlus reports whether a token is an international prefix split off
// from the number that follows it.
func isLonePlus(token string) bool {
	trimmed := strings.TrimSpace(token)
	return strings.HasPrefix(trimmed, "+") && !strings.ContainsAny(trimmed, "0123456789")
}

func trimmedAt(raw string, start, end int) (string, int, bool) {
	segment := raw[start:end]
	leading := len(segment) - len(strings.TrimLeft(segment, " \t\r\n"))
	trimmed := strings.TrimSpace(segment)
	if trimmed == "" {
		return "", 0, false
	}
	return trimmed, start + leading, true
}

func consolidatePlus(candidates []Candidate) []Candidate {
	for i := 0; i < len(candidates)-1; {
		if isLonePlus(candidates[i].Text) {
			candidates[i].Text += candidates[i+1].Text
			candidates = append(candidates[:i+1], candidates[i+2:]...)
			continue
		}
		i++
	}
	return candidates
}
