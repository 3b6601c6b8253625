package phone

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// CandidateResult is the verdict for one extracted number candidate.
// SuggestedFix is non-empty only when a deterministic corrected value
// exists; Canonical carries the reformatted rendering of the candidate
// regardless of verdict, for tag-level suggestion assembly.
type CandidateResult struct {
	Invalid      bool
	AutoFixable  bool
	SuggestedFix string
	Canonical    string
}

// CheckCandidate classifies one candidate against a country profile. All
// parse failures are converted into result fields; a malformed tag value
// never aborts a country run.
func CheckCandidate(text string, profile Profile, tags map[string]string, exclusions *Exclusions) (result CandidateResult) {
	defer func() {
		if r := recover(); r != nil {
			result = CandidateResult{Invalid: true}
		}
	}()

	trimmed := strings.TrimSpace(text)
	num, err := phonenumbers.Parse(trimmed, profile.Code)
	if err != nil {
		return CandidateResult{Invalid: true}
	}

	national := phonenumbers.GetNationalSignificantNumber(num)
	if exclusions.Match(profile.Code, national, tags) {
		// Accepted local convention: the fix is the bare national number.
		return CandidateResult{AutoFixable: true, SuggestedFix: national, Canonical: national}
	}

	if !phonenumbers.IsValidNumber(num) {
		return CandidateResult{Invalid: true}
	}

	canonical := canonicalForm(num, profile)
	e164 := phonenumbers.Format(num, phonenumbers.E164)
	core := StripExtension(trimmed)
	if stripFormatting(core, profile.Spacing) != e164 {
		return CandidateResult{Invalid: true, AutoFixable: true, SuggestedFix: canonical, Canonical: canonical}
	}

	if num.GetExtension() != "" && HasNonstandardExtension(trimmed) {
		return CandidateResult{Invalid: true, AutoFixable: true, SuggestedFix: canonical, Canonical: canonical}
	}

	return CandidateResult{Canonical: canonical}
}

// canonicalForm renders the human-spaced international form: the E.164
// representation re-parsed without its extension and formatted, with any
// extension appended as " x<digits>".
func canonicalForm(num *phonenumbers.PhoneNumber, profile Profile) string {
	clean := num
	if parsed, err := phonenumbers.Parse(phonenumbers.Format(num, phonenumbers.E164), "ZZ"); err == nil {
		clean = parsed
	}
	formatted := phonenumbers.Format(clean, phonenumbers.INTERNATIONAL)
	if profile.DashFormat {
		formatted = dashNational(formatted)
	}
	if ext := num.GetExtension(); ext != "" {
		formatted += " x" + ext
	}
	return formatted
}

// dashNational keeps a single space after the calling code and joins the
// remaining groups with hyphens.
func dashNational(international string) string {
	callingCode, rest, found := strings.Cut(international, " ")
	if !found {
		return international
	}
	return callingCode + " " + strings.ReplaceAll(rest, " ", "-")
}

func stripFormatting(s string, spacing SpacingRule) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if spacing == SpacingWhitespaceHyphen && r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
