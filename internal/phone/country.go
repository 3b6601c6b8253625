// Package phone implements the phone-number validation, normalization and
// aggregation engine for OSM phone tags. It classifies each tagged value,
// decides whether a deterministic correction exists, and produces the
// canonical suggested form consumed by the report layer.
package phone

// SpacingRule governs which characters count as formatting whitespace when a
// number is compared against its canonical form.
type SpacingRule int

const (
	// SpacingWhitespace strips whitespace only (most countries).
	SpacingWhitespace SpacingRule = iota
	// SpacingWhitespaceHyphen additionally strips hyphens, for countries
	// where dash-grouped national numbers are the local convention.
	SpacingWhitespaceHyphen
)

// Profile is the static per-country configuration. Profiles are read-only
// and safe to share across goroutines.
type Profile struct {
	Code       string
	Locale     string
	Spacing    SpacingRule
	DashFormat bool
}

var profiles = map[string]Profile{
	"GB": {Code: "GB", Locale: "en-GB"},
	"IE": {Code: "IE", Locale: "en-IE"},
	"FR": {Code: "FR", Locale: "fr"},
	"BE": {Code: "BE", Locale: "fr-BE"},
	"NL": {Code: "NL", Locale: "nl"},
	"DE": {Code: "DE", Locale: "de"},
	"AT": {Code: "AT", Locale: "de-AT"},
	"CH": {Code: "CH", Locale: "de-CH"},
	"ES": {Code: "ES", Locale: "es"},
	"IT": {Code: "IT", Locale: "it"},
	"US": {Code: "US", Locale: "en-US", Spacing: SpacingWhitespaceHyphen, DashFormat: true},
	"CA": {Code: "CA", Locale: "en-CA", Spacing: SpacingWhitespaceHyphen, DashFormat: true},
	"AU": {Code: "AU", Locale: "en-AU"},
	"NZ": {Code: "NZ", Locale: "en-NZ"},
}

// ProfileFor returns the profile for an ISO3166-1 alpha-2 code. Countries
// without an explicit entry get whitespace-only spacing and no dash styling.
func ProfileFor(code string) Profile {
	if p, ok := profiles[code]; ok {
		return p
	}
	return Profile{Code: code, Locale: "en"}
}
