package phone

import (
	"strings"

	"github.com/arrival-spring/osm-phones-sub000/internal/osm"
)

// TagResult aggregates the candidate verdicts for one tag value.
type TagResult struct {
	Invalid          bool
	AutoFixable      bool
	SuggestedNumbers []string
	NumberOfValues   int
}

// Suggested returns the tag's corrected value: the candidate suggestions
// joined by the canonical separator. It is only surfaced when the tag is
// both invalid and auto-fixable.
func (r TagResult) Suggested() (string, bool) {
	if !r.Invalid || !r.AutoFixable || len(r.SuggestedNumbers) == 0 {
		return "", false
	}
	return strings.Join(r.SuggestedNumbers, CanonicalSeparator), true
}

// CheckTag splits one raw tag value and validates every candidate. The tag
// is invalid if any candidate is invalid or a bad separator was used; it
// stays auto-fixable as long as every invalid candidate is, a bad separator
// alone never blocks the fix. Valid candidates still contribute their
// canonical rendering so a separator-only fix can rewrite the whole value.
func CheckTag(raw string, profile Profile, tags map[string]string, exclusions *Exclusions) TagResult {
	candidates := Split(raw)
	result := TagResult{
		Invalid:        HasBadSeparator(raw),
		AutoFixable:    true,
		NumberOfValues: len(candidates),
	}
	for _, candidate := range candidates {
		verdict := CheckCandidate(candidate.Text, profile, tags, exclusions)
		if verdict.Invalid {
			result.Invalid = true
			if !verdict.AutoFixable {
				result.AutoFixable = false
			}
		}
		switch {
		case verdict.SuggestedFix != "":
			result.SuggestedNumbers = append(result.SuggestedNumbers, verdict.SuggestedFix)
		case verdict.Canonical != "":
			result.SuggestedNumbers = append(result.SuggestedNumbers, verdict.Canonical)
		default:
			result.SuggestedNumbers = append(result.SuggestedNumbers, candidate.Text)
		}
	}
	return result
}

// ItemResult is the record-level verdict. It is only created for records
// with at least one invalid phone tag.
type ItemResult struct {
	ID             int64
	Type           string
	Lat            float64
	Lon            float64
	Tags           map[string]string
	Website        string
	InvalidNumbers map[string]string
	SuggestedFixes map[string]string
	AutoFixable    bool
}

// CheckItems validates every phone-like tag on every record. It returns the
// flagged records plus the total number of values inspected, counted
// independently of validity.
func CheckItems(records []osm.Record, profile Profile, exclusions *Exclusions) ([]ItemResult, int) {
	var results []ItemResult
	total := 0
	for _, record := range records {
		var item *ItemResult
		for _, key := range osm.PhoneKeys {
			raw, ok := record.Tags[key]
			if !ok || isBooleanMarker(raw) {
				continue
			}
			tagResult := CheckTag(raw, profile, record.Tags, exclusions)
			total += tagResult.NumberOfValues
			if !tagResult.Invalid {
				continue
			}
			if item == nil {
				item = &ItemResult{
					ID:             record.ID,
					Type:           record.Type,
					Lat:            record.Lat,
					Lon:            record.Lon,
					Tags:           record.Tags,
					Website:        websiteFor(record),
					InvalidNumbers: make(map[string]string),
					SuggestedFixes: make(map[string]string),
					AutoFixable:    true,
				}
			}
			item.InvalidNumbers[key] = raw
			if fix, ok := tagResult.Suggested(); ok {
				item.SuggestedFixes[key] = fix
			}
			item.AutoFixable = item.AutoFixable && tagResult.AutoFixable
		}
		if item != nil {
			results = append(results, *item)
		}
	}
	return results, total
}

// isBooleanMarker reports whether the value is a yes/no marker rather than a
// number, e.g. "mobile=yes". Such tags are skipped as non-numeric metadata.
func isBooleanMarker(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "no":
		return true
	}
	return false
}

func websiteFor(record osm.Record) string {
	for _, key := range osm.WebsiteKeys {
		value := strings.TrimSpace(record.Tags[key])
		if value == "" {
			continue
		}
		if !strings.Contains(value, "://") {
			value = "https://" + value
		}
		return value
	}
	return ""
}
