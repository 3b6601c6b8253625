package phone

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arrival-spring/osm-phones-sub000/platform/validator"
)

// Predicate is one tag condition under which an exclusion applies.
type Predicate struct {
	Key   string `yaml:"key" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

// Exclusions whitelists known-legitimate non-standard numbers per country.
// An entry is keyed by country code and bare national number; it applies to
// a record when any of its predicates matches the record's tags. Exclusions
// are read-only after loading and safe to share across goroutines.
type Exclusions struct {
	rules map[string]map[string][]Predicate
}

type exclusionFile struct {
	Countries map[string]map[string][]Predicate `yaml:"countries"`
}

//go:embed exclusions.yaml
var defaultExclusionData []byte

// LoadExclusions parses and validates a YAML exclusion table.
func LoadExclusions(data []byte, val *validator.Validator) (*Exclusions, error) {
	var file exclusionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse exclusions: %w", err)
	}
	for country, numbers := range file.Countries {
		for national, predicates := range numbers {
			if len(predicates) == 0 {
				return nil, fmt.Errorf("exclusion %s/%s: no predicates", country, national)
			}
			for _, p := range predicates {
				if err := val.Struct(p); err != nil {
					return nil, fmt.Errorf("exclusion %s/%s: %w", country, national, err)
				}
			}
		}
	}
	return &Exclusions{rules: file.Countries}, nil
}

// DefaultExclusions returns the built-in exclusion table.
func DefaultExclusions() *Exclusions {
	excl, err := LoadExclusions(defaultExclusionData, validator.New())
	if err != nil {
		panic("embedded exclusion table is invalid: " + err.Error())
	}
	return excl
}

// Match reports whether the national number is whitelisted for the country
// under the record's tags. A nil table never matches.
func (e *Exclusions) Match(country, national string, tags map[string]string) bool {
	if e == nil {
		return false
	}
	for _, p := range e.rules[country][national] {
		if tags[p.Key] == p.Value {
			return true
		}
	}
	return false
}
