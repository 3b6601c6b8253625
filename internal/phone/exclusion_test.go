package phone

import (
	"testing"

	"github.com/arrival-spring/osm-phones-sub000/platform/validator"
)

const testRules = `
countries:
  FR:
    "3631":
      - key: amenity
        value: post_office
  GB:
    "105":
      - key: office
        value: energy_supplier
      - key: operator
        value: National Grid
`

func TestLoadExclusions(t *testing.T) {
	excl, err := LoadExclusions([]byte(testRules), validator.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		country  string
		national string
		tags     map[string]string
		want     bool
	}{
		{"FR", "3631", map[string]string{"amenity": "post_office"}, true},
		{"FR", "3631", map[string]string{"amenity": "restaurant"}, false},
		{"FR", "3632", map[string]string{"amenity": "post_office"}, false},
		{"GB", "105", map[string]string{"operator": "National Grid"}, true},
		{"GB", "105", map[string]string{"office": "energy_supplier"}, true},
		{"GB", "105", map[string]string{}, false},
		{"DE", "3631", map[string]string{"amenity": "post_office"}, false},
	}
	for _, tc := range cases {
		if got := excl.Match(tc.country, tc.national, tc.tags); got != tc.want {
			t.Fatalf("Match(%s, %s, %v): expected %v, got %v", tc.country, tc.national, tc.tags, tc.want, got)
		}
	}
}

func TestLoadExclusions_RejectsIncompletePredicate(t *testing.T) {
	broken := `
countries:
  FR:
    "3631":
      - key: amenity
`
	if _, err := LoadExclusions([]byte(broken), validator.New()); err == nil {
		t.Fatal("expected a validation error for a predicate without a value")
	}
}

func TestLoadExclusions_RejectsEmptyPredicateList(t *testing.T) {
	broken := `
countries:
  FR:
    "3631": []
`
	if _, err := LoadExclusions([]byte(broken), validator.New()); err == nil {
		t.Fatal("expected an error for an entry without predicates")
	}
}

func TestExclusions_NilTableNeverMatches(t *testing.T) {
	var excl *Exclusions
	if excl.Match("FR", "3631", map[string]string{"amenity": "post_office"}) {
		t.Fatal("nil table must never match")
	}
}

func TestDefaultExclusions(t *testing.T) {
	excl := DefaultExclusions()
	if !excl.Match("FR", "3631", map[string]string{"amenity": "post_office"}) {
		t.Fatal("expected built-in table to whitelist FR 3631 for post offices")
	}
}
