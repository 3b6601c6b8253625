package phone

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"single", "020 7946 0000", []string{"020 7946 0000"}},
		{"semicolon", "020 7946 0000; 020 7946 0001", []string{"020 7946 0000", "020 7946 0001"}},
		{"semicolon no space", "020 7946 0000;020 7946 0001", []string{"020 7946 0000", "020 7946 0001"}},
		{"comma", "020 7946 0000, +442079460001", []string{"020 7946 0000", "+442079460001"}},
		{"slash", "020 7946 0000 / 020 7946 0001", []string{"020 7946 0000", "020 7946 0001"}},
		{"word or", "020 7946 0000 or 020 7946 0001", []string{"020 7946 0000", "020 7946 0001"}},
		{"word and", "020 7946 0000 and 020 7946 0001", []string{"020 7946 0000", "020 7946 0001"}},
		{"lone plus re-merged", "+/44 20 7946 0000", []string{"+44 20 7946 0000"}},
		{"empty segments dropped", "; 020 7946 0000;", []string{"020 7946 0000"}},
		{"whitespace only", "   ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidates := Split(tc.raw)
			if len(candidates) != len(tc.want) {
				t.Fatalf("expected %d candidates, got %d: %v", len(tc.want), len(candidates), candidates)
			}
			for i, want := range tc.want {
				if candidates[i].Text != want {
					t.Fatalf("candidate %d: expected %q, got %q", i, want, candidates[i].Text)
				}
			}
		})
	}
}

func TestSplitPositions(t *testing.T) {
	raw := "  020 7946 0000 ; 020 7946 0001"
	candidates := Split(raw)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	for i, c := range candidates {
		if got := raw[c.Pos : c.Pos+len(c.Text)]; got != c.Text {
			t.Fatalf("candidate %d: position %d does not locate %q in raw (found %q)", i, c.Pos, c.Text, got)
		}
	}
}

func TestSplitPreservesDigits(t *testing.T) {
	values := []string{
		"020 7946 0000",
		"020 7946 0000, 020 7946 0001 / 020 7946 0002",
		"+44 20 7946 0000 or 0800 123",
		"+/32 471 12 43 80 and 3631",
	}
	for _, raw := range values {
		candidates := Split(raw)
		texts := make([]string, len(candidates))
		for i, c := range candidates {
			texts[i] = c.Text
		}
		rejoined := strings.Join(texts, CanonicalSeparator)
		if digitStream(rejoined) != digitStream(raw) {
			t.Fatalf("digit stream changed for %q: %q vs %q", raw, digitStream(rejoined), digitStream(raw))
		}
	}
}

func TestHasBadSeparator(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"020 7946 0000", false},
		{"020 7946 0000; 020 7946 0001", false},
		{"020 7946 0000;020 7946 0001", false},
		{"020 7946 0000, 020 7946 0001", true},
		{"020 7946 0000 / 020 7946 0001", true},
		{"020 7946 0000 or 020 7946 0001", true},
		{"020 7946 0000 and 020 7946 0001", true},
	}
	for _, tc := range cases {
		if got := HasBadSeparator(tc.raw); got != tc.want {
			t.Fatalf("HasBadSeparator(%q): expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestSegmentsReconstruct(t *testing.T) {
	values := []string{
		"020 7946 0000",
		"020 7946 0000, +442079460001",
		" 020 7946 0000 / 020 7946 0001 ",
		"+/44 20 7946 0000",
		"",
	}
	for _, raw := range values {
		if got := strings.Join(Segments(raw), ""); got != raw {
			t.Fatalf("segments of %q reconstruct to %q", raw, got)
		}
	}
}

func digitStream(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
