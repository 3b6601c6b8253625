package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arrival-spring/osm-phones-sub000/internal/phone"
)

func TestRender(t *testing.T) {
	renderer, err := NewRenderer(NewLocales("en"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results := []phone.ItemResult{
		{
			ID:   101,
			Type: "node",
			Lat:  51.5,
			Lon:  -0.1,
			Tags: map[string]string{
				"name":    "Cafe <Script> & Co",
				"amenity": "cafe",
			},
			Website:        "https://example.com",
			InvalidNumbers: map[string]string{"phone": "020 7946 0000"},
			SuggestedFixes: map[string]string{"phone": "+44 20 7946 0000"},
			AutoFixable:    true,
		},
		{
			ID:             202,
			Type:           "way",
			Tags:           map[string]string{},
			InvalidNumbers: map[string]string{"mobile": "not a number"},
			AutoFixable:    false,
		},
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, "GB", results, 42); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, "42 numbers checked") {
		t.Fatal("expected totals line")
	}
	if !strings.Contains(html, "Cafe &lt;Script&gt; &amp; Co") {
		t.Fatal("expected record name to be escaped")
	}
	if strings.Contains(html, "<Script>") {
		t.Fatal("unescaped markup leaked into the page")
	}
	if !strings.Contains(html, `<span class="diff-removed">0</span>`) {
		t.Fatal("expected digit-aligned removal markup for the dropped trunk zero")
	}
	if !strings.Contains(html, `<span class="diff-added">+44</span>`) {
		t.Fatal("expected addition markup for the calling code")
	}
	if !strings.Contains(html, "https://www.openstreetmap.org/node/101") {
		t.Fatal("expected an edit link for the record")
	}
	if !strings.Contains(html, "way 202") {
		t.Fatal("expected nameless records to fall back to type and id")
	}
	if !strings.Contains(html, `data-icon="cafe"`) {
		t.Fatal("expected the cafe icon to be resolved")
	}
}

func TestRender_NoIssues(t *testing.T) {
	renderer, err := NewRenderer(NewLocales("en"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := renderer.Render(&buf, "GB", nil, 7); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No invalid numbers found.") {
		t.Fatal("expected the empty-state message")
	}
}

func TestLocalesFallbackChain(t *testing.T) {
	exact := NewLocales("fr")
	if got := exact.T("report.map"); got != "Carte" {
		t.Fatalf("expected exact table hit, got %q", got)
	}

	regional := NewLocales("fr-BE")
	if got := regional.T("report.map"); got != "Carte" {
		t.Fatalf("expected language fallback, got %q", got)
	}

	unknown := NewLocales("xx-YY")
	if got := unknown.T("report.map"); got != "Map" {
		t.Fatalf("expected english fallback, got %q", got)
	}

	if got := unknown.T("report.some_future_key"); got != "report.some_future_key" {
		t.Fatalf("expected unknown keys to resolve to themselves, got %q", got)
	}
}

func TestIconFor(t *testing.T) {
	cases := []struct {
		tags map[string]string
		want string
	}{
		{map[string]string{"amenity": "post_office"}, "post_office"},
		{map[string]string{"amenity": "library"}, "amenity"},
		{map[string]string{"shop": "bakery"}, "shop"},
		{map[string]string{"building": "yes"}, "marker"},
		{nil, "marker"},
	}
	for _, tc := range cases {
		if got := IconFor(tc.tags); got != tc.want {
			t.Fatalf("IconFor(%v): expected %q, got %q", tc.tags, tc.want, got)
		}
	}
}
