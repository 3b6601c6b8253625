package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/arrival-spring/osm-phones-sub000/internal/diff"
	"github.com/arrival-spring/osm-phones-sub000/internal/osm"
	"github.com/arrival-spring/osm-phones-sub000/internal/phone"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data for one country report.
type Page struct {
	Country        string
	Title          string
	NumbersChecked int
	Items          []Item
	Generated      time.Time
	L              *Locales
}

// Item is one flagged record prepared for display.
type Item struct {
	ID          int64
	Type        string
	Name        string
	Icon        string
	Lat         float64
	Lon         float64
	Website     string
	AutoFixable bool
	Tags        []TagRow
}

// TagRow shows one invalid tag with diff-highlighted original and suggested
// values. Suggested is empty when no deterministic fix exists.
type TagRow struct {
	Key       string
	Original  template.HTML
	Suggested template.HTML
}

// Renderer turns validation results into a static HTML page.
type Renderer struct {
	tmpl    *template.Template
	locales *Locales
}

// NewRenderer parses the embedded report template.
func NewRenderer(locales *Locales) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Renderer{tmpl: tmpl, locales: locales}, nil
}

// Render writes the country report for the given validation results.
func (r *Renderer) Render(w io.Writer, country string, results []phone.ItemResult, numbersChecked int) error {
	page := Page{
		Country:        country,
		Title:          r.locales.T("report.title"),
		NumbersChecked: numbersChecked,
		Items:          buildItems(results),
		Generated:      time.Now().UTC(),
		L:              r.locales,
	}
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("render report for %s: %w", country, err)
	}
	return nil
}

func buildItems(results []phone.ItemResult) []Item {
	items := make([]Item, 0, len(results))
	for _, result := range results {
		item := Item{
			ID:          result.ID,
			Type:        result.Type,
			Name:        result.Tags["name"],
			Icon:        IconFor(result.Tags),
			Lat:         result.Lat,
			Lon:         result.Lon,
			Website:     result.Website,
			AutoFixable: result.AutoFixable,
		}
		for _, key := range osm.PhoneKeys {
			original, ok := result.InvalidNumbers[key]
			if !ok {
				continue
			}
			row := TagRow{Key: key}
			if suggested, ok := result.SuggestedFixes[key]; ok {
				originalSide, suggestedSide := diff.Diff(original, suggested)
				row.Original = markup(originalSide)
				row.Suggested = markup(suggestedSide)
			} else {
				row.Original = template.HTML(template.HTMLEscapeString(original))
			}
			item.Tags = append(item.Tags, row)
		}
		items = append(items, item)
	}
	return items
}

// markup renders diff segments as escaped text wrapped in status spans.
func markup(segments []diff.Segment) template.HTML {
	var b strings.Builder
	for _, segment := range segments {
		escaped := template.HTMLEscapeString(segment.Text)
		switch segment.Status {
		case diff.Removed:
			fmt.Fprintf(&b, `<span class="diff-removed">%s</span>`, escaped)
		case diff.Added:
			fmt.Fprintf(&b, `<span class="diff-added">%s</span>`, escaped)
		default:
			b.WriteString(escaped)
		}
	}
	return template.HTML(b.String())
}
