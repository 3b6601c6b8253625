// Package report renders per-country HTML audit reports with diff-highlighted
// suggestions.
package report

import "strings"

// Locales resolves display strings through an ordered fallback chain that is
// fixed at construction: exact locale, language only, then "en".
type Locales struct {
	chain []map[string]string
}

var tables = map[string]map[string]string{
	"en": {
		"report.title":           "Phone number audit",
		"report.numbers_checked": "numbers checked",
		"report.original":        "Current value",
		"report.suggested":       "Suggested value",
		"report.auto_fixable":    "auto-fixable",
		"report.needs_review":    "needs review",
		"report.website":         "Website",
		"report.map":             "Map",
		"report.edit":            "Edit",
		"report.no_issues":       "No invalid numbers found.",
		"report.generated":       "Generated",
	},
	"fr": {
		"report.title":           "Audit des numéros de téléphone",
		"report.numbers_checked": "numéros vérifiés",
		"report.original":        "Valeur actuelle",
		"report.suggested":       "Valeur suggérée",
		"report.auto_fixable":    "corrigeable automatiquement",
		"report.needs_review":    "à vérifier",
		"report.website":         "Site web",
		"report.map":             "Carte",
		"report.edit":            "Modifier",
		"report.no_issues":       "Aucun numéro invalide trouvé.",
		"report.generated":       "Généré",
	},
	"de": {
		"report.title":           "Telefonnummern-Prüfung",
		"report.numbers_checked": "Nummern geprüft",
		"report.original":        "Aktueller Wert",
		"report.suggested":       "Vorgeschlagener Wert",
		"report.auto_fixable":    "automatisch korrigierbar",
		"report.needs_review":    "manuell prüfen",
		"report.website":         "Webseite",
		"report.map":             "Karte",
		"report.edit":            "Bearbeiten",
		"report.no_issues":       "Keine ungültigen Nummern gefunden.",
		"report.generated":       "Erstellt",
	},
	"nl": {
		"report.title":           "Telefoonnummercontrole",
		"report.numbers_checked": "nummers gecontroleerd",
		"report.original":        "Huidige waarde",
		"report.suggested":       "Voorgestelde waarde",
		"report.auto_fixable":    "automatisch te corrigeren",
		"report.needs_review":    "handmatig nakijken",
		"report.website":         "Website",
		"report.map":             "Kaart",
		"report.edit":            "Bewerken",
		"report.no_issues":       "Geen ongeldige nummers gevonden.",
		"report.generated":       "Gegenereerd",
	},
}

// NewLocales builds the resolver for the requested locale tag (e.g. "fr-BE").
func NewLocales(locale string) *Locales {
	var chain []map[string]string
	if table, ok := tables[locale]; ok {
		chain = append(chain, table)
	}
	if language, _, found := strings.Cut(locale, "-"); found {
		if table, ok := tables[language]; ok {
			chain = append(chain, table)
		}
	}
	chain = append(chain, tables["en"])
	return &Locales{chain: chain}
}

// T resolves a string key through the fallback chain. Unknown keys resolve
// to themselves.
func (l *Locales) T(key string) string {
	for _, table := range l.chain {
		if value, ok := table[key]; ok {
			return value
		}
	}
	return key
}
