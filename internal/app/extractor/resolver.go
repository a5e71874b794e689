package extractor

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

// columnAliases are matched as case-sensitive substrings of header names.
var columnAliases = []struct {
	lang    domain.Language
	aliases []string
}{
	{domain.LanguageFrench, []string{"Français", "Francais"}},
	{domain.LanguageEnglish, []string{"English", "Anglais"}},
	{domain.LanguageBulu, []string{"Búlu", "Bulu"}},
}

// Columns names the header resolved for each dictionary language.
// An empty field means no header matched.
type Columns struct {
	French  string
	English string
	Bulu    string
}

// Complete reports whether all three languages were resolved.
func (c Columns) Complete() bool {
	return c.French != "" && c.English != "" && c.Bulu != ""
}

// For returns the column resolved for lang.
func (c Columns) For(lang domain.Language) string {
	switch lang {
	case domain.LanguageFrench:
		return c.French
	case domain.LanguageEnglish:
		return c.English
	case domain.LanguageBulu:
		return c.Bulu
	}
	return ""
}

func (c *Columns) set(lang domain.Language, column string) {
	switch lang {
	case domain.LanguageFrench:
		c.French = column
	case domain.LanguageEnglish:
		c.English = column
	case domain.LanguageBulu:
		c.Bulu = column
	}
}

// ResolveColumns picks, for each language, the first header (in order) that
// contains one of its aliases. It returns the partial result together with
// domain.ErrColumnsUnresolved when any language has no match.
func ResolveColumns(headers []string) (Columns, error) {
	var cols Columns
	var missing []string

	for _, entry := range columnAliases {
		column := firstMatch(headers, entry.aliases)
		if column == "" {
			missing = append(missing, entry.lang.String())
			continue
		}
		cols.set(entry.lang, column)
	}

	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: no column for %s", domain.ErrColumnsUnresolved, strings.Join(missing, ", "))
	}
	return cols, nil
}

func firstMatch(headers, aliases []string) string {
	for _, h := range headers {
		for _, a := range aliases {
			if strings.Contains(h, a) {
				return h
			}
		}
	}
	return ""
}
