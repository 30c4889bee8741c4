// Package taxonomy holds the static classification data used by report
// parsing: the theme-to-category table and the legacy title normalizer.
// Both are immutable lookup structures injected into the parser as
// configuration, so alternate taxonomies can be substituted in tests.
package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level ESG categories. Every theme resolves to one of the four fixed
// categories or falls back to CategoryUncategorized.
const (
	CategoryFairBusiness  = "Fair business practices"
	CategoryHumanRights   = "Human rights & ethics"
	CategoryEnvironment   = "Environment"
	CategoryLabourRights  = "Labour rights"
	CategoryUncategorized = "Uncategorized"
)

// Table maps theme identifiers to category titles.
type Table struct {
	categories map[string]string
}

// defaultThemes lists the built-in classification per category, mirroring
// the shape of the knowledge file.
var defaultThemes = map[string][]string{
	CategoryFairBusiness: {
		"theme-corruption",
		"theme-bribery",
		"theme-competition",
		"theme-tax-avoidance",
		"theme-supply-chain-transparency",
	},
	CategoryHumanRights: {
		"theme-land-rights",
		"theme-privacy",
		"theme-community-impact",
		"theme-indigenous-rights",
		"theme-animal-welfare",
	},
	CategoryEnvironment: {
		"theme-climate-change",
		"theme-water-pollution",
		"theme-water-use-water-availability",
		"theme-biodiversity",
		"theme-waste-management",
		"theme-chemical-use",
		"theme-deforestation",
	},
	CategoryLabourRights: {
		"theme-child-labour",
		"theme-forced-labour",
		"theme-working-conditions",
		"theme-living-wage",
		"theme-freedom-of-association",
		"theme-health-and-safety",
		"theme-discrimination",
	},
}

// Default returns the built-in theme classification table.
func Default() *Table {
	categories := make(map[string]string)
	for category, themes := range defaultThemes {
		for _, theme := range themes {
			categories[theme] = category
		}
	}
	return &Table{categories: categories}
}

// NewTable builds a table from an explicit theme-to-category mapping.
// The mapping is copied, so callers can reuse their input.
func NewTable(categories map[string]string) *Table {
	copied := make(map[string]string, len(categories))
	for theme, category := range categories {
		copied[theme] = category
	}
	return &Table{categories: copied}
}

// Category resolves a theme identifier to its category title. Unknown
// identifiers (including the empty string) resolve to CategoryUncategorized;
// the table is total and never fails.
func (t *Table) Category(themeID string) string {
	if category, ok := t.categories[themeID]; ok {
		return category
	}
	return CategoryUncategorized
}

// Len returns the number of classified theme identifiers.
func (t *Table) Len() int {
	return len(t.categories)
}

// knowledgeFile is the on-disk YAML shape for taxonomy overrides:
//
//	categories:
//	  Environment:
//	    - theme-water-pollution
//	titles:
//	  "Important to know": "Important to consider"
type knowledgeFile struct {
	Categories map[string][]string `yaml:"categories"`
	Titles     map[string]string   `yaml:"titles"`
}

// Load reads a taxonomy knowledge file and returns the table and normalizer
// it defines, merged over the built-in defaults. Entries in the file win on
// conflict.
func Load(path string) (*Table, *Normalizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read taxonomy knowledge file: %w", err)
	}
	return FromYAML(data)
}

// FromYAML parses a taxonomy knowledge document, merging it over the defaults.
func FromYAML(data []byte) (*Table, *Normalizer, error) {
	var doc knowledgeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse taxonomy knowledge file: %w", err)
	}

	table := Default()
	for category, themes := range doc.Categories {
		for _, theme := range themes {
			table.categories[theme] = category
		}
	}

	normalizer := NewNormalizer()
	for legacy, canonical := range doc.Titles {
		normalizer.exact[legacy] = canonical
	}

	return table, normalizer, nil
}
