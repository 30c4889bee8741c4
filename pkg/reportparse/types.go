// Package reportparse turns the externally scraped results page for a
// (country, industry) pair into the typed section model consumed by the
// rendering surfaces. The input is best-effort HTML5 with no schema
// guarantee; parsing degrades by omitting information and never fails.
package reportparse

// SectionType discriminates the payload shape of a ReportSection.
type SectionType string

const (
	// SectionText marks an opaque HTML passthrough section.
	SectionText SectionType = "text"
	// SectionRisk marks the structured risk-analysis section.
	SectionRisk SectionType = "risk"
)

// RiskItem is one identified risk inside a theme.
type RiskItem struct {
	// RiskTitle repeats the theme name; the source gives risks no titles
	// of their own.
	RiskTitle string `json:"risk_title"`
	// RiskDescription is the newline-joined text of all paragraph and
	// list nodes in the risk's content wrapper. Never empty: source-only
	// or empty modules are dropped before emission.
	RiskDescription string `json:"risk_description"`
	// Sources holds citation link texts in document order. May be empty.
	Sources []string `json:"sources"`
	// RawHTML preserves the original module fragment with the cosmetic
	// class substitutions applied, so the fragment renders consistently
	// on every surface.
	RawHTML string `json:"raw_html,omitempty"`
}

// RecommendationItem is one identified recommendation inside a theme.
type RecommendationItem struct {
	RecommendationText string `json:"recommendation_text"`
	RawHTML            string `json:"raw_html,omitempty"`
}

// ThemeEntry is one sub-topic within a category.
type ThemeEntry struct {
	// ThemeName is the theme's heading text, falling back to the raw
	// machine identifier when the heading is missing.
	ThemeName       string               `json:"theme_name"`
	Risks           []RiskItem           `json:"risks"`
	Recommendations []RecommendationItem `json:"recommendations"`
	// RiskCount and RecommendationCount are computed at construction and
	// are the authoritative counts; the slice lengths are the fallback,
	// never the other way around.
	RiskCount           int `json:"risk_count"`
	RecommendationCount int `json:"recommendation_count"`
}

// RiskCategory is one taxonomy bucket holding the themes resolved to it,
// in first-seen order.
type RiskCategory struct {
	CategoryTitle string       `json:"category_title"`
	Themes        []ThemeEntry `json:"themes"`
}

// ReportSection is one top-level report block. Exactly one of HTML and
// Categories is meaningful, discriminated by Type; a risk section's
// Categories is always non-nil, even when no themes matched.
type ReportSection struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Type       SectionType    `json:"type"`
	HTML       string         `json:"html,omitempty"`
	Categories []RiskCategory `json:"categories,omitempty"`
}
