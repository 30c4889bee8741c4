package reportparse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractRisk walks the theme grids of a risk-analysis block and groups
// the extracted themes under their taxonomy categories. Grouping is stable:
// first-seen category order, first-seen theme order within a category.
func (p *Parser) extractRisk(block rawBlock) []RiskCategory {
	var order []string
	grouped := make(map[string][]ThemeEntry)

	block.sel.Find(".theme-grid").Each(func(_ int, grid *goquery.Selection) {
		themeID, entry := p.extractTheme(grid)

		category := p.table.Category(themeID)
		if _, seen := grouped[category]; !seen {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], entry)
	})

	categories := make([]RiskCategory, 0, len(order))
	for _, title := range order {
		categories = append(categories, RiskCategory{CategoryTitle: title, Themes: grouped[title]})
	}
	return categories
}

// extractTheme reads one theme grid: its machine identifier, display name,
// and the risk and recommendation modules in its togglable content regions.
// A theme with no qualifying modules is still emitted with empty sequences,
// so consumers can render their "No risks" / "No recommendations" states.
func (p *Parser) extractTheme(grid *goquery.Selection) (string, ThemeEntry) {
	themeID := grid.Find("[id^='theme-']").First().AttrOr("id", "")
	themeName := strings.TrimSpace(grid.Find(".theme-title, h3, h4").First().Text())
	if themeName == "" {
		// No heading: the raw machine identifier is the documented
		// degradation, not an error.
		themeName = themeID
	}

	entry := ThemeEntry{
		ThemeName:       themeName,
		Risks:           []RiskItem{},
		Recommendations: []RecommendationItem{},
	}

	grid.Find(".risk-content .module").Each(func(_ int, module *goquery.Selection) {
		if item, ok := p.riskModule(themeName, module); ok {
			entry.Risks = append(entry.Risks, item)
		}
	})
	grid.Find(".advice-content .module").Each(func(_ int, module *goquery.Selection) {
		if item, ok := p.recommendationModule(themeName, module); ok {
			entry.Recommendations = append(entry.Recommendations, item)
		}
	})

	entry.RiskCount = len(entry.Risks)
	entry.RecommendationCount = len(entry.Recommendations)
	return themeID, entry
}

// riskModule extracts one risk card. Malformed markup inside a single
// module must not abort the surrounding extraction, so failures are
// contained here and the module is skipped.
func (p *Parser) riskModule(themeName string, module *goquery.Selection) (item RiskItem, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warnf("report html: skipping malformed risk module in theme %q: %v", themeName, r)
			ok = false
		}
	}()

	description := moduleText(module)
	if description == "" {
		return RiskItem{}, false
	}

	sources := []string{}
	module.Find(".sources a").Each(func(_ int, link *goquery.Selection) {
		if text := strings.TrimSpace(link.Text()); text != "" {
			sources = append(sources, text)
		}
	})

	return RiskItem{
		RiskTitle:       themeName,
		RiskDescription: description,
		Sources:         sources,
		RawHTML:         p.preserveHTML(module),
	}, true
}

// recommendationModule extracts one recommendation card, with the same
// empty-skip and fail-soft rules as riskModule and no citation list.
func (p *Parser) recommendationModule(themeName string, module *goquery.Selection) (item RecommendationItem, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warnf("report html: skipping malformed recommendation module in theme %q: %v", themeName, r)
			ok = false
		}
	}()

	text := moduleText(module)
	if text == "" {
		return RecommendationItem{}, false
	}

	return RecommendationItem{
		RecommendationText: text,
		RawHTML:            p.preserveHTML(module),
	}, true
}

// moduleText joins the text of a module's paragraph and list nodes with
// newlines. Citation lists are not content.
func moduleText(module *goquery.Selection) string {
	var lines []string
	module.Find("p, li").Not(".sources li, .sources p").Each(func(_ int, node *goquery.Selection) {
		if text := strings.TrimSpace(node.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n")
}

// preserveHTML serializes a module fragment and applies the cosmetic class
// substitutions. Serialization failure degrades to an empty fragment; the
// extracted plain text is unaffected.
func (p *Parser) preserveHTML(module *goquery.Selection) string {
	fragment, err := goquery.OuterHtml(module)
	if err != nil {
		p.log.Warnf("report html: could not preserve module fragment: %v", err)
		return ""
	}
	return substituteClasses(fragment)
}
