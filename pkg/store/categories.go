package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/msc-hk/esg-reporter/pkg/reportparse"
	"github.com/msc-hk/esg-reporter/pkg/taxonomy"
)

// contentRow is the typed shape shared by the risks and advice tables.
type contentRow struct {
	themeID   string
	themeName string
	body      string
	source    sql.NullString
}

// RiskCategories resolves a country/industry pair and folds its risk and
// advice rows into the same RiskCategory model the parsed-HTML path
// produces: first-seen category and theme ordering, counts fixed at
// construction time.
func (s *Store) RiskCategories(ctx context.Context, country, industry string, table *taxonomy.Table) ([]reportparse.RiskCategory, error) {
	if table == nil {
		table = taxonomy.Default()
	}

	ids, err := s.Resolve(ctx, country, industry)
	if err != nil {
		return nil, err
	}

	risks, err := s.contentRows(ctx, "risks", ids.RiskIDs)
	if err != nil {
		return nil, err
	}
	advice, err := s.contentRows(ctx, "advice", ids.AdviceIDs)
	if err != nil {
		return nil, err
	}

	var themeOrder []string
	themes := make(map[string]*reportparse.ThemeEntry)
	themeFor := func(row contentRow) *reportparse.ThemeEntry {
		if entry, ok := themes[row.themeID]; ok {
			return entry
		}
		name := row.themeName
		if name == "" {
			name = row.themeID
		}
		entry := &reportparse.ThemeEntry{
			ThemeName:       name,
			Risks:           []reportparse.RiskItem{},
			Recommendations: []reportparse.RecommendationItem{},
		}
		themes[row.themeID] = entry
		themeOrder = append(themeOrder, row.themeID)
		return entry
	}

	for _, row := range risks {
		entry := themeFor(row)
		sources := []string{}
		if row.source.Valid && row.source.String != "" {
			sources = append(sources, row.source.String)
		}
		entry.Risks = append(entry.Risks, reportparse.RiskItem{
			RiskTitle:       entry.ThemeName,
			RiskDescription: row.body,
			Sources:         sources,
		})
	}
	for _, row := range advice {
		entry := themeFor(row)
		entry.Recommendations = append(entry.Recommendations, reportparse.RecommendationItem{
			RecommendationText: row.body,
		})
	}

	var categoryOrder []string
	grouped := make(map[string][]reportparse.ThemeEntry)
	for _, themeID := range themeOrder {
		entry := themes[themeID]
		entry.RiskCount = len(entry.Risks)
		entry.RecommendationCount = len(entry.Recommendations)

		category := table.Category(themeID)
		if _, seen := grouped[category]; !seen {
			categoryOrder = append(categoryOrder, category)
		}
		grouped[category] = append(grouped[category], *entry)
	}

	categories := make([]reportparse.RiskCategory, 0, len(categoryOrder))
	for _, title := range categoryOrder {
		categories = append(categories, reportparse.RiskCategory{CategoryTitle: title, Themes: grouped[title]})
	}
	return categories, nil
}

// contentRows loads the typed content rows behind a set of ids, preserving
// the id order of the resolve step.
func (s *Store) contentRows(ctx context.Context, table string, ids []int64) ([]contentRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf("SELECT theme_id, theme_name, body, source FROM %s WHERE id IN (%s) ORDER BY FIELD(id, %s)", table, placeholders, placeholders)

	args := make([]any, 0, len(ids)*2)
	for _, id := range ids {
		args = append(args, id)
	}
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load %s rows: %w", table, err)
	}
	defer rows.Close()

	var results []contentRow
	for rows.Next() {
		var row contentRow
		if err := rows.Scan(&row.themeID, &row.themeName, &row.body, &row.source); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
