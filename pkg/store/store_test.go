package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/msc-hk/esg-reporter/pkg/taxonomy"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func expectResolve(mock sqlmock.Sqlmock, countryID, industryID int64, riskIDs, adviceIDs []int64) {
	mock.ExpectQuery("SELECT id FROM countries WHERE name = ?").
		WithArgs("Vietnam").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(countryID))
	mock.ExpectQuery("SELECT id FROM industries WHERE name = ?").
		WithArgs("Textiles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(industryID))

	riskRows := sqlmock.NewRows([]string{"risk_id"})
	for _, id := range riskIDs {
		riskRows.AddRow(id)
	}
	mock.ExpectQuery("SELECT risk_id FROM pair_risks WHERE country_id = ? AND industry_id = ? ORDER BY risk_id").
		WithArgs(countryID, industryID).WillReturnRows(riskRows)

	adviceRows := sqlmock.NewRows([]string{"advice_id"})
	for _, id := range adviceIDs {
		adviceRows.AddRow(id)
	}
	mock.ExpectQuery("SELECT advice_id FROM pair_advice WHERE country_id = ? AND industry_id = ? ORDER BY advice_id").
		WithArgs(countryID, industryID).WillReturnRows(adviceRows)

	mock.ExpectQuery("SELECT consideration_id FROM pair_considerations WHERE country_id = ? AND industry_id = ? ORDER BY consideration_id").
		WithArgs(countryID, industryID).WillReturnRows(sqlmock.NewRows([]string{"consideration_id"}))
	mock.ExpectQuery("SELECT organization_id FROM pair_organizations WHERE country_id = ? AND industry_id = ? ORDER BY organization_id").
		WithArgs(countryID, industryID).WillReturnRows(sqlmock.NewRows([]string{"organization_id"}))
	mock.ExpectQuery("SELECT initiative_id FROM pair_initiatives WHERE country_id = ? AND industry_id = ? ORDER BY initiative_id").
		WithArgs(countryID, industryID).WillReturnRows(sqlmock.NewRows([]string{"initiative_id"}))
}

func TestResolve(t *testing.T) {
	s, mock := newMockStore(t)
	expectResolve(mock, 7, 3, []int64{11, 12}, []int64{21})

	ids, err := s.Resolve(context.Background(), "Vietnam", "Textiles")
	require.NoError(t, err)
	require.Equal(t, []int64{11, 12}, ids.RiskIDs)
	require.Equal(t, []int64{21}, ids.AdviceIDs)
	require.Empty(t, ids.ConsiderationIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveUnknownCountry(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT id FROM countries WHERE name = ?").
		WithArgs("Atlantis").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Resolve(context.Background(), "Atlantis", "Textiles")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Atlantis")
}

func TestFetchByIDsRejectsUnknownTable(t *testing.T) {
	s, _ := newMockStore(t)

	_, err := s.FetchByIDs(context.Background(), "users; DROP TABLE users", []int64{1})
	require.Error(t, err)
}

func TestFetchByIDs(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT * FROM organizations WHERE id IN (?,?)").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, []byte("Fair Wear Foundation")).
			AddRow(2, []byte("amfori BSCI")))

	rows, err := s.FetchByIDs(context.Background(), "organizations", []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Fair Wear Foundation", rows[0]["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchByIDsEmptyInput(t *testing.T) {
	s, _ := newMockStore(t)

	rows, err := s.FetchByIDs(context.Background(), "risks", nil)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestRiskCategoriesTerminatesInParsedModel(t *testing.T) {
	s, mock := newMockStore(t)
	expectResolve(mock, 7, 3, []int64{11, 12}, []int64{21})

	mock.ExpectQuery("SELECT theme_id, theme_name, body, source FROM risks WHERE id IN (?,?) ORDER BY FIELD(id, ?,?)").
		WithArgs(int64(11), int64(12), int64(11), int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"theme_id", "theme_name", "body", "source"}).
			AddRow("theme-water-pollution", "Water pollution", "Dye discharge into rivers.", "River Basin Report").
			AddRow("theme-unknown-topic", "", "Unclassified risk.", nil))

	mock.ExpectQuery("SELECT theme_id, theme_name, body, source FROM advice WHERE id IN (?) ORDER BY FIELD(id, ?)").
		WithArgs(int64(21), int64(21)).
		WillReturnRows(sqlmock.NewRows([]string{"theme_id", "theme_name", "body", "source"}).
			AddRow("theme-water-pollution", "Water pollution", "Install closed-loop dyeing.", nil))

	categories, err := s.RiskCategories(context.Background(), "Vietnam", "Textiles", taxonomy.Default())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	require.Equal(t, taxonomy.CategoryEnvironment, categories[0].CategoryTitle)
	water := categories[0].Themes[0]
	require.Equal(t, "Water pollution", water.ThemeName)
	require.Equal(t, 1, water.RiskCount)
	require.Equal(t, 1, water.RecommendationCount)
	require.Equal(t, "Water pollution", water.Risks[0].RiskTitle)
	require.Equal(t, []string{"River Basin Report"}, water.Risks[0].Sources)
	require.Equal(t, "Install closed-loop dyeing.", water.Recommendations[0].RecommendationText)

	require.Equal(t, taxonomy.CategoryUncategorized, categories[1].CategoryTitle)
	// Missing display name degrades to the machine identifier.
	require.Equal(t, "theme-unknown-topic", categories[1].Themes[0].ThemeName)
	require.NoError(t, mock.ExpectationsWereMet())
}
