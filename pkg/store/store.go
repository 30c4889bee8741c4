// Package store is the embedded lookup service behind the newer report
// path that bypasses HTML scraping: it resolves a (country, industry)
// pair to content row ids and terminates in the same typed model as the
// parsed-HTML path.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

// ContentIDs holds the content row ids resolved for one country/industry pair.
type ContentIDs struct {
	RiskIDs          []int64 `json:"risk_ids"`
	AdviceIDs        []int64 `json:"advice_ids"`
	ConsiderationIDs []int64 `json:"consideration_ids"`
	OrganizationIDs  []int64 `json:"organization_ids"`
	InitiativeIDs    []int64 `json:"initiative_ids"`
}

// fetchableTables is the whitelist for the generic row fetcher. Anything
// else is rejected before it reaches the query builder.
var fetchableTables = map[string]bool{
	"risks":          true,
	"advice":         true,
	"considerations": true,
	"organizations":  true,
	"initiatives":    true,
}

// Store wraps the embedded relational database.
type Store struct {
	db *sql.DB
}

// Open connects to the database behind the given DSN.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open report store: %w", err)
	}
	return &Store{db: db}, nil
}

// New wraps an existing database handle, used by tests.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Resolve maps a country and industry name to the ids of every content row
// linked to the pair. An unknown country or industry is an error: the pair
// comes from a constrained picker, so a miss means stale data, not user input.
func (s *Store) Resolve(ctx context.Context, country, industry string) (ContentIDs, error) {
	var ids ContentIDs

	var countryID int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM countries WHERE name = ?", country).Scan(&countryID)
	if err != nil {
		return ids, fmt.Errorf("resolve country %q: %w", country, err)
	}

	var industryID int64
	err = s.db.QueryRowContext(ctx, "SELECT id FROM industries WHERE name = ?", industry).Scan(&industryID)
	if err != nil {
		return ids, fmt.Errorf("resolve industry %q: %w", industry, err)
	}

	links := []struct {
		query string
		dest  *[]int64
	}{
		{"SELECT risk_id FROM pair_risks WHERE country_id = ? AND industry_id = ? ORDER BY risk_id", &ids.RiskIDs},
		{"SELECT advice_id FROM pair_advice WHERE country_id = ? AND industry_id = ? ORDER BY advice_id", &ids.AdviceIDs},
		{"SELECT consideration_id FROM pair_considerations WHERE country_id = ? AND industry_id = ? ORDER BY consideration_id", &ids.ConsiderationIDs},
		{"SELECT organization_id FROM pair_organizations WHERE country_id = ? AND industry_id = ? ORDER BY organization_id", &ids.OrganizationIDs},
		{"SELECT initiative_id FROM pair_initiatives WHERE country_id = ? AND industry_id = ? ORDER BY initiative_id", &ids.InitiativeIDs},
	}
	for _, link := range links {
		values, err := s.queryIDs(ctx, link.query, countryID, industryID)
		if err != nil {
			return ContentIDs{}, err
		}
		*link.dest = values
	}

	return ids, nil
}

func (s *Store) queryIDs(ctx context.Context, query string, args ...any) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resolve content ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan content id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// FetchByIDs returns the rows behind a set of content ids as generic
// column-to-value maps, in the order the database returns them. The table
// name must be one of the known content tables.
func (s *Store) FetchByIDs(ctx context.Context, table string, ids []int64) ([]map[string]any, error) {
	if !fetchableTables[table] {
		return nil, fmt.Errorf("fetch rows: unknown content table %q", table)
	}
	if len(ids) == 0 {
		return []map[string]any{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf("SELECT * FROM %s WHERE id IN (%s)", table, placeholders)

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch rows from %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", table, err)
	}

	results := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan row from %s: %w", table, err)
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
			} else {
				row[column] = values[i]
			}
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
