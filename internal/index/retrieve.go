// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/iconpack/pkg/types"
)

// QueryOptions holds parameters for index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string, matched against
	// aliases and art text.
	Query string

	// Name filters by primary icon name (exact match).
	Name string

	// MaxWidth filters out icons wider than the given column count.
	// Zero means no width filter.
	MaxWidth int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Name == "" && q.MaxWidth == 0
}

// QueryResult is one indexed icon returned by Retrieve.
type QueryResult struct {
	ID      string        `json:"id" yaml:"id"`
	Name    string        `json:"name" yaml:"name"`
	Aliases []string      `json:"aliases" yaml:"aliases"`
	Width   int           `json:"width" yaml:"width"`
	Colors  []types.Color `json:"colors" yaml:"colors"`
	Art     string        `json:"art" yaml:"art"`
}

// Retrieve queries the index with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// structured-only queries are sorted by name.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT i.id, i.name, i.aliases, i.width, i.colors, i.art
			FROM icons_fts
			JOIN icons i ON i.rowid = icons_fts.rowid
			WHERE icons_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT i.id, i.name, i.aliases, i.width, i.colors, i.art
			FROM icons i
			WHERE 1=1`)
	}

	if opts.Name != "" {
		qb.WriteString(` AND i.name = ?`)
		args = append(args, opts.Name)
	}

	if opts.MaxWidth > 0 {
		qb.WriteString(` AND i.width <= ?`)
		args = append(args, opts.MaxWidth)
	}

	if useFTS {
		qb.WriteString(` ORDER BY icons_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY i.name`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying icon index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr          QueryResult
			aliasesJSON string
			colorsJSON  sql.NullString
		)
		if err := rows.Scan(&qr.ID, &qr.Name, &aliasesJSON, &qr.Width, &colorsJSON, &qr.Art); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		if err := json.Unmarshal([]byte(aliasesJSON), &qr.Aliases); err != nil {
			return nil, fmt.Errorf("decoding aliases for %s: %w", qr.Name, err)
		}
		if colorsJSON.Valid {
			if err := json.Unmarshal([]byte(colorsJSON.String), &qr.Colors); err != nil {
				return nil, fmt.Errorf("decoding colors for %s: %w", qr.Name, err)
			}
		}
		results = append(results, qr)
	}

	return results, rows.Err()
}
