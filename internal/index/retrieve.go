// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// QueryOptions filters a search.
type QueryOptions struct {
	// Query is the FTS5 full-text query.
	Query string

	// Source restricts hits to output files whose base name contains
	// the given string.
	Source string

	// MaxResults caps the number of hits. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether no query or filter was given.
func (o QueryOptions) IsEmpty() bool {
	return o.Query == "" && o.Source == ""
}

// QueryResult is one search hit with provenance back to the converted file.
type QueryResult struct {
	File      string `json:"file"`
	PageLabel string `json:"page_label"`
	Content   string `json:"content"`
}

// Retrieve runs a full-text search over indexed pages, best matches
// first. Without a query it lists pages filtered by source only.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	limit := opts.MaxResults
	if limit <= 0 {
		limit = s.maxResults
	}

	var (
		query string
		args  []any
	)
	if opts.Query != "" {
		query = `SELECT p.file, p.page_label, p.content
			FROM pages_fts f
			JOIN pages p ON p.rowid = f.rowid
			WHERE pages_fts MATCH ?`
		args = append(args, ftsQuote(opts.Query))
	} else {
		query = `SELECT file, page_label, content FROM pages WHERE 1=1`
	}

	if opts.Source != "" {
		if opts.Query != "" {
			query += ` AND p.file LIKE ?`
		} else {
			query += ` AND file LIKE ?`
		}
		args = append(args, "%"+opts.Source+"%")
	}

	if opts.Query != "" {
		query += ` ORDER BY rank LIMIT ?`
	} else {
		query += ` ORDER BY file, rowid LIMIT ?`
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var r QueryResult
		if err := rows.Scan(&r.File, &r.PageLabel, &r.Content); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.File = filepath.Base(r.File)
		results = append(results, r)
	}
	return results, rows.Err()
}

// ftsQuote wraps each term in double quotes so user input cannot break
// FTS5 query syntax.
func ftsQuote(query string) string {
	terms := strings.Fields(query)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}
