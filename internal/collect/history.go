package collect

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/glotscan/glotscan/internal/domainlang"
	"github.com/glotscan/glotscan/internal/evidence"

	_ "modernc.org/sqlite"
)

type historyRow struct {
	url    string
	visits int
}

// queryHistory reads (url, visit_count) rows out of a browser history
// database. The file is copied aside first: a running browser keeps
// its database locked, and we must not touch the original anyway.
// limit bounds the row count; zero means no limit.
func queryHistory(ctx context.Context, dbPath, query string, limit int) ([]historyRow, error) {
	tmp, err := copyToTemp(dbPath)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp)

	db, err := sql.Open("sqlite", "file:"+tmp+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []historyRow
	for rows.Next() {
		var r historyRow
		if err := rows.Scan(&r.url, &r.visits); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func copyToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "glotscan-"+filepath.Base(path)+"-*")
	if err != nil {
		return "", fmt.Errorf("creating temp copy: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("copying %s: %w", path, err)
	}
	return dst.Name(), nil
}

// historyEvidence turns visit rows into evidence. Each URL is reduced
// to its base domain and resolved; domains that signal no language
// (generic TLDs, exception-listed domains) contribute nothing, so a
// thousand github.com visits stay out of the report.
func historyEvidence(rows []historyRow, source evidence.Source, resolver *domainlang.Resolver) []evidence.Evidence {
	var items []evidence.Evidence
	for _, row := range rows {
		domain := domainlang.BaseDomain(row.url)
		code, ok := resolver.Resolve(domain)
		if !ok {
			continue
		}
		weight := row.visits
		if weight < 1 {
			weight = 1
		}
		items = append(items, evidence.Evidence{
			Code:   code,
			Source: source,
			Weight: weight,
			Label:  domain,
		})
	}
	return items
}
