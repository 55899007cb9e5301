package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath         string     `json:"db_path"`
	DBSizeBytes    int64      `json:"db_size_bytes"`
	TotalRevisions int        `json:"total_revisions"`
	LiveRevisions  int        `json:"live_revisions"`
	TotalKeyframes int        `json:"total_keyframes"`
	Actions        int        `json:"actions"`
	Docs           []DocStats `json:"docs"`
}

// DocStats holds per-document counts.
type DocStats struct {
	Doc       string `json:"doc"`
	Revisions int    `json:"revisions"`
	Curves    int    `json:"curves"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM curves`).Scan(&st.TotalRevisions)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM curves WHERE deleted_at IS NULL`).Scan(&st.LiveRevisions)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM keyframes`).Scan(&st.TotalKeyframes)
	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT action_id) FROM curves WHERE deleted_at IS NULL`).Scan(&st.Actions)

	docs, err := s.ListDocs(ctx)
	if err != nil {
		return st, err
	}
	st.Docs = docs
	return st, nil
}

// ListDocs returns every document with live revisions, busiest first.
func (s *SQLiteStore) ListDocs(ctx context.Context) ([]DocStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doc, COUNT(*) AS cnt, COUNT(DISTINCT path) AS curves
		FROM curves WHERE deleted_at IS NULL
		GROUP BY doc ORDER BY cnt DESC, doc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []DocStats
	for rows.Next() {
		var d DocStats
		if err := rows.Scan(&d.Doc, &d.Revisions, &d.Curves); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
