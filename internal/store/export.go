package store

import (
	"context"
	"fmt"

	"github.com/rcliao/easeit/internal/curve"
	"github.com/rcliao/easeit/internal/exchange"
	"github.com/rcliao/easeit/internal/model"
)

// ExportAll returns the latest revision of every curve in doc as a document.
func (s *SQLiteStore) ExportAll(ctx context.Context, doc string) (*exchange.Document, error) {
	if doc == "" {
		return nil, fmt.Errorf("doc is required")
	}
	recs, err := s.List(ctx, ListParams{Doc: doc})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("document %s: %w", doc, ErrNotFound)
	}

	out := &exchange.Document{Version: exchange.CurrentVersion, Doc: doc}
	for _, r := range recs {
		out.Curves = append(out.Curves, exchange.CurveData{Path: r.Path, Keyframes: r.Keyframes})
	}
	return out, nil
}

// Import stores every curve of d as one "import" action, with automatic
// handles computed from their neighbours. An explicit doc overrides the
// document's own name.
func (s *SQLiteStore) Import(ctx context.Context, d *exchange.Document, doc string) ([]model.CurveRecord, error) {
	if doc == "" {
		doc = d.Doc
	}
	revs := make([]Revision, 0, len(d.Curves))
	for _, c := range d.Curves {
		cv := curve.FromPoints(c.Path, c.Keyframes)
		cv.Update()
		revs = append(revs, Revision{Path: c.Path, Keyframes: cv.Keyframes()})
	}
	return s.Commit(ctx, CommitParams{Doc: doc, Action: "import", Revisions: revs})
}
