package store

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rcliao/easeit/internal/exchange"
	"github.com/rcliao/easeit/internal/model"
)

func TestSearch_Basic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Doc: "shot010", Path: "location[0]"})
	s.Put(ctx, PutParams{Doc: "shot010", Path: "location[1]"})
	s.Put(ctx, PutParams{Doc: "shot010", Path: "rotation_euler[2]"})
	s.Put(ctx, PutParams{Doc: "shot020", Path: "Location[0]"})

	results, err := s.Search(ctx, SearchParams{Query: "location"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	results, err = s.Search(ctx, SearchParams{Doc: "shot010", Query: "location"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	results, err = s.Search(ctx, SearchParams{Query: "euler[2]"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	results, err = s.Search(ctx, SearchParams{Query: "scale"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestSearch_LiteralUnderscore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Doc: "d", Path: "rotation_euler[0]"})
	s.Put(ctx, PutParams{Doc: "d", Path: "rotationXeuler[0]"})

	results, _ := s.Search(ctx, SearchParams{Query: "n_e"})
	if len(results) != 1 {
		t.Fatalf("expected underscore to match literally, got %d results", len(results))
	}
}

func TestSearch_LatestOnly(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Doc: "d", Path: "location[0]"})
	s.Put(ctx, PutParams{Doc: "d", Path: "location[0]"})
	s.Put(ctx, PutParams{Doc: "d", Path: "location[1]"})
	s.Rm(ctx, RmParams{Doc: "d", Path: "location[1]"})

	results, _ := s.Search(ctx, SearchParams{Query: "location"})
	if len(results) != 1 {
		t.Fatalf("expected 1 live curve, got %d", len(results))
	}
	if results[0].Version != 2 {
		t.Errorf("expected version 2, got %d", results[0].Version)
	}
}

func TestStatsAndDocs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Doc: "a", Path: "x", Keyframes: []model.KeyframePoint{kf("1", 0, 0, false), kf("2", 1, 0, false)}})
	s.Put(ctx, PutParams{Doc: "a", Path: "x"})
	s.Put(ctx, PutParams{Doc: "a", Path: "y"})
	s.Put(ctx, PutParams{Doc: "b", Path: "x"})

	docs, err := s.ListDocs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0] != (DocStats{Doc: "a", Revisions: 3, Curves: 2}) {
		t.Errorf("unexpected doc stats %+v", docs[0])
	}

	st, err := s.Stats(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalRevisions != 4 || st.LiveRevisions != 4 || st.TotalKeyframes != 2 || st.Actions != 4 {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	in := &exchange.Document{Doc: "shot010", Curves: []exchange.CurveData{
		{Path: "location[0]", Keyframes: []model.KeyframePoint{kf("a", 1, 0, true), kf("b", 24, 10, true)}},
		{Path: "location[1]", Keyframes: []model.KeyframePoint{kf("c", 1, 5, false)}},
	}}
	recs, err := s.Import(ctx, in, "")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(recs) != 2 || recs[0].Action != "import" || recs[0].ActionID != recs[1].ActionID {
		t.Fatalf("expected one import action for both curves, got %+v", recs)
	}

	out, err := s.ExportAll(ctx, "shot010")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(out.Curves) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(out.Curves))
	}
	if out.Curves[0].Keyframes[1] != in.Curves[0].Keyframes[1] {
		t.Errorf("keyframe changed on round trip: %+v", out.Curves[0].Keyframes[1])
	}

	if _, err := s.Import(ctx, in, "copy"); err != nil {
		t.Fatalf("import as copy: %v", err)
	}
	if _, err := s.Get(ctx, GetParams{Doc: "copy", Path: "location[1]"}); err != nil {
		t.Errorf("expected renamed doc: %v", err)
	}

	if _, err := s.ExportAll(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestImportComputesAutoHandles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	onPoint := func(frame, value float64) model.KeyframePoint {
		co := model.V(frame, value)
		return model.KeyframePoint{
			Co: co, HandleLeft: co, HandleRight: co,
			HandleLeftType: model.HandleAutoClamped, HandleRightType: model.HandleAutoClamped,
			Interpolation: model.InterpBezier,
		}
	}
	in := &exchange.Document{Doc: "d", Curves: []exchange.CurveData{
		{Path: "location[0]", Keyframes: []model.KeyframePoint{onPoint(0, 0), onPoint(30, 3)}},
	}}
	if _, err := s.Import(ctx, in, ""); err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := s.Get(ctx, GetParams{Doc: "d", Path: "location[0]"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	first := got[0].Keyframes[0]
	if math.Abs(first.HandleLeft.X+10) > 1e-9 || math.Abs(first.HandleRight.X-10) > 1e-9 {
		t.Errorf("expected handles at -10 and 10, got %v and %v", first.HandleLeft, first.HandleRight)
	}
	if in.Curves[0].Keyframes[0].HandleLeft != model.V(0, 0) {
		t.Error("expected the input document to be left unchanged")
	}
}
