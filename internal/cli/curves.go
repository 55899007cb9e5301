package cli

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/rcliao/easeit/internal/command"
	"github.com/rcliao/easeit/internal/curve"
	"github.com/rcliao/easeit/internal/model"
	"github.com/rcliao/easeit/internal/store"
)

// workingSet is the latest revision of a document's curves loaded for
// editing, with a snapshot to tell which ones an edit touched.
type workingSet struct {
	doc    string
	curves []*curve.Curve
	before map[string][]model.KeyframePoint
}

func loadWorkingSet(ctx context.Context, s store.Store, doc, pathFilter string) (*workingSet, error) {
	recs, err := s.List(ctx, store.ListParams{Doc: doc})
	if err != nil {
		return nil, err
	}
	ws := &workingSet{doc: doc, before: make(map[string][]model.KeyframePoint)}
	for _, r := range recs {
		if pathFilter != "" && !strings.Contains(r.Path, pathFilter) {
			continue
		}
		c := curve.FromPoints(r.Path, r.Keyframes)
		c.Update()
		ws.curves = append(ws.curves, c)
		ws.before[r.Path] = c.Keyframes()
	}
	logger.Debug("loaded curves", "doc", doc, "filter", pathFilter, "curves", len(ws.curves))
	return ws, nil
}

// changed returns a revision for every curve that differs from its loaded
// state.
func (ws *workingSet) changed() []store.Revision {
	var revs []store.Revision
	for _, c := range ws.curves {
		kfs := c.Keyframes()
		if slices.Equal(kfs, ws.before[c.Path]) {
			continue
		}
		revs = append(revs, store.Revision{Path: c.Path, Keyframes: kfs})
	}
	return revs
}

// commit stores every changed curve as one action. It returns nil records
// when nothing changed.
func (ws *workingSet) commit(ctx context.Context, s store.Store, action string) ([]model.CurveRecord, error) {
	revs := ws.changed()
	if len(revs) == 0 {
		return nil, nil
	}
	logger.Debug("commit", "doc", ws.doc, "action", action, "curves", len(revs))
	return s.Commit(ctx, store.CommitParams{Doc: ws.doc, Action: action, Revisions: revs})
}

// applyResult is the outcome of one apply invocation.
type applyResult struct {
	command.Report
	Committed []string `json:"committed,omitempty"`
}

func applyPreset(ctx context.Context, s store.Store, table *command.Table, doc, pathFilter, name string) (applyResult, error) {
	ws, err := loadWorkingSet(ctx, s, doc, pathFilter)
	if err != nil {
		return applyResult{}, err
	}

	rep, err := table.Invoke(name, command.Targets(ws.curves))
	res := applyResult{Report: rep}
	if err != nil || rep.Result.CurvesProcessed == 0 {
		return res, err
	}

	recs, err := ws.commit(ctx, s, "apply:"+rep.Preset)
	if err != nil {
		return res, fmt.Errorf("commit: %w", err)
	}
	for _, r := range recs {
		res.Committed = append(res.Committed, r.Path)
	}
	return res, nil
}

// selection describes how select changes the selection flags.
type selection struct {
	From, To float64
	Add      bool
	None     bool
}

func (sel selection) apply(c *curve.Curve) {
	for _, p := range c.Points() {
		switch {
		case sel.None:
			p.Selected = false
		case p.Co.X >= sel.From && p.Co.X <= sel.To:
			p.Selected = true
		case !sel.Add:
			p.Selected = false
		}
	}
}

func allFrames() selection {
	return selection{From: math.Inf(-1), To: math.Inf(1)}
}

type selectResult struct {
	Doc       string   `json:"doc"`
	Selected  int      `json:"selected"`
	Committed []string `json:"committed"`
}

func selectKeyframes(ctx context.Context, s store.Store, doc, pathFilter string, sel selection) (selectResult, error) {
	ws, err := loadWorkingSet(ctx, s, doc, pathFilter)
	if err != nil {
		return selectResult{}, err
	}
	if len(ws.curves) == 0 {
		return selectResult{}, fmt.Errorf("no curves in %s match %q", doc, pathFilter)
	}

	res := selectResult{Doc: doc, Committed: []string{}}
	for _, c := range ws.curves {
		sel.apply(c)
		res.Selected += len(c.Selected())
	}

	recs, err := ws.commit(ctx, s, "select")
	if err != nil {
		return res, err
	}
	for _, r := range recs {
		res.Committed = append(res.Committed, r.Path)
	}
	return res, nil
}
