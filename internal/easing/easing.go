// Package easing reshapes the Bezier handles of selected keyframe runs.
//
// Two algorithms are provided. ApplyRatios adjusts the handles between each
// consecutive pair of selected points from an (ease-in, ease-out) ratio pair
// and never adds or removes points. ApplyProfile replaces the selected span
// with points synthesized from a normalized shape profile.
//
// Both operate on any host curve satisfying [Curve]. They never decide which
// points are selected; the caller passes the selection in. The host is
// expected to have normalized the selected points' handle types to FREE
// before invocation.
//
// The package is single-threaded and performs no I/O.
package easing

import (
	"errors"
	"sort"

	"github.com/rcliao/easeit/internal/model"
)

// Epsilon is the frame tolerance below which spacing is treated as
// degenerate and under which two frames are considered equal.
const Epsilon = 0.001

var (
	// ErrNoCurvesSupplied is returned when a batch has no curves at all.
	ErrNoCurvesSupplied = errors.New("no curves supplied")

	// ErrNoSelectionOnAnyCurve is returned, with a zero Result, when no
	// curve in a batch was processed. It is not fatal.
	ErrNoSelectionOnAnyCurve = errors.New("no curve with at least 2 selected keyframes")

	// ErrEmptyProfile is returned before any mutation when the profile has
	// no points.
	ErrEmptyProfile = errors.New("profile has no points")
)

// Curve is the host curve contract the algorithms work against.
type Curve interface {
	// Points enumerates the points in any order. Identities are stable.
	Points() []*model.KeyframePoint

	// Point looks up a point by identity.
	Point(id model.PointID) (*model.KeyframePoint, bool)

	// Insert adds a point at (frame, value) and returns it.
	Insert(frame, value float64) *model.KeyframePoint

	// Remove deletes a point by identity.
	Remove(id model.PointID) bool

	// Update recomputes cached curve state. Called once per processed curve
	// after all mutations.
	Update()
}

// Target pairs a curve with the identities of its selected points.
type Target struct {
	Curve    Curve
	Selected []model.PointID
}

// Result summarizes one invocation.
type Result struct {
	CurvesProcessed    uint32 `json:"curves_processed"`
	KeyframesProcessed uint32 `json:"keyframes_processed"`
}

// Add accumulates o into r.
func (r *Result) Add(o Result) {
	r.CurvesProcessed += o.CurvesProcessed
	r.KeyframesProcessed += o.KeyframesProcessed
}

// Selection resolves ids to points on c the way both algorithms do: unknown
// and duplicate ids are dropped and the points are sorted by frame.
func Selection(c Curve, ids []model.PointID) []*model.KeyframePoint {
	seen := make(map[model.PointID]bool, len(ids))
	pts := make([]*model.KeyframePoint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := c.Point(id); ok {
			pts = append(pts, p)
		}
	}
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].Co.X < pts[j].Co.X
	})
	return pts
}

// RatioApplies reports whether ApplyRatios would process c.
func RatioApplies(c Curve, selected []model.PointID) bool {
	return len(Selection(c, selected)) >= 2
}

// ProfileApplies reports whether ApplyProfile would process c with a
// non-empty profile.
func ProfileApplies(c Curve, selected []model.PointID) bool {
	pts := Selection(c, selected)
	if len(pts) < 2 {
		return false
	}
	return pts[len(pts)-1].Co.X-pts[0].Co.X >= Epsilon
}

// EaseRatios runs ApplyRatios over every target in order.
func EaseRatios(targets []Target, pair model.RatioPair) (Result, error) {
	if len(targets) == 0 {
		return Result{}, ErrNoCurvesSupplied
	}
	var total Result
	for _, t := range targets {
		total.Add(ApplyRatios(t.Curve, t.Selected, pair))
	}
	if total.CurvesProcessed == 0 {
		return total, ErrNoSelectionOnAnyCurve
	}
	return total, nil
}

// SynthesizeProfile runs ApplyProfile over every target in order. An empty
// profile is rejected before any curve is touched.
func SynthesizeProfile(targets []Target, profile model.Profile) (Result, error) {
	if len(targets) == 0 {
		return Result{}, ErrNoCurvesSupplied
	}
	if len(profile) == 0 {
		return Result{}, ErrEmptyProfile
	}
	var total Result
	for _, t := range targets {
		total.Add(ApplyProfile(t.Curve, t.Selected, profile))
	}
	if total.CurvesProcessed == 0 {
		return total, ErrNoSelectionOnAnyCurve
	}
	return total, nil
}
