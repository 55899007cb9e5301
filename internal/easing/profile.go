package easing

import (
	"math"

	"github.com/rcliao/easeit/internal/model"
)

// ApplyProfile replaces every point from the first to the last selected
// point of c with points synthesized from profile, rescaled to the selected
// frame/value span.
//
// Each profile point lands at start + frac*distance on both axes. Handle
// lengths are a percentage of the frame distance to the neighbouring profile
// point, computed from the profile's own ordering. Slopes are defined in the
// unit square and are rescaled by the span's average slope. Points whose
// slopes differ get FREE handles (a corner), otherwise ALIGNED.
//
// Only the first and last synthesized points stay selected, and the last one
// takes over the interpolation of the last selected point. Fewer than two
// selected points, a span shorter than Epsilon or an empty profile leaves c
// untouched.
func ApplyProfile(c Curve, selected []model.PointID, profile model.Profile) Result {
	if len(profile) == 0 {
		return Result{}
	}
	pts := Selection(c, selected)
	if len(pts) < 2 {
		return Result{}
	}

	first, last := pts[0], pts[len(pts)-1]
	startFrame, endFrame := first.Co.X, last.Co.X
	startValue, endValue := first.Co.Y, last.Co.Y
	frameDistance := endFrame - startFrame
	valueDistance := endValue - startValue
	if frameDistance < Epsilon {
		return Result{}
	}
	lastInterp := last.Interpolation

	for _, p := range c.Points() {
		p.Selected = false
	}

	for _, p := range c.Points() {
		if p.Co.X > startFrame && p.Co.X < endFrame {
			c.Remove(p.ID)
		}
	}
	// Relocate both ends first so removing one cannot affect finding the other.
	startPt, endPt := nearestAt(c, startFrame), nearestAt(c, endFrame)
	if endPt != nil {
		c.Remove(endPt.ID)
	}
	if startPt != nil && startPt != endPt {
		c.Remove(startPt.ID)
	}

	frames := make([]float64, len(profile))
	for i, pp := range profile {
		frames[i] = startFrame + pp.XFrac*frameDistance
	}

	var slopeScale float64
	if frameDistance != 0 {
		slopeScale = valueDistance / frameDistance
	}

	created := make([]*model.KeyframePoint, 0, len(profile))
	for i, pp := range profile {
		kp := c.Insert(frames[i], startValue+pp.YFrac*valueDistance)
		kp.Interpolation = model.InterpBezier

		if math.Abs(pp.SlopeLeft-pp.SlopeRight) < Epsilon {
			kp.HandleLeftType, kp.HandleRightType = model.HandleAligned, model.HandleAligned
		} else {
			kp.HandleLeftType, kp.HandleRightType = model.HandleFree, model.HandleFree
		}

		leftDist, rightDist := neighbourDistances(frames, i, frameDistance)
		kp.HandleLeft, kp.HandleRight = slopeHandles(kp.Co,
			pp.SlopeLeft*slopeScale, pp.HandleLenLeftPct*leftDist/100,
			pp.SlopeRight*slopeScale, pp.HandleLenRightPct*rightDist/100,
		)

		created = append(created, kp)
	}

	created[0].Selected = true
	created[len(created)-1].Selected = true
	created[len(created)-1].Interpolation = lastInterp

	c.Update()

	return Result{CurvesProcessed: 1, KeyframesProcessed: uint32(len(created))}
}
