package easing

import "github.com/rcliao/easeit/internal/model"

type handleState struct {
	typ model.HandleType
	pos model.Vec
}

// ApplyRatios eases every consecutive pair of selected points on c. For a
// pair (a, b) spaced d frames apart, a's right handle is set d*EaseOut frames
// ahead of a and b's left handle d*EaseIn frames behind b, both flat and
// ALIGNED. Pairs closer than Epsilon are skipped.
//
// The first point's left handle, the last point's right handle and the last
// point's interpolation are restored, so the curve outside the run keeps its
// shape. Fewer than two selected points leaves c untouched.
func ApplyRatios(c Curve, selected []model.PointID, pair model.RatioPair) Result {
	pts := Selection(c, selected)
	if len(pts) < 2 {
		return Result{}
	}

	first, last := pts[0], pts[len(pts)-1]
	firstLeft := handleState{first.HandleLeftType, first.HandleLeft}
	lastRight := handleState{last.HandleRightType, last.HandleRight}
	lastInterp := last.Interpolation

	for _, p := range pts {
		p.Interpolation = model.InterpBezier
	}

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		d := b.Co.X - a.Co.X
		if d < Epsilon {
			continue
		}

		a.HandleRightType = model.HandleAligned
		a.HandleRight = model.V(a.Co.X+d*pair.EaseOut, a.Co.Y)
		b.HandleLeftType = model.HandleAligned
		b.HandleLeft = model.V(b.Co.X-d*pair.EaseIn, b.Co.Y)

		if i == 0 {
			a.HandleLeftType, a.HandleLeft = firstLeft.typ, firstLeft.pos
		}
		if i == len(pts)-2 {
			b.HandleRightType, b.HandleRight = lastRight.typ, lastRight.pos
		}
	}

	last.Interpolation = lastInterp
	c.Update()

	return Result{CurvesProcessed: 1, KeyframesProcessed: uint32(len(pts))}
}
