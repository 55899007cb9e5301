package curve

import (
	"math"

	"github.com/rcliao/easeit/internal/model"
)

// handleFraction is the share of the neighbour frame distance used for
// host-computed handle lengths.
const handleFraction = 1.0 / 3.0

func recalcHandles(p, prev, next *model.KeyframePoint) {
	if isComputed(p.HandleLeftType) {
		p.HandleLeft = computedHandle(p, prev, next, p.HandleLeftType, -1)
	}
	if isComputed(p.HandleRightType) {
		p.HandleRight = computedHandle(p, prev, next, p.HandleRightType, 1)
	}
}

func isComputed(t model.HandleType) bool {
	return t == model.HandleVector || t == model.HandleAuto || t == model.HandleAutoClamped
}

// computedHandle returns the left (side < 0) or right (side > 0) handle of p.
func computedHandle(p, prev, next *model.KeyframePoint, t model.HandleType, side float64) model.Vec {
	near, far := prev, next
	if side > 0 {
		near, far = next, prev
	}

	if t == model.HandleVector {
		switch {
		case near != nil:
			return model.V(
				p.Co.X+(near.Co.X-p.Co.X)*handleFraction,
				p.Co.Y+(near.Co.Y-p.Co.Y)*handleFraction,
			)
		case far != nil:
			// Mirror the opposite neighbour.
			return model.V(
				p.Co.X-(far.Co.X-p.Co.X)*handleFraction,
				p.Co.Y-(far.Co.Y-p.Co.Y)*handleFraction,
			)
		default:
			return p.Co
		}
	}

	var dx float64
	switch {
	case near != nil:
		dx = math.Abs(near.Co.X-p.Co.X) * handleFraction
	case far != nil:
		dx = math.Abs(far.Co.X-p.Co.X) * handleFraction
	default:
		return p.Co
	}

	slope := autoSlope(p, prev, next, t == model.HandleAutoClamped)
	return model.V(p.Co.X+side*dx, p.Co.Y+side*dx*slope)
}

// autoSlope is the prev->next secant slope. End points are flat, and clamped
// handles are flat at local extrema.
func autoSlope(p, prev, next *model.KeyframePoint, clamped bool) float64 {
	if prev == nil || next == nil {
		return 0
	}
	span := next.Co.X - prev.Co.X
	if span < 1e-9 {
		return 0
	}
	if clamped {
		up := p.Co.Y >= prev.Co.Y && p.Co.Y >= next.Co.Y
		down := p.Co.Y <= prev.Co.Y && p.Co.Y <= next.Co.Y
		if up || down {
			return 0
		}
	}
	return (next.Co.Y - prev.Co.Y) / span
}
