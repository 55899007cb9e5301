package easing

import (
	"math"

	"github.com/rcliao/easeit/internal/model"
)

// neighbourDistances returns the frame distance from frames[i] to its left
// and right neighbours. A missing neighbour falls back to the other side's
// distance; a lone frame falls back to span.
func neighbourDistances(frames []float64, i int, span float64) (left, right float64) {
	n := len(frames)
	if n < 2 {
		return span, span
	}
	if i > 0 {
		left = frames[i] - frames[i-1]
	} else {
		left = frames[1] - frames[0]
	}
	if i < n-1 {
		right = frames[i+1] - frames[i]
	} else {
		right = frames[i] - frames[i-1]
	}
	return left, right
}

// slopeHandles places the left and right handles of a point at co, at
// frame offsets leftLen and rightLen along the given slopes.
func slopeHandles(co model.Vec, slopeLeft, leftLen, slopeRight, rightLen float64) (left, right model.Vec) {
	left = model.V(co.X-leftLen, co.Y-slopeLeft*leftLen)
	right = model.V(co.X+rightLen, co.Y+slopeRight*rightLen)
	return left, right
}

// nearestAt returns the point closest to frame within Epsilon, or nil.
func nearestAt(c Curve, frame float64) *model.KeyframePoint {
	var best *model.KeyframePoint
	bestDist := math.Inf(1)
	for _, p := range c.Points() {
		d := math.Abs(p.Co.X - frame)
		if d < Epsilon && d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
