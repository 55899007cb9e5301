package easing

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/easeit/internal/curve"
	"github.com/rcliao/easeit/internal/model"
)

type key struct {
	frame, value float64
	selected     bool
}

// newCurve builds a curve of FREE-handled LINEAR points with unit-length
// flat handles, the state the host leaves points in before invocation.
func newCurve(t *testing.T, keys ...key) *curve.Curve {
	t.Helper()
	pts := make([]model.KeyframePoint, 0, len(keys))
	for _, k := range keys {
		pts = append(pts, model.KeyframePoint{
			Co:              model.V(k.frame, k.value),
			HandleLeft:      model.V(k.frame-1, k.value),
			HandleRight:     model.V(k.frame+1, k.value),
			HandleLeftType:  model.HandleFree,
			HandleRightType: model.HandleFree,
			Interpolation:   model.InterpLinear,
			Selected:        k.selected,
		})
	}
	c := curve.FromPoints("location[0]", pts)
	require.Equal(t, len(keys), c.Len())
	return c
}

// at returns the point at frame, failing the test if there is none.
func at(t *testing.T, c *curve.Curve, frame float64) *model.KeyframePoint {
	t.Helper()
	for _, p := range c.Points() {
		if math.Abs(p.Co.X-frame) < 1e-9 {
			return p
		}
	}
	t.Fatalf("no point at frame %g", frame)
	return nil
}

var (
	approx   = cmpopts.EquateApprox(0, 1e-9)
	ignoreID = cmpopts.IgnoreFields(model.KeyframePoint{}, "ID")
)
