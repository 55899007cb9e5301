package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ratio bounds for RatioPair. MinRatio is the "effectively none" convention
// used by one-sided presets.
const (
	MinRatio = 0.001
	MaxRatio = 1.0
)

// RatioPair holds the fractions of the inter-keyframe frame distance used as
// the incoming and outgoing handle lengths.
type RatioPair struct {
	EaseIn  float64 `json:"ease_in" yaml:"ease_in"`
	EaseOut float64 `json:"ease_out" yaml:"ease_out"`
}

// Validate checks both ratios lie in [MinRatio, MaxRatio].
func (r RatioPair) Validate() error {
	if r.EaseIn < MinRatio || r.EaseIn > MaxRatio {
		return fmt.Errorf("ease_in %g out of range [%g, %g]", r.EaseIn, MinRatio, MaxRatio)
	}
	if r.EaseOut < MinRatio || r.EaseOut > MaxRatio {
		return fmt.Errorf("ease_out %g out of range [%g, %g]", r.EaseOut, MinRatio, MaxRatio)
	}
	return nil
}

// ProfilePoint is one normalized control point of a shape profile.
//
// XFrac and YFrac locate the point inside the unit span; YFrac may overshoot
// [0, 1]. Slopes are tangent ratios in the unit square. The handle lengths are
// percentages (0-100) of the frame distance to the neighbouring profile point.
// Reserved carries three per-point flags that no algorithm reads.
type ProfilePoint struct {
	XFrac             float64 `json:"x" yaml:"x"`
	YFrac             float64 `json:"y" yaml:"y"`
	SlopeLeft         float64 `json:"slope_left" yaml:"slope_left"`
	HandleLenLeftPct  float64 `json:"ease_left" yaml:"ease_left"`
	SlopeRight        float64 `json:"slope_right" yaml:"slope_right"`
	HandleLenRightPct float64 `json:"ease_right" yaml:"ease_right"`
	Reserved          [3]bool `json:"flags" yaml:"flags,flow"`
}

// Profile is an ordered, resolution-independent curve shape.
type Profile []ProfilePoint

// P is shorthand for building profile tables.
func P(x, y, slopeLeft, easeLeft, slopeRight, easeRight float64, flags ...bool) ProfilePoint {
	pp := ProfilePoint{
		XFrac:             x,
		YFrac:             y,
		SlopeLeft:         slopeLeft,
		HandleLenLeftPct:  easeLeft,
		SlopeRight:        slopeRight,
		HandleLenRightPct: easeRight,
	}
	copy(pp.Reserved[:], flags)
	return pp
}

// UnmarshalYAML accepts either a mapping or the compact row form
// [x, y, slope_left, ease_left, slope_right, ease_right, flag1, flag2, flag3]
// where the flags are optional booleans or 0/1.
func (pp *ProfilePoint) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		type plain ProfilePoint
		var p plain
		if err := n.Decode(&p); err != nil {
			return err
		}
		*pp = ProfilePoint(p)
		return nil
	}

	if len(n.Content) < 6 || len(n.Content) > 9 {
		return fmt.Errorf("line %d: profile row needs 6 to 9 values, got %d", n.Line, len(n.Content))
	}
	var nums [6]float64
	for i := range nums {
		if err := n.Content[i].Decode(&nums[i]); err != nil {
			return fmt.Errorf("line %d: profile row value %d: %w", n.Line, i+1, err)
		}
	}
	*pp = P(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
	for i, c := range n.Content[6:] {
		var b bool
		if err := c.Decode(&b); err != nil {
			var f float64
			if ferr := c.Decode(&f); ferr != nil {
				return fmt.Errorf("line %d: profile flag %d: %w", n.Line, i+1, err)
			}
			b = f != 0
		}
		pp.Reserved[i] = b
	}
	return nil
}
