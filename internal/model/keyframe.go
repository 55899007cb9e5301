// Package model defines the core keyframe, curve and preset data types.
package model

import (
	"fmt"
	"strings"
	"time"
)

// PointID is the stable identity of a keyframe point on its curve.
type PointID string

// Vec is a position in (frame, value) space.
type Vec struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// V returns the vector (x, y).
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// HandleType controls how a Bezier handle is computed by the host.
type HandleType string

const (
	HandleFree        HandleType = "FREE"
	HandleAligned     HandleType = "ALIGNED"
	HandleVector      HandleType = "VECTOR"
	HandleAuto        HandleType = "AUTO"
	HandleAutoClamped HandleType = "AUTO_CLAMPED"
)

// ValidHandleTypes are the allowed handle types.
var ValidHandleTypes = map[HandleType]bool{
	HandleFree:        true,
	HandleAligned:     true,
	HandleVector:      true,
	HandleAuto:        true,
	HandleAutoClamped: true,
}

// ParseHandleType parses a handle type name, case-insensitively.
func ParseHandleType(s string) (HandleType, error) {
	t := HandleType(strings.ToUpper(strings.TrimSpace(s)))
	if !ValidHandleTypes[t] {
		return "", fmt.Errorf("invalid handle type %q (valid: FREE, ALIGNED, VECTOR, AUTO, AUTO_CLAMPED)", s)
	}
	return t, nil
}

// Interpolation is the interpolation mode of the segment that starts at a point.
type Interpolation string

const (
	InterpConstant Interpolation = "CONSTANT"
	InterpLinear   Interpolation = "LINEAR"
	InterpBezier   Interpolation = "BEZIER"
	InterpSine     Interpolation = "SINE"
	InterpQuad     Interpolation = "QUAD"
	InterpCubic    Interpolation = "CUBIC"
	InterpQuart    Interpolation = "QUART"
	InterpQuint    Interpolation = "QUINT"
	InterpExpo     Interpolation = "EXPO"
	InterpCirc     Interpolation = "CIRC"
	InterpBack     Interpolation = "BACK"
	InterpBounce   Interpolation = "BOUNCE"
	InterpElastic  Interpolation = "ELASTIC"
)

// ValidInterpolations are the allowed interpolation modes.
var ValidInterpolations = map[Interpolation]bool{
	InterpConstant: true,
	InterpLinear:   true,
	InterpBezier:   true,
	InterpSine:     true,
	InterpQuad:     true,
	InterpCubic:    true,
	InterpQuart:    true,
	InterpQuint:    true,
	InterpExpo:     true,
	InterpCirc:     true,
	InterpBack:     true,
	InterpBounce:   true,
	InterpElastic:  true,
}

// ParseInterpolation parses an interpolation name, case-insensitively.
func ParseInterpolation(s string) (Interpolation, error) {
	i := Interpolation(strings.ToUpper(strings.TrimSpace(s)))
	if !ValidInterpolations[i] {
		return "", fmt.Errorf("invalid interpolation %q", s)
	}
	return i, nil
}

// KeyframePoint is a control point on an animation curve.
// Handles live in the same (frame, value) space as Co.
type KeyframePoint struct {
	ID              PointID       `json:"id" yaml:"id,omitempty"`
	Co              Vec           `json:"co" yaml:"co"`
	HandleLeft      Vec           `json:"handle_left" yaml:"handle_left"`
	HandleRight     Vec           `json:"handle_right" yaml:"handle_right"`
	HandleLeftType  HandleType    `json:"handle_left_type" yaml:"handle_left_type"`
	HandleRightType HandleType    `json:"handle_right_type" yaml:"handle_right_type"`
	Interpolation   Interpolation `json:"interpolation" yaml:"interpolation"`
	Selected        bool          `json:"selected" yaml:"selected"`
}

// Frame returns the point's frame.
func (k *KeyframePoint) Frame() float64 { return k.Co.X }

// Value returns the point's value.
func (k *KeyframePoint) Value() float64 { return k.Co.Y }

// Validate checks the enum fields.
func (k *KeyframePoint) Validate() error {
	if !ValidHandleTypes[k.HandleLeftType] {
		return fmt.Errorf("keyframe %s: invalid left handle type %q", k.ID, k.HandleLeftType)
	}
	if !ValidHandleTypes[k.HandleRightType] {
		return fmt.Errorf("keyframe %s: invalid right handle type %q", k.ID, k.HandleRightType)
	}
	if !ValidInterpolations[k.Interpolation] {
		return fmt.Errorf("keyframe %s: invalid interpolation %q", k.ID, k.Interpolation)
	}
	return nil
}

// CurveRecord is one stored revision of a curve.
type CurveRecord struct {
	ID         string          `json:"id"`
	Doc        string          `json:"doc"`
	Path       string          `json:"path"`
	Version    int             `json:"version"`
	Supersedes string          `json:"supersedes,omitempty"`
	ActionID   string          `json:"action_id,omitempty"`
	Action     string          `json:"action,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	DeletedAt  *time.Time      `json:"deleted_at,omitempty"`
	Keyframes  []KeyframePoint `json:"keyframes"`
}
