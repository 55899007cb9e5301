// Package command binds preset names to easing invocations and turns their
// outcomes into user-facing reports.
package command

import (
	"errors"
	"fmt"

	"github.com/rcliao/easeit/internal/curve"
	"github.com/rcliao/easeit/internal/easing"
	"github.com/rcliao/easeit/internal/model"
	"github.com/rcliao/easeit/internal/preset"
)

// ErrUnknownPreset is returned by Invoke for names with no binding.
var ErrUnknownPreset = errors.New("unknown preset")

// Report levels.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Report describes the outcome of one invocation.
type Report struct {
	Preset  string        `json:"preset"`
	Level   string        `json:"level"`
	Message string        `json:"message"`
	Result  easing.Result `json:"result"`
}

// OK reports whether the invocation changed anything.
func (r Report) OK() bool {
	return r.Level == LevelInfo
}

// Binding ties a command name to a preset.
type Binding struct {
	Name   string
	Preset preset.Preset
}

// Table is the explicit list of invokable presets.
type Table struct {
	bindings []Binding
	bySlug   map[string]int
}

// NewTable binds every preset in the catalog under its own name.
func NewTable(c *preset.Catalog) *Table {
	t := &Table{bySlug: make(map[string]int)}
	for _, p := range c.List("") {
		t.bySlug[preset.Slug(p.Name)] = len(t.bindings)
		t.bindings = append(t.bindings, Binding{Name: p.Name, Preset: p})
	}
	return t
}

// Bindings returns the bindings in catalog order.
func (t *Table) Bindings() []Binding {
	return append([]Binding(nil), t.bindings...)
}

// Lookup returns the binding for name.
func (t *Table) Lookup(name string) (Binding, bool) {
	i, ok := t.bySlug[preset.Slug(name)]
	if !ok {
		return Binding{}, false
	}
	return t.bindings[i], true
}

// Invoke applies the named preset to targets. Selected handles are
// normalized to FREE first. A zero-processed outcome is returned as a
// warning report with a nil error; malformed preset data and an empty target
// list produce error reports.
func (t *Table) Invoke(name string, targets []easing.Target) (Report, error) {
	b, ok := t.Lookup(name)
	if !ok {
		return Report{Preset: name, Level: LevelError, Message: fmt.Sprintf("Unknown preset %q", name)},
			fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return Run(b.Preset, targets)
}

// Run applies p to targets.
func Run(p preset.Preset, targets []easing.Target) (Report, error) {
	rep := Report{Preset: p.Name}

	var (
		res  easing.Result
		err  error
		verb string
	)
	switch p.Kind {
	case preset.KindRatio:
		normalize(targets, easing.RatioApplies)
		res, err = easing.EaseRatios(targets, p.Ratios)
		verb = "processed"
	case preset.KindProfile:
		if len(p.Profile) > 0 {
			normalize(targets, easing.ProfileApplies)
		}
		res, err = easing.SynthesizeProfile(targets, p.Profile)
		verb = "created"
	default:
		err = fmt.Errorf("preset %q: invalid kind %q", p.Name, p.Kind)
	}
	rep.Result = res

	switch {
	case err == nil:
		rep.Level = LevelInfo
		rep.Message = fmt.Sprintf("Applied %s easing to %d curve(s), %d keyframes %s",
			p.Name, res.CurvesProcessed, res.KeyframesProcessed, verb)
		return rep, nil
	case errors.Is(err, easing.ErrNoSelectionOnAnyCurve):
		rep.Level = LevelWarning
		rep.Message = "No curves with at least 2 selected keyframes found"
		return rep, nil
	case errors.Is(err, easing.ErrNoCurvesSupplied):
		rep.Level = LevelError
		rep.Message = "No F-Curves found"
	case errors.Is(err, easing.ErrEmptyProfile):
		rep.Level = LevelError
		rep.Message = "No spatial data defined for this preset"
	default:
		rep.Level = LevelError
		rep.Message = err.Error()
	}
	return rep, err
}

// normalize sets both handle types of every selected point to FREE, the
// state the easing algorithms expect to start from. Only targets the
// algorithm will process are touched.
func normalize(targets []easing.Target, applies func(easing.Curve, []model.PointID) bool) {
	for _, t := range targets {
		if !applies(t.Curve, t.Selected) {
			continue
		}
		for _, p := range easing.Selection(t.Curve, t.Selected) {
			p.HandleLeftType = model.HandleFree
			p.HandleRightType = model.HandleFree
		}
	}
}

// Targets builds one target per curve from the points' selection flags.
func Targets(curves []*curve.Curve) []easing.Target {
	targets := make([]easing.Target, 0, len(curves))
	for _, c := range curves {
		targets = append(targets, easing.Target{Curve: c, Selected: c.Selected()})
	}
	return targets
}
