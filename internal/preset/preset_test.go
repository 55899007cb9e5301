package preset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/easeit/internal/model"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()
	require.Equal(t, 30, c.Len())

	assert.Len(t, c.List(GroupSymmetric), 7)
	assert.Len(t, c.List(GroupAsymmetric), 6)
	assert.Len(t, c.List(GroupOneSided), 2)
	assert.Len(t, c.List(GroupAdvanced), 15)

	for _, p := range c.List("") {
		assert.NoError(t, p.Validate(), p.Name)
		if p.Kind == KindProfile {
			first, last := p.Profile[0], p.Profile[len(p.Profile)-1]
			assert.Equal(t, 0.0, first.XFrac, p.Name)
			assert.Equal(t, 1.0, last.XFrac, p.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	c := Builtin()

	p, ok := c.Lookup("default")
	require.True(t, ok)
	assert.Equal(t, KindRatio, p.Kind)
	assert.Equal(t, model.RatioPair{EaseIn: 0.33, EaseOut: 0.33}, p.Ratios)

	p, ok = c.Lookup("anticipation-overshoot")
	require.True(t, ok)
	assert.Equal(t, "Anticipation + Overshoot", p.Name)
	assert.Len(t, p.Profile, 4)

	p, ok = c.Lookup("  Overshoot X3 ")
	require.True(t, ok)
	assert.Equal(t, "Overshoot x3", p.Name)

	p, ok = c.Lookup("Explosive")
	require.True(t, ok)
	assert.InDelta(t, 0.321, p.Profile[1].XFrac, 1e-12)
	assert.InDelta(t, 1.189, p.Profile[1].YFrac, 1e-12)

	p, ok = c.Lookup("Bouncy")
	require.True(t, ok)
	assert.Equal(t, [3]bool{true, true, true}, p.Profile[0].Reserved)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "super-smooth-out", Slug("Super Smooth Out"))
	assert.Equal(t, "anticipation-overshoot", Slug("Anticipation + Overshoot"))
	assert.Equal(t, "ease-in-only", Slug("ease-in-only"))
}

func TestAddRejectsInvalid(t *testing.T) {
	c := Builtin()

	tests := []struct {
		name string
		p    Preset
	}{
		{"duplicate", Preset{Name: "DEFAULT", Kind: KindRatio, Ratios: model.RatioPair{EaseIn: 0.5, EaseOut: 0.5}}},
		{"no name", Preset{Kind: KindRatio, Ratios: model.RatioPair{EaseIn: 0.5, EaseOut: 0.5}}},
		{"zero ratio", Preset{Name: "Zero", Kind: KindRatio, Ratios: model.RatioPair{EaseIn: 0, EaseOut: 0.5}}},
		{"big ratio", Preset{Name: "Big", Kind: KindRatio, Ratios: model.RatioPair{EaseIn: 0.5, EaseOut: 1.5}}},
		{"empty profile", Preset{Name: "Empty", Kind: KindProfile}},
		{"bad kind", Preset{Name: "Odd", Kind: "spline"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, c.Add(tt.p))
		})
	}
	assert.Equal(t, 30, c.Len())
}

const customYAML = `
presets:
  - name: Gentle
    kind: ratio
    ratios: {ease_in: 0.2, ease_out: 0.25}
  - name: Hop
    kind: profile
    group: Advanced
    profile:
      - [0, 0, 0, 50, 0, 50]
      - [0.5, 1.2, 0, 40, 0, 40, true, 0, 1]
      - {x: 1, y: 1, slope_left: 0, ease_left: 50, slope_right: 0, ease_right: 50}
`

func TestLoad(t *testing.T) {
	c := Builtin()

	n, err := c.Load(strings.NewReader(customYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 32, c.Len())

	g, ok := c.Lookup("gentle")
	require.True(t, ok)
	assert.Equal(t, GroupCustom, g.Group)
	assert.Equal(t, model.RatioPair{EaseIn: 0.2, EaseOut: 0.25}, g.Ratios)

	h, ok := c.Lookup("hop")
	require.True(t, ok)
	assert.Equal(t, GroupAdvanced, h.Group)
	require.Len(t, h.Profile, 3)
	assert.Equal(t, model.P(0.5, 1.2, 0, 40, 0, 40, true, false, true), h.Profile[1])
	assert.Equal(t, model.P(1, 1, 0, 50, 0, 50), h.Profile[2])
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"short row":  "presets:\n  - {name: X, kind: profile, profile: [[0, 0, 0]]}\n",
		"bad ratio":  "presets:\n  - {name: X, kind: ratio, ratios: {ease_in: 2, ease_out: 0.5}}\n",
		"duplicate":  "presets:\n  - {name: Cubic, kind: ratio, ratios: {ease_in: 0.5, ease_out: 0.5}}\n",
		"not a list": "presets: 3\n",
		"bad number": "presets:\n  - {name: X, kind: profile, profile: [[a, 0, 0, 1, 0, 1]]}\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Builtin().Load(strings.NewReader(src))
			assert.Error(t, err)
		})
	}

	n, err := Builtin().Load(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Zero(t, n)
}
