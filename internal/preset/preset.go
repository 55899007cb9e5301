// Package preset holds the catalog of named easing presets. A preset is
// either a ratio pair driving the pairwise easer or a shape profile driving
// the profile synthesizer.
package preset

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/easeit/internal/model"
)

// Kind tags which variant of Preset is populated.
type Kind string

const (
	KindRatio   Kind = "ratio"
	KindProfile Kind = "profile"
)

// Preset is a named easing preset. Exactly one of Ratios or Profile is
// meaningful, selected by Kind.
type Preset struct {
	Name    string          `json:"name" yaml:"name"`
	Group   string          `json:"group" yaml:"group,omitempty"`
	Kind    Kind            `json:"kind" yaml:"kind"`
	Ratios  model.RatioPair `json:"ratios,omitempty" yaml:"ratios,omitempty"`
	Profile model.Profile   `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// Validate checks the populated variant.
func (p Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset name is required")
	}
	switch p.Kind {
	case KindRatio:
		if err := p.Ratios.Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	case KindProfile:
		if len(p.Profile) == 0 {
			return fmt.Errorf("preset %q: profile has no points", p.Name)
		}
	default:
		return fmt.Errorf("preset %q: invalid kind %q (valid: ratio, profile)", p.Name, p.Kind)
	}
	return nil
}

// Slug returns the lookup key for a preset name: lower case, words joined
// by dashes, "+" dropped.
func Slug(name string) string {
	name = strings.ToLower(strings.ReplaceAll(name, "+", " "))
	return strings.Join(strings.Fields(name), "-")
}

// Catalog is an ordered set of presets with unique names.
type Catalog struct {
	presets []Preset
	bySlug  map[string]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{bySlug: make(map[string]int)}
}

// Builtin returns a catalog of the built-in presets.
func Builtin() *Catalog {
	c := NewCatalog()
	for _, p := range builtins {
		if err := c.Add(p); err != nil {
			panic(err)
		}
	}
	return c
}

// Add validates p and appends it. Names must be unique by slug.
func (c *Catalog) Add(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	slug := Slug(p.Name)
	if _, ok := c.bySlug[slug]; ok {
		return fmt.Errorf("duplicate preset %q", p.Name)
	}
	c.bySlug[slug] = len(c.presets)
	c.presets = append(c.presets, p)
	return nil
}

// Lookup finds a preset by name or slug, case-insensitively.
func (c *Catalog) Lookup(name string) (Preset, bool) {
	i, ok := c.bySlug[Slug(name)]
	if !ok {
		return Preset{}, false
	}
	return c.presets[i], true
}

// List returns presets in catalog order, optionally limited to one group.
func (c *Catalog) List(group string) []Preset {
	var out []Preset
	for _, p := range c.presets {
		if group == "" || strings.EqualFold(p.Group, group) {
			out = append(out, p)
		}
	}
	return out
}

// Names returns all preset names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.presets))
	for _, p := range c.presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of presets.
func (c *Catalog) Len() int {
	return len(c.presets)
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// Load reads custom presets in YAML from r and adds them. Presets without a
// group are placed in GroupCustom.
func (c *Catalog) Load(r io.Reader) (int, error) {
	var f presetFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("parse presets: %w", err)
	}
	for i, p := range f.Presets {
		if p.Group == "" {
			p.Group = GroupCustom
		}
		if err := c.Add(p); err != nil {
			return i, err
		}
	}
	return len(f.Presets), nil
}

// LoadFile reads custom presets from a YAML file.
func (c *Catalog) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open presets: %w", err)
	}
	defer f.Close()
	return c.Load(f)
}
