// Package exchange reads and writes curve documents as YAML or JSON files.
package exchange

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/easeit/internal/model"
)

// CurrentVersion is the document format version written by Encode.
const CurrentVersion = 1

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension. Unknown extensions are
// read as YAML, which also accepts JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Document is a set of curves belonging to one animation document.
type Document struct {
	Version int         `json:"version" yaml:"version"`
	Doc     string      `json:"doc" yaml:"doc"`
	Curves  []CurveData `json:"curves" yaml:"curves"`
}

// CurveData is one curve of a document.
type CurveData struct {
	Path      string                `json:"path" yaml:"path"`
	Keyframes []model.KeyframePoint `json:"keyframes" yaml:"keyframes"`
}

// keyframeData is the lenient on-disk keyframe. Omitted handles and types
// are filled in by normalize.
type keyframeData struct {
	ID              model.PointID `json:"id,omitempty" yaml:"id,omitempty"`
	Co              model.Vec     `json:"co" yaml:"co"`
	HandleLeft      *model.Vec    `json:"handle_left,omitempty" yaml:"handle_left,omitempty"`
	HandleRight     *model.Vec    `json:"handle_right,omitempty" yaml:"handle_right,omitempty"`
	HandleLeftType  string        `json:"handle_left_type,omitempty" yaml:"handle_left_type,omitempty"`
	HandleRightType string        `json:"handle_right_type,omitempty" yaml:"handle_right_type,omitempty"`
	Interpolation   string        `json:"interpolation,omitempty" yaml:"interpolation,omitempty"`
	Selected        bool          `json:"selected,omitempty" yaml:"selected,omitempty"`
}

type curveData struct {
	Path      string         `json:"path" yaml:"path"`
	Keyframes []keyframeData `json:"keyframes" yaml:"keyframes"`
}

type document struct {
	Version int         `json:"version" yaml:"version"`
	Doc     string      `json:"doc" yaml:"doc"`
	Curves  []curveData `json:"curves" yaml:"curves"`
}

// Decode reads a document from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	var raw document
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&raw)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&raw)
		if err == io.EOF {
			err = fmt.Errorf("empty document")
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return raw.normalize()
}

func (raw document) normalize() (*Document, error) {
	if raw.Version > CurrentVersion {
		return nil, fmt.Errorf("document version %d is newer than supported version %d", raw.Version, CurrentVersion)
	}
	doc := &Document{Version: CurrentVersion, Doc: raw.Doc}
	seen := make(map[string]bool, len(raw.Curves))
	for _, rc := range raw.Curves {
		if rc.Path == "" {
			return nil, fmt.Errorf("curve path is required")
		}
		if seen[rc.Path] {
			return nil, fmt.Errorf("duplicate curve %q", rc.Path)
		}
		seen[rc.Path] = true

		cd := CurveData{Path: rc.Path, Keyframes: make([]model.KeyframePoint, 0, len(rc.Keyframes))}
		for i, k := range rc.Keyframes {
			kp, err := k.point()
			if err != nil {
				return nil, fmt.Errorf("curve %q keyframe %d: %w", rc.Path, i, err)
			}
			cd.Keyframes = append(cd.Keyframes, kp)
		}
		doc.Curves = append(doc.Curves, cd)
	}
	return doc, nil
}

func (k keyframeData) point() (model.KeyframePoint, error) {
	kp := model.KeyframePoint{
		ID:              k.ID,
		Co:              k.Co,
		HandleLeft:      k.Co,
		HandleRight:     k.Co,
		HandleLeftType:  model.HandleAutoClamped,
		HandleRightType: model.HandleAutoClamped,
		Interpolation:   model.InterpBezier,
		Selected:        k.Selected,
	}
	if k.HandleLeft != nil {
		kp.HandleLeft = *k.HandleLeft
	}
	if k.HandleRight != nil {
		kp.HandleRight = *k.HandleRight
	}

	var err error
	if k.HandleLeftType != "" {
		if kp.HandleLeftType, err = model.ParseHandleType(k.HandleLeftType); err != nil {
			return kp, err
		}
	}
	if k.HandleRightType != "" {
		if kp.HandleRightType, err = model.ParseHandleType(k.HandleRightType); err != nil {
			return kp, err
		}
	}
	if k.Interpolation != "" {
		if kp.Interpolation, err = model.ParseInterpolation(k.Interpolation); err != nil {
			return kp, err
		}
	}
	return kp, nil
}

// Encode writes doc to w with every field spelled out.
func Encode(w io.Writer, doc *Document, format Format) error {
	out := *doc
	out.Version = CurrentVersion
	if out.Curves == nil {
		out.Curves = []CurveData{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// ReadFile reads a document, choosing the format from the extension.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// WriteFile writes doc to path, choosing the format from the extension.
func WriteFile(doc *Document, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := Encode(f, doc, FormatFor(path)); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
