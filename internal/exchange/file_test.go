package exchange

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/easeit/internal/model"
)

const shotYAML = `
version: 1
doc: shot010
curves:
  - path: location[0]
    keyframes:
      - co: {x: 1, y: 0}
        selected: true
      - id: k2
        co: {x: 24, y: 10}
        handle_left: {x: 20, y: 10}
        handle_right: {x: 28, y: 10}
        handle_left_type: free
        handle_right_type: ALIGNED
        interpolation: linear
  - path: rotation_euler[2]
    keyframes: []
`

func TestDecodeDefaults(t *testing.T) {
	doc, err := Decode(strings.NewReader(shotYAML), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "shot010", doc.Doc)
	require.Len(t, doc.Curves, 2)

	kfs := doc.Curves[0].Keyframes
	require.Len(t, kfs, 2)
	assert.Equal(t, model.KeyframePoint{
		Co:              model.V(1, 0),
		HandleLeft:      model.V(1, 0),
		HandleRight:     model.V(1, 0),
		HandleLeftType:  model.HandleAutoClamped,
		HandleRightType: model.HandleAutoClamped,
		Interpolation:   model.InterpBezier,
		Selected:        true,
	}, kfs[0])

	assert.Equal(t, model.PointID("k2"), kfs[1].ID)
	assert.Equal(t, model.HandleFree, kfs[1].HandleLeftType)
	assert.Equal(t, model.HandleAligned, kfs[1].HandleRightType)
	assert.Equal(t, model.InterpLinear, kfs[1].Interpolation)
	assert.Equal(t, model.V(28, 10), kfs[1].HandleRight)
	assert.Empty(t, doc.Curves[1].Keyframes)
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"bad handle":     "curves:\n  - path: a\n    keyframes:\n      - {co: {x: 0, y: 0}, handle_left_type: SMOOTH}\n",
		"bad interp":     "curves:\n  - path: a\n    keyframes:\n      - {co: {x: 0, y: 0}, interpolation: SPLINE}\n",
		"no path":        "curves:\n  - keyframes: []\n",
		"duplicate path": "curves:\n  - path: a\n  - path: a\n",
		"future version": "version: 9\ncurves: []\n",
		"empty":          "",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src), FormatYAML)
			assert.Error(t, err)
		})
	}

	_, err := Decode(strings.NewReader("{}"), "toml")
	assert.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	in, err := Decode(strings.NewReader(shotYAML), FormatYAML)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"shot.yaml", "shot.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(in, path))

		out, err := ReadFile(path)
		require.NoError(t, err, name)
		assert.Empty(t, cmp.Diff(in, out), name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "shot.json"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("{")))
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("a/b.JSON"))
	assert.Equal(t, FormatYAML, FormatFor("a/b.yml"))
	assert.Equal(t, FormatYAML, FormatFor("a/b"))
}
