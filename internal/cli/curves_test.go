package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/easeit/internal/command"
	"github.com/rcliao/easeit/internal/exchange"
	"github.com/rcliao/easeit/internal/model"
	"github.com/rcliao/easeit/internal/preset"
	"github.com/rcliao/easeit/internal/store"
)

func seededStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "curves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	point := func(frame, value float64) model.KeyframePoint {
		co := model.V(frame, value)
		return model.KeyframePoint{
			Co: co, HandleLeft: co, HandleRight: co,
			HandleLeftType: model.HandleAutoClamped, HandleRightType: model.HandleAutoClamped,
			Interpolation: model.InterpBezier,
		}
	}
	_, err = s.Commit(context.Background(), store.CommitParams{
		Doc:    "shot",
		Action: "import",
		Revisions: []store.Revision{
			{Path: "location[0]", Keyframes: []model.KeyframePoint{point(0, 0), point(10, 5), point(20, 10)}},
			{Path: "location[1]", Keyframes: []model.KeyframePoint{point(0, 0), point(20, 4)}},
			{Path: "rotation_euler[2]", Keyframes: []model.KeyframePoint{point(0, 0), point(20, 1)}},
		},
	})
	require.NoError(t, err)
	return s
}

func TestSelectKeyframes(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	sel := allFrames()
	sel.From, sel.To = 5, 20
	res, err := selectKeyframes(ctx, s, "shot", "location", sel)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Selected)
	assert.Equal(t, []string{"location[0]", "location[1]"}, res.Committed)

	recs, err := s.Get(ctx, store.GetParams{Doc: "shot", Path: "location[0]"})
	require.NoError(t, err)
	assert.Equal(t, 2, recs[0].Version)
	assert.False(t, recs[0].Keyframes[0].Selected)
	assert.True(t, recs[0].Keyframes[1].Selected)

	// Selecting the same thing again changes nothing.
	res, err = selectKeyframes(ctx, s, "shot", "location", sel)
	require.NoError(t, err)
	assert.Empty(t, res.Committed)

	_, err = selectKeyframes(ctx, s, "shot", "scale", sel)
	assert.Error(t, err)
}

func TestSelectionModes(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	sel := allFrames()
	sel.From, sel.To = 0, 0
	_, err := selectKeyframes(ctx, s, "shot", "location[0]", sel)
	require.NoError(t, err)

	sel.From, sel.To, sel.Add = 20, 20, true
	res, err := selectKeyframes(ctx, s, "shot", "location[0]", sel)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Selected)

	res, err = selectKeyframes(ctx, s, "shot", "location[0]", selection{None: true})
	require.NoError(t, err)
	assert.Zero(t, res.Selected)
}

func TestApplyPresetCommitsOneAction(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	table := command.NewTable(preset.Builtin())

	_, err := selectKeyframes(ctx, s, "shot", "location", allFrames())
	require.NoError(t, err)

	res, err := applyPreset(ctx, s, table, "shot", "", "Cubic")
	require.NoError(t, err)
	assert.Equal(t, command.LevelInfo, res.Level)
	assert.Equal(t, "Applied Cubic easing to 2 curve(s), 5 keyframes processed", res.Message)
	assert.Equal(t, []string{"location[0]", "location[1]"}, res.Committed)

	recs, err := s.Get(ctx, store.GetParams{Doc: "shot", Path: "location[1]"})
	require.NoError(t, err)
	pts := recs[0].Keyframes
	assert.Equal(t, "apply:Cubic", recs[0].Action)
	assert.InDelta(t, 13, pts[0].HandleRight.X, 1e-9)
	assert.InDelta(t, 7, pts[1].HandleLeft.X, 1e-9)
	assert.Equal(t, model.HandleAligned, pts[0].HandleRightType)

	undone, err := s.Undo(ctx, "shot")
	require.NoError(t, err)
	assert.Equal(t, "apply:Cubic", undone.Action)
	assert.Equal(t, []string{"location[0]", "location[1]"}, undone.Paths)
}

func TestApplyPresetWarningsAndErrors(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	table := command.NewTable(preset.Builtin())

	res, err := applyPreset(ctx, s, table, "shot", "", "Default")
	require.NoError(t, err)
	assert.Equal(t, command.LevelWarning, res.Level)
	assert.Empty(t, res.Committed)

	res, err = applyPreset(ctx, s, table, "empty", "", "Default")
	assert.Error(t, err)
	assert.Equal(t, "No F-Curves found", res.Message)

	_, err = applyPreset(ctx, s, table, "shot", "", "Wobble")
	assert.ErrorIs(t, err, command.ErrUnknownPreset)
}

func TestApplyProfilePreset(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	table := command.NewTable(preset.Builtin())

	_, err := selectKeyframes(ctx, s, "shot", "rotation", allFrames())
	require.NoError(t, err)

	res, err := applyPreset(ctx, s, table, "shot", "rotation", "Springy")
	require.NoError(t, err)
	assert.Equal(t, "Applied Springy easing to 1 curve(s), 5 keyframes created", res.Message)

	recs, err := s.Get(ctx, store.GetParams{Doc: "shot", Path: "rotation_euler[2]"})
	require.NoError(t, err)
	require.Len(t, recs[0].Keyframes, 5)
	assert.True(t, recs[0].Keyframes[0].Selected)
	assert.False(t, recs[0].Keyframes[2].Selected)
	assert.True(t, recs[0].Keyframes[4].Selected)
}

func TestApplySkippedCurveIsNotCommitted(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	table := command.NewTable(preset.Builtin())

	narrow := []model.KeyframePoint{
		{Co: model.V(0, 0), HandleLeftType: model.HandleAutoClamped, HandleRightType: model.HandleAutoClamped,
			Interpolation: model.InterpBezier, Selected: true},
		{Co: model.V(0.0005, 1), HandleLeftType: model.HandleAutoClamped, HandleRightType: model.HandleAutoClamped,
			Interpolation: model.InterpBezier, Selected: true},
	}
	_, err := s.Put(ctx, store.PutParams{Doc: "shot", Path: "scale[0]", Keyframes: narrow})
	require.NoError(t, err)

	res, err := applyPreset(ctx, s, table, "shot", "scale", "Explosive")
	require.NoError(t, err)
	assert.Equal(t, command.LevelWarning, res.Level)
	assert.Empty(t, res.Committed)

	recs, err := s.Get(ctx, store.GetParams{Doc: "shot", Path: "scale[0]", History: true})
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	undone, err := s.Undo(ctx, "shot")
	require.NoError(t, err)
	assert.Equal(t, "put", undone.Action)
}

func TestApplyAfterImportKeepsBoundaryHandles(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "curves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	doc, err := exchange.Decode(strings.NewReader(`
doc: shot
curves:
  - path: location[0]
    keyframes:
      - co: {x: 0, y: 0}
      - co: {x: 10, y: 5}
        selected: true
      - co: {x: 20, y: 10}
        selected: true
      - co: {x: 30, y: 0}
`), exchange.FormatYAML)
	require.NoError(t, err)
	_, err = s.Import(ctx, doc, "")
	require.NoError(t, err)

	table := command.NewTable(preset.Builtin())
	res, err := applyPreset(ctx, s, table, "shot", "", "Default")
	require.NoError(t, err)
	require.Equal(t, command.LevelInfo, res.Level)

	recs, err := s.Get(ctx, store.GetParams{Doc: "shot", Path: "location[0]"})
	require.NoError(t, err)
	pts := recs[0].Keyframes
	require.Len(t, pts, 4)

	first, last := pts[1], pts[2]
	assert.Less(t, first.HandleLeft.X, first.Co.X)
	assert.Greater(t, last.HandleRight.X, last.Co.X)
	assert.InDelta(t, 10-10.0/3, first.HandleLeft.X, 1e-9)
	assert.InDelta(t, 20+10.0/3, last.HandleRight.X, 1e-9)
}
