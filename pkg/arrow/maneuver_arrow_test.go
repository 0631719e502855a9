package arrow

import (
	"image"
	"testing"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/icon"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/style"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProgress struct {
	current  []orb.Point
	upcoming []orb.Point
}

func (p stubProgress) CurrentStepPoints() []orb.Point {
	return p.current
}

func (p stubProgress) UpcomingStepPoints() []orb.Point {
	return p.upcoming
}

var (
	// heading east for about 111 m, then north for about 111 m
	currentStep  = []orb.Point{{110.000, -7.000}, {110.001, -7.000}}
	upcomingStep = []orb.Point{{110.001, -7.000}, {110.001, -6.999}}
)

func testIcons() icon.StaticProvider {
	return icon.StaticProvider{
		Head:       image.NewRGBA(image.Rect(0, 0, 8, 8)),
		HeadCasing: image.NewRGBA(image.Rect(0, 0, 8, 8)),
	}
}

func newTestArrow(t *testing.T, st *style.MemoryStyle) *ManeuverArrow {
	t.Helper()
	ma, err := NewManeuverArrow(st, testIcons(), DefaultOptions(), zap.NewNop())
	require.NoError(t, err)
	return ma
}

func assertVisibility(t *testing.T, st *style.MemoryStyle, ids []string, want style.Visibility) {
	t.Helper()
	for _, id := range ids {
		got, err := st.LayerVisibility(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, id)
	}
}

func TestNewManeuverArrow(t *testing.T) {
	st := style.NewMemoryStyle()
	ma := newTestArrow(t, st)

	assert.Equal(t, HIDDEN, ma.GetState())
	assert.Equal(t, []string{
		pkg.ARROW_SHAFT_CASING_LINE_LAYER_ID,
		pkg.ARROW_HEAD_CASING_LAYER_ID,
		pkg.ARROW_SHAFT_LINE_LAYER_ID,
		pkg.ARROW_HEAD_LAYER_ID,
	}, st.LayerIDs())
	assert.Equal(t, []string{
		pkg.ARROW_SHAFT_CASING_LINE_LAYER_ID,
		pkg.ARROW_SHAFT_LINE_LAYER_ID,
		pkg.ARROW_HEAD_CASING_LAYER_ID,
		pkg.ARROW_HEAD_LAYER_ID,
	}, ma.LayerIDs())
	assertVisibility(t, st, ma.LayerIDs(), style.NONE)

	for _, id := range []string{pkg.ARROW_SHAFT_SOURCE_ID, pkg.ARROW_HEAD_SOURCE_ID} {
		opts, ok := st.SourceOptions(id)
		require.True(t, ok, id)
		assert.Equal(t, pkg.ARROW_SOURCE_MAX_ZOOM, opts.MaxZoom)
	}
	assert.Equal(t, []string{pkg.ARROW_HEAD_ICON, pkg.ARROW_HEAD_ICON_CASING}, st.ImageNames())
}

func TestNewManeuverArrow_LayerProperties(t *testing.T) {
	st := style.NewMemoryStyle()
	newTestArrow(t, st)

	shaft, ok := st.Layer(pkg.ARROW_SHAFT_LINE_LAYER_ID)
	require.True(t, ok)
	require.NotNil(t, shaft.Line)
	assert.Equal(t, pkg.DEFAULT_ARROW_COLOR, shaft.Line.Color)
	assert.InDelta(t, 2.6, shaft.Line.Width.Evaluate(10), 1e-9)
	assert.InDelta(t, 13, shaft.Line.Width.Evaluate(22), 1e-9)
	assert.Equal(t, 0.0, shaft.Line.Opacity.Evaluate(13.9))
	assert.Equal(t, 1.0, shaft.Line.Opacity.Evaluate(14))

	casing, ok := st.Layer(pkg.ARROW_SHAFT_CASING_LINE_LAYER_ID)
	require.True(t, ok)
	assert.Equal(t, pkg.DEFAULT_ARROW_BORDER_COLOR, casing.Line.Color)
	assert.InDelta(t, 17, casing.Line.Width.Evaluate(22), 1e-9)

	head, ok := st.Layer(pkg.ARROW_HEAD_LAYER_ID)
	require.True(t, ok)
	require.NotNil(t, head.Symbol)
	assert.Equal(t, pkg.ARROW_HEAD_ICON, head.Symbol.IconImage)
	assert.Equal(t, [2]float64{0, -7}, head.Symbol.IconOffset)
	assert.Equal(t, style.ICON_ROTATION_ALIGNMENT_MAP, head.Symbol.IconRotationAlignment)
	assert.Equal(t, pkg.ARROW_BEARING, head.Symbol.IconRotateProperty)
	assert.True(t, head.Symbol.IconAllowOverlap)
	assert.True(t, head.Symbol.IconIgnorePlacement)
	assert.InDelta(t, 0.2, head.Symbol.IconSize.Evaluate(10), 1e-9)
	assert.InDelta(t, 0.8, head.Symbol.IconSize.Evaluate(22), 1e-9)
}

func TestNewManeuverArrow_BelowAnchorLayer(t *testing.T) {
	st := style.NewMemoryStyle()
	require.NoError(t, st.AddSource("annotations", nil, style.SourceOptions{}))
	require.NoError(t, st.AddLayer(style.NewSymbolLayer(pkg.DEFAULT_ANCHOR_LAYER, "annotations", style.SymbolProperties{})))

	newTestArrow(t, st)

	ids := st.LayerIDs()
	require.Len(t, ids, 5)
	assert.Equal(t, pkg.DEFAULT_ANCHOR_LAYER, ids[4])
	assert.Equal(t, pkg.ARROW_SHAFT_CASING_LINE_LAYER_ID, ids[0])
}

func TestNewManeuverArrow_MissingIconsAreSkipped(t *testing.T) {
	st := style.NewMemoryStyle()
	ma, err := NewManeuverArrow(st, icon.StaticProvider{}, DefaultOptions(), zap.NewNop())
	require.NoError(t, err)

	assert.Empty(t, st.ImageNames())
	assert.Len(t, st.LayerIDs(), 4)
	assert.Equal(t, HIDDEN, ma.GetState())
}

func TestAddUpcomingManeuverArrow_HiddenWithoutUpcomingStep(t *testing.T) {
	tests := []struct {
		name     string
		progress stubProgress
	}{
		{"no upcoming step", stubProgress{current: currentStep}},
		{"single upcoming point", stubProgress{current: currentStep, upcoming: upcomingStep[:1]}},
		{"single current point", stubProgress{current: currentStep[:1], upcoming: upcomingStep}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := style.NewMemoryStyle()
			ma := newTestArrow(t, st)
			require.NoError(t, ma.AddUpcomingManeuverArrow(stubProgress{current: currentStep, upcoming: upcomingStep}))
			st.ResetCalls()

			require.NoError(t, ma.AddUpcomingManeuverArrow(tt.progress))

			assert.Equal(t, HIDDEN, ma.GetState())
			assertVisibility(t, st, ma.LayerIDs(), style.NONE)
			assert.Equal(t, 0, st.CallCount(style.OP_SET_SOURCE_GEOMETRY, ""))
		})
	}
}

func TestAddUpcomingManeuverArrow_Visible(t *testing.T) {
	st := style.NewMemoryStyle()
	ma := newTestArrow(t, st)

	require.NoError(t, ma.AddUpcomingManeuverArrow(stubProgress{current: currentStep, upcoming: upcomingStep}))

	assert.Equal(t, VISIBLE, ma.GetState())
	assertVisibility(t, st, ma.LayerIDs(), style.VISIBLE)

	shaftSource, ok := st.Source(pkg.ARROW_SHAFT_SOURCE_ID)
	require.True(t, ok)
	require.Len(t, shaftSource.Features, 1)
	shaft, ok := shaftSource.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)

	expected, err := Points(currentStep, upcomingStep)
	require.NoError(t, err)
	assert.Equal(t, orb.LineString(expected), shaft)
	require.Len(t, shaft, 4)
	assert.Equal(t, currentStep[1], shaft[1])
	assert.Equal(t, upcomingStep[0], shaft[2])

	headSource, ok := st.Source(pkg.ARROW_HEAD_SOURCE_ID)
	require.True(t, ok)
	require.Len(t, headSource.Features, 1)
	head, ok := headSource.Features[0].Geometry.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, shaft[len(shaft)-1], head)

	bearing, ok := headSource.Features[0].Properties[pkg.ARROW_BEARING].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, bearing, 0.0)
	assert.Less(t, bearing, 360.0)
	// due north, allowing for rounding on either side of 0
	assert.True(t, bearing < 0.01 || bearing > 359.99, "bearing %v", bearing)
}

func TestUpdateVisibility_WritesOnlyChangedLayers(t *testing.T) {
	st := style.NewMemoryStyle()
	ma := newTestArrow(t, st)
	st.ResetCalls()

	require.NoError(t, ma.UpdateVisibility(false))
	assert.Equal(t, 0, st.CallCount(style.OP_SET_LAYER_VISIBILITY, ""))

	require.NoError(t, ma.UpdateVisibility(true))
	assert.Equal(t, 4, st.CallCount(style.OP_SET_LAYER_VISIBILITY, ""))

	require.NoError(t, ma.UpdateVisibility(true))
	assert.Equal(t, 4, st.CallCount(style.OP_SET_LAYER_VISIBILITY, ""))

	require.NoError(t, st.SetLayerVisibility(pkg.ARROW_HEAD_LAYER_ID, style.NONE))
	st.ResetCalls()
	require.NoError(t, ma.UpdateVisibility(true))
	assert.Equal(t, 1, st.CallCount(style.OP_SET_LAYER_VISIBILITY, ""))
	assert.Equal(t, 1, st.CallCount(style.OP_SET_LAYER_VISIBILITY, pkg.ARROW_HEAD_LAYER_ID))
}

func TestRemove(t *testing.T) {
	st := style.NewMemoryStyle()
	ma := newTestArrow(t, st)
	require.NoError(t, ma.AddUpcomingManeuverArrow(stubProgress{current: currentStep, upcoming: upcomingStep}))

	require.NoError(t, ma.Remove())

	assert.Empty(t, st.LayerIDs())
	assert.Empty(t, st.ImageNames())
	_, ok := st.Source(pkg.ARROW_SHAFT_SOURCE_ID)
	assert.False(t, ok)
	assert.Equal(t, UNINITIALIZED, ma.GetState())

	again, err := NewManeuverArrow(st, testIcons(), DefaultOptions(), zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, again.LayerIDs(), 4)
}

func TestAddUpcomingManeuverArrow_AfterRemove(t *testing.T) {
	st := style.NewMemoryStyle()
	ma := newTestArrow(t, st)
	require.NoError(t, ma.AddUpcomingManeuverArrow(stubProgress{current: currentStep, upcoming: upcomingStep}))
	require.NoError(t, ma.Remove())
	st.ResetCalls()

	err := ma.AddUpcomingManeuverArrow(stubProgress{current: currentStep})
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Equal(t, UNINITIALIZED, ma.GetState())

	err = ma.AddUpcomingManeuverArrow(stubProgress{current: currentStep, upcoming: upcomingStep})
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Equal(t, UNINITIALIZED, ma.GetState())

	assert.ErrorIs(t, ma.UpdateVisibility(true), ErrNotInitialized)
	assert.Equal(t, UNINITIALIZED, ma.GetState())

	require.NoError(t, ma.Remove())
	assert.Empty(t, st.Calls())
}
