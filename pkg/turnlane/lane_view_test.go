package turnlane

import (
	"testing"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLaneViews(t *testing.T) {
	lanes := []datastructure.Lane{
		{Indications: []string{"left"}, Valid: false},
		{Indications: []string{"straight", "left"}, Valid: true},
		{Indications: []string{"straight"}, Valid: true},
		{Indications: []string{"merge"}, Valid: false},
	}

	views := BuildLaneViews(lanes, "straight")
	require.Len(t, views, 4)

	assert.Equal(t, "left", views[0].Indications)
	assert.Equal(t, NewGlyphSelection(DRAW_LANE_RIGHT, true), views[0].Selection)
	assert.False(t, views[0].Active)

	assert.Equal(t, "straight;left", views[1].Indications)
	assert.Equal(t, NewGlyphSelection(DRAW_LANE_STRAIGHT_ONLY, true), views[1].Selection)
	assert.True(t, views[1].Active)

	assert.Equal(t, NewGlyphSelection(DRAW_LANE_STRAIGHT, false), views[2].Selection)
	assert.True(t, views[3].Selection.IsNone())
}

func TestBuildStepLaneViews(t *testing.T) {
	step := &datastructure.LegStep{
		Maneuver: datastructure.StepManeuver{Type: "depart"},
		Intersections: []datastructure.Intersection{
			{Lanes: []datastructure.Lane{{Indications: []string{"left"}}}},
			{Lanes: []datastructure.Lane{
				{Indications: []string{"straight"}, Valid: false},
				{Indications: []string{"straight", "right"}, Valid: true},
			}},
			{},
		},
	}
	upcoming := &datastructure.LegStep{Maneuver: datastructure.StepManeuver{Type: "turn", Modifier: "right"}}

	views := BuildStepLaneViews(step, upcoming)
	require.Len(t, views, 2)
	assert.Equal(t, NewGlyphSelection(DRAW_LANE_RIGHT_ONLY, false), views[1].Selection)

	assert.Nil(t, BuildStepLaneViews(&datastructure.LegStep{}, upcoming))
	assert.Nil(t, BuildStepLaneViews(nil, upcoming))
}
