package osmparser

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseTurnLanes(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"", nil},
		{"left|through|through;right", []string{"left", "straight", "straight;right"}},
		{"slight_left|through|slight_right", []string{"slight left", "straight", "slight right"}},
		{"reverse;left||merge_to_left", []string{"uturn;left", "none", "merge"}},
		{"sharp_left|none|sharp_right", []string{"sharp left", "none", "sharp right"}},
		{"through;none|through;through", []string{"straight", "straight"}},
		{"bogus", []string{"none"}},
		{" left | through ", []string{"left", "straight"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTurnLanes(tt.value), tt.value)
	}
}

func TestLanesFromTags(t *testing.T) {
	twoWay := osm.Tags{
		{Key: "highway", Value: "primary"},
		{Key: "turn:lanes:forward", Value: "left|through"},
		{Key: "turn:lanes:backward", Value: "through;right"},
	}
	assert.Equal(t, []string{"left", "straight"}, LanesFromTags(twoWay, true))
	assert.Equal(t, []string{"straight;right"}, LanesFromTags(twoWay, false))

	oneWay := osm.Tags{
		{Key: "highway", Value: "primary"},
		{Key: "oneway", Value: "yes"},
		{Key: "turn:lanes", Value: "left|through|right"},
	}
	assert.Equal(t, []string{"left", "straight", "right"}, LanesFromTags(oneWay, true))
	assert.Nil(t, LanesFromTags(oneWay, false))

	reversed := osm.Tags{
		{Key: "highway", Value: "secondary"},
		{Key: "oneway", Value: "-1"},
		{Key: "turn:lanes", Value: "reverse|through"},
	}
	assert.Nil(t, LanesFromTags(reversed, true))
	assert.Equal(t, []string{"uturn", "straight"}, LanesFromTags(reversed, false))
}

func TestAcceptOsmWay(t *testing.T) {
	assert.True(t, acceptOsmWay(&osm.Way{Tags: osm.Tags{{Key: "highway", Value: "trunk_link"}}}))
	assert.True(t, acceptOsmWay(&osm.Way{Tags: osm.Tags{{Key: "junction", Value: "roundabout"}}}))
	assert.False(t, acceptOsmWay(&osm.Way{Tags: osm.Tags{{Key: "highway", Value: "footway"}}}))
	assert.False(t, acceptOsmWay(&osm.Way{Tags: osm.Tags{{Key: "building", Value: "yes"}}}))
}

func TestTurnLaneParser_InvalidStream(t *testing.T) {
	p := NewTurnLaneParser(1, zap.NewNop())
	_, err := p.Parse(context.Background(), bytes.NewReader([]byte("not a pbf file")))
	require.Error(t, err)
}

func TestTurnLaneParser_Parse(t *testing.T) {
	f, err := os.Open("testdata/turn_lanes.osm.pbf")
	require.NoError(t, err)
	defer f.Close()

	p := NewTurnLaneParser(1, zap.NewNop())
	wayLanes, err := p.Parse(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, wayLanes, 3)

	oneWay, ok := wayLanes[osm.WayID(101)]
	require.True(t, ok)
	assert.Equal(t, "Jalan Solo", oneWay.Name)
	assert.Equal(t, "primary", oneWay.Highway)
	assert.Equal(t, []string{"left", "straight", "straight;right"}, oneWay.Forward)
	assert.Nil(t, oneWay.Backward)

	// oneway=-1 puts turn:lanes against the way direction
	reversed, ok := wayLanes[osm.WayID(102)]
	require.True(t, ok)
	assert.Equal(t, "secondary", reversed.Highway)
	assert.Nil(t, reversed.Forward)
	assert.Equal(t, []string{"uturn", "straight"}, reversed.Backward)

	twoWay, ok := wayLanes[osm.WayID(103)]
	require.True(t, ok)
	assert.Equal(t, []string{"left", "straight"}, twoWay.Forward)
	assert.Equal(t, []string{"straight;right"}, twoWay.Backward)

	assert.NotContains(t, wayLanes, osm.WayID(104))
	assert.NotContains(t, wayLanes, osm.WayID(105))
}

func TestWayLanesIsEmpty(t *testing.T) {
	assert.True(t, WayLanes{Name: "Jalan Solo"}.IsEmpty())
	assert.False(t, WayLanes{Backward: []string{"left"}}.IsEmpty())
}
