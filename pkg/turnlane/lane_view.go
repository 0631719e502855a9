package turnlane

import (
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/datastructure"
)

// LaneView is the draw data of one lane in the turn lane banner.
type LaneView struct {
	Indications string
	Selection   GlyphSelection
	Active      bool
}

// BuildLaneViews selects a glyph for every lane of a step. Lanes are kept in
// driving order so the banner can be laid out left to right.
func BuildLaneViews(lanes []datastructure.Lane, maneuverModifier string) []LaneView {
	views := make([]LaneView, 0, len(lanes))
	for _, lane := range lanes {
		indications := lane.Indication()
		views = append(views, LaneView{
			Indications: indications,
			Selection:   SelectGlyph(indications, maneuverModifier),
			Active:      lane.Valid,
		})
	}
	return views
}

// BuildStepLaneViews returns the lane views shown while driving step, nil when the step has no lane data.
func BuildStepLaneViews(step *datastructure.LegStep, upcoming *datastructure.LegStep) []LaneView {
	if step == nil {
		return nil
	}
	lanes := step.Lanes()
	if len(lanes) == 0 {
		return nil
	}
	modifier := step.Maneuver.Modifier
	if upcoming != nil {
		modifier = upcoming.Maneuver.Modifier
	}
	return BuildLaneViews(lanes, modifier)
}
