package turnlane

import (
	"strings"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg"
)

// DrawMethod identifies the lane arrow glyph. Left-hand glyphs are drawn by mirroring the right-hand ones.
type DrawMethod uint8

const (
	DRAW_LANE_NONE DrawMethod = iota
	DRAW_LANE_SLIGHT_RIGHT
	DRAW_LANE_RIGHT
	DRAW_LANE_STRAIGHT
	DRAW_LANE_UTURN
	DRAW_LANE_RIGHT_ONLY
	DRAW_LANE_STRAIGHT_ONLY
)

var DrawMethods = []DrawMethod{
	DRAW_LANE_SLIGHT_RIGHT,
	DRAW_LANE_RIGHT,
	DRAW_LANE_STRAIGHT,
	DRAW_LANE_UTURN,
	DRAW_LANE_RIGHT_ONLY,
	DRAW_LANE_STRAIGHT_ONLY,
}

func (d DrawMethod) String() string {
	switch d {
	case DRAW_LANE_SLIGHT_RIGHT:
		return "draw_lane_slight_right"
	case DRAW_LANE_RIGHT:
		return "draw_lane_right"
	case DRAW_LANE_STRAIGHT:
		return "draw_lane_straight"
	case DRAW_LANE_UTURN:
		return "draw_lane_uturn"
	case DRAW_LANE_RIGHT_ONLY:
		return "draw_lane_right_only"
	case DRAW_LANE_STRAIGHT_ONLY:
		return "draw_lane_straight_only"
	default:
		return "draw_lane_none"
	}
}

// GlyphSelection is either a glyph with its mirror flag or the none selection.
type GlyphSelection struct {
	method DrawMethod
	flip   bool
}

var NoGlyph = GlyphSelection{}

func NewGlyphSelection(method DrawMethod, flip bool) GlyphSelection {
	if method == DRAW_LANE_NONE {
		return NoGlyph
	}
	return GlyphSelection{method: method, flip: flip}
}

// DrawMethod returns false for the none selection.
func (g GlyphSelection) DrawMethod() (DrawMethod, bool) {
	return g.method, g.method != DRAW_LANE_NONE
}

func (g GlyphSelection) ShouldBeFlipped() bool {
	return g.flip
}

func (g GlyphSelection) IsNone() bool {
	return g.method == DRAW_LANE_NONE
}

func (g GlyphSelection) String() string {
	if g.flip {
		return g.method.String() + " (flipped)"
	}
	return g.method.String()
}

// SelectGlyph picks the lane glyph for a lane indication token and the step maneuver modifier.
// Rules are evaluated in order, the first match wins. Unknown indications give NoGlyph.
func SelectGlyph(laneIndications, maneuverModifier string) GlyphSelection {
	switch laneIndications {
	case pkg.TURN_LANE_INDICATION_UTURN:
		return NewGlyphSelection(DRAW_LANE_UTURN, true)
	case pkg.TURN_LANE_INDICATION_STRAIGHT:
		return NewGlyphSelection(DRAW_LANE_STRAIGHT, false)
	case pkg.TURN_LANE_INDICATION_RIGHT:
		return NewGlyphSelection(DRAW_LANE_RIGHT, false)
	case pkg.TURN_LANE_INDICATION_LEFT:
		return NewGlyphSelection(DRAW_LANE_RIGHT, true)
	case pkg.TURN_LANE_INDICATION_SLIGHT_RIGHT:
		return NewGlyphSelection(DRAW_LANE_SLIGHT_RIGHT, false)
	case pkg.TURN_LANE_INDICATION_SLIGHT_LEFT:
		return NewGlyphSelection(DRAW_LANE_SLIGHT_RIGHT, true)
	}

	if isStraightPlusIndication(laneIndications, pkg.TURN_LANE_INDICATION_RIGHT) {
		return NewGlyphSelection(drawMethodWithModifier(maneuverModifier), false)
	}
	if isStraightPlusIndication(laneIndications, pkg.TURN_LANE_INDICATION_LEFT) {
		return NewGlyphSelection(drawMethodWithModifier(maneuverModifier), true)
	}
	return NoGlyph
}

// drawMethodWithModifier falls back to DRAW_LANE_RIGHT_ONLY for modifiers that are neither right nor straight.
func drawMethodWithModifier(maneuverModifier string) DrawMethod {
	if strings.Contains(maneuverModifier, pkg.STEP_MANEUVER_MODIFIER_RIGHT) {
		return DRAW_LANE_RIGHT_ONLY
	} else if strings.Contains(maneuverModifier, pkg.STEP_MANEUVER_MODIFIER_STRAIGHT) {
		return DRAW_LANE_STRAIGHT_ONLY
	}
	return DRAW_LANE_RIGHT_ONLY
}

func isStraightPlusIndication(laneIndications, turnLaneIndication string) bool {
	return strings.Contains(laneIndications, pkg.TURN_LANE_INDICATION_STRAIGHT) &&
		strings.Contains(laneIndications, turnLaneIndication)
}
