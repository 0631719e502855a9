package pkg

// lane indication tokens as they appear in banner/intersection lane data
const (
	TURN_LANE_INDICATION_LEFT         = "left"
	TURN_LANE_INDICATION_SLIGHT_LEFT  = "slight left"
	TURN_LANE_INDICATION_STRAIGHT     = "straight"
	TURN_LANE_INDICATION_RIGHT        = "right"
	TURN_LANE_INDICATION_SLIGHT_RIGHT = "slight right"
	TURN_LANE_INDICATION_UTURN        = "uturn"
	TURN_LANE_INDICATION_SHARP_LEFT   = "sharp left"
	TURN_LANE_INDICATION_SHARP_RIGHT  = "sharp right"
	TURN_LANE_INDICATION_MERGE        = "merge"
	TURN_LANE_INDICATION_NONE         = "none"

	// separates the directions of a multi-direction lane, e.g. "straight;right"
	TURN_LANE_INDICATION_SEPARATOR = ";"
)

// step maneuver modifiers
const (
	STEP_MANEUVER_MODIFIER_UTURN        = "uturn"
	STEP_MANEUVER_MODIFIER_SHARP_RIGHT  = "sharp right"
	STEP_MANEUVER_MODIFIER_RIGHT        = "right"
	STEP_MANEUVER_MODIFIER_SLIGHT_RIGHT = "slight right"
	STEP_MANEUVER_MODIFIER_STRAIGHT     = "straight"
	STEP_MANEUVER_MODIFIER_SLIGHT_LEFT  = "slight left"
	STEP_MANEUVER_MODIFIER_LEFT         = "left"
	STEP_MANEUVER_MODIFIER_SHARP_LEFT   = "sharp left"
)

const (
	TWO_POINTS = 2

	// length in meters of each half of the upcoming maneuver arrow
	ARROW_SEGMENT_LENGTH = 30.0
	MAX_DEGREES          = 360.0
)

// style ids of the upcoming maneuver arrow
const (
	ARROW_BEARING                    = "guidance-arrow-bearing"
	ARROW_SHAFT_SOURCE_ID            = "guidance-arrow-shaft-source"
	ARROW_HEAD_SOURCE_ID             = "guidance-arrow-head-source"
	ARROW_SHAFT_CASING_LINE_LAYER_ID = "guidance-arrow-shaft-casing-layer"
	ARROW_SHAFT_LINE_LAYER_ID        = "guidance-arrow-shaft-layer"
	ARROW_HEAD_ICON                  = "guidance-arrow-head-icon"
	ARROW_HEAD_ICON_CASING           = "guidance-arrow-head-icon-casing"
	ARROW_HEAD_CASING_LAYER_ID       = "guidance-arrow-head-casing-layer"
	ARROW_HEAD_LAYER_ID              = "guidance-arrow-head-layer"
)

// zoom dependent presentation of the upcoming maneuver arrow
const (
	ARROW_SOURCE_MAX_ZOOM = 16

	MIN_ARROW_ZOOM = 10.0
	MAX_ARROW_ZOOM = 22.0

	MIN_ZOOM_ARROW_SHAFT_SCALE        = 2.6
	MAX_ZOOM_ARROW_SHAFT_SCALE        = 13.0
	MIN_ZOOM_ARROW_SHAFT_CASING_SCALE = 3.4
	MAX_ZOOM_ARROW_SHAFT_CASING_SCALE = 17.0
	MIN_ZOOM_ARROW_HEAD_SCALE         = 0.2
	MAX_ZOOM_ARROW_HEAD_SCALE         = 0.8
	MIN_ZOOM_ARROW_HEAD_CASING_SCALE  = 0.2
	MAX_ZOOM_ARROW_HEAD_CASING_SCALE  = 0.8

	// below this zoom the arrow is fully transparent
	ARROW_HIDDEN_ZOOM_LEVEL = 14.0
	OPACITY_HIDDEN          = 0.0
	OPACITY_VISIBLE         = 1.0

	ARROW_HEAD_OFFSET_Y        = -7.0
	ARROW_HEAD_CASING_OFFSET_Y = -7.0
)

const (
	DEFAULT_ARROW_COLOR        = "#FFFFFF"
	DEFAULT_ARROW_BORDER_COLOR = "#2D3F53"
	DEFAULT_LANE_COLOR         = "#FFFFFF"
	DEFAULT_ANCHOR_LAYER       = "guidance-annotations-points"
	DEFAULT_ARROW_ICON_SIZE    = 64
	DEFAULT_LANE_GLYPH_SIZE    = 96
)
