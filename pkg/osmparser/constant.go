package osmparser

const (
	TURN_LANES_KEY          = "turn:lanes"
	TURN_LANES_FORWARD_KEY  = "turn:lanes:forward"
	TURN_LANES_BACKWARD_KEY = "turn:lanes:backward"
	HIGHWAY_KEY             = "highway"
	JUNCTION_KEY            = "junction"
	ONEWAY_KEY              = "oneway"
)

const (
	OSM_LANE_SEPARATOR      = "|"
	OSM_DIRECTION_SEPARATOR = ";"
	OSM_MERGE_PREFIX        = "merge_to_"
)

// osm turn values with a different spelling in the lane indication vocabulary
const (
	OSM_TURN_THROUGH      = "through"
	OSM_TURN_SLIGHT_LEFT  = "slight_left"
	OSM_TURN_SLIGHT_RIGHT = "slight_right"
	OSM_TURN_SHARP_LEFT   = "sharp_left"
	OSM_TURN_SHARP_RIGHT  = "sharp_right"
	OSM_TURN_REVERSE      = "reverse"
	OSM_TURN_NONE         = "none"
)

const (
	SCAN_LOG_INTERVAL = 50000
)
