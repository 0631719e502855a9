package osmparser

import (
	"strings"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg"
	"github.com/paulmach/osm"
)

var osmTurnIndication = map[string]string{
	OSM_TURN_THROUGH:      pkg.TURN_LANE_INDICATION_STRAIGHT,
	OSM_TURN_SLIGHT_LEFT:  pkg.TURN_LANE_INDICATION_SLIGHT_LEFT,
	OSM_TURN_SLIGHT_RIGHT: pkg.TURN_LANE_INDICATION_SLIGHT_RIGHT,
	OSM_TURN_SHARP_LEFT:   pkg.TURN_LANE_INDICATION_SHARP_LEFT,
	OSM_TURN_SHARP_RIGHT:  pkg.TURN_LANE_INDICATION_SHARP_RIGHT,
	OSM_TURN_REVERSE:      pkg.TURN_LANE_INDICATION_UTURN,
	OSM_TURN_NONE:         pkg.TURN_LANE_INDICATION_NONE,
	"left":                pkg.TURN_LANE_INDICATION_LEFT,
	"right":               pkg.TURN_LANE_INDICATION_RIGHT,
}

// indicationFromOsm maps a single osm turn value. Unknown values map to none.
func indicationFromOsm(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return pkg.TURN_LANE_INDICATION_NONE
	}
	if strings.HasPrefix(value, OSM_MERGE_PREFIX) {
		return pkg.TURN_LANE_INDICATION_MERGE
	}
	if indication, ok := osmTurnIndication[value]; ok {
		return indication
	}
	return pkg.TURN_LANE_INDICATION_NONE
}

// ParseTurnLanes converts an osm turn:lanes value (e.g. "left|through;right|") into one
// indication token per lane, left to right.
func ParseTurnLanes(value string) []string {
	if value == "" {
		return nil
	}
	lanes := strings.Split(value, OSM_LANE_SEPARATOR)
	indications := make([]string, 0, len(lanes))
	for _, lane := range lanes {
		directions := strings.Split(lane, OSM_DIRECTION_SEPARATOR)
		mapped := make([]string, 0, len(directions))
		seen := make(map[string]struct{}, len(directions))
		for _, d := range directions {
			indication := indicationFromOsm(d)
			if _, ok := seen[indication]; ok {
				continue
			}
			seen[indication] = struct{}{}
			mapped = append(mapped, indication)
		}
		if len(mapped) > 1 {
			mapped = dropNone(mapped)
		}
		indications = append(indications, strings.Join(mapped, pkg.TURN_LANE_INDICATION_SEPARATOR))
	}
	return indications
}

func dropNone(indications []string) []string {
	out := indications[:0]
	for _, ind := range indications {
		if ind != pkg.TURN_LANE_INDICATION_NONE {
			out = append(out, ind)
		}
	}
	return out
}

// LanesFromTags returns the lane indications of a way in the given travel direction.
// Plain turn:lanes applies to the direction of travel of the way, which is backward for oneway=-1.
func LanesFromTags(tags osm.Tags, forward bool) []string {
	if forward {
		if isReversedOneWay(tags) {
			return nil
		}
		if v := tags.Find(TURN_LANES_FORWARD_KEY); v != "" {
			return ParseTurnLanes(v)
		}
		return ParseTurnLanes(tags.Find(TURN_LANES_KEY))
	}
	if v := tags.Find(TURN_LANES_BACKWARD_KEY); v != "" {
		return ParseTurnLanes(v)
	}
	if isReversedOneWay(tags) {
		return ParseTurnLanes(tags.Find(TURN_LANES_KEY))
	}
	return nil
}

func isReversedOneWay(tags osm.Tags) bool {
	return tags.Find(ONEWAY_KEY) == "-1"
}
