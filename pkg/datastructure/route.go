package datastructure

import (
	"strings"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg"
)

type StepManeuver struct {
	Type          string     `json:"type"`
	Modifier      string     `json:"modifier,omitempty"`
	Location      Coordinate `json:"location"`
	BearingBefore float64    `json:"bearing_before"`
	BearingAfter  float64    `json:"bearing_after"`
	Instruction   string     `json:"instruction,omitempty"`
}

// Lane is one lane of an intersection. Valid marks the lanes that can be used for the maneuver.
type Lane struct {
	Indications []string `json:"indications"`
	Valid       bool     `json:"valid"`
}

// Indication joins the lane directions into a single token, e.g. "straight;right".
func (l Lane) Indication() string {
	return strings.Join(l.Indications, pkg.TURN_LANE_INDICATION_SEPARATOR)
}

type Intersection struct {
	Location Coordinate `json:"location"`
	Bearings []int      `json:"bearings,omitempty"`
	Lanes    []Lane     `json:"lanes,omitempty"`
}

type LegStep struct {
	Distance      float64        `json:"distance"`
	Duration      float64        `json:"duration"`
	Geometry      string         `json:"geometry"`
	Name          string         `json:"name"`
	Ref           string         `json:"ref,omitempty"`
	Mode          string         `json:"mode"`
	DrivingSide   string         `json:"driving_side,omitempty"`
	Maneuver      StepManeuver   `json:"maneuver"`
	Intersections []Intersection `json:"intersections,omitempty"`
}

// Lanes returns the lanes of the last intersection of the step that carries lane data,
// i.e. the lanes a driver sees when approaching the next maneuver.
func (s *LegStep) Lanes() []Lane {
	for i := len(s.Intersections) - 1; i >= 0; i-- {
		if len(s.Intersections[i].Lanes) > 0 {
			return s.Intersections[i].Lanes
		}
	}
	return nil
}

type RouteLeg struct {
	Distance float64   `json:"distance"`
	Duration float64   `json:"duration"`
	Summary  string    `json:"summary,omitempty"`
	Steps    []LegStep `json:"steps"`
}

func (l *RouteLeg) NumberOfSteps() int {
	return len(l.Steps)
}

func (l *RouteLeg) GetStep(i int) (*LegStep, bool) {
	if i < 0 || i >= len(l.Steps) {
		return nil, false
	}
	return &l.Steps[i], true
}
