package arrow

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/geo"
	"github.com/paulmach/orb"
)

var ErrNotEnoughPoints = errors.New("arrow needs at least two points on both sides of the maneuver")

// Geometry is the shaft and head of the upcoming maneuver arrow.
type Geometry struct {
	Shaft   orb.LineString
	Head    orb.Point
	Bearing float64 // of the last shaft segment, in [0, 360)
}

// Points returns the part of the route around the maneuver: the last 30 m of the
// current step followed by the first 30 m of the upcoming step.
func Points(currentStepPoints, upcomingStepPoints []orb.Point) ([]orb.Point, error) {
	if len(currentStepPoints) < pkg.TWO_POINTS || len(upcomingStepPoints) < pkg.TWO_POINTS {
		return nil, ErrNotEnoughPoints
	}

	reversedCurrent := geo.Reverse(currentStepPoints)
	currentSliced, err := geo.LineSliceAlong(reversedCurrent, 0, pkg.ARROW_SEGMENT_LENGTH)
	if err != nil {
		return nil, fmt.Errorf("slice current step: %w", err)
	}
	upcomingSliced, err := geo.LineSliceAlong(upcomingStepPoints, 0, pkg.ARROW_SEGMENT_LENGTH)
	if err != nil {
		return nil, fmt.Errorf("slice upcoming step: %w", err)
	}

	combined := make([]orb.Point, 0, len(currentSliced)+len(upcomingSliced))
	combined = append(combined, geo.Reverse(currentSliced)...)
	combined = append(combined, upcomingSliced...)
	return combined, nil
}

// NewGeometry builds the shaft from all points and puts the head on the last point,
// rotated along the last segment.
func NewGeometry(points []orb.Point) (Geometry, error) {
	if len(points) < pkg.TWO_POINTS {
		return Geometry{}, ErrNotEnoughPoints
	}
	from, to := points[len(points)-2], points[len(points)-1]
	return Geometry{
		Shaft:   orb.LineString(points),
		Head:    to,
		Bearing: geo.WrapBearing(geo.Bearing(from, to)),
	}, nil
}
