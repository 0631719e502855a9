package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/twpayne/go-polyline"
)

const (
	polyline6Scale = 1e6
)

var (
	ErrInvalidPolyline = errors.New("invalid encoded polyline")
	ErrStartBeyondLine = errors.New("slice start is beyond the end of the line")
	polyline6Codec     = polyline.Codec{Dim: 2, Scale: polyline6Scale}
)

// DecodePolyline6 decodes a polyline6 string (lat,lon pairs) into lon/lat points.
func DecodePolyline6(encoded string) ([]orb.Point, error) {
	if encoded == "" {
		return nil, nil
	}
	coords, rest, err := polyline6Codec.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolyline, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidPolyline, len(rest))
	}
	points := make([]orb.Point, 0, len(coords))
	for _, c := range coords {
		points = append(points, orb.Point{c[1], c[0]})
	}
	return points, nil
}

func EncodePolyline6(points []orb.Point) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}
	return string(polyline6Codec.EncodeCoords(nil, coords))
}

// LineLength returns the length of the polyline in meters
func LineLength(points []orb.Point) float64 {
	dist := 0.0
	for i := 0; i+1 < len(points); i++ {
		dist += DistanceMeters(points[i], points[i+1])
	}
	return dist
}

// Reverse returns a reversed copy of points, the input is left untouched.
func Reverse(points []orb.Point) []orb.Point {
	reversed := make([]orb.Point, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}

// LineSliceAlong returns the part of line between start and stop meters, measured from the first point.
// Cut points that fall inside a segment are projected back from the segment end along its bearing.
func LineSliceAlong(line []orb.Point, start, stop float64) (orb.LineString, error) {
	slice := make(orb.LineString, 0, len(line))
	travelled := 0.0
	for i := 0; i < len(line); i++ {
		if start >= travelled && i == len(line)-1 {
			break
		}

		if travelled > start && len(slice) == 0 {
			slice = append(slice, pointAlongPreviousSegment(line, i, travelled, start))
		}

		if travelled >= stop {
			if travelled == stop {
				slice = append(slice, line[i])
			} else {
				slice = append(slice, pointAlongPreviousSegment(line, i, travelled, stop))
			}
			return slice, nil
		}

		if travelled >= start {
			slice = append(slice, line[i])
		}

		if i == len(line)-1 {
			return slice, nil
		}
		travelled += AngularDistanceMeters(line[i], line[i+1])
	}

	if travelled < start {
		return slice, ErrStartBeyondLine
	}
	return slice, nil
}

// pointAlongPreviousSegment finds the point at dist meters on segment (i-1, i),
// travelled being the distance from the line start to line[i].
func pointAlongPreviousSegment(line []orb.Point, i int, travelled, dist float64) orb.Point {
	if i == 0 {
		return line[0]
	}
	overshot := travelled - dist
	if overshot <= 0 {
		return line[i]
	}
	return DestinationPoint(line[i], Bearing(line[i], line[i-1]), overshot)
}

// Bearing returns the initial bearing from -> to in degrees, in the range [-180, 180].
func Bearing(from, to orb.Point) float64 {
	return orbgeo.Bearing(from, to)
}

// WrapDegrees wraps value into [min, max).
func WrapDegrees(value, min, max float64) float64 {
	delta := max - min
	firstMod := math.Mod(value-min, delta)
	secondMod := math.Mod(firstMod+delta, delta)
	return secondMod + min
}

// WrapBearing normalizes a bearing into [0, 360).
func WrapBearing(bearing float64) float64 {
	return WrapDegrees(bearing, 0, pkg.MAX_DEGREES)
}
