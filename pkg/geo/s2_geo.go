package geo

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// AngularDistanceMeters measures a->b on the s2 sphere, in meters
func AngularDistanceMeters(a, b orb.Point) float64 {
	angle := s2.LatLngFromDegrees(a.Lat(), a.Lon()).Distance(s2.LatLngFromDegrees(b.Lat(), b.Lon()))
	return angle.Radians() * earthRadiusM
}
