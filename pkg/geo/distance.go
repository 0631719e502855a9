package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthRadiusM  = 6371007
	earthRadiusKM = earthRadiusM / 1000.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// CalculateHaversineDistance returns the great circle distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// DistanceMeters returns the haversine distance between two lon/lat points in meters
func DistanceMeters(from, to orb.Point) float64 {
	return CalculateHaversineDistance(from.Lat(), from.Lon(), to.Lat(), to.Lon()) * 1000
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in km
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / earthRadiusKM

	bearing = (bearing * (math.Pi / 180.0))

	lat1 = (lat1 * (math.Pi / 180.0))
	lon1 = (lon1 * (math.Pi / 180.0))

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)
	lon2 = math.Mod((lon2+3*math.Pi), (2*math.Pi)) - math.Pi

	lat2 = lat2 * (180.0 / math.Pi)
	lon2 = lon2 * (180.0 / math.Pi)

	return lat2, lon2
}

// DestinationPoint moves from p along bearing (degrees) for meters.
func DestinationPoint(p orb.Point, bearing, meters float64) orb.Point {
	lat, lon := GetDestinationPoint(p.Lat(), p.Lon(), bearing, meters/1000)
	return orb.Point{lon, lat}
}
