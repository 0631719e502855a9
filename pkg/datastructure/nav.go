package datastructure

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
)

type Coordinate struct {
	lat float64
	lon float64
}

func (c Coordinate) Lat() float64 {
	return c.lat
}

func (c Coordinate) Lon() float64 {
	return c.lon
}

func (c Coordinate) Point() orb.Point {
	return orb.Point{c.lon, c.lat}
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		lat: lat,
		lon: lon,
	}
}

// MarshalJSON writes the coordinate as a [lon, lat] pair, the order used by directions responses.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.lon, c.lat})
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate must have 2 values, got %d", len(pair))
	}
	c.lon = pair[0]
	c.lat = pair[1]
	return nil
}
