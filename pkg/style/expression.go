package style

import (
	"encoding/json"
	"sort"
)

type Stop struct {
	Zoom  float64
	Value float64
}

// Interpolate linearly interpolates a value between zoom stops and clamps outside them.
type Interpolate struct {
	Stops []Stop
}

func NewInterpolate(stops ...Stop) Interpolate {
	sorted := append([]Stop(nil), stops...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Zoom < sorted[j].Zoom })
	return Interpolate{Stops: sorted}
}

func (e Interpolate) Evaluate(zoom float64) float64 {
	if len(e.Stops) == 0 {
		return 0
	}
	if zoom <= e.Stops[0].Zoom {
		return e.Stops[0].Value
	}
	for i := 1; i < len(e.Stops); i++ {
		lo, hi := e.Stops[i-1], e.Stops[i]
		if zoom <= hi.Zoom {
			t := (zoom - lo.Zoom) / (hi.Zoom - lo.Zoom)
			return lo.Value + t*(hi.Value-lo.Value)
		}
	}
	return e.Stops[len(e.Stops)-1].Value
}

// MarshalJSON writes the expression as ["interpolate", ["linear"], ["zoom"], z0, v0, ...].
func (e Interpolate) MarshalJSON() ([]byte, error) {
	expr := []any{"interpolate", []any{"linear"}, []any{"zoom"}}
	for _, s := range e.Stops {
		expr = append(expr, s.Zoom, s.Value)
	}
	return json.Marshal(expr)
}

// Step outputs Base below the first stop and the value of the highest stop not above zoom otherwise.
type Step struct {
	Base  float64
	Stops []Stop
}

func NewStep(base float64, stops ...Stop) Step {
	sorted := append([]Stop(nil), stops...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Zoom < sorted[j].Zoom })
	return Step{Base: base, Stops: sorted}
}

func (e Step) Evaluate(zoom float64) float64 {
	value := e.Base
	for _, s := range e.Stops {
		if zoom < s.Zoom {
			break
		}
		value = s.Value
	}
	return value
}

// MarshalJSON writes the expression as ["step", ["zoom"], base, z0, v0, ...].
func (e Step) MarshalJSON() ([]byte, error) {
	expr := []any{"step", []any{"zoom"}, e.Base}
	for _, s := range e.Stops {
		expr = append(expr, s.Zoom, s.Value)
	}
	return json.Marshal(expr)
}
