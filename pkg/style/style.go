package style

import (
	"encoding/json"
	"errors"
	"image"

	"github.com/paulmach/orb/geojson"
)

type Visibility string

const (
	VISIBLE Visibility = "visible"
	NONE    Visibility = "none"
)

func VisibilityOf(visible bool) Visibility {
	if visible {
		return VISIBLE
	}
	return NONE
}

type LayerType string

const (
	LINE_LAYER   LayerType = "line"
	SYMBOL_LAYER LayerType = "symbol"
)

const (
	LINE_CAP_ROUND              = "round"
	LINE_JOIN_ROUND             = "round"
	ICON_ROTATION_ALIGNMENT_MAP = "map"
)

var (
	ErrUnknownSource   = errors.New("unknown source")
	ErrUnknownLayer    = errors.New("unknown layer")
	ErrDuplicateSource = errors.New("source already exists")
	ErrDuplicateLayer  = errors.New("layer already exists")
	ErrInvalidImage    = errors.New("invalid image")
)

type SourceOptions struct {
	MaxZoom int
}

type LineProperties struct {
	Color   string
	Width   Interpolate
	Cap     string
	Join    string
	Opacity Step
}

type SymbolProperties struct {
	IconImage             string
	IconSize              Interpolate
	IconOffset            [2]float64
	IconRotationAlignment string
	IconRotateProperty    string // feature property holding the rotation in degrees
	IconAllowOverlap      bool
	IconIgnorePlacement   bool
	IconOpacity           Step
}

// Layer is a style layer drawing one geojson source. Exactly one of Line and Symbol is set,
// matching Type.
type Layer struct {
	ID         string
	Type       LayerType
	SourceID   string
	Visibility Visibility
	Line       *LineProperties
	Symbol     *SymbolProperties
}

func NewLineLayer(id, sourceID string, props LineProperties) *Layer {
	return &Layer{ID: id, Type: LINE_LAYER, SourceID: sourceID, Visibility: VISIBLE, Line: &props}
}

func NewSymbolLayer(id, sourceID string, props SymbolProperties) *Layer {
	return &Layer{ID: id, Type: SYMBOL_LAYER, SourceID: sourceID, Visibility: VISIBLE, Symbol: &props}
}

func (l *Layer) WithVisibility(v Visibility) *Layer {
	l.Visibility = v
	return l
}

// MarshalJSON writes the layer in style document form.
func (l *Layer) MarshalJSON() ([]byte, error) {
	layout := map[string]any{"visibility": l.Visibility}
	paint := map[string]any{}
	switch {
	case l.Line != nil:
		layout["line-cap"] = l.Line.Cap
		layout["line-join"] = l.Line.Join
		paint["line-color"] = l.Line.Color
		paint["line-width"] = l.Line.Width
		paint["line-opacity"] = l.Line.Opacity
	case l.Symbol != nil:
		layout["icon-image"] = l.Symbol.IconImage
		layout["icon-size"] = l.Symbol.IconSize
		layout["icon-offset"] = l.Symbol.IconOffset
		layout["icon-rotation-alignment"] = l.Symbol.IconRotationAlignment
		layout["icon-rotate"] = []any{"get", l.Symbol.IconRotateProperty}
		layout["icon-allow-overlap"] = l.Symbol.IconAllowOverlap
		layout["icon-ignore-placement"] = l.Symbol.IconIgnorePlacement
		paint["icon-opacity"] = l.Symbol.IconOpacity
	}
	return json.Marshal(map[string]any{
		"id":     l.ID,
		"type":   l.Type,
		"source": l.SourceID,
		"layout": layout,
		"paint":  paint,
	})
}

// Style is the set of style mutations the guidance layers need from a map renderer.
type Style interface {
	AddSource(id string, data *geojson.FeatureCollection, opts SourceOptions) error
	RemoveSource(id string) error
	// SetSourceGeometry replaces the whole content of a geojson source with one feature.
	SetSourceGeometry(id string, feature *geojson.Feature) error

	AddImage(name string, img image.Image) error
	RemoveImage(name string) error

	HasLayer(id string) bool
	// AddLayer puts the layer on top of the stack.
	AddLayer(layer *Layer) error
	AddLayerBelow(layer *Layer, belowID string) error
	AddLayerAbove(layer *Layer, aboveID string) error
	RemoveLayer(id string) error

	LayerVisibility(id string) (Visibility, error)
	SetLayerVisibility(id string, visibility Visibility) error
}
