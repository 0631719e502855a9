package style

import (
	"encoding/json"
	"fmt"
	"image"
	"sort"

	"github.com/paulmach/orb/geojson"
)

const (
	OP_ADD_SOURCE           = "addSource"
	OP_REMOVE_SOURCE        = "removeSource"
	OP_SET_SOURCE_GEOMETRY  = "setSourceGeometry"
	OP_ADD_IMAGE            = "addImage"
	OP_REMOVE_IMAGE         = "removeImage"
	OP_ADD_LAYER            = "addLayer"
	OP_REMOVE_LAYER         = "removeLayer"
	OP_SET_LAYER_VISIBILITY = "setLayerVisibility"
	STYLE_SPEC_VERSION      = 8
	GEOJSON_SOURCE_TYPE     = "geojson"
)

// Call is one recorded style mutation.
type Call struct {
	Op     string
	Target string
}

type memorySource struct {
	opts SourceOptions
	data *geojson.FeatureCollection
}

// MemoryStyle is an in-process Style. It keeps the layer stack in drawing order
// (bottom first) and records every mutation, which makes it usable both as a
// headless renderer backend and as a test double.
type MemoryStyle struct {
	sources map[string]*memorySource
	layers  []*Layer
	images  map[string]image.Image
	calls   []Call
}

var _ Style = (*MemoryStyle)(nil)

func NewMemoryStyle() *MemoryStyle {
	return &MemoryStyle{
		sources: make(map[string]*memorySource),
		layers:  make([]*Layer, 0),
		images:  make(map[string]image.Image),
	}
}

func (s *MemoryStyle) record(op, target string) {
	s.calls = append(s.calls, Call{Op: op, Target: target})
}

func (s *MemoryStyle) AddSource(id string, data *geojson.FeatureCollection, opts SourceOptions) error {
	if _, ok := s.sources[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSource, id)
	}
	if data == nil {
		data = geojson.NewFeatureCollection()
	}
	s.record(OP_ADD_SOURCE, id)
	s.sources[id] = &memorySource{opts: opts, data: data}
	return nil
}

func (s *MemoryStyle) RemoveSource(id string) error {
	if _, ok := s.sources[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSource, id)
	}
	for _, l := range s.layers {
		if l.SourceID == id {
			return fmt.Errorf("source %s is still used by layer %s", id, l.ID)
		}
	}
	s.record(OP_REMOVE_SOURCE, id)
	delete(s.sources, id)
	return nil
}

func (s *MemoryStyle) SetSourceGeometry(id string, feature *geojson.Feature) error {
	src, ok := s.sources[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSource, id)
	}
	s.record(OP_SET_SOURCE_GEOMETRY, id)
	fc := geojson.NewFeatureCollection()
	if feature != nil {
		fc.Append(feature)
	}
	src.data = fc
	return nil
}

func (s *MemoryStyle) AddImage(name string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: %s", ErrInvalidImage, name)
	}
	s.record(OP_ADD_IMAGE, name)
	s.images[name] = img
	return nil
}

func (s *MemoryStyle) RemoveImage(name string) error {
	s.record(OP_REMOVE_IMAGE, name)
	delete(s.images, name)
	return nil
}

func (s *MemoryStyle) layerIndex(id string) int {
	for i, l := range s.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStyle) HasLayer(id string) bool {
	return s.layerIndex(id) >= 0
}

func (s *MemoryStyle) insertLayer(layer *Layer, at int) error {
	if layer == nil {
		return fmt.Errorf("%w: nil layer", ErrUnknownLayer)
	}
	if s.HasLayer(layer.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateLayer, layer.ID)
	}
	if _, ok := s.sources[layer.SourceID]; !ok {
		return fmt.Errorf("layer %s: %w: %s", layer.ID, ErrUnknownSource, layer.SourceID)
	}
	copied := *layer
	s.record(OP_ADD_LAYER, layer.ID)
	s.layers = append(s.layers, nil)
	copy(s.layers[at+1:], s.layers[at:])
	s.layers[at] = &copied
	return nil
}

func (s *MemoryStyle) AddLayer(layer *Layer) error {
	return s.insertLayer(layer, len(s.layers))
}

func (s *MemoryStyle) AddLayerBelow(layer *Layer, belowID string) error {
	idx := s.layerIndex(belowID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, belowID)
	}
	return s.insertLayer(layer, idx)
}

func (s *MemoryStyle) AddLayerAbove(layer *Layer, aboveID string) error {
	idx := s.layerIndex(aboveID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, aboveID)
	}
	return s.insertLayer(layer, idx+1)
}

func (s *MemoryStyle) RemoveLayer(id string) error {
	idx := s.layerIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, id)
	}
	s.record(OP_REMOVE_LAYER, id)
	s.layers = append(s.layers[:idx], s.layers[idx+1:]...)
	return nil
}

func (s *MemoryStyle) LayerVisibility(id string) (Visibility, error) {
	idx := s.layerIndex(id)
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownLayer, id)
	}
	return s.layers[idx].Visibility, nil
}

func (s *MemoryStyle) SetLayerVisibility(id string, visibility Visibility) error {
	idx := s.layerIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, id)
	}
	s.record(OP_SET_LAYER_VISIBILITY, id)
	s.layers[idx].Visibility = visibility
	return nil
}

// Layer returns a copy of the layer with the given id.
func (s *MemoryStyle) Layer(id string) (Layer, bool) {
	idx := s.layerIndex(id)
	if idx < 0 {
		return Layer{}, false
	}
	return *s.layers[idx], true
}

// LayerIDs lists the layers bottom to top.
func (s *MemoryStyle) LayerIDs() []string {
	ids := make([]string, 0, len(s.layers))
	for _, l := range s.layers {
		ids = append(ids, l.ID)
	}
	return ids
}

func (s *MemoryStyle) Source(id string) (*geojson.FeatureCollection, bool) {
	src, ok := s.sources[id]
	if !ok {
		return nil, false
	}
	return src.data, true
}

func (s *MemoryStyle) SourceOptions(id string) (SourceOptions, bool) {
	src, ok := s.sources[id]
	if !ok {
		return SourceOptions{}, false
	}
	return src.opts, true
}

func (s *MemoryStyle) Image(name string) (image.Image, bool) {
	img, ok := s.images[name]
	return img, ok
}

func (s *MemoryStyle) ImageNames() []string {
	names := make([]string, 0, len(s.images))
	for name := range s.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *MemoryStyle) Calls() []Call {
	return append([]Call(nil), s.calls...)
}

// CallCount counts recorded mutations of op on target, an empty target matches any.
func (s *MemoryStyle) CallCount(op, target string) int {
	n := 0
	for _, c := range s.calls {
		if c.Op == op && (target == "" || c.Target == target) {
			n++
		}
	}
	return n
}

func (s *MemoryStyle) ResetCalls() {
	s.calls = s.calls[:0]
}

// MarshalJSON exports sources and layers as a style document. Images are listed by name only.
func (s *MemoryStyle) MarshalJSON() ([]byte, error) {
	sources := make(map[string]any, len(s.sources))
	for id, src := range s.sources {
		sources[id] = map[string]any{
			"type":    GEOJSON_SOURCE_TYPE,
			"maxzoom": src.opts.MaxZoom,
			"data":    src.data,
		}
	}
	return json.Marshal(map[string]any{
		"version": STYLE_SPEC_VERSION,
		"sources": sources,
		"layers":  s.layers,
		"images":  s.ImageNames(),
	})
}
