package turnlane

import (
	"fmt"
	"image"
	"sort"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/concurrent"
)

type AtlasKey struct {
	Method  DrawMethod
	Flipped bool
}

func (k AtlasKey) Name() string {
	if k.Flipped {
		return k.Method.String() + "_flipped"
	}
	return k.Method.String()
}

// Atlas holds a pre-rendered image for every glyph and mirror combination.
type Atlas struct {
	size   int
	images map[AtlasKey]image.Image
}

type atlasResult struct {
	key AtlasKey
	img image.Image
	err error
}

// BuildAtlas renders all glyphs with numWorkers goroutines.
func BuildAtlas(size int, hexColor string, numWorkers int) (*Atlas, error) {
	keys := make([]AtlasKey, 0, 2*len(DrawMethods))
	for _, method := range DrawMethods {
		keys = append(keys, AtlasKey{Method: method}, AtlasKey{Method: method, Flipped: true})
	}

	results := concurrent.Map(numWorkers, keys, func(key AtlasKey) atlasResult {
		img, err := DrawGlyph(NewGlyphSelection(key.Method, key.Flipped), size, hexColor)
		return atlasResult{key: key, img: img, err: err}
	})

	atlas := &Atlas{size: size, images: make(map[AtlasKey]image.Image, len(keys))}
	for _, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("render glyph %s: %w", res.key.Name(), res.err)
		}
		atlas.images[res.key] = res.img
	}
	return atlas, nil
}

func (a *Atlas) GetSize() int {
	return a.size
}

// Glyph looks up the image of a selection, false for NoGlyph.
func (a *Atlas) Glyph(selection GlyphSelection) (image.Image, bool) {
	method, ok := selection.DrawMethod()
	if !ok {
		return nil, false
	}
	img, ok := a.images[AtlasKey{Method: method, Flipped: selection.ShouldBeFlipped()}]
	return img, ok
}

// Keys returns the atlas keys in a stable order.
func (a *Atlas) Keys() []AtlasKey {
	keys := make([]AtlasKey, 0, len(a.images))
	for k := range a.images {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Method != keys[j].Method {
			return keys[i].Method < keys[j].Method
		}
		return !keys[i].Flipped && keys[j].Flipped
	})
	return keys
}

func (a *Atlas) Image(key AtlasKey) (image.Image, bool) {
	img, ok := a.images[key]
	return img, ok
}
