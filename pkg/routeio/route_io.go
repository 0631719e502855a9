package routeio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/datastructure"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/turnlane"
)

const (
	BZIP2_EXT = ".bz2"
	PNG_EXT   = ".png"
)

var (
	ErrEmptyRoute = errors.New("route document has no steps")
)

func isBzip2(path string) bool {
	return strings.EqualFold(filepath.Ext(path), BZIP2_EXT)
}

// ReadRoute reads a route leg document. Files ending in .bz2 are decompressed first.
func ReadRoute(path string) (*datastructure.RouteLeg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if isBzip2(path) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, fmt.Errorf("open bzip2 stream %s: %w", path, err)
		}
		defer bz.Close()
		r = bz
	}
	return DecodeRoute(bufio.NewReader(r))
}

func DecodeRoute(r io.Reader) (*datastructure.RouteLeg, error) {
	var leg datastructure.RouteLeg
	if err := json.NewDecoder(r).Decode(&leg); err != nil {
		return nil, fmt.Errorf("decode route: %w", err)
	}
	if len(leg.Steps) == 0 {
		return nil, ErrEmptyRoute
	}
	return &leg, nil
}

// WriteRoute writes leg as json, bzip2 compressed when path ends in .bz2.
func WriteRoute(path string, leg *datastructure.RouteLeg) error {
	return writeJSON(path, leg)
}

// WriteStyleSnapshot dumps the current style document, e.g. a *style.MemoryStyle.
func WriteStyleSnapshot(path string, st json.Marshaler) error {
	return writeJSON(path, st)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return encodeJSON(f, isBzip2(path), v)
}

// encodeJSON writes v to w, bzip2 compressed if asked, and closes w.
func encodeJSON(w io.WriteCloser, compressed bool, v any) error {
	if !compressed {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	}

	bz, err := bzip2.NewWriter(w, &bzip2.WriterConfig{})
	if err != nil {
		w.Close()
		return err
	}
	if err := json.NewEncoder(bz).Encode(v); err != nil {
		bz.Close()
		w.Close()
		return err
	}
	if err := bz.Close(); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// WriteGlyphs writes every atlas glyph as a png into dir and returns the written paths.
func WriteGlyphs(dir string, atlas *turnlane.Atlas) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	paths := make([]string, 0)
	for _, key := range atlas.Keys() {
		img, _ := atlas.Image(key)
		path := filepath.Join(dir, key.Name()+PNG_EXT)
		if err := writePNG(path, img); err != nil {
			return paths, fmt.Errorf("write glyph %s: %w", key.Name(), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
