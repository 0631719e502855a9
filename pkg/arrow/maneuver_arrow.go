package arrow

import (
	"errors"
	"fmt"
	"image"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/icon"
	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/style"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// Progress is the part of the route progress the arrow is drawn from.
type Progress interface {
	CurrentStepPoints() []orb.Point
	UpcomingStepPoints() []orb.Point
}

var ErrNotInitialized = errors.New("maneuver arrow is not initialized")

type State uint8

const (
	UNINITIALIZED State = iota
	HIDDEN
	VISIBLE
)

func (s State) String() string {
	switch s {
	case HIDDEN:
		return "hidden"
	case VISIBLE:
		return "visible"
	default:
		return "uninitialized"
	}
}

type Options struct {
	ArrowColor       string
	ArrowBorderColor string

	// the arrow layers are stacked right below this layer when the style has it, on top otherwise
	AnchorLayerID string
}

func DefaultOptions() Options {
	return Options{
		ArrowColor:       pkg.DEFAULT_ARROW_COLOR,
		ArrowBorderColor: pkg.DEFAULT_ARROW_BORDER_COLOR,
		AnchorLayerID:    pkg.DEFAULT_ANCHOR_LAYER,
	}
}

// ManeuverArrow draws an arrow over the route at the next maneuver. It owns two
// geojson sources (shaft and head) and four layers, and must be driven from a single goroutine.
type ManeuverArrow struct {
	style    style.Style
	icons    icon.Provider
	opts     Options
	layerIDs []string
	state    State
	logger   *zap.Logger
}

// NewManeuverArrow registers the arrow sources, icons and layers in st. All layers start hidden.
func NewManeuverArrow(st style.Style, icons icon.Provider, opts Options, logger *zap.Logger) (*ManeuverArrow, error) {
	ma := &ManeuverArrow{
		style:  st,
		icons:  icons,
		opts:   opts,
		state:  UNINITIALIZED,
		logger: logger,
	}
	if err := ma.initialize(); err != nil {
		return nil, err
	}
	return ma, nil
}

func (ma *ManeuverArrow) GetState() State {
	return ma.state
}

// LayerIDs returns the arrow layers in visibility update order.
func (ma *ManeuverArrow) LayerIDs() []string {
	return append([]string(nil), ma.layerIDs...)
}

// AddUpcomingManeuverArrow redraws the arrow for the given progress. The arrow is hidden
// when either the current or the upcoming step has fewer than two points.
// It returns ErrNotInitialized once the arrow has been removed.
func (ma *ManeuverArrow) AddUpcomingManeuverArrow(progress Progress) error {
	if ma.state == UNINITIALIZED {
		return ErrNotInitialized
	}
	currentStepPoints := progress.CurrentStepPoints()
	upcomingStepPoints := progress.UpcomingStepPoints()
	invalidUpcomingStepPoints := len(upcomingStepPoints) < pkg.TWO_POINTS
	invalidCurrentStepPoints := len(currentStepPoints) < pkg.TWO_POINTS
	if invalidUpcomingStepPoints || invalidCurrentStepPoints {
		return ma.UpdateVisibility(false)
	}
	if err := ma.UpdateVisibility(true); err != nil {
		return err
	}

	points, err := Points(currentStepPoints, upcomingStepPoints)
	if err != nil {
		return err
	}
	geometry, err := NewGeometry(points)
	if err != nil {
		return err
	}
	if err := ma.updateArrowShaftWith(geometry); err != nil {
		return err
	}
	return ma.updateArrowHeadWith(geometry)
}

// UpdateVisibility shows or hides all arrow layers. Only layers whose visibility differs are written.
func (ma *ManeuverArrow) UpdateVisibility(visible bool) error {
	if ma.state == UNINITIALIZED {
		return ErrNotInitialized
	}
	target := style.VisibilityOf(visible)
	for _, id := range ma.layerIDs {
		current, err := ma.style.LayerVisibility(id)
		if err != nil {
			return fmt.Errorf("read visibility of %s: %w", id, err)
		}
		if current == target {
			continue
		}
		if err := ma.style.SetLayerVisibility(id, target); err != nil {
			return fmt.Errorf("set visibility of %s: %w", id, err)
		}
	}

	next := HIDDEN
	if visible {
		next = VISIBLE
	}
	if next != ma.state {
		ma.logger.Debug("upcoming maneuver arrow visibility changed",
			zap.Stringer("from", ma.state), zap.Stringer("to", next))
	}
	ma.state = next
	return nil
}

func (ma *ManeuverArrow) updateArrowShaftWith(geometry Geometry) error {
	shaft := geojson.NewFeature(geometry.Shaft)
	if err := ma.style.SetSourceGeometry(pkg.ARROW_SHAFT_SOURCE_ID, shaft); err != nil {
		return fmt.Errorf("update arrow shaft: %w", err)
	}
	return nil
}

func (ma *ManeuverArrow) updateArrowHeadWith(geometry Geometry) error {
	head := geojson.NewFeature(geometry.Head)
	head.Properties[pkg.ARROW_BEARING] = geometry.Bearing
	if err := ma.style.SetSourceGeometry(pkg.ARROW_HEAD_SOURCE_ID, head); err != nil {
		return fmt.Errorf("update arrow head: %w", err)
	}
	return nil
}

// Remove takes the arrow layers, sources and icons out of the style. Removing twice is a no-op.
func (ma *ManeuverArrow) Remove() error {
	if ma.state == UNINITIALIZED {
		return nil
	}
	for _, id := range ma.layerIDs {
		if !ma.style.HasLayer(id) {
			continue
		}
		if err := ma.style.RemoveLayer(id); err != nil {
			return fmt.Errorf("remove layer %s: %w", id, err)
		}
	}
	for _, id := range []string{pkg.ARROW_SHAFT_SOURCE_ID, pkg.ARROW_HEAD_SOURCE_ID} {
		if err := ma.style.RemoveSource(id); err != nil {
			return fmt.Errorf("remove source %s: %w", id, err)
		}
	}
	for _, name := range []string{pkg.ARROW_HEAD_ICON, pkg.ARROW_HEAD_ICON_CASING} {
		if err := ma.style.RemoveImage(name); err != nil {
			return fmt.Errorf("remove image %s: %w", name, err)
		}
	}
	ma.layerIDs = nil
	ma.state = UNINITIALIZED
	return nil
}

func (ma *ManeuverArrow) initialize() error {
	for _, id := range []string{pkg.ARROW_SHAFT_SOURCE_ID, pkg.ARROW_HEAD_SOURCE_ID} {
		if err := ma.style.AddSource(id, geojson.NewFeatureCollection(),
			style.SourceOptions{MaxZoom: pkg.ARROW_SOURCE_MAX_ZOOM}); err != nil {
			return fmt.Errorf("add source %s: %w", id, err)
		}
	}

	if err := ma.addIcon(pkg.ARROW_HEAD_ICON, ma.icons.ArrowHead); err != nil {
		return err
	}
	if err := ma.addIcon(pkg.ARROW_HEAD_ICON_CASING, ma.icons.ArrowHeadCasing); err != nil {
		return err
	}

	shaftLayer := ma.createArrowShaftLayer()
	shaftCasingLayer := ma.createArrowShaftCasingLayer()
	headLayer := ma.createArrowHeadLayer()
	headCasingLayer := ma.createArrowHeadCasingLayer()
	for _, layer := range []*style.Layer{shaftLayer, shaftCasingLayer, headLayer, headCasingLayer} {
		if !ma.style.HasLayer(layer.ID) {
			continue
		}
		if err := ma.style.RemoveLayer(layer.ID); err != nil {
			return fmt.Errorf("remove stale layer %s: %w", layer.ID, err)
		}
	}

	var err error
	if ma.opts.AnchorLayerID != "" && ma.style.HasLayer(ma.opts.AnchorLayerID) {
		err = ma.style.AddLayerBelow(shaftCasingLayer, ma.opts.AnchorLayerID)
	} else {
		err = ma.style.AddLayer(shaftCasingLayer)
	}
	if err != nil {
		return fmt.Errorf("add layer %s: %w", shaftCasingLayer.ID, err)
	}
	if err := ma.style.AddLayerAbove(headCasingLayer, shaftCasingLayer.ID); err != nil {
		return fmt.Errorf("add layer %s: %w", headCasingLayer.ID, err)
	}
	if err := ma.style.AddLayerAbove(shaftLayer, headCasingLayer.ID); err != nil {
		return fmt.Errorf("add layer %s: %w", shaftLayer.ID, err)
	}
	if err := ma.style.AddLayerAbove(headLayer, shaftLayer.ID); err != nil {
		return fmt.Errorf("add layer %s: %w", headLayer.ID, err)
	}

	ma.layerIDs = []string{shaftCasingLayer.ID, shaftLayer.ID, headCasingLayer.ID, headLayer.ID}
	ma.state = HIDDEN
	return nil
}

func (ma *ManeuverArrow) addIcon(name string, load func() (image.Image, bool)) error {
	img, ok := load()
	if !ok {
		ma.logger.Warn("arrow icon resource missing, skipping", zap.String("icon", name))
		return nil
	}
	if err := ma.style.AddImage(name, img); err != nil {
		return fmt.Errorf("add image %s: %w", name, err)
	}
	return nil
}

func arrowOpacity() style.Step {
	return style.NewStep(pkg.OPACITY_HIDDEN, style.Stop{Zoom: pkg.ARROW_HIDDEN_ZOOM_LEVEL, Value: pkg.OPACITY_VISIBLE})
}

func zoomInterpolate(minZoomValue, maxZoomValue float64) style.Interpolate {
	return style.NewInterpolate(
		style.Stop{Zoom: pkg.MIN_ARROW_ZOOM, Value: minZoomValue},
		style.Stop{Zoom: pkg.MAX_ARROW_ZOOM, Value: maxZoomValue},
	)
}

func (ma *ManeuverArrow) createArrowShaftLayer() *style.Layer {
	return style.NewLineLayer(pkg.ARROW_SHAFT_LINE_LAYER_ID, pkg.ARROW_SHAFT_SOURCE_ID, style.LineProperties{
		Color:   ma.opts.ArrowColor,
		Width:   zoomInterpolate(pkg.MIN_ZOOM_ARROW_SHAFT_SCALE, pkg.MAX_ZOOM_ARROW_SHAFT_SCALE),
		Cap:     style.LINE_CAP_ROUND,
		Join:    style.LINE_JOIN_ROUND,
		Opacity: arrowOpacity(),
	}).WithVisibility(style.NONE)
}

func (ma *ManeuverArrow) createArrowShaftCasingLayer() *style.Layer {
	return style.NewLineLayer(pkg.ARROW_SHAFT_CASING_LINE_LAYER_ID, pkg.ARROW_SHAFT_SOURCE_ID, style.LineProperties{
		Color:   ma.opts.ArrowBorderColor,
		Width:   zoomInterpolate(pkg.MIN_ZOOM_ARROW_SHAFT_CASING_SCALE, pkg.MAX_ZOOM_ARROW_SHAFT_CASING_SCALE),
		Cap:     style.LINE_CAP_ROUND,
		Join:    style.LINE_JOIN_ROUND,
		Opacity: arrowOpacity(),
	}).WithVisibility(style.NONE)
}

func (ma *ManeuverArrow) createArrowHeadLayer() *style.Layer {
	return style.NewSymbolLayer(pkg.ARROW_HEAD_LAYER_ID, pkg.ARROW_HEAD_SOURCE_ID, style.SymbolProperties{
		IconImage:             pkg.ARROW_HEAD_ICON,
		IconSize:              zoomInterpolate(pkg.MIN_ZOOM_ARROW_HEAD_SCALE, pkg.MAX_ZOOM_ARROW_HEAD_SCALE),
		IconOffset:            [2]float64{0, pkg.ARROW_HEAD_OFFSET_Y},
		IconRotationAlignment: style.ICON_ROTATION_ALIGNMENT_MAP,
		IconRotateProperty:    pkg.ARROW_BEARING,
		IconAllowOverlap:      true,
		IconIgnorePlacement:   true,
		IconOpacity:           arrowOpacity(),
	}).WithVisibility(style.NONE)
}

func (ma *ManeuverArrow) createArrowHeadCasingLayer() *style.Layer {
	return style.NewSymbolLayer(pkg.ARROW_HEAD_CASING_LAYER_ID, pkg.ARROW_HEAD_SOURCE_ID, style.SymbolProperties{
		IconImage:             pkg.ARROW_HEAD_ICON_CASING,
		IconSize:              zoomInterpolate(pkg.MIN_ZOOM_ARROW_HEAD_CASING_SCALE, pkg.MAX_ZOOM_ARROW_HEAD_CASING_SCALE),
		IconOffset:            [2]float64{0, pkg.ARROW_HEAD_CASING_OFFSET_Y},
		IconRotationAlignment: style.ICON_ROTATION_ALIGNMENT_MAP,
		IconRotateProperty:    pkg.ARROW_BEARING,
		IconAllowOverlap:      true,
		IconIgnorePlacement:   true,
		IconOpacity:           arrowOpacity(),
	}).WithVisibility(style.NONE)
}
