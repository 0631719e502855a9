package turnlane

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

const (
	// alpha of the arm that is not part of the maneuver in the combined glyphs
	inactiveArmAlpha = 0.4
)

// glyphPen draws on a unit square scaled to the glyph size.
type glyphPen struct {
	dc   *gg.Context
	size float64
	rgba gg.RGBA
}

func (p glyphPen) setAlpha(alpha float64) {
	p.dc.SetRGBA(p.rgba.R, p.rgba.G, p.rgba.B, p.rgba.A*alpha)
}

func (p glyphPen) stroke(points ...[2]float64) error {
	p.dc.MoveTo(points[0][0]*p.size, points[0][1]*p.size)
	for _, pt := range points[1:] {
		p.dc.LineTo(pt[0]*p.size, pt[1]*p.size)
	}
	return p.dc.Stroke()
}

// head fills a triangular arrow head with its tip at (x, y) pointing to angle (radians, 0 = east, y down).
func (p glyphPen) head(x, y, angle float64) error {
	length := 0.22 * p.size
	halfWidth := 0.14 * p.size
	tipX, tipY := x*p.size, y*p.size
	baseX := tipX - length*math.Cos(angle)
	baseY := tipY - length*math.Sin(angle)
	nx, ny := -math.Sin(angle), math.Cos(angle)

	p.dc.MoveTo(tipX, tipY)
	p.dc.LineTo(baseX+nx*halfWidth, baseY+ny*halfWidth)
	p.dc.LineTo(baseX-nx*halfWidth, baseY-ny*halfWidth)
	p.dc.ClosePath()
	return p.dc.Fill()
}

func (p glyphPen) straight() error {
	if err := p.stroke([2]float64{0.5, 0.92}, [2]float64{0.5, 0.3}); err != nil {
		return err
	}
	return p.head(0.5, 0.1, -math.Pi/2)
}

func (p glyphPen) right() error {
	if err := p.stroke([2]float64{0.4, 0.92}, [2]float64{0.4, 0.45}, [2]float64{0.7, 0.45}); err != nil {
		return err
	}
	return p.head(0.9, 0.45, 0)
}

func (p glyphPen) slightRight() error {
	if err := p.stroke([2]float64{0.4, 0.92}, [2]float64{0.4, 0.55}, [2]float64{0.65, 0.3}); err != nil {
		return err
	}
	return p.head(0.8, 0.15, -math.Pi/4)
}

func (p glyphPen) uturn() error {
	if err := p.stroke([2]float64{0.65, 0.92}, [2]float64{0.65, 0.3}); err != nil {
		return err
	}
	p.dc.DrawArc(0.5*p.size, 0.3*p.size, 0.15*p.size, math.Pi, 2*math.Pi)
	if err := p.dc.Stroke(); err != nil {
		return err
	}
	if err := p.stroke([2]float64{0.35, 0.3}, [2]float64{0.35, 0.55}); err != nil {
		return err
	}
	return p.head(0.35, 0.75, math.Pi/2)
}

// straightAndRight draws both arms of a combined lane, dimming the one the maneuver does not take.
func (p glyphPen) straightAndRight(rightActive bool) error {
	straightAlpha, rightAlpha := 1.0, inactiveArmAlpha
	if rightActive {
		straightAlpha, rightAlpha = inactiveArmAlpha, 1.0
	}

	p.setAlpha(straightAlpha)
	if err := p.straight(); err != nil {
		return err
	}
	p.setAlpha(rightAlpha)
	if err := p.stroke([2]float64{0.5, 0.7}, [2]float64{0.7, 0.5}); err != nil {
		return err
	}
	if err := p.head(0.9, 0.5, 0); err != nil {
		return err
	}
	p.setAlpha(1)
	return nil
}

// DrawGlyph rasterizes the selected lane glyph into a size x size image, mirrored when the
// selection is flipped. The none selection has no image.
func DrawGlyph(selection GlyphSelection, size int, hexColor string) (image.Image, error) {
	method, ok := selection.DrawMethod()
	if !ok {
		return nil, fmt.Errorf("no glyph to draw")
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid glyph size %d", size)
	}

	dc := gg.NewContext(size, size)
	defer dc.Close()

	if selection.ShouldBeFlipped() {
		dc.Translate(float64(size), 0)
		dc.Scale(-1, 1)
	}

	pen := glyphPen{dc: dc, size: float64(size), rgba: gg.Hex(hexColor)}
	pen.setAlpha(1)
	dc.SetLineWidth(0.1 * float64(size))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	var err error
	switch method {
	case DRAW_LANE_STRAIGHT:
		err = pen.straight()
	case DRAW_LANE_RIGHT:
		err = pen.right()
	case DRAW_LANE_SLIGHT_RIGHT:
		err = pen.slightRight()
	case DRAW_LANE_UTURN:
		err = pen.uturn()
	case DRAW_LANE_RIGHT_ONLY:
		err = pen.straightAndRight(true)
	case DRAW_LANE_STRAIGHT_ONLY:
		err = pen.straightAndRight(false)
	}
	if err == nil {
		err = dc.FlushGPU()
	}
	if err != nil {
		return nil, fmt.Errorf("draw %s: %w", method, err)
	}
	return dc.Image(), nil
}
