package icon

import (
	"image"

	"github.com/gogpu/gg"
	"go.uber.org/zap"
)

// Provider supplies the bitmaps of the upcoming maneuver arrow head. A false
// second return means the resource is not available and must be skipped.
type Provider interface {
	ArrowHead() (image.Image, bool)
	ArrowHeadCasing() (image.Image, bool)
}

// RasterProvider draws the arrow head icons, tinted with the configured colors.
type RasterProvider struct {
	size        int
	color       string
	borderColor string
	logger      *zap.Logger
}

func NewRasterProvider(size int, color, borderColor string, logger *zap.Logger) *RasterProvider {
	return &RasterProvider{
		size:        size,
		color:       color,
		borderColor: borderColor,
		logger:      logger,
	}
}

// ArrowHead is the inner chevron, pointing up so the symbol layer can rotate it by bearing.
func (p *RasterProvider) ArrowHead() (image.Image, bool) {
	return p.chevron(p.color, 0.18)
}

// ArrowHeadCasing is the outline drawn below the head; it covers a larger area of the canvas.
func (p *RasterProvider) ArrowHeadCasing() (image.Image, bool) {
	return p.chevron(p.borderColor, 0.05)
}

func (p *RasterProvider) chevron(hexColor string, inset float64) (image.Image, bool) {
	if p.size <= 0 {
		return nil, false
	}
	s := float64(p.size)
	dc := gg.NewContext(p.size, p.size)
	defer dc.Close()

	dc.SetHexColor(hexColor)
	dc.MoveTo(s/2, inset*s)
	dc.LineTo(s-inset*s, s-inset*s)
	dc.LineTo(s/2, s*0.72)
	dc.LineTo(inset*s, s-inset*s)
	dc.ClosePath()
	err := dc.Fill()
	if err == nil {
		err = dc.FlushGPU()
	}
	if err != nil {
		p.logger.Warn("rasterize arrow icon", zap.String("color", hexColor), zap.Error(err))
		return nil, false
	}
	return dc.Image(), true
}

// StaticProvider serves prepared images, nil entries count as missing.
type StaticProvider struct {
	Head       image.Image
	HeadCasing image.Image
}

func (p StaticProvider) ArrowHead() (image.Image, bool) {
	return p.Head, p.Head != nil
}

func (p StaticProvider) ArrowHeadCasing() (image.Image, bool) {
	return p.HeadCasing, p.HeadCasing != nil
}
