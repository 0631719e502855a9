package icon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRasterProvider(t *testing.T) {
	p := NewRasterProvider(32, "#FFFFFF", "#2D3F53", zap.NewNop())

	head, ok := p.ArrowHead()
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 32, 32), head.Bounds())

	casing, ok := p.ArrowHeadCasing()
	require.True(t, ok)
	assert.Equal(t, 32, casing.Bounds().Dx())

	// the chevron tip sits at the top center, the corners stay empty
	_, _, _, tipAlpha := head.At(16, 8).RGBA()
	assert.Greater(t, tipAlpha, uint32(0))
	_, _, _, cornerAlpha := head.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), cornerAlpha)
}

func TestRasterProvider_InvalidSize(t *testing.T) {
	p := NewRasterProvider(0, "#FFFFFF", "#2D3F53", zap.NewNop())
	_, ok := p.ArrowHead()
	assert.False(t, ok)
	_, ok = p.ArrowHeadCasing()
	assert.False(t, ok)
}

func TestStaticProvider(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	p := StaticProvider{Head: img}

	got, ok := p.ArrowHead()
	assert.True(t, ok)
	assert.Equal(t, image.Image(img), got)

	_, ok = p.ArrowHeadCasing()
	assert.False(t, ok)
}
