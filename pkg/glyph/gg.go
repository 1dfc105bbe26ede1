package glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/jebreimo/HexPic/pkg/hexdump"
)

// GGDrawer draws glyphs through a fogleman/gg context.
//
// gg contexts wrap an *image.RGBA, so DrawGlyph rejects other canvas types.
// The context for the most recent canvas is reused across glyphs.
type GGDrawer struct {
	face    font.Face
	ascent  float64
	measure *gg.Context

	dst *image.RGBA
	dc  *gg.Context
}

// NewGGDrawer creates a GGDrawer for face.
func NewGGDrawer(face font.Face) *GGDrawer {
	mc := gg.NewContext(1, 1)
	mc.SetFontFace(face)
	return &GGDrawer{
		face:    face,
		ascent:  float64(face.Metrics().Ascent) / 64,
		measure: mc,
	}
}

// MeasureGlyph implements hexdump.TextRenderer.
func (g *GGDrawer) MeasureGlyph(ch rune) (int, int, error) {
	_, height, err := measure(g.face, ch)
	if err != nil {
		return 0, 0, err
	}
	w, _ := g.measure.MeasureString(string(ch))
	return int(math.Ceil(w)), height, nil
}

// DrawGlyph implements hexdump.TextRenderer.
func (g *GGDrawer) DrawGlyph(dst draw.Image, pt image.Point, ch rune, c color.NRGBA) error {
	rgba, ok := dst.(*image.RGBA)
	if !ok {
		return fmt.Errorf("gg backend needs an *image.RGBA canvas, got %T", dst)
	}
	if rgba != g.dst {
		g.dc = gg.NewContextForRGBA(rgba)
		g.dc.SetFontFace(g.face)
		g.dst = rgba
	}
	g.dc.SetColor(c)
	g.dc.DrawString(string(ch), float64(pt.X), float64(pt.Y)+g.ascent)
	return nil
}

// Ensure GGDrawer implements hexdump.TextRenderer.
var _ hexdump.TextRenderer = (*GGDrawer)(nil)
