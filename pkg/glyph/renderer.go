package glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/hexdump"
)

// Drawing backends.
const (
	BackendXImage = "ximage"
	BackendGG     = "gg"
)

// ValidBackends is the set of supported drawing backends.
var ValidBackends = map[string]bool{
	BackendXImage: true,
	BackendGG:     true,
}

// NewRenderer wraps face in the named drawing backend.
func NewRenderer(face font.Face, backend string) (hexdump.TextRenderer, error) {
	switch backend {
	case "", BackendXImage:
		return NewDrawer(face), nil
	case BackendGG:
		return NewGGDrawer(face), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid backend: %q (must be one of: ximage, gg)", backend)
	}
}

// Drawer draws glyphs with golang.org/x/image's font.Drawer.
type Drawer struct {
	face   font.Face
	ascent fixed.Int26_6
}

// NewDrawer creates a Drawer for face.
func NewDrawer(face font.Face) *Drawer {
	return &Drawer{face: face, ascent: face.Metrics().Ascent}
}

// MeasureGlyph implements hexdump.TextRenderer.
func (d *Drawer) MeasureGlyph(ch rune) (int, int, error) {
	return measure(d.face, ch)
}

// DrawGlyph implements hexdump.TextRenderer.
func (d *Drawer) DrawGlyph(dst draw.Image, pt image.Point, ch rune, c color.NRGBA) error {
	if dst == nil {
		return fmt.Errorf("draw %q: nil canvas", ch)
	}
	fd := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: d.face,
		Dot:  fixed.Point26_6{X: fixed.I(pt.X), Y: fixed.I(pt.Y) + d.ascent},
	}
	fd.DrawString(string(ch))
	return nil
}

// measure returns the advance width of ch and its height from the top of
// the ascent to the bottom of its ink, both rounded up to whole pixels.
func measure(face font.Face, ch rune) (int, int, error) {
	if _, ok := face.GlyphAdvance(ch); !ok {
		return 0, 0, fmt.Errorf("font has no glyph for %q", ch)
	}
	bounds, advance := font.BoundString(face, string(ch))
	height := face.Metrics().Ascent + bounds.Max.Y
	return advance.Ceil(), height.Ceil(), nil
}

// Ensure Drawer implements hexdump.TextRenderer.
var _ hexdump.TextRenderer = (*Drawer)(nil)
