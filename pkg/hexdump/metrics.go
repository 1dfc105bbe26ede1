package hexdump

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jebreimo/HexPic/pkg/errors"
)

// HexChars are the 16 glyphs the renderer ever draws, indexed by nibble value.
const HexChars = "0123456789abcdef"

// TextRenderer measures and draws single characters in one font at one size.
//
// MeasureGlyph returns the advance width and the height of ch in pixels.
// DrawGlyph draws ch with its top-left corner at pt.
type TextRenderer interface {
	MeasureGlyph(ch rune) (width, height int, err error)
	DrawGlyph(dst draw.Image, pt image.Point, ch rune, c color.NRGBA) error
}

// GlyphSize is the measured size of one hex glyph.
type GlyphSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Metrics holds the measured sizes of the 16 hex glyphs and the uniform cell
// derived from them. Metrics are immutable and safe for concurrent use.
type Metrics struct {
	Glyphs     [16]GlyphSize `json:"glyphs"`
	CellWidth  int           `json:"cell_width"`
	CellHeight int           `json:"cell_height"`
}

// Measure queries tr for each hex glyph and derives the cell size as the
// maximum width and height across all 16.
func Measure(tr TextRenderer) (*Metrics, error) {
	var m Metrics
	for i, ch := range HexChars {
		w, h, err := tr.MeasureGlyph(ch)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontUnavailable, err, "measure glyph %q", ch)
		}
		if w < 0 || h < 0 {
			return nil, errors.New(errors.ErrCodeFontUnavailable, "glyph %q has negative size %dx%d", ch, w, h)
		}
		m.Glyphs[i] = GlyphSize{Width: w, Height: h}
		m.CellWidth = max(m.CellWidth, w)
		m.CellHeight = max(m.CellHeight, h)
	}
	return &m, nil
}

// GlyphOffset returns the horizontal offset that centers glyph digit within a
// cell. The first digit of a run rounds up and the rest round down.
func (m *Metrics) GlyphOffset(digit int, firstInRun bool) int {
	align := 0
	if firstInRun {
		align = 1
	}
	return (m.CellWidth - m.Glyphs[digit].Width + align) / 2
}

// DrawGlyph draws hex digit (0..15) into the cell whose top-left corner is pt.
func (m *Metrics) DrawGlyph(dst draw.Image, tr TextRenderer, pt image.Point, c color.NRGBA, digit int, firstInRun bool) error {
	pt.X += m.GlyphOffset(digit, firstInRun)
	return tr.DrawGlyph(dst, pt, rune(HexChars[digit]), c)
}

// drawDigits draws the low digits nibbles of value as a left-to-right run of
// cells starting at pt, most significant nibble first.
func (m *Metrics) drawDigits(dst draw.Image, tr TextRenderer, pt image.Point, c color.NRGBA, value uint64, digits int) error {
	for i, d := range nibbles(value, digits) {
		if err := m.DrawGlyph(dst, tr, pt, c, d, i == 0); err != nil {
			return err
		}
		pt.X += m.CellWidth
	}
	return nil
}
