package hexdump

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
)

// glyphDraw records one DrawGlyph call.
type glyphDraw struct {
	pt image.Point
	ch rune
	c  color.NRGBA
}

// fakeRenderer measures every glyph from a table and records draws instead
// of rasterizing them.
type fakeRenderer struct {
	widths     [16]int
	height     int
	measureErr error
	failAfter  int // fail the draw after this many successful ones; 0 never fails
	draws      []glyphDraw
}

func newFakeRenderer(width, height int) *fakeRenderer {
	f := &fakeRenderer{height: height}
	for i := range f.widths {
		f.widths[i] = width
	}
	return f
}

func (f *fakeRenderer) MeasureGlyph(ch rune) (int, int, error) {
	if f.measureErr != nil {
		return 0, 0, f.measureErr
	}
	i := strings.IndexRune(HexChars, ch)
	if i < 0 {
		return 0, 0, errors.New("no such glyph")
	}
	return f.widths[i], f.height, nil
}

func (f *fakeRenderer) DrawGlyph(dst draw.Image, pt image.Point, ch rune, c color.NRGBA) error {
	if f.failAfter > 0 && len(f.draws) >= f.failAfter {
		return errors.New("rasterizer exploded")
	}
	f.draws = append(f.draws, glyphDraw{pt: pt, ch: ch, c: c})
	return nil
}

// labels groups the glyphs drawn left of gridX by row y. With the address
// column shown, only address labels land there.
func (f *fakeRenderer) labels(gridX int) map[int]string {
	out := make(map[int]string)
	for _, d := range f.draws {
		if d.pt.X < gridX {
			out[d.pt.Y] += string(d.ch)
		}
	}
	return out
}

// bytesOnRow returns the glyphs drawn at or right of gridX on row y.
func (f *fakeRenderer) bytesOnRow(gridX, y int) []glyphDraw {
	var out []glyphDraw
	for _, d := range f.draws {
		if d.pt.X >= gridX && d.pt.Y == y {
			out = append(out, d)
		}
	}
	return out
}

func mustMeasure(tr TextRenderer) *Metrics {
	m, err := Measure(tr)
	if err != nil {
		panic(err)
	}
	return m
}

func sequential(n int) Bytes {
	b := make(Bytes, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
