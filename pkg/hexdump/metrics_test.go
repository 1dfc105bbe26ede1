package hexdump

import (
	"errors"
	"image"
	"image/color"
	"testing"

	hperrors "github.com/jebreimo/HexPic/pkg/errors"
)

func TestMeasureCellIsMaximum(t *testing.T) {
	f := newFakeRenderer(5, 9)
	f.widths[1] = 3
	f.widths[0xc] = 7

	m, err := Measure(f)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if m.CellWidth != 7 {
		t.Errorf("CellWidth = %d, want 7", m.CellWidth)
	}
	if m.CellHeight != 9 {
		t.Errorf("CellHeight = %d, want 9", m.CellHeight)
	}
	if m.Glyphs[1].Width != 3 {
		t.Errorf("Glyphs[1].Width = %d, want 3", m.Glyphs[1].Width)
	}
}

func TestMeasureFontUnavailable(t *testing.T) {
	f := newFakeRenderer(5, 9)
	f.measureErr = errors.New("glyph missing")

	_, err := Measure(f)
	if !hperrors.Is(err, hperrors.ErrCodeFontUnavailable) {
		t.Fatalf("Measure() error = %v, want FONT_UNAVAILABLE", err)
	}
}

func TestGlyphOffset(t *testing.T) {
	m := &Metrics{CellWidth: 7}
	m.Glyphs[4] = GlyphSize{Width: 4}
	m.Glyphs[7] = GlyphSize{Width: 7}

	tests := []struct {
		name  string
		digit int
		first bool
		want  int
	}{
		{"first digit rounds up", 4, true, 2},
		{"later digit rounds down", 4, false, 1},
		{"full width first", 7, true, 0},
		{"full width later", 7, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.GlyphOffset(tt.digit, tt.first); got != tt.want {
				t.Errorf("GlyphOffset(%d, %v) = %d, want %d", tt.digit, tt.first, got, tt.want)
			}
		})
	}
}

func TestDrawDigitsCentersEachCell(t *testing.T) {
	f := newFakeRenderer(4, 8)
	f.widths[0] = 6
	m := mustMeasure(f)

	dst := image.NewRGBA(image.Rect(0, 0, 100, 20))
	c := color.NRGBA{R: 10, A: 0xff}
	if err := m.drawDigits(dst, f, image.Pt(10, 3), c, 0x3a, 2); err != nil {
		t.Fatalf("drawDigits() error = %v", err)
	}

	want := []glyphDraw{
		{pt: image.Pt(10+(6-4+1)/2, 3), ch: '3', c: c},
		{pt: image.Pt(16+(6-4)/2, 3), ch: 'a', c: c},
	}
	if len(f.draws) != len(want) {
		t.Fatalf("got %d draws, want %d", len(f.draws), len(want))
	}
	for i, d := range f.draws {
		if d != want[i] {
			t.Errorf("draw %d = %+v, want %+v", i, d, want[i])
		}
	}
}
