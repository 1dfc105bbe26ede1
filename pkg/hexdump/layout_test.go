package hexdump

import (
	"image"
	"reflect"
	"testing"

	hperrors "github.com/jebreimo/HexPic/pkg/errors"
)

func TestLayoutSize(t *testing.T) {
	m := &Metrics{CellWidth: 6, CellHeight: 10}

	tests := []struct {
		name     string
		mutate   func(*Config)
		count    int
		address  int64
		wantRows int
	}{
		{"empty buffer is one row", nil, 0, 0, 1},
		{"single row", nil, 10, 0, 1},
		{"exactly one row", nil, 32, 0, 1},
		{"spans rows", nil, 100, 0, 4},
		{"misaligned start adds row", nil, 32, 5, 2},
		{"unaligned start fits", func(c *Config) { c.AlignData = false }, 32, 5, 1},
		{"no address column", func(c *Config) { c.ShowAddress = false }, 64, 0, 2},
		{"narrow groups", func(c *Config) { c.BytesPerRow = 10; c.GroupSize = 3 }, 25, 0x1000, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			g, err := Layout(cfg, m, tt.count, tt.address)
			if err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			if g.Rows != tt.wantRows {
				t.Errorf("Rows = %d, want %d", g.Rows, tt.wantRows)
			}
			if g.Height != g.Rows*m.CellHeight {
				t.Errorf("Height = %d, want rows*cellHeight = %d", g.Height, g.Rows*m.CellHeight)
			}

			addressWidth := 0
			if cfg.ShowAddress {
				addressWidth = AddressDigits(tt.count, tt.address)*m.CellWidth + 10
			}
			wantWidth := addressWidth +
				cfg.BytesPerRow*2*m.CellWidth +
				(cfg.BytesPerRow-1)*cfg.ByteGap +
				((cfg.BytesPerRow-1)/cfg.GroupSize)*cfg.GroupGap
			if g.Width != wantWidth {
				t.Errorf("Width = %d, want %d", g.Width, wantWidth)
			}
			if g.XOffset != addressWidth {
				t.Errorf("XOffset = %d, want %d", g.XOffset, addressWidth)
			}
		})
	}
}

func TestLayoutRejectsInvalidConfig(t *testing.T) {
	m := &Metrics{CellWidth: 6, CellHeight: 10}

	tests := []struct {
		name    string
		mutate  func(*Config)
		count   int
		address int64
	}{
		{"zero columns", func(c *Config) { c.BytesPerRow = 0 }, 10, 0},
		{"negative columns", func(c *Config) { c.BytesPerRow = -4 }, 10, 0},
		{"zero group", func(c *Config) { c.GroupSize = 0 }, 10, 0},
		{"negative gap", func(c *Config) { c.ByteGap = -1 }, 10, 0},
		{"fade bands exceed rows", func(c *Config) { c.FadeInRows = 2; c.FadeOutRows = 2 }, 10, 0},
		{"fade in alone exceeds rows", func(c *Config) { c.FadeInRows = 3 }, 64, 0},
		{"negative count", nil, -1, 0},
		{"negative address", nil, 1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			_, err := Layout(cfg, m, tt.count, tt.address)
			if !hperrors.Is(err, hperrors.ErrCodeConfiguration) {
				t.Errorf("Layout() error = %v, want CONFIGURATION_ERROR", err)
			}
		})
	}
}

func TestLayoutFadeBandsExactlyFit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeInRows = 2
	cfg.FadeOutRows = 2
	g, err := Layout(cfg, &Metrics{CellWidth: 1, CellHeight: 1}, 4*32, 0)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if g.Rows != 4 {
		t.Errorf("Rows = %d, want 4", g.Rows)
	}
}

func TestGroupSeparators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BytesPerRow = 8
	cfg.GroupSize = 4
	cfg.GroupGap = 7

	want := []int{0, 0, 0, 7, 0, 0, 0, 7}
	if got := GroupSeparators(cfg); !reflect.DeepEqual(got, want) {
		t.Errorf("GroupSeparators() = %v, want %v", got, want)
	}

	cfg.GroupSize = 8
	want = []int{0, 0, 0, 0, 0, 0, 0, 7}
	if got := GroupSeparators(cfg); !reflect.DeepEqual(got, want) {
		t.Errorf("GroupSeparators(one group) = %v, want %v", got, want)
	}
}

func TestColumnX(t *testing.T) {
	cfg := DefaultConfig()
	g := Geometry{XOffset: 22, CellWidth: 6}

	tests := []struct {
		col  int
		want int
	}{
		{0, 22},
		{3, 22 + 3*17},
		{4, 22 + 4*17 + 5},
		{9, 22 + 9*17 + 10},
	}
	for _, tt := range tests {
		if got := ColumnX(cfg, g, tt.col); got != tt.want {
			t.Errorf("ColumnX(%d) = %d, want %d", tt.col, got, tt.want)
		}
	}
}

func TestColumnXMatchesRender(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BytesPerRow = 8
	tr := newFakeRenderer(6, 10)
	m := mustMeasure(tr)
	origin := image.Pt(2, 3)

	_, g, err := Render(cfg, m, tr, nil, origin, sequential(8), 8, 0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	row := tr.bytesOnRow(origin.X+g.XOffset, origin.Y)
	if len(row) != 16 {
		t.Fatalf("drew %d glyphs on row 0, want 16", len(row))
	}
	for col := 0; col < cfg.BytesPerRow; col++ {
		if got, want := row[2*col].pt.X, origin.X+ColumnX(cfg, g, col); got != want {
			t.Errorf("byte %d drawn at x=%d, ColumnX puts it at %d", col, got, want)
		}
	}
}
