package hexdump

import (
	"github.com/jebreimo/HexPic/pkg/errors"
)

// Geometry is the layout of one render, recomputed from scratch every call.
type Geometry struct {
	FirstColumn   int `json:"first_column"`   // column of the first byte
	AddressDigits int `json:"address_digits"` // hex digits per address label
	Rows          int `json:"rows"`           // grid rows, at least 1
	XOffset       int `json:"x_offset"`       // pixel x where the byte grid begins
	Width         int `json:"width"`          // canvas width in pixels
	Height        int `json:"height"`         // canvas height in pixels
	CellWidth     int `json:"cell_width"`
	CellHeight    int `json:"cell_height"`
}

// Layout validates cfg and computes the geometry for rendering count bytes
// starting at address. It fails with a configuration error when the fade
// bands do not fit in the rows.
func Layout(cfg Config, m *Metrics, count int, address int64) (Geometry, error) {
	if err := cfg.Validate(); err != nil {
		return Geometry{}, err
	}
	if m == nil {
		return Geometry{}, errors.New(errors.ErrCodeFontUnavailable, "no glyph metrics")
	}
	if count < 0 {
		return Geometry{}, errors.New(errors.ErrCodeConfiguration, "byte count must not be negative, got %d", count)
	}
	if address < 0 {
		return Geometry{}, errors.New(errors.ErrCodeConfiguration, "start address must not be negative, got %d", address)
	}

	g := Geometry{
		FirstColumn:   FirstColumn(cfg, address),
		AddressDigits: AddressDigits(count, address),
		CellWidth:     m.CellWidth,
		CellHeight:    m.CellHeight,
	}
	g.Rows = max(1, (g.FirstColumn+count+cfg.BytesPerRow-1)/cfg.BytesPerRow)
	if g.Rows < cfg.FadeInRows+cfg.FadeOutRows {
		return Geometry{}, errors.New(errors.ErrCodeConfiguration,
			"fade bands need %d rows (in %d + out %d) but only %d rows are rendered",
			cfg.FadeInRows+cfg.FadeOutRows, cfg.FadeInRows, cfg.FadeOutRows, g.Rows)
	}

	if cfg.ShowAddress {
		g.XOffset = g.AddressDigits*m.CellWidth + AddressGutter
	}
	g.Width = g.XOffset + gridWidth(cfg, m.CellWidth)
	g.Height = g.Rows * m.CellHeight
	return g, nil
}

// gridWidth is the pixel width of a full row of byte pairs.
func gridWidth(cfg Config, cellWidth int) int {
	w := cfg.BytesPerRow * 2 * cellWidth
	w += (cfg.BytesPerRow - 1) * cfg.ByteGap
	w += ((cfg.BytesPerRow - 1) / cfg.GroupSize) * cfg.GroupGap
	return w
}

// GroupSeparators returns, for each column, the extra gap drawn after it:
// GroupGap after every GroupSize-th column and 0 elsewhere. It does not
// depend on the row, so a render computes it once.
func GroupSeparators(cfg Config) []int {
	seps := make([]int, cfg.BytesPerRow)
	for i := range seps {
		if (i+1)%cfg.GroupSize == 0 {
			seps[i] = cfg.GroupGap
		}
	}
	return seps
}

// ColumnX returns the pixel x of col relative to the grid origin, for
// callers that place overlays (highlights, markers) over rendered bytes.
// Add the origin passed to [Render] to get canvas coordinates.
func ColumnX(cfg Config, g Geometry, col int) int {
	return columnX(cfg, g, GroupSeparators(cfg), col)
}
