package hexdump

import (
	"image"
	"image/draw"
)

// Render lays out count bytes of data starting at address and draws them on
// canvas with the grid's top-left corner at origin.
//
// When canvas is nil, Render allocates a transparent *image.RGBA just large
// enough for the geometry plus origin. The returned geometry lets callers
// size their own canvas for later calls.
//
// The walk stops at the end of data if data is shorter than count; count
// alone determines the geometry.
func Render(cfg Config, m *Metrics, tr TextRenderer, canvas draw.Image, origin image.Point, data Data, count int, address int64) (draw.Image, Geometry, error) {
	g, err := Layout(cfg, m, count, address)
	if err != nil {
		return nil, Geometry{}, err
	}
	if data == nil {
		data = Bytes(nil)
	}
	if canvas == nil {
		canvas = image.NewRGBA(image.Rect(0, 0, origin.X+g.Width, origin.Y+g.Height))
	}

	w := &gridWalker{
		cfg:     cfg,
		m:       m,
		tr:      tr,
		dst:     canvas,
		geom:    g,
		seps:    GroupSeparators(cfg),
		origin:  origin,
		data:    data,
		end:     min(count, data.Len()),
		address: address,
	}
	return canvas, g, w.walk()
}

// gridWalker holds the state of one top-to-bottom sweep.
type gridWalker struct {
	cfg     Config
	m       *Metrics
	tr      TextRenderer
	dst     draw.Image
	geom    Geometry
	seps    []int
	origin  image.Point
	data    Data
	end     int
	address int64

	next int // index of the next byte to draw
}

// walk draws every row, band by band. All three bands share one row routine
// and differ only in their alpha function.
func (w *gridWalker) walk() error {
	y := w.origin.Y
	for _, b := range bands(w.cfg, w.geom.Rows) {
		for row := b.start; row < b.end; row++ {
			if err := w.drawRow(row, y, b.alpha(row)); err != nil {
				return err
			}
			y += w.geom.CellHeight
		}
	}
	return nil
}

// drawRow draws the optional address label and then the row's bytes, left to
// right, until the row is full or the data runs out.
func (w *gridWalker) drawRow(row, y int, alpha uint8) error {
	c := w.cfg.Color
	c.A = alpha

	rowAddr := w.address + int64(w.next)
	if w.cfg.ShowAddress && (row == 0 || IsLandmark(rowAddr)) {
		pt := image.Pt(w.origin.X, y)
		if err := w.m.drawDigits(w.dst, w.tr, pt, c, uint64(rowAddr), w.geom.AddressDigits); err != nil {
			return drawError(err, w.next, rowAddr, row, -1, int(rowAddr))
		}
	}

	col := 0
	if row == 0 {
		col = w.geom.FirstColumn
	}
	x := w.origin.X + columnX(w.cfg, w.geom, w.seps, col)
	for ; col < w.cfg.BytesPerRow && w.next < w.end; col++ {
		v := w.data.At(w.next)
		addr := w.address + int64(w.next)
		if v < 0 || v > 0xff {
			return dataIntegrityError(w.next, addr, row, col, v)
		}
		if err := w.m.drawDigits(w.dst, w.tr, image.Pt(x, y), c, uint64(v), 2); err != nil {
			return drawError(err, w.next, addr, row, col, v)
		}
		x += 2*w.geom.CellWidth + w.cfg.ByteGap + w.seps[col]
		w.next++
	}
	return nil
}

// columnX is the pixel x of col relative to the canvas origin.
func columnX(cfg Config, g Geometry, seps []int, col int) int {
	x := g.XOffset + col*(2*g.CellWidth+cfg.ByteGap)
	for _, s := range seps[:col] {
		x += s
	}
	return x
}
