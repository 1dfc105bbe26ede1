package pipeline

import (
	"math"

	"github.com/jebreimo/HexPic/pkg/hexdump"
)

// Layout computes the grid geometry for count bytes at address.
func Layout(opts Options, m *hexdump.Metrics, count int, address int64) (hexdump.Geometry, error) {
	cfg, err := opts.HexConfig()
	if err != nil {
		return hexdump.Geometry{}, err
	}
	return hexdump.Layout(cfg, m, count, address)
}

// CanvasSize returns the canvas size before scaling. A non-positive width or
// height in opts is replaced by the grid size plus a margin on each side.
func CanvasSize(opts Options, g hexdump.Geometry) (int, int) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = g.Width + 2*opts.Margin
	}
	if h <= 0 {
		h = g.Height + 2*opts.Margin
	}
	return w, h
}

// ScaledSize applies opts.Scale to a canvas size. Neither side drops below
// one pixel.
func ScaledSize(opts Options, w, h int) (int, int) {
	if opts.Scale == 0 || opts.Scale == 1 {
		return w, h
	}
	sw := max(1, int(math.Round(float64(w)*opts.Scale)))
	sh := max(1, int(math.Round(float64(h)*opts.Scale)))
	return sw, sh
}
