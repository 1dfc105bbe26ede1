package pipeline

import (
	"context"
	"image"
	"time"

	"github.com/disintegration/imaging"

	"github.com/jebreimo/HexPic/pkg/hexdump"
	"github.com/jebreimo/HexPic/pkg/observability"
)

// Render draws in onto a transparent canvas sized by [CanvasSize] with the
// grid's top-left corner at (margin, margin), then applies opts.Scale.
//
// A fixed canvas smaller than the grid clips it.
func Render(ctx context.Context, opts Options, m *hexdump.Metrics, tr hexdump.TextRenderer, in Input) (image.Image, hexdump.Geometry, error) {
	cfg, err := opts.HexConfig()
	if err != nil {
		return nil, hexdump.Geometry{}, err
	}
	g, err := hexdump.Layout(cfg, m, in.Count, in.Address)
	if err != nil {
		return nil, hexdump.Geometry{}, err
	}

	observability.Pipeline().OnRenderStart(ctx, in.Count)
	start := time.Now()

	w, h := CanvasSize(opts, g)
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	origin := image.Pt(opts.Margin, opts.Margin)
	_, g, err = hexdump.Render(cfg, m, tr, canvas, origin, in.Data, in.Count, in.Address)
	observability.Pipeline().OnRenderComplete(ctx, g.Rows, time.Since(start), err)
	if err != nil {
		return nil, hexdump.Geometry{}, err
	}

	sw, sh := ScaledSize(opts, w, h)
	if sw == w && sh == h {
		return canvas, g, nil
	}
	return imaging.Resize(canvas, sw, sh, imaging.Lanczos), g, nil
}
