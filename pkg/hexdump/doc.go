// Package hexdump lays out and draws a byte sequence as a fixed-grid
// hexadecimal dump on a raster canvas.
//
// # Overview
//
// Every byte becomes a two-glyph hex pair placed in a row/column grid. An
// optional address column runs down the left edge, and the first and last
// rows of the grid can fade in and out with a linear alpha ramp.
//
// The package is split the same way the data flows:
//
//  1. [Measure] builds [Metrics] for the 16 hex glyphs from a [TextRenderer].
//  2. [FirstColumn] and [AddressDigits] derive the address-dependent layout.
//  3. [Layout] computes the canvas size and the grid's pixel geometry.
//  4. [FadeInAlpha] and [FadeOutAlpha] give the per-row opacity in fade bands.
//  5. [Render] walks the rows top to bottom and draws labels and glyphs.
//
// # Rendering
//
//	m, err := hexdump.Measure(tr)
//	if err != nil {
//	    return err
//	}
//	img, geom, err := hexdump.Render(cfg, m, tr, nil, image.Point{}, hexdump.Bytes(buf), len(buf), addr)
//
// Sizing errors (bad configuration, unmeasurable glyphs) are reported before
// any pixel is written. A byte value outside 0..255 or a failing draw
// primitive aborts the sweep and may leave the canvas partially drawn; callers
// that need atomic output should render to a scratch canvas.
//
// # Address Labels
//
// The address label is drawn at the first row and again at every row that
// starts on a multiple of 0x80, regardless of the row width. Labels use the
// minimum number of hex digits that can represent the largest address
// rendered.
//
// # Concurrency
//
// A render call is synchronous and single-threaded. [Metrics] are read-only
// once built and may be shared by concurrent renders; [TextRenderer]
// implementations generally may not.
package hexdump
