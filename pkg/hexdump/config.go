package hexdump

import (
	"image/color"

	"github.com/jebreimo/HexPic/pkg/errors"
)

// Default layout values, matching the classic 32-column dump.
const (
	DefaultBytesPerRow = 32
	DefaultGroupSize   = 4
	DefaultByteGap     = 5
	DefaultGroupGap    = 5
)

// AddressGutter is the fixed spacing in pixels between the address column and
// the byte grid.
const AddressGutter = 10

// LandmarkInterval is the address period at which labels are redrawn mid-grid.
const LandmarkInterval = 0x80

// Config holds the layout settings for one render call.
//
// A Config is a plain value: callers build or modify it between renders and
// pass a copy into each call, so concurrent renders never share settings.
type Config struct {
	BytesPerRow int         // byte columns per row, > 0
	GroupSize   int         // bytes per visual group, > 0
	ByteGap     int         // pixels between adjacent bytes, >= 0
	GroupGap    int         // extra pixels after every GroupSize-th byte, >= 0
	ShowAddress bool        // draw the address column
	AlignData   bool        // shift the first row so columns match address mod BytesPerRow
	FadeInRows  int         // rows at the top that ramp up in opacity
	FadeOutRows int         // rows at the bottom that ramp down in opacity
	Color       color.NRGBA // glyph color; its alpha is replaced per row
}

// DefaultConfig returns the default layout: 32 columns in groups of 4, 5px
// gaps, address column on, aligned data, opaque black glyphs.
func DefaultConfig() Config {
	return Config{
		BytesPerRow: DefaultBytesPerRow,
		GroupSize:   DefaultGroupSize,
		ByteGap:     DefaultByteGap,
		GroupGap:    DefaultGroupGap,
		ShowAddress: true,
		AlignData:   true,
		Color:       color.NRGBA{A: 0xff},
	}
}

// Validate checks the settings that do not depend on the data being drawn.
// The fade bands are checked against the row count by [Layout].
func (c Config) Validate() error {
	if c.BytesPerRow <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "bytes per row must be positive, got %d", c.BytesPerRow)
	}
	if c.GroupSize <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "group size must be positive, got %d", c.GroupSize)
	}
	if c.ByteGap < 0 || c.GroupGap < 0 {
		return errors.New(errors.ErrCodeConfiguration, "gaps must not be negative (byte gap %d, group gap %d)", c.ByteGap, c.GroupGap)
	}
	if c.FadeInRows < 0 || c.FadeOutRows < 0 {
		return errors.New(errors.ErrCodeConfiguration, "fade rows must not be negative (in %d, out %d)", c.FadeInRows, c.FadeOutRows)
	}
	return nil
}
