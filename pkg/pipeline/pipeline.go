// Package pipeline provides the render pipeline shared by the CLI and the
// HTTP server.
//
// # Architecture
//
// A render runs five stages:
//
//  1. Read: load the byte range from a file, or take it from the caller
//  2. Measure: load the font face and measure the 16 hex glyphs
//  3. Layout: compute the grid geometry and the canvas size
//  4. Render: draw the grid onto a transparent canvas, then scale it
//  5. Encode: write the canvas as PNG
//
// Glyph metrics and encoded images are cached through [cache.Cache]; the
// render itself is deterministic, so a cached PNG is byte-identical to a
// fresh one.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Input = "firmware.bin"
//	opts.Address = 0x1000
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("firmware.png", result.PNG, 0644)
package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jebreimo/HexPic/pkg/cache"
	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/fonts"
	"github.com/jebreimo/HexPic/pkg/glyph"
	"github.com/jebreimo/HexPic/pkg/hexdump"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCount is the number of bytes rendered when none is given.
	DefaultCount = 1024

	// DefaultMargin is the transparent border around the grid in pixels.
	DefaultMargin = 2

	// DefaultScale leaves the rendered image at its natural size.
	DefaultScale = 1.0

	// DefaultColor is the text color.
	DefaultColor = "000000"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one render. Field tags let the same
// struct be filled from JSON requests and TOML or YAML config files.
//
// Zero values for gaps, fades, margin and address are meaningful, so start
// from [DefaultOptions] rather than an empty struct.
type Options struct {
	// Input options
	Input   string `json:"input,omitempty" toml:"input" yaml:"input"`
	JSON    bool   `json:"json,omitempty" toml:"json" yaml:"json"` // Input is a JSON document of byte values
	Address int64  `json:"address" toml:"address" yaml:"address"`  // Negative counts back from the end of the file
	Count   int    `json:"count" toml:"count" yaml:"count"`

	// Layout options
	Columns     int  `json:"columns" toml:"columns" yaml:"columns"`
	GroupSize   int  `json:"group_size" toml:"group_size" yaml:"group_size"`
	ByteGap     int  `json:"byte_gap" toml:"byte_gap" yaml:"byte_gap"`
	GroupGap    int  `json:"group_gap" toml:"group_gap" yaml:"group_gap"`
	HideAddress bool `json:"hide_address,omitempty" toml:"hide_address" yaml:"hide_address"`
	NoAlign     bool `json:"no_align,omitempty" toml:"no_align" yaml:"no_align"`
	FadeIn      int  `json:"fade_in,omitempty" toml:"fade_in" yaml:"fade_in"`
	FadeOut     int  `json:"fade_out,omitempty" toml:"fade_out" yaml:"fade_out"`

	// Font options
	Font     string  `json:"font,omitempty" toml:"font" yaml:"font"`
	FontSize float64 `json:"font_size" toml:"font_size" yaml:"font_size"`
	Engine   string  `json:"engine,omitempty" toml:"engine" yaml:"engine"`
	Backend  string  `json:"backend,omitempty" toml:"backend" yaml:"backend"`

	// Output options
	Color   string  `json:"color,omitempty" toml:"color" yaml:"color"`
	Width   int     `json:"width,omitempty" toml:"width" yaml:"width"`   // Non-positive auto-sizes
	Height  int     `json:"height,omitempty" toml:"height" yaml:"height"` // Non-positive auto-sizes
	Margin  int     `json:"margin" toml:"margin" yaml:"margin"`
	Scale   float64 `json:"scale" toml:"scale" yaml:"scale"`
	Refresh bool    `json:"refresh,omitempty" toml:"refresh" yaml:"refresh"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-" yaml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	return Options{
		Count:     DefaultCount,
		Columns:   hexdump.DefaultBytesPerRow,
		GroupSize: hexdump.DefaultGroupSize,
		ByteGap:   hexdump.DefaultByteGap,
		GroupGap:  hexdump.DefaultGroupGap,
		FontSize:  glyph.DefaultSize,
		Engine:    glyph.EngineOpenType,
		Backend:   glyph.BackendXImage,
		Color:     DefaultColor,
		Margin:    DefaultMargin,
		Scale:     DefaultScale,
	}
}

// Input is a byte run ready to render.
type Input struct {
	Source  string       // file path or a description such as "request body"
	Address int64        // address of the first byte
	Count   int          // bytes to lay out; may exceed Data.Len()
	Data    hexdump.Data // the bytes
	Hash    string       // content hash for cache keys
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Address is the resolved address of the first byte.
	Address int64

	// Geometry is the grid layout.
	Geometry hexdump.Geometry

	// Width and Height are the final image size after margins and scaling.
	Width  int
	Height int

	// Image is the rendered canvas. It is nil when PNG came from the cache.
	Image image.Image

	// PNG is the encoded image.
	PNG []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BytesRead   int
	ReadTime    time.Duration
	MeasureTime time.Duration
	RenderTime  time.Duration
	EncodeTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	MetricsHit bool // Whether glyph metrics came from cache
	RenderHit  bool // Whether the PNG came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateEngine checks that a font engine is valid.
func ValidateEngine(engine string) error {
	if !glyph.ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid engine: %q (must be one of: opentype, freetype, basic)", engine)
	}
	return nil
}

// ValidateBackend checks that a drawing backend is valid.
func ValidateBackend(backend string) error {
	if !glyph.ValidBackends[backend] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid backend: %q (must be one of: ximage, gg)", backend)
	}
	return nil
}

// ParseColor parses a text color. It accepts CSS hex forms (#rrggbb, #rgb,
// and rrggbb without the #) and, for compatibility with plain integer
// input, any other run of hex digits as the value 0xRRGGBB.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultColor
	}
	hex := strings.TrimPrefix(s, "#")
	if strings.HasPrefix(s, "#") && len(hex) != 6 && len(hex) != 3 {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidInput, "invalid color %q (want #rrggbb or #rgb)", s)
	}
	if strings.HasPrefix(s, "#") || len(hex) == 6 {
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: hexdump.Opaque}, nil
	}
	v, err := strconv.ParseUint(hex, 16, 24)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q (want RRGGBB)", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: hexdump.Opaque}, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults fills in zero values that have no meaning of their
// own and checks the rest. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Columns == 0 {
		o.Columns = hexdump.DefaultBytesPerRow
	}
	if o.GroupSize == 0 {
		o.GroupSize = hexdump.DefaultGroupSize
	}
	if o.FontSize == 0 {
		o.FontSize = glyph.DefaultSize
	}
	if o.Engine == "" {
		o.Engine = glyph.EngineOpenType
	}
	if o.Backend == "" {
		o.Backend = glyph.BackendXImage
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if err := ValidateBackend(o.Backend); err != nil {
		return err
	}
	if _, err := ParseColor(o.Color); err != nil {
		return err
	}
	if o.Count < 0 {
		return errors.New(errors.ErrCodeConfiguration, "count must not be negative, got %d", o.Count)
	}
	if o.FontSize < 0 {
		return errors.New(errors.ErrCodeConfiguration, "font size must be positive, got %g", o.FontSize)
	}
	if o.Margin < 0 {
		return errors.New(errors.ErrCodeConfiguration, "margin must not be negative, got %d", o.Margin)
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeConfiguration, "scale must be positive, got %g", o.Scale)
	}
	if _, err := o.HexConfig(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Copy returns a copy of o that ValidateAndSetDefaults will check again,
// for callers that modify validated options.
func (o Options) Copy() Options {
	o.validated = false
	return o
}

// HexConfig returns the grid configuration described by the options.
func (o *Options) HexConfig() (hexdump.Config, error) {
	c, err := ParseColor(o.Color)
	if err != nil {
		return hexdump.Config{}, err
	}
	cfg := hexdump.Config{
		BytesPerRow: o.Columns,
		GroupSize:   o.GroupSize,
		ByteGap:     o.ByteGap,
		GroupGap:    o.GroupGap,
		ShowAddress: !o.HideAddress,
		AlignData:   !o.NoAlign,
		FadeInRows:  o.FadeIn,
		FadeOutRows: o.FadeOut,
		Color:       c,
	}
	if err := cfg.Validate(); err != nil {
		return hexdump.Config{}, err
	}
	return cfg, nil
}

// FaceOptions returns the font selection described by the options.
func (o *Options) FaceOptions() glyph.FaceOptions {
	return glyph.FaceOptions{Font: o.Font, Size: o.FontSize, Engine: o.Engine}
}

// MetricsKeyOpts returns cache key options for glyph metrics.
func (o *Options) MetricsKeyOpts(fontDigest string) cache.MetricsKeyOpts {
	return cache.MetricsKeyOpts{
		FontDigest: fontDigest,
		Engine:     o.Engine,
		Backend:    o.Backend,
		Size:       o.FontSize,
	}
}

// ArtifactKeyOpts returns cache key options for the rendered image.
func (o *Options) ArtifactKeyOpts(metricsKey string, count int) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Count:       count,
		BytesPerRow: o.Columns,
		GroupSize:   o.GroupSize,
		ByteGap:     o.ByteGap,
		GroupGap:    o.GroupGap,
		ShowAddress: !o.HideAddress,
		AlignData:   !o.NoAlign,
		FadeIn:      o.FadeIn,
		FadeOut:     o.FadeOut,
		Color:       strings.ToLower(strings.TrimPrefix(o.Color, "#")),
		Width:       o.Width,
		Height:      o.Height,
		Margin:      o.Margin,
		Scale:       o.Scale,
		Metrics:     metricsKey,
	}
}

// String summarizes the layout options for log lines.
func (o *Options) String() string {
	return fmt.Sprintf("columns=%d group=%d fade=%d/%d font=%s@%g", o.Columns, o.GroupSize, o.FadeIn, o.FadeOut, fontName(o.Font), o.FontSize)
}

func fontName(name string) string {
	if name == "" {
		return fonts.DefaultName
	}
	return name
}
