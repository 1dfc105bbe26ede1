package cache

import "fmt"

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey identifies a rendered image: the hashed input bytes, where
	// they start, and everything that changes how they are drawn.
	ArtifactKey(dataHash string, address int64, opts ArtifactKeyOpts) string

	// MetricsKey identifies measured glyph metrics for one font selection.
	MetricsKey(opts MetricsKeyOpts) string
}

// ArtifactKeyOpts are the render options that affect the output image.
type ArtifactKeyOpts struct {
	Count       int     `json:"count"`
	BytesPerRow int     `json:"bytes_per_row"`
	GroupSize   int     `json:"group_size"`
	ByteGap     int     `json:"byte_gap"`
	GroupGap    int     `json:"group_gap"`
	ShowAddress bool    `json:"show_address"`
	AlignData   bool    `json:"align_data"`
	FadeIn      int     `json:"fade_in"`
	FadeOut     int     `json:"fade_out"`
	Color       string  `json:"color"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Margin      int     `json:"margin"`
	Scale       float64 `json:"scale"`
	Metrics     string  `json:"metrics"` // MetricsKey of the font selection
}

// MetricsKeyOpts select a font face and drawing backend.
type MetricsKeyOpts struct {
	FontDigest string  `json:"font_digest"`
	Engine     string  `json:"engine"`
	Backend    string  `json:"backend"`
	Size       float64 `json:"size"`
}

// DefaultKeyer produces keys of the form kind:sha256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(dataHash string, address int64, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dataHash, fmt.Sprintf("%x", address), opts)
}

// MetricsKey implements Keyer.
func (DefaultKeyer) MetricsKey(opts MetricsKeyOpts) string {
	return hashKey("metrics", opts)
}
