package hexdump

// Opaque is the alpha used outside the fade bands.
const Opaque = 0xff

// FadeInAlpha returns the alpha of row (0-based from the top) inside a
// fade-in band of band rows: (row+1)*255/(band+1).
func FadeInAlpha(row, band int) uint8 {
	return uint8((row + 1) * 255 / (band + 1))
}

// FadeOutAlpha returns the alpha of absolute row in a grid of rows rows whose
// last band rows fade out: (rows-row)*255/(band+1). The last row is the
// faintest.
func FadeOutAlpha(rows, row, band int) uint8 {
	return uint8((rows - row) * 255 / (band + 1))
}

// Phase is the part of the grid a row belongs to.
type Phase int

// Phases in drawing order.
const (
	PhaseFadeIn Phase = iota
	PhaseBody
	PhaseFadeOut
)

func (p Phase) String() string {
	switch p {
	case PhaseFadeIn:
		return "fade-in"
	case PhaseBody:
		return "body"
	case PhaseFadeOut:
		return "fade-out"
	}
	return "unknown"
}

// band is a contiguous run of rows sharing one alpha function.
type band struct {
	phase      Phase
	start, end int
	alpha      func(row int) uint8
}

// bands splits rows into the fade-in, body and fade-out bands. Empty bands
// are kept so the phases always come in order.
func bands(cfg Config, rows int) []band {
	in, out := cfg.FadeInRows, cfg.FadeOutRows
	return []band{
		{PhaseFadeIn, 0, in, func(row int) uint8 { return FadeInAlpha(row, in) }},
		{PhaseBody, in, rows - out, func(int) uint8 { return Opaque }},
		{PhaseFadeOut, rows - out, rows, func(row int) uint8 { return FadeOutAlpha(rows, row, out) }},
	}
}

// RowPhase returns the phase of row in a grid of rows rows.
func RowPhase(cfg Config, rows, row int) Phase {
	for _, b := range bands(cfg, rows) {
		if row >= b.start && row < b.end {
			return b.phase
		}
	}
	return PhaseBody
}

// RowAlpha returns the alpha of row in a grid of rows rows.
func RowAlpha(cfg Config, rows, row int) uint8 {
	for _, b := range bands(cfg, rows) {
		if row >= b.start && row < b.end {
			return b.alpha(row)
		}
	}
	return Opaque
}
