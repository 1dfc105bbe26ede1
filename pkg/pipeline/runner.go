package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jebreimo/HexPic/pkg/cache"
	"github.com/jebreimo/HexPic/pkg/glyph"
	"github.com/jebreimo/HexPic/pkg/hexdump"
	hexio "github.com/jebreimo/HexPic/pkg/io"
	"github.com/jebreimo/HexPic/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// Font faces are not safe for concurrent use, so every render loads its own
// face. Measured metrics are immutable and shared across renders.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	mu      sync.Mutex
	metrics map[string]*hexdump.Metrics
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		metrics: make(map[string]*hexdump.Metrics),
	}
}

// Execute runs the complete read → measure → render → encode pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	readStart := time.Now()
	in, err := Read(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	readTime := time.Since(readStart)
	r.Logger.Info("read input",
		"source", in.Source,
		"address", fmt.Sprintf("%#x", in.Address),
		"bytes", in.Data.Len(),
		"duration", readTime)

	result, err := r.RenderInput(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.ReadTime = readTime
	return result, nil
}

// RenderInput renders an already loaded input, serving the PNG from cache
// when an identical render was stored before.
func (r *Runner) RenderInput(ctx context.Context, in Input, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Stage 1: Measure
	measureStart := time.Now()
	m, tr, metricsKey, metricsHit, err := r.MeasureWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("measure: %w", err)
	}
	result := &Result{Address: in.Address}
	result.Stats.BytesRead = in.Data.Len()
	result.Stats.MeasureTime = time.Since(measureStart)
	result.CacheInfo.MetricsHit = metricsHit

	// Stage 2: Render, or reuse a cached artifact
	cacheKey := r.Keyer.ArtifactKey(in.Hash, in.Address, opts.ArtifactKeyOpts(metricsKey, in.Count))
	if !opts.Refresh {
		if a, ok := r.loadArtifact(ctx, cacheKey); ok {
			observability.Cache().OnCacheHit(ctx, "artifact")
			result.Geometry = a.Geometry
			result.Width, result.Height = a.Width, a.Height
			result.PNG = a.PNG
			result.CacheInfo.RenderHit = true
			r.Logger.Debug("artifact from cache", "key", cacheKey)
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	renderStart := time.Now()
	img, g, err := Render(ctx, opts, m, tr, in)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Image = img
	result.Geometry = g
	result.Width, result.Height = img.Bounds().Dx(), img.Bounds().Dy()
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered grid",
		"rows", g.Rows,
		"size", fmt.Sprintf("%dx%d", result.Width, result.Height),
		"duration", result.Stats.RenderTime)

	// Stage 3: Encode
	encodeStart := time.Now()
	png, err := hexio.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.PNG = png
	result.Stats.EncodeTime = time.Since(encodeStart)

	r.storeArtifact(ctx, cacheKey, artifact{
		PNG:      png,
		Geometry: g,
		Width:    result.Width,
		Height:   result.Height,
	})
	return result, nil
}

// Measure is a convenience wrapper around MeasureWithCacheInfo.
func (r *Runner) Measure(ctx context.Context, opts Options) (*hexdump.Metrics, hexdump.TextRenderer, error) {
	m, tr, _, _, err := r.MeasureWithCacheInfo(ctx, opts)
	return m, tr, err
}

// MeasureWithCacheInfo loads the selected face and returns its metrics, a
// renderer bound to a fresh face, the metrics cache key and whether the
// metrics came from cache.
func (r *Runner) MeasureWithCacheInfo(ctx context.Context, opts Options) (*hexdump.Metrics, hexdump.TextRenderer, string, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, "", false, err
	}
	start := time.Now()
	faceOpts := opts.FaceOptions()
	label := fontName(opts.Font)

	digest, err := glyph.FontDigest(faceOpts)
	if err != nil {
		observability.Pipeline().OnMeasureComplete(ctx, label, 0, 0, time.Since(start), err)
		return nil, nil, "", false, err
	}
	face, err := glyph.LoadFace(faceOpts)
	if err != nil {
		observability.Pipeline().OnMeasureComplete(ctx, label, 0, 0, time.Since(start), err)
		return nil, nil, "", false, err
	}
	tr, err := glyph.NewRenderer(face, opts.Backend)
	if err != nil {
		return nil, nil, "", false, err
	}

	key := r.Keyer.MetricsKey(opts.MetricsKeyOpts(digest))
	if m, ok := r.loadMetrics(ctx, key); ok {
		observability.Cache().OnCacheHit(ctx, "metrics")
		return m, tr, key, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "metrics")

	m, err := hexdump.Measure(tr)
	observability.Pipeline().OnMeasureComplete(ctx, label, cellW(m), cellH(m), time.Since(start), err)
	if err != nil {
		return nil, nil, "", false, err
	}
	r.storeMetrics(ctx, key, m)
	r.Logger.Debug("measured glyphs", "font", label, "cell", fmt.Sprintf("%dx%d", m.CellWidth, m.CellHeight))
	return m, tr, key, false, nil
}

// Geometry returns the grid geometry and final image size for count bytes
// at address without drawing anything.
func (r *Runner) Geometry(ctx context.Context, opts Options, count int, address int64) (hexdump.Geometry, int, int, error) {
	m, _, err := r.Measure(ctx, opts)
	if err != nil {
		return hexdump.Geometry{}, 0, 0, fmt.Errorf("measure: %w", err)
	}
	g, err := Layout(opts, m, count, address)
	if err != nil {
		return hexdump.Geometry{}, 0, 0, fmt.Errorf("layout: %w", err)
	}
	w, h := CanvasSize(opts, g)
	w, h = ScaledSize(opts, w, h)
	return g, w, h, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// artifact is the cached form of a render.
type artifact struct {
	PNG      []byte           `json:"png"`
	Geometry hexdump.Geometry `json:"geometry"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
}

func (r *Runner) loadArtifact(ctx context.Context, key string) (artifact, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		return artifact{}, false
	}
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil || len(a.PNG) == 0 {
		return artifact{}, false
	}
	return a, true
}

func (r *Runner) storeArtifact(ctx context.Context, key string, a artifact) {
	data, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
}

func (r *Runner) loadMetrics(ctx context.Context, key string) (*hexdump.Metrics, bool) {
	r.mu.Lock()
	m, ok := r.metrics[key]
	r.mu.Unlock()
	if ok {
		return m, true
	}

	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return nil, false
	}
	m = new(hexdump.Metrics)
	if err := json.Unmarshal(data, m); err != nil || m.CellWidth <= 0 {
		return nil, false
	}
	r.mu.Lock()
	r.metrics[key] = m
	r.mu.Unlock()
	return m, true
}

func (r *Runner) storeMetrics(ctx context.Context, key string, m *hexdump.Metrics) {
	r.mu.Lock()
	r.metrics[key] = m
	r.mu.Unlock()

	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLMetrics); err == nil {
		observability.Cache().OnCacheSet(ctx, "metrics", len(data))
	}
}

func cellW(m *hexdump.Metrics) int {
	if m == nil {
		return 0
	}
	return m.CellWidth
}

func cellH(m *hexdump.Metrics) int {
	if m == nil {
		return 0
	}
	return m.CellHeight
}
