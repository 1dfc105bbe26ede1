package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. It implements
// PipelineHooks, CacheHooks and HTTPHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks creates hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnReadStart(_ context.Context, source string) {
	h.logger.Debug("read start", "source", source)
}

func (h *LogHooks) OnReadComplete(_ context.Context, source string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("read failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("read complete", "source", source, "bytes", size, "took", d)
}

func (h *LogHooks) OnMeasureComplete(_ context.Context, font string, cw, ch int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("measure failed", "font", font, "err", err)
		return
	}
	h.logger.Debug("glyphs measured", "font", font, "cell", cellSize(cw, ch), "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, count int) {
	h.logger.Debug("render start", "bytes", count)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, rows int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "err", err)
		return
	}
	h.logger.Debug("render complete", "rows", rows, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status, "took", d)
}

func cellSize(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
