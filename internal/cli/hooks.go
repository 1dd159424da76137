package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks forwards observability events to the CLI logger at debug level.
// It is registered by the root command when --verbose is set.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnBuildStart(_ context.Context, ordering string, elementCount int) {
	h.logger.Debug("building poset", "ordering", ordering, "elements", elementCount)
}

func (h *logHooks) OnBuildComplete(_ context.Context, ordering string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("build failed", "ordering", ordering, "err", err)
		return
	}
	h.logger.Debug("build complete", "ordering", ordering, "size", size, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnValidateComplete(_ context.Context, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("validation failed", "size", size, "err", err)
		return
	}
	h.logger.Debug("validation passed", "size", size, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("rendering", "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render complete", "format", format, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "kind", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "kind", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache store", "kind", keyType, "bytes", size)
}
