package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes pipeline and HTTP events to a logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to l, or to log.Default() if l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnGenerateStart(_ context.Context, lines, minRungs, maxRungs int, strategy string) {
	h.Logger.Debug("generate start", "lines", lines, "min", minRungs, "max", maxRungs, "strategy", strategy)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, rungs int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("generate failed", "err", err, "duration", d)
		return
	}
	h.Logger.Debug("generate complete", "rungs", rungs, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.Logger.Debug("render start", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "format", format, "err", err, "duration", d)
		return
	}
	h.Logger.Debug("render complete", "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Info("response", "method", method, "path", path, "status", status, "duration", d)
}
