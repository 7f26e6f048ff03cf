package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level. Timestamps are only
// reported at debug level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		TimeFormat: "15:04:05.00",
		Level:      level,
	})
	l.SetReportTimestamp(level <= log.DebugLevel)
	return l
}

// stage times one named step of a command.
type stage struct {
	logger *log.Logger
	name   string
	start  time.Time
}

func startStage(l *log.Logger, name string) *stage {
	l.Debug("stage started", "stage", name)
	return &stage{logger: l, name: name, start: time.Now()}
}

// donef logs the formatted message followed by the elapsed time, e.g.
// "Saved ladder.pdf (12ms)", and returns the elapsed time.
func (s *stage) donef(format string, args ...any) time.Duration {
	elapsed := time.Since(s.start).Round(time.Millisecond)
	s.logger.Infof("%s (%s)", fmt.Sprintf(format, args...), elapsed)
	s.logger.Debug("stage finished", "stage", s.name, "elapsed", elapsed)
	return elapsed
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root pre-run, or
// log.Default when the command runs without one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
