package pipeline

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/observability"
)

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnGenerateStart(context.Context, int, int, int, string) {
	h.record("generate:start")
}

func (h *recordingHooks) OnGenerateComplete(_ context.Context, _ int, _ time.Duration, err error) {
	if err != nil {
		h.record("generate:error")
		return
	}
	h.record("generate:done")
}

func (h *recordingHooks) OnRenderStart(_ context.Context, format string) {
	h.record("render:start:" + format)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, format string, _ int, _ time.Duration, _ error) {
	h.record("render:done:" + format)
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Lines: 3, MinRungs: 1, MaxRungs: 2}
	require.NoError(t, opts.ValidateAndSetDefaults())
	require.Equal(t, "baseline", opts.Strategy)
	require.Equal(t, "pdf", opts.Format)
	require.Equal(t, "a4", opts.Page)
	require.NotZero(t, opts.Seed)
	require.NotNil(t, opts.Logger)

	seed := opts.Seed
	require.NoError(t, opts.ValidateAndSetDefaults())
	require.Equal(t, seed, opts.Seed, "second call must not redraw the seed")
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"one line", Options{Lines: 1}, errors.ErrCodeInvalidParameter},
		{"negative min", Options{Lines: 3, MinRungs: -1, MaxRungs: 2}, errors.ErrCodeInvalidParameter},
		{"min above max", Options{Lines: 3, MinRungs: 4, MaxRungs: 2}, errors.ErrCodeInvalidParameter},
		{"bad strategy", Options{Lines: 3, Strategy: "zigzag"}, errors.ErrCodeInvalidParameter},
		{"bad margin", Options{Lines: 3, MarginRatio: 0.5}, errors.ErrCodeInvalidParameter},
		{"bad format", Options{Lines: 3, Format: "gif"}, errors.ErrCodeInvalidFormat},
		{"bad page", Options{Lines: 3, Page: "legal"}, errors.ErrCodeInvalidParameter},
		{"bad scale", Options{Lines: 3, PNGScale: -1}, errors.ErrCodeInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			require.Error(t, err)
			require.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestExecute(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	r := NewRunner(nil)
	res, err := r.Execute(context.Background(), Options{
		Lines:    5,
		MinRungs: 4,
		MaxRungs: 8,
		Format:   "svg",
		Seed:     7,
	})
	require.NoError(t, err)

	require.Equal(t, "svg", res.Format)
	require.Equal(t, uint64(7), res.Seed)
	require.Equal(t, 5, res.Diagram.LineCount)
	require.True(t, res.Mapping.Valid())
	require.GreaterOrEqual(t, res.Stats.Rungs, 4)
	require.LessOrEqual(t, res.Stats.Rungs, 8)
	require.Equal(t, len(res.Diagram.DistinctRows()), res.Stats.Rows)
	require.Equal(t, len(res.Artifact), res.Stats.Bytes)
	require.True(t, strings.HasPrefix(string(res.Artifact), "<svg"))
	require.Len(t, res.Layout.Lines, 5)

	require.Equal(t, []string{
		"generate:start", "generate:done",
		"render:start:svg", "render:done:svg",
	}, hooks.events)
}

func TestExecuteFormats(t *testing.T) {
	r := NewRunner(nil)
	for _, format := range []string{"pdf", "png", "json"} {
		t.Run(format, func(t *testing.T) {
			res, err := r.Execute(context.Background(), Options{
				Lines: 4, MinRungs: 2, MaxRungs: 5, Format: format, Seed: 3,
			})
			require.NoError(t, err)
			require.NotEmpty(t, res.Artifact)
			switch format {
			case "pdf":
				require.True(t, bytes.HasPrefix(res.Artifact, []byte("%PDF")))
			case "png":
				require.True(t, bytes.HasPrefix(res.Artifact, []byte("\x89PNG")))
			case "json":
				require.Contains(t, string(res.Artifact), `"mapping"`)
			}
		})
	}
}

func TestExecuteDeterministic(t *testing.T) {
	r := NewRunner(nil)
	opts := Options{Lines: 6, MinRungs: 5, MaxRungs: 12, Strategy: "connected", Seed: 99, Format: "json"}

	a, err := r.Execute(context.Background(), opts)
	require.NoError(t, err)
	b, err := r.Execute(context.Background(), opts)
	require.NoError(t, err)

	require.Equal(t, a.Diagram.Rungs, b.Diagram.Rungs)
	require.Equal(t, a.Mapping, b.Mapping)
	require.Empty(t, a.Diagram.Uncovered())
}

func TestExecuteConnectivityFailure(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	_, err := NewRunner(nil).Execute(context.Background(), Options{
		Lines: 6, MinRungs: 0, MaxRungs: 0, Strategy: "connected",
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrCodeConnectivity))
	require.Equal(t, []string{"generate:start", "generate:error"}, hooks.events)
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).Execute(ctx, Options{Lines: 3, MinRungs: 1, MaxRungs: 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecuteZeroMarginKeepsEdgeRowsEmpty(t *testing.T) {
	r := NewRunner(nil)
	for seed := uint64(1); seed <= 20; seed++ {
		res, err := r.Execute(context.Background(), Options{
			Lines: 6, MinRungs: 10, MaxRungs: 10, Strategy: "connected",
			MarginRatio: 0, Seed: seed, Format: "json",
		})
		require.NoError(t, err)

		d := res.Diagram
		require.Equal(t, 20, d.Height)
		for _, rung := range d.Rungs {
			require.Greater(t, rung.Row, 0, "seed %d: rung on the top row", seed)
			require.Less(t, rung.Row, d.Height-1, "seed %d: rung on the bottom row", seed)
		}
	}
}
