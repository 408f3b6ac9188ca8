package display

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"time"

	"chart-demo/internal/charts"
	"chart-demo/internal/infra/config"
	"chart-demo/internal/infra/exec"
	"chart-demo/internal/infra/fs"
	logging "chart-demo/internal/infra/log"

	"go.uber.org/zap"
)

// Sink presents rendered figures. Whether Show blocks until the figure is
// dismissed depends on the backend.
type Sink interface {
	Show(ctx context.Context, fig *charts.Figure) error
	Close() error
}

// New builds the sink named by cfg.Backend.
func New(cfg config.DisplayConfig) (Sink, error) {
	switch cfg.Backend {
	case config.BackendViewer:
		return NewViewer(cfg), nil
	case config.BackendNone:
		return Headless{}, nil
	default:
		return nil, fmt.Errorf("unknown display backend %q", cfg.Backend)
	}
}

// Headless encodes figures and throws the bytes away.
type Headless struct{}

func (Headless) Show(ctx context.Context, fig *charts.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := png.Encode(io.Discard, fig.Image); err != nil {
		return fmt.Errorf("failed to encode %s chart: %w", fig.Kind, err)
	}
	return nil
}

func (Headless) Close() error { return nil }

// Viewer spools each figure to a temp PNG and opens it with an external program.
type Viewer struct {
	command     string
	args        []string
	waitTimeout time.Duration
	viewTimeout time.Duration
	keepFiles   bool
	spool       *fs.Spool
}

func NewViewer(cfg config.DisplayConfig) *Viewer {
	command, args := exec.ResolveViewer(cfg.Viewer, cfg.ViewerArgs)
	return &Viewer{
		command:     command,
		args:        args,
		waitTimeout: time.Duration(cfg.WaitTimeout) * time.Second,
		viewTimeout: time.Duration(cfg.ViewTimeout) * time.Second,
		keepFiles:   cfg.KeepFiles,
		spool:       fs.NewSpool(cfg.TempDir),
	}
}

func (v *Viewer) Show(ctx context.Context, fig *charts.Figure) error {
	start := time.Now()

	path, err := v.spool.WritePNG(fig.Kind.String(), fig.Image)
	if err != nil {
		return err
	}
	if err := fs.WaitForFile(ctx, path, v.waitTimeout); err != nil {
		return fmt.Errorf("chart image not ready: %w", err)
	}

	logging.LogInfo("Opening chart in viewer",
		zap.String("kind", fig.Kind.String()),
		zap.String("viewer", v.command),
		zap.String("path", path))

	args := append(append([]string{}, v.args...), path)
	output, err := exec.RunViewer(ctx, v.viewTimeout, v.command, args...)
	if err != nil {
		logging.LogError("Viewer failed",
			zap.String("viewer", v.command),
			zap.String("output", string(output)),
			zap.Error(err))
		return err
	}

	logging.LogInfo("Viewer closed",
		zap.String("kind", fig.Kind.String()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// Close removes spooled images unless they are kept for detached viewers.
func (v *Viewer) Close() error {
	if v.keepFiles {
		if dir := v.spool.Dir(); dir != "" {
			logging.LogInfo("Keeping chart images", zap.String("dir", dir))
		}
		return nil
	}
	return v.spool.Remove()
}
