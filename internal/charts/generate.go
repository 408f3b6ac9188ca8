package charts

import (
	"fmt"
	"image"
	"time"

	logging "chart-demo/internal/infra/log"

	"go.uber.org/zap"
)

// Figure is a rendered chart ready for a display sink.
type Figure struct {
	Kind  Kind
	Title string
	Image image.Image
}

// Generator synthesizes a kind's dataset and draws it.
type Generator func(title string, opts Options) (*Figure, error)

var generators = map[Kind]Generator{
	Line:    LineChart,
	Bar:     BarChart,
	Pie:     PieChart,
	Scatter: ScatterPlot,
	Heatmap: HeatmapChart,
}

// Render dispatches to the generator of a concrete kind.
func Render(kind Kind, title string, opts Options) (*Figure, error) {
	generate, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("no generator for chart kind %s", kind)
	}

	start := time.Now()
	fig, err := generate(title, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", kind, err)
	}

	bounds := fig.Image.Bounds()
	logging.LogDebug("Chart rendered",
		zap.String("kind", kind.String()),
		zap.String("title", title),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	return fig, nil
}
