package charts

import (
	logging "chart-demo/internal/infra/log"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

const (
	scatterWidth  = 1000
	scatterHeight = 600

	scatterPlotLeft   = 100.0
	scatterPlotRight  = 960.0
	scatterPlotTop    = 70.0
	scatterPlotBottom = 520.0

	scatterRadius = 5.0
	scatterAlpha  = 0.6
)

// ScatterPlot draws the seeded point cloud in semi-transparent purple.
func ScatterPlot(title string, opts Options) (*Figure, error) {
	pts := ScatterData(ScatterSeed)

	logging.LogDebug("Scatter data synthesized",
		zap.Int("points", len(pts.X)),
		zap.Float64("correlation", stat.Correlation(pts.X, pts.Y, nil)))

	c := newCanvas(scatterWidth, scatterHeight, opts)
	dc := c.dc

	xlo, xhi := minMax(pts.X)
	ylo, yhi := minMax(pts.Y)
	xmin, xmax := padRange(xlo, xhi)
	ymin, ymax := padRange(ylo, yhi)
	f := frame{
		left: scatterPlotLeft, right: scatterPlotRight, top: scatterPlotTop, bottom: scatterPlotBottom,
		xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax,
	}

	c.axes(f, majorTicks(xmin, xmax), majorTicks(ymin, ymax), "X Axis", "Y Axis", true)

	dc.SetRGBA(0.5, 0, 0.5, scatterAlpha)
	for i := range pts.X {
		dc.DrawCircle(f.px(pts.X[i]), f.py(pts.Y[i]), scatterRadius)
		dc.Fill()
	}

	c.title(title)

	return &Figure{Kind: Scatter, Title: title, Image: dc.Image()}, nil
}
