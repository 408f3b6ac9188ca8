package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

const (
	heatmapWidth  = 800
	heatmapHeight = 600

	heatmapPlotLeft   = 90.0
	heatmapPlotRight  = 620.0
	heatmapPlotTop    = 70.0
	heatmapPlotBottom = 520.0

	colorbarLeft  = 650.0
	colorbarWidth = 24.0
	colorbarSteps = 200
)

// HeatmapChart draws a random 10x10 matrix through viridis with a colorbar.
func HeatmapChart(title string, opts Options) (*Figure, error) {
	return heatmapChart(HeatmapData(nil), title, opts)
}

func heatmapChart(data *mat.Dense, title string, opts Options) (*Figure, error) {
	rows, cols := data.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("empty heatmap matrix")
	}

	c := newCanvas(heatmapWidth, heatmapHeight, opts)
	dc := c.dc

	vmin, vmax := mat.Min(data), mat.Max(data)
	norm := func(v float64) float64 {
		if vmax == vmin {
			return 0.5
		}
		return (v - vmin) / (vmax - vmin)
	}

	// image convention: row 0 at the top
	f := frame{
		left: heatmapPlotLeft, right: heatmapPlotRight, top: heatmapPlotTop, bottom: heatmapPlotBottom,
		xmin: -0.5, xmax: float64(cols) - 0.5, ymin: float64(rows) - 0.5, ymax: -0.5,
	}

	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			x0, x1 := f.px(float64(col)-0.5), f.px(float64(col)+0.5)
			y0, y1 := f.py(float64(r)-0.5), f.py(float64(r)+0.5)
			dc.SetColor(Viridis(norm(data.At(r, col))))
			dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
			dc.Fill()
		}
	}

	c.axes(f, cellTicks(cols), cellTicks(rows), "X Axis", "Y Axis", false)
	c.colorbar(vmin, vmax, "Value")
	c.title(title)

	return &Figure{Kind: Heatmap, Title: title, Image: dc.Image()}, nil
}

// cellTicks labels every other cell index.
func cellTicks(n int) []tick {
	var out []tick
	for i := 0; i < n; i += 2 {
		out = append(out, tick{value: float64(i), label: fmt.Sprint(i)})
	}
	return out
}

func (c *canvas) colorbar(vmin, vmax float64, label string) {
	dc := c.dc
	f := frame{
		left: colorbarLeft, right: colorbarLeft + colorbarWidth,
		top: heatmapPlotTop, bottom: heatmapPlotBottom,
		xmin: 0, xmax: 1, ymin: vmin, ymax: vmax,
	}
	if vmax == vmin {
		f.ymin, f.ymax = vmin-0.5, vmax+0.5
	}

	step := (f.bottom - f.top) / colorbarSteps
	for i := 0; i < colorbarSteps; i++ {
		t := (float64(i) + 0.5) / colorbarSteps
		dc.SetColor(Viridis(t))
		dc.DrawRectangle(f.left, f.bottom-float64(i+1)*step, colorbarWidth, step+0.5)
		dc.Fill()
	}

	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawRectangle(f.left, f.top, colorbarWidth, f.bottom-f.top)
	dc.Stroke()

	c.font(tickFontScale)
	for _, t := range majorTicks(f.ymin, f.ymax) {
		y := f.py(t.value)
		dc.DrawLine(f.right, y, f.right+tickLength, y)
		dc.Stroke()
		dc.DrawStringAnchored(t.label, f.right+tickLength+4, y, 0, 0.35)
	}
	c.font(1)
	c.verticalText(label, f.right+axisLabelGap+30, (f.top+f.bottom)/2)
}
