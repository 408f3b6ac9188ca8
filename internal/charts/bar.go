package charts

import (
	"image/color"
	"math"
)

const (
	barWidth  = 1000
	barHeight = 600

	barPlotLeft   = 100.0
	barPlotRight  = 960.0
	barPlotTop    = 70.0
	barPlotBottom = 520.0

	barSlot         = 0.8 // share of a category slot covered by its bar
	barValueOffsetY = 1.0 // data units between a bar top and its label
	barValueGapPx   = 4.0
)

// BarChart draws the fruit counts with each value printed above its bar.
func BarChart(title string, opts Options) (*Figure, error) {
	cats := BarData()
	if err := checkCategories(cats); err != nil {
		return nil, err
	}

	c := newCanvas(barWidth, barHeight, opts)
	dc := c.dc

	values := categoryValues(cats)
	_, hi := minMax(values)
	ymax := math.Max(hi, 0) * (1 + axisMargin)
	xmin, xmax := -barSlot/2-axisMargin*float64(len(cats)), float64(len(cats)-1)+barSlot/2+axisMargin*float64(len(cats))
	f := frame{
		left: barPlotLeft, right: barPlotRight, top: barPlotTop, bottom: barPlotBottom,
		xmin: xmin, xmax: xmax, ymin: 0, ymax: ymax,
	}

	xTicks := make([]tick, len(cats))
	for i, cat := range cats {
		xTicks[i] = tick{value: float64(i), label: cat.Label}
	}
	c.axes(f, xTicks, majorTicks(0, ymax), "Fruit Types", "Quantity", false)

	for i, cat := range cats {
		x0 := f.px(float64(i) - barSlot/2)
		x1 := f.px(float64(i) + barSlot/2)
		top := f.py(cat.Value)

		dc.SetHexColor(cat.Color)
		dc.DrawRectangle(x0, top, x1-x0, f.bottom-top)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawStringAnchored(ValueLabel(cat.Value), (x0+x1)/2, f.py(cat.Value+barValueOffsetY)-barValueGapPx, 0.5, 0)
	}

	c.title(title)

	return &Figure{Kind: Bar, Title: title, Image: dc.Image()}, nil
}

// BarAnnotations returns the label printed above each bar, in bar order.
func BarAnnotations() []string {
	cats := BarData()
	out := make([]string, len(cats))
	for i, cat := range cats {
		out[i] = ValueLabel(cat.Value)
	}
	return out
}
