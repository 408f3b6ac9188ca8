package charts

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	lineWidth  = 1000
	lineHeight = 600

	linePlotLeft   = 100.0
	linePlotRight  = 960.0
	linePlotTop    = 70.0
	linePlotBottom = 520.0

	lineStroke = 2.5

	legendPad     = 10.0
	legendSwatch  = 30.0
	legendRowGap  = 24.0
	legendOffsetX = 12.0
)

// LineChart plots sin(x) and cos(x) with a legend and a light grid.
func LineChart(title string, opts Options) (*Figure, error) {
	series := LineData()
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("series %s: %d x values but %d y values", s.Name, len(s.X), len(s.Y))
		}
	}

	c := newCanvas(lineWidth, lineHeight, opts)
	dc := c.dc

	xmin, xmax := padRange(lineMin, lineMax)
	lo, hi := minMax(series[0].Y, series[1].Y)
	ymin, ymax := padRange(lo, hi)
	f := frame{
		left: linePlotLeft, right: linePlotRight, top: linePlotTop, bottom: linePlotBottom,
		xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax,
	}

	c.axes(f, majorTicks(xmin, xmax), majorTicks(ymin, ymax), "X Axis", "Y Axis", true)

	for _, s := range series {
		dc.SetHexColor(s.Color)
		dc.SetLineWidth(lineStroke)
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.MoveTo(f.px(s.X[0]), f.py(s.Y[0]))
		for i := 1; i < len(s.X); i++ {
			dc.LineTo(f.px(s.X[i]), f.py(s.Y[i]))
		}
		dc.Stroke()
	}

	c.legend(f, series)
	c.title(title)

	return &Figure{Kind: Line, Title: title, Image: dc.Image()}, nil
}

// legend draws a boxed key in the upper right corner of f.
func (c *canvas) legend(f frame, series []Series) {
	dc := c.dc

	textWidth := 0.0
	for _, s := range series {
		w, _ := dc.MeasureString(s.Name)
		if w > textWidth {
			textWidth = w
		}
	}
	boxW := legendPad*3 + legendSwatch + textWidth
	boxH := legendPad*2 + legendRowGap*float64(len(series))
	boxX := f.right - legendOffsetX - boxW
	boxY := f.top + legendOffsetX

	dc.SetRGBA(1, 1, 1, 0.8)
	dc.DrawRoundedRectangle(boxX, boxY, boxW, boxH, 4)
	dc.Fill()
	dc.SetColor(color.Gray{Y: 0xcc})
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(boxX, boxY, boxW, boxH, 4)
	dc.Stroke()

	for i, s := range series {
		rowY := boxY + legendPad + legendRowGap*(float64(i)+0.5)
		dc.SetHexColor(s.Color)
		dc.SetLineWidth(lineStroke)
		dc.DrawLine(boxX+legendPad, rowY, boxX+legendPad+legendSwatch, rowY)
		dc.Stroke()

		dc.SetColor(color.Black)
		dc.DrawStringAnchored(s.Name, boxX+legendPad*2+legendSwatch, rowY, 0, 0.35)
	}
}
