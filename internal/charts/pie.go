package charts

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	pieWidth  = 800
	pieHeight = 800

	pieCenterX = 400.0
	pieCenterY = 420.0
	pieRadius  = 280.0

	pieStartAngle   = -math.Pi / 2 // 12 o'clock
	pieLabelRadius  = 1.1
	piePctRadius    = 0.6
	pieShadowOffset = 8.0
)

// Wedge is one pie slice in screen angles (radians, clockwise from 3 o'clock).
type Wedge struct {
	Category
	From, To float64
	Percent  string
}

// PieWedges lays out slices counter-clockwise from 12 o'clock.
func PieWedges(cats []Category) []Wedge {
	values := categoryValues(cats)
	total := floats.Sum(values)

	wedges := make([]Wedge, len(cats))
	end := pieStartAngle
	for i, cat := range cats {
		sweep := 0.0
		if total > 0 {
			sweep = cat.Value / total * 2 * math.Pi
		}
		wedges[i] = Wedge{
			Category: cat,
			From:     end - sweep,
			To:       end,
			Percent:  PercentLabel(cat.Value, total),
		}
		end -= sweep
	}
	return wedges
}

// PieChart draws the department split with percentage labels and a shadow.
func PieChart(title string, opts Options) (*Figure, error) {
	cats := PieData()
	if err := checkCategories(cats); err != nil {
		return nil, err
	}
	wedges := PieWedges(cats)

	c := newCanvas(pieWidth, pieHeight, opts)
	dc := c.dc

	for _, w := range wedges {
		dc.SetRGBA(0, 0, 0, 0.25)
		c.wedge(pieCenterX+pieShadowOffset, pieCenterY+pieShadowOffset, w)
		dc.Fill()
	}

	for _, w := range wedges {
		dc.SetHexColor(w.Color)
		c.wedge(pieCenterX, pieCenterY, w)
		dc.Fill()
	}

	dc.SetColor(color.Black)
	for _, w := range wedges {
		mid := (w.From + w.To) / 2
		cos, sin := math.Cos(mid), math.Sin(mid)

		ax := 0.0
		if cos < 0 {
			ax = 1
		}
		dc.DrawStringAnchored(w.Label,
			pieCenterX+cos*pieRadius*pieLabelRadius,
			pieCenterY+sin*pieRadius*pieLabelRadius,
			ax, 0.5)
		dc.DrawStringAnchored(w.Percent,
			pieCenterX+cos*pieRadius*piePctRadius,
			pieCenterY+sin*pieRadius*piePctRadius,
			0.5, 0.5)
	}

	c.title(title)

	return &Figure{Kind: Pie, Title: title, Image: dc.Image()}, nil
}

func (c *canvas) wedge(cx, cy float64, w Wedge) {
	c.dc.NewSubPath()
	c.dc.MoveTo(cx, cy)
	c.dc.DrawArc(cx, cy, pieRadius, w.From, w.To)
	c.dc.ClosePath()
}
