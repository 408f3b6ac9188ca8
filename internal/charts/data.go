package charts

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ScatterSeed makes the scatter plot reproducible between runs.
const ScatterSeed = 42

const (
	linePoints    = 100
	lineMin       = 0.0
	lineMax       = 10.0
	scatterPoints = 100
	scatterSlope  = 2.0
	scatterNoise  = 0.5
	heatmapSize   = 10
)

// Palette shared by the bar and pie charts.
var Palette = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7"}

// Series is one named line.
type Series struct {
	Name  string
	X, Y  []float64
	Color string
}

// Category is one bar or one pie slice.
type Category struct {
	Label string
	Value float64
	Color string
}

// Points is a cloud of scatter points.
type Points struct {
	X, Y []float64
}

// LineData samples sin and cos at 100 points over [0, 10].
func LineData() []Series {
	x := floats.Span(make([]float64, linePoints), lineMin, lineMax)
	sin := make([]float64, len(x))
	cos := make([]float64, len(x))
	for i, v := range x {
		sin[i] = math.Sin(v)
		cos[i] = math.Cos(v)
	}
	return []Series{
		{Name: "sin(x)", X: x, Y: sin, Color: "#0000FF"},
		{Name: "cos(x)", X: x, Y: cos, Color: "#FF0000"},
	}
}

// BarData is the fixed fruit inventory.
func BarData() []Category {
	labels := []string{"Apple", "Banana", "Orange", "Grape", "Strawberry"}
	values := []float64{23, 45, 56, 78, 32}
	return zipCategories(labels, values)
}

// PieData is the fixed department split, summing to 100.
func PieData() []Category {
	labels := []string{"Technology", "Design", "Marketing", "Operations", "Other"}
	sizes := []float64{30, 25, 20, 15, 10}
	return zipCategories(labels, sizes)
}

func zipCategories(labels []string, values []float64) []Category {
	out := make([]Category, len(labels))
	for i := range labels {
		out[i] = Category{Label: labels[i], Value: values[i], Color: Palette[i%len(Palette)]}
	}
	return out
}

// ScatterData draws 100 correlated points: x ~ N(0,1), y = 2x + N(0,1)*0.5.
// The same seed always yields the same points.
func ScatterData(seed uint64) Points {
	r := rand.New(rand.NewPCG(seed, seed))
	x := make([]float64, scatterPoints)
	for i := range x {
		x[i] = r.NormFloat64()
	}
	y := make([]float64, scatterPoints)
	for i := range y {
		y[i] = scatterSlope*x[i] + r.NormFloat64()*scatterNoise
	}
	return Points{X: x, Y: y}
}

// HeatmapData fills a 10x10 matrix with uniform values in [0, 1).
// A nil r uses a freshly seeded generator.
func HeatmapData(r *rand.Rand) *mat.Dense {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	data := make([]float64, heatmapSize*heatmapSize)
	for i := range data {
		data[i] = r.Float64()
	}
	return mat.NewDense(heatmapSize, heatmapSize, data)
}

// ValueLabel is the annotation printed above a bar.
func ValueLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PercentLabel is the label printed inside a pie slice.
func PercentLabel(size, total float64) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", size/total*100)
}

func categoryValues(cats []Category) []float64 {
	out := make([]float64, len(cats))
	for i, c := range cats {
		out[i] = c.Value
	}
	return out
}

func checkCategories(cats []Category) error {
	if len(cats) == 0 {
		return fmt.Errorf("no categories to plot")
	}
	if len(cats) > len(Palette) {
		return fmt.Errorf("%d categories but only %d colors", len(cats), len(Palette))
	}
	return nil
}
