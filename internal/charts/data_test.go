package charts

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestLineData(t *testing.T) {
	series := LineData()
	require.Len(t, series, 2)
	assert.Equal(t, "sin(x)", series[0].Name)
	assert.Equal(t, "cos(x)", series[1].Name)

	for _, s := range series {
		require.Len(t, s.X, 100)
		require.Len(t, s.Y, 100)
		assert.Equal(t, 0.0, s.X[0])
		assert.Equal(t, 10.0, s.X[99])
	}
	assert.InDelta(t, math.Sin(series[0].X[50]), series[0].Y[50], 1e-12)
	assert.InDelta(t, 10.0/99, series[0].X[1], 1e-12, "evenly spaced, both ends included")
	assert.InDelta(t, math.Cos(series[1].X[37]), series[1].Y[37], 1e-12)
}

func TestBarData(t *testing.T) {
	cats := BarData()
	require.Len(t, cats, 5)

	var labels []string
	var values []float64
	for _, c := range cats {
		labels = append(labels, c.Label)
		values = append(values, c.Value)
	}
	assert.Equal(t, []string{"Apple", "Banana", "Orange", "Grape", "Strawberry"}, labels)
	assert.Equal(t, []float64{23, 45, 56, 78, 32}, values)
	assert.Equal(t, Palette, []string{cats[0].Color, cats[1].Color, cats[2].Color, cats[3].Color, cats[4].Color})
}

func TestBarAnnotationsMatchValues(t *testing.T) {
	labels := BarAnnotations()
	cats := BarData()
	require.Len(t, labels, len(cats))
	for i, c := range cats {
		assert.Equal(t, strconv.Itoa(int(c.Value)), labels[i])
	}
	assert.Equal(t, []string{"23", "45", "56", "78", "32"}, labels)
}

func TestPieData(t *testing.T) {
	cats := PieData()
	require.Len(t, cats, 5)
	values := categoryValues(cats)
	assert.Equal(t, []float64{30, 25, 20, 15, 10}, values)
	assert.Equal(t, 100.0, floats.Sum(values))

	for _, w := range PieWedges(cats) {
		pct, err := strconv.ParseFloat(w.Percent[:len(w.Percent)-1], 64)
		require.NoError(t, err)
		assert.InDelta(t, w.Value/100*100, pct, 0.05, w.Label)
	}
}

func TestPieWedges(t *testing.T) {
	wedges := PieWedges(PieData())
	require.Len(t, wedges, 5)

	assert.InDelta(t, -math.Pi/2, wedges[0].To, 1e-12, "first slice starts at 12 o'clock")
	for i := 1; i < len(wedges); i++ {
		assert.InDelta(t, wedges[i-1].From, wedges[i].To, 1e-12, "slices are contiguous")
	}
	assert.InDelta(t, -math.Pi/2-2*math.Pi, wedges[4].From, 1e-9, "slices close the circle")
	assert.Equal(t, "30.0%", wedges[0].Percent)
	assert.Equal(t, "10.0%", wedges[4].Percent)
}

func TestPercentLabel(t *testing.T) {
	assert.Equal(t, "33.3%", PercentLabel(1, 3))
	assert.Equal(t, "0.0%", PercentLabel(1, 0))
}

func TestScatterDataReproducible(t *testing.T) {
	a := ScatterData(ScatterSeed)
	b := ScatterData(ScatterSeed)
	assert.Equal(t, a, b)
	require.Len(t, a.X, 100)
	require.Len(t, a.Y, 100)

	c := ScatterData(ScatterSeed + 1)
	assert.NotEqual(t, a.X, c.X)

	// y = 2x + small noise, so the cloud is strongly correlated
	assert.Greater(t, stat.Correlation(a.X, a.Y, nil), 0.9)
}

func TestHeatmapData(t *testing.T) {
	m := HeatmapData(rand.New(rand.NewPCG(1, 2)))
	r, c := m.Dims()
	assert.Equal(t, 10, r)
	assert.Equal(t, 10, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}

	rows, _ := HeatmapData(nil).Dims()
	assert.Equal(t, 10, rows)
}

func TestCheckCategories(t *testing.T) {
	require.Error(t, checkCategories(nil))
	six := append(BarData(), Category{Label: "Kiwi", Value: 1})
	require.Error(t, checkCategories(six))
	require.NoError(t, checkCategories(BarData()))
}
