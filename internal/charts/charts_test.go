package charts

import (
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRenderEveryKind(t *testing.T) {
	sizes := map[Kind][2]int{
		Line:    {1000, 600},
		Bar:     {1000, 600},
		Pie:     {800, 800},
		Scatter: {1000, 600},
		Heatmap: {800, 600},
	}
	for _, kind := range Concrete() {
		t.Run(kind.String(), func(t *testing.T) {
			fig, err := Render(kind, "Report - "+kind.DefaultLabel(), DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, kind, fig.Kind)
			assert.Equal(t, "Report - "+kind.DefaultLabel(), fig.Title)

			b := fig.Image.Bounds()
			assert.Equal(t, sizes[kind][0], b.Dx())
			assert.Equal(t, sizes[kind][1], b.Dy())

			// white background in the corner, something drawn in the middle
			assert.Equal(t, color.RGBA{255, 255, 255, 255}, color.RGBAModel.Convert(fig.Image.At(1, b.Dy()-2)))
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := Render(All, "x", DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no generator")
}

func TestBarChartPaintsBarColors(t *testing.T) {
	fig, err := BarChart("Bar Chart", DefaultOptions())
	require.NoError(t, err)

	// Grape is the tallest bar; sample just above the x axis at its center
	f := frame{
		left: barPlotLeft, right: barPlotRight, top: barPlotTop, bottom: barPlotBottom,
		xmin: -barSlot/2 - axisMargin*5, xmax: 4 + barSlot/2 + axisMargin*5,
	}
	x := int(f.px(3))
	got := color.RGBAModel.Convert(fig.Image.At(x, int(barPlotBottom)-5)).(color.RGBA)
	assert.Equal(t, color.RGBA{0x96, 0xCE, 0xB4, 0xff}, got)
}

func TestPieChartCenterIsFirstColorSide(t *testing.T) {
	fig, err := PieChart("Pie Chart", DefaultOptions())
	require.NoError(t, err)

	// first slice (Technology, 30%) runs counter-clockwise from 12 o'clock,
	// so a point up and to the left of the center belongs to it
	got := color.RGBAModel.Convert(fig.Image.At(int(pieCenterX)-60, int(pieCenterY)-200)).(color.RGBA)
	assert.Equal(t, color.RGBA{0xFF, 0x6B, 0x6B, 0xff}, got)
}

func TestHeatmapUsesViridisExtremes(t *testing.T) {
	data := mat.NewDense(10, 10, nil)
	data.Set(0, 0, 1) // top-left cell is the maximum, the rest are the minimum

	fig, err := heatmapChart(data, "Heatmap", DefaultOptions())
	require.NoError(t, err)

	f := frame{
		left: heatmapPlotLeft, right: heatmapPlotRight, top: heatmapPlotTop, bottom: heatmapPlotBottom,
		xmin: -0.5, xmax: 9.5, ymin: 9.5, ymax: -0.5,
	}
	top := color.RGBAModel.Convert(fig.Image.At(int(f.px(0)), int(f.py(0)))).(color.RGBA)
	rest := color.RGBAModel.Convert(fig.Image.At(int(f.px(5)), int(f.py(5)))).(color.RGBA)
	assert.Equal(t, Viridis(1), top)
	assert.Equal(t, Viridis(0), rest)
}

func TestHeatmapChartEmpty(t *testing.T) {
	_, err := heatmapChart(&mat.Dense{}, "Heatmap", DefaultOptions())
	require.Error(t, err)
}

func TestHeatmapRandomRenders(t *testing.T) {
	fig, err := heatmapChart(HeatmapData(rand.New(rand.NewPCG(7, 7))), "Heatmap", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Heatmap, fig.Kind)
}

func TestViridis(t *testing.T) {
	assert.Equal(t, viridis[0], Viridis(-1))
	assert.Equal(t, viridis[0], Viridis(0))
	assert.Equal(t, viridis[len(viridis)-1], Viridis(1))
	assert.Equal(t, viridis[len(viridis)-1], Viridis(2))
	assert.Equal(t, viridis[4], Viridis(0.5))
}

func TestMajorTicks(t *testing.T) {
	ticks := majorTicks(0, 81.9)
	require.NotEmpty(t, ticks)
	for _, tk := range ticks {
		assert.NotEmpty(t, tk.label)
		assert.GreaterOrEqual(t, tk.value, 0.0)
		assert.LessOrEqual(t, tk.value, 81.9)
	}
}

func TestPadRange(t *testing.T) {
	lo, hi := padRange(0, 10)
	assert.InDelta(t, -0.5, lo, 1e-12)
	assert.InDelta(t, 10.5, hi, 1e-12)

	lo, hi = padRange(3, 3)
	assert.Equal(t, 2.5, lo)
	assert.Equal(t, 3.5, hi)
}

func TestResolveFontFallsBack(t *testing.T) {
	// missing and unparsable files are skipped
	bogus := filepath.Join(t.TempDir(), "bogus.ttf")
	require.NoError(t, os.WriteFile(bogus, []byte("not a font"), 0644))

	f := resolveFont([]string{"/nonexistent/font.ttf", bogus})
	again := resolveFont([]string{"/nonexistent/font.ttf", bogus})
	assert.True(t, f == again, "lookups are cached")
}
