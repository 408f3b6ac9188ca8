package charts

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	logging "chart-demo/internal/infra/log"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
)

const (
	titleFontScale = 1.4
	tickFontScale  = 0.8

	titleY       = 38.0
	tickLength   = 6.0
	tickLabelGap = 8.0
	axisLabelGap = 40.0
	gridAlpha    = 0.3
	axisMargin   = 0.05
)

// Options tune how figures are drawn.
type Options struct {
	FontPaths []string // searched before the built-in list
	FontSize  float64  // axis label size in px; title and ticks scale from it
}

// DefaultOptions are used when the caller has no configuration.
func DefaultOptions() Options {
	return Options{FontSize: 16}
}

// Fonts matplotlib would pick for sans-serif, then common system fonts.
var fontPaths = []string{
	"etc/fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/msttcorefonts/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"~/Library/Fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
}

var fontCache sync.Map // search list key -> *truetype.Font (nil when none)

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// resolveFont parses the first usable font of extra followed by the
// built-in list. Nil means gg's default bitmap face.
func resolveFont(extra []string) *truetype.Font {
	candidates := append(append([]string{}, extra...), fontPaths...)
	key := strings.Join(candidates, "\x00")
	if cached, ok := fontCache.Load(key); ok {
		return cached.(*truetype.Font)
	}

	var resolved *truetype.Font
	for _, fontPath := range candidates {
		expandedPath := expandPath(fontPath)
		data, err := os.ReadFile(expandedPath)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			logging.LogWarn("Font file exists but failed to load",
				zap.String("path", expandedPath),
				zap.Error(err))
			continue
		}
		resolved = f
		logging.LogDebug("Loaded font", zap.String("path", expandedPath), zap.Int("size", len(data)))
		break
	}
	if resolved == nil {
		logging.LogWarn("No TrueType font found, using default bitmap face",
			zap.Int("paths_checked", len(candidates)))
	}

	fontCache.Store(key, resolved)
	return resolved
}

// canvas wraps a gg context with the figure's font state.
type canvas struct {
	dc       *gg.Context
	ttf      *truetype.Font
	fontSize float64
}

func newCanvas(width, height int, opts Options) *canvas {
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultOptions().FontSize
	}
	c := &canvas{
		dc:       gg.NewContext(width, height),
		ttf:      resolveFont(opts.FontPaths),
		fontSize: opts.FontSize,
	}
	c.dc.SetColor(color.White)
	c.dc.Clear()
	c.font(1)
	return c
}

// font switches to the label size times scale. Without a TrueType font the
// default face has a single size.
func (c *canvas) font(scale float64) {
	if c.ttf == nil {
		return
	}
	c.dc.SetFontFace(truetype.NewFace(c.ttf, &truetype.Options{Size: c.fontSize * scale}))
}

func (c *canvas) title(text string) {
	c.font(titleFontScale)
	c.dc.SetColor(color.Black)
	c.dc.DrawStringAnchored(text, float64(c.dc.Width())/2, titleY, 0.5, 0.5)
	c.font(1)
}

// verticalText draws text rotated a quarter turn counter-clockwise around (x, y).
func (c *canvas) verticalText(text string, x, y float64) {
	c.dc.Push()
	c.dc.RotateAbout(gg.Radians(-90), x, y)
	c.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
	c.dc.Pop()
}

// frame maps data coordinates onto a pixel rectangle.
type frame struct {
	left, top, right, bottom float64
	xmin, xmax, ymin, ymax   float64
}

func (f frame) px(x float64) float64 {
	return f.left + (x-f.xmin)/(f.xmax-f.xmin)*(f.right-f.left)
}

func (f frame) py(y float64) float64 {
	return f.bottom - (y-f.ymin)/(f.ymax-f.ymin)*(f.bottom-f.top)
}

// tick is a labeled axis position in data coordinates.
type tick struct {
	value float64
	label string
}

// majorTicks returns the labeled ticks gonum/plot would put on [min, max].
func majorTicks(min, max float64) []tick {
	var out []tick
	for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
		if t.Label == "" || t.Value < min || t.Value > max {
			continue
		}
		out = append(out, tick{value: t.Value, label: t.Label})
	}
	return out
}

// padRange widens [min, max] by the axis margin on both sides.
func padRange(min, max float64) (float64, float64) {
	if min == max {
		return min - 0.5, max + 0.5
	}
	pad := (max - min) * axisMargin
	return min - pad, max + pad
}

func minMax(values ...[]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// axes draws grid lines, the frame box, ticks with labels and axis titles.
func (c *canvas) axes(f frame, xTicks, yTicks []tick, xLabel, yLabel string, grid bool) {
	dc := c.dc

	if grid {
		dc.SetRGBA(0.5, 0.5, 0.5, gridAlpha)
		dc.SetLineWidth(1)
		for _, t := range xTicks {
			dc.DrawLine(f.px(t.value), f.top, f.px(t.value), f.bottom)
			dc.Stroke()
		}
		for _, t := range yTicks {
			dc.DrawLine(f.left, f.py(t.value), f.right, f.py(t.value))
			dc.Stroke()
		}
	}

	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawRectangle(f.left, f.top, f.right-f.left, f.bottom-f.top)
	dc.Stroke()

	c.font(tickFontScale)
	for _, t := range xTicks {
		x := f.px(t.value)
		dc.DrawLine(x, f.bottom, x, f.bottom+tickLength)
		dc.Stroke()
		dc.DrawStringAnchored(t.label, x, f.bottom+tickLength+tickLabelGap, 0.5, 0.5)
	}
	for _, t := range yTicks {
		y := f.py(t.value)
		dc.DrawLine(f.left-tickLength, y, f.left, y)
		dc.Stroke()
		dc.DrawStringAnchored(t.label, f.left-tickLength-4, y, 1, 0.35)
	}

	c.font(1)
	dc.DrawStringAnchored(xLabel, (f.left+f.right)/2, f.bottom+axisLabelGap, 0.5, 0.5)
	c.verticalText(yLabel, f.left-axisLabelGap-16, (f.top+f.bottom)/2)
}
