package chart

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/wonny/swapreport/internal/contracts"
)

const (
	DefaultWidth  = 1200
	DefaultHeight = 800
	DefaultDPI    = 96
)

var (
	lineColor      = color.RGBA{R: 54, G: 162, B: 235, A: 255}
	pointColor     = color.RGBA{R: 54, G: 162, B: 235, A: 51}
	evenPointColor = color.RGBA{R: 192, G: 0, B: 0, A: 255}
	oddPointColor  = color.RGBA{R: 3, G: 150, B: 3, A: 204}
)

// Renderer draws a chart config to an image and returns where it was written
type Renderer interface {
	Render(ctx context.Context, name string, cfg contracts.ChartConfig) (string, error)
}

// PlotRenderer writes PNG line charts into a single output directory
// ⭐ SSOT: 차트 이미지는 여기서만 생성
type PlotRenderer struct {
	outputDir string
	dpi       int
}

// NewPlotRenderer creates a renderer writing to outputDir; the directory is
// created on the first Render.
func NewPlotRenderer(outputDir string) *PlotRenderer {
	return &PlotRenderer{
		outputDir: outputDir,
		dpi:       DefaultDPI,
	}
}

// OutputDir returns the directory charts are written to
func (r *PlotRenderer) OutputDir() string {
	return r.outputDir
}

// Render writes <outputDir>/<name>.png
func (r *PlotRenderer) Render(ctx context.Context, name string, cfg contracts.ChartConfig) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", &contracts.RenderError{Name: name, Err: fmt.Errorf("invalid chart name %q", name)}
	}

	path := filepath.Join(r.outputDir, name+".png")
	fail := func(err error) (string, error) {
		return "", &contracts.RenderError{Name: name, Path: path, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	canvas, err := r.draw(cfg)
	if err != nil {
		return fail(err)
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return fail(fmt.Errorf("create output dir: %w", err))
	}

	f, err := os.Create(path)
	if err != nil {
		return fail(err)
	}

	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return fail(fmt.Errorf("encode png: %w", err))
	}
	if err := f.Close(); err != nil {
		return fail(err)
	}

	return path, nil
}

func (r *PlotRenderer) draw(cfg contracts.ChartConfig) (vgimg.PngCanvas, error) {
	if cfg.Type != "" && cfg.Type != contracts.ChartTypeLine {
		return vgimg.PngCanvas{}, fmt.Errorf("unsupported chart type %q", cfg.Type)
	}
	if len(cfg.Labels) != len(cfg.Values) {
		return vgimg.PngCanvas{}, fmt.Errorf("labels (%d) and values (%d) are not aligned", len(cfg.Labels), len(cfg.Values))
	}

	p, err := buildPlot(cfg)
	if err != nil {
		return vgimg.PngCanvas{}, err
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	img := vgimg.NewWith(
		vgimg.UseWH(pixels(width, r.dpi), pixels(height, r.dpi)),
		vgimg.UseDPI(r.dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(img))

	return vgimg.PngCanvas{Canvas: img}, nil
}

func buildPlot(cfg contracts.ChartConfig) (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = color.White
	p.Title.Text = cfg.Title
	p.X.Label.Text = orDefault(cfg.XTitle, "BLOCK NUMBERS")
	p.Y.Label.Text = orDefault(cfg.YTitle, "RATIOS")
	p.Add(plotter.NewGrid())

	if len(cfg.Values) == 0 {
		return p, nil
	}

	xys, err := points(cfg)
	if err != nil {
		return nil, err
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = lineColor

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("build points: %w", err)
	}
	radius := cfg.PointRadius
	if radius <= 0 {
		radius = 3
	}
	scatter.GlyphStyle = draw.GlyphStyle{Color: pointColor, Radius: vg.Points(radius), Shape: draw.CircleGlyph{}}
	if cfg.AlternatePointColors {
		scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			c := evenPointColor
			if i%2 == 1 {
				c = oddPointColor
			}
			return draw.GlyphStyle{Color: c, Radius: vg.Points(radius), Shape: draw.CircleGlyph{}}
		}
	}

	p.Add(line, scatter)
	p.Legend.Add(cfg.Title, line)
	p.Legend.Top = true

	if cfg.XAxis != contracts.AxisLinear {
		p.NominalX(cfg.Labels...)
	}

	return p, nil
}

// points places values at their label (linear axis) or at their index (category axis)
func points(cfg contracts.ChartConfig) (plotter.XYs, error) {
	xys := make(plotter.XYs, len(cfg.Values))
	for i, v := range cfg.Values {
		x := float64(i)
		if cfg.XAxis == contracts.AxisLinear {
			n, err := strconv.ParseFloat(cfg.Labels[i], 64)
			if err != nil {
				return nil, fmt.Errorf("label %q is not numeric: %w", cfg.Labels[i], err)
			}
			x = n
		}
		xys[i] = plotter.XY{X: x, Y: v}
	}
	return xys, nil
}

func pixels(n, dpi int) vg.Length {
	return vg.Length(n) * vg.Inch / vg.Length(dpi)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
