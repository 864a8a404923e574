// Package charts renders pie and scatter views with go-chart.
package charts

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"spacexdash/internal/models"
)

// Image formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Renderer draws chart views at a fixed size.
type Renderer struct {
	Width  int
	Height int
	Format string
}

// NewRenderer creates a renderer. Unknown formats fall back to SVG.
func NewRenderer(width, height int, format string) *Renderer {
	if format != FormatPNG {
		format = FormatSVG
	}
	return &Renderer{Width: width, Height: height, Format: format}
}

// ContentType returns the MIME type of rendered images.
func (r *Renderer) ContentType() string {
	if r.Format == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (r *Renderer) provider() chart.RendererProvider {
	if r.Format == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// Pie renders a pie view. Views without any launches render a placeholder.
func (r *Renderer) Pie(view models.PieView, w io.Writer) error {
	if view.IsEmpty() {
		return r.placeholder(w, view.Title)
	}

	values := make([]chart.Value, 0, len(view.Slices))
	for _, s := range view.Slices {
		if s.Value == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Value: float64(s.Value),
		})
	}

	pie := chart.PieChart{
		Title:  view.Title,
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
	if err := pie.Render(r.provider(), w); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	return nil
}

// Scatter renders a scatter view with one dot series per category. The X
// axis is fixed to the view's range and points outside it are not drawn.
func (r *Renderer) Scatter(view models.ScatterView, w io.Writer) error {
	if view.IsEmpty() {
		return r.placeholder(w, view.Title)
	}

	xr := view.XRange.Normalize()
	if xr.High-xr.Low < 1 {
		xr.High = xr.Low + 1
	}

	// go-chart draws points outside a fixed axis range into the margins,
	// so only points inside the range are plotted.
	var series []chart.Series
	for i, category := range view.Categories() {
		var xs, ys []float64
		for _, p := range view.Points {
			if p.Category == category && xr.Contains(p.PayloadMassKg) {
				xs = append(xs, p.PayloadMassKg)
				ys = append(ys, float64(p.Class))
			}
		}
		if len(xs) == 0 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
	}
	if len(series) == 0 {
		return r.placeholder(w, view.Title)
	}

	graph := chart.Chart{
		Title:      view.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Payload Mass (kg)",
			Range:          &chart.ContinuousRange{Min: xr.Low, Max: xr.High},
			ValueFormatter: formatKg,
		},
		YAxis: chart.YAxis{
			Name:  "class",
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"},
				{Value: 1, Label: "1"},
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(r.provider(), w); err != nil {
		return fmt.Errorf("failed to render scatter chart: %w", err)
	}
	return nil
}

func formatKg(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return ""
}

// placeholder draws the title and a notice in place of an empty chart.
func (r *Renderer) placeholder(w io.Writer, title string) error {
	rend, err := r.provider()(r.Width, r.Height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	rend.SetFont(font)

	rend.SetFontColor(drawing.ColorBlack)
	rend.SetFontSize(chart.DefaultTitleFontSize)
	box := rend.MeasureText(title)
	rend.Text(title, (r.Width-box.Width())/2, 40)

	const notice = "No launches match the current selection"
	rend.SetFontColor(chart.ColorAlternateGray)
	rend.SetFontSize(chart.DefaultFontSize)
	box = rend.MeasureText(notice)
	rend.Text(notice, (r.Width-box.Width())/2, r.Height/2)

	return rend.Save(w)
}
