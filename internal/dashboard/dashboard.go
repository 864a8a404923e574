// Package dashboard composes the launch dashboard: its widget layout and the
// callbacks that recompute each chart when a widget changes.
package dashboard

import (
	"fmt"
	"net/url"
	"strconv"

	"spacexdash/internal/aggregate"
	"spacexdash/internal/models"
	"spacexdash/internal/reactive"
)

// Widget and output slot IDs.
const (
	SiteDropdown  = "site-dropdown"
	PayloadSlider = "payload-slider"
	PieOutput     = "success-pie-chart"
	ScatterOutput = "success-payload-scatter-chart"
)

// Figure is a computed chart ready to be placed in its output slot.
type Figure struct {
	Output   string
	Title    string
	ImageURL string
	Empty    bool
	View     any
}

// Response converts the figure for the JSON API.
func (f Figure) Response() models.FigureResponse {
	return models.FigureResponse{Output: f.Output, ImageURL: f.ImageURL, View: f.View}
}

// Dashboard wires the aggregator to the reactive host.
type Dashboard struct {
	agg      *aggregate.Aggregator
	host     *reactive.Host
	layout   Layout
	chartExt string
}

// New builds a dashboard and registers its chart callbacks on host.
// chartExt is the extension of chart image URLs ("svg" or "png").
func New(agg *aggregate.Aggregator, layout Layout, host *reactive.Host, chartExt string) (*Dashboard, error) {
	d := &Dashboard{agg: agg, host: host, layout: layout, chartExt: chartExt}

	if err := host.Register(PieOutput, []string{SiteDropdown}, d.updatePie); err != nil {
		return nil, err
	}
	if err := host.Register(ScatterOutput, []string{SiteDropdown, PayloadSlider}, d.updateScatter); err != nil {
		return nil, err
	}
	return d, nil
}

// Layout returns the widget layout.
func (d *Dashboard) Layout() Layout {
	return d.layout
}

// DefaultSelection is the selection shown before any interaction: no site
// chosen and the full payload range.
func (d *Dashboard) DefaultSelection() models.Selection {
	return models.Selection{Payload: d.layout.Slider.Value}
}

// Callbacks lists each chart output with the widgets it depends on.
func (d *Dashboard) Callbacks() ([]models.CallbackResponse, error) {
	var out []models.CallbackResponse
	for _, output := range d.host.Outputs() {
		inputs, err := d.host.Inputs(output)
		if err != nil {
			return nil, err
		}
		out = append(out, models.CallbackResponse{Output: output, Inputs: inputs})
	}
	return out, nil
}

// Changed returns the widgets whose values differ between prev and next.
func (d *Dashboard) Changed(prev, next models.Selection) []string {
	return reactive.Diff(widgetState(prev), widgetState(next))
}

// Update recomputes the figures that depend on the changed widgets. With no
// changed widgets every figure is computed.
func (d *Dashboard) Update(sel models.Selection, changed ...string) ([]Figure, error) {
	updates, err := d.host.Dispatch(widgetState(sel), changed...)
	if err != nil {
		return nil, err
	}

	figures := make([]Figure, 0, len(updates))
	for _, u := range updates {
		fig, ok := u.Value.(Figure)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected callback result %T", u.Output, u.Value)
		}
		figures = append(figures, fig)
	}
	return figures, nil
}

// Pie computes the success pie chart for site.
func (d *Dashboard) Pie(site string) Figure {
	view := d.agg.SuccessPie(site)
	q := url.Values{}
	q.Set("site", site)
	return Figure{
		Output:   PieOutput,
		Title:    view.Title,
		ImageURL: d.imageURL("pie", q),
		Empty:    view.IsEmpty(),
		View:     view,
	}
}

// Scatter computes the payload scatter chart for site and payload.
func (d *Dashboard) Scatter(site string, payload models.PayloadRange) Figure {
	view := d.agg.PayloadScatter(site, payload)
	q := url.Values{}
	q.Set("site", site)
	q.Set("payload_low", formatKg(view.XRange.Low))
	q.Set("payload_high", formatKg(view.XRange.High))
	return Figure{
		Output:   ScatterOutput,
		Title:    view.Title,
		ImageURL: d.imageURL("scatter", q),
		Empty:    view.IsEmpty(),
		View:     view,
	}
}

func widgetState(sel models.Selection) reactive.State {
	return reactive.State{
		SiteDropdown:  sel.Site,
		PayloadSlider: sel.Payload.Normalize(),
	}
}

func (d *Dashboard) imageURL(name string, q url.Values) string {
	q.Set("v", d.layout.DatasetID)
	return "/charts/" + name + "." + d.chartExt + "?" + q.Encode()
}

func (d *Dashboard) updatePie(values ...any) (any, error) {
	site, _ := values[0].(string)
	return d.Pie(site), nil
}

func (d *Dashboard) updateScatter(values ...any) (any, error) {
	site, _ := values[0].(string)
	payload, ok := values[1].(models.PayloadRange)
	if !ok {
		payload = d.layout.Slider.Value
	}
	return d.Scatter(site, payload), nil
}

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
