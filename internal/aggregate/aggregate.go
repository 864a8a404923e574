// Package aggregate derives the dashboard's chart views from the launch
// dataset and the current selection. Every operation is a pure function of
// its inputs.
package aggregate

import (
	"slices"

	"spacexdash/internal/dataset"
	"spacexdash/internal/models"
)

// Chart titles.
const (
	TitleAllSitesPie     = "Total Successful Launches by Site"
	TitleSitePiePrefix   = "Launch Success at: "
	TitleAllSitesScatter = "Launch Success by Payload"
	TitleSiteScatter     = "Launch Success by Payload for: "
)

// PieMode selects how the all-sites pie chart counts launches.
type PieMode string

const (
	// PieRows counts every launch per site, successful or not.
	PieRows PieMode = "rows"
	// PieSuccessesOnly counts only successful launches per site.
	PieSuccessesOnly PieMode = "successes"
)

// ColorBy selects the scatter point category.
type ColorBy string

const (
	ColorByBoosterVersion  ColorBy = "version"
	ColorByBoosterCategory ColorBy = "category"
)

// Options tunes aggregation behavior.
type Options struct {
	PieMode PieMode
	// ScatterFilterRows restricts scatter rows to the payload range instead
	// of only clipping the displayed axis.
	ScatterFilterRows bool
	ColorBy           ColorBy
}

// Option mutates Options.
type Option func(*Options)

// WithPieMode sets the all-sites pie counting mode.
func WithPieMode(mode PieMode) Option {
	return func(o *Options) { o.PieMode = mode }
}

// WithScatterFilterRows enables payload filtering of scatter rows.
func WithScatterFilterRows(enabled bool) Option {
	return func(o *Options) { o.ScatterFilterRows = enabled }
}

// WithColorBy sets the scatter point category.
func WithColorBy(by ColorBy) Option {
	return func(o *Options) { o.ColorBy = by }
}

// Aggregator computes chart views over a fixed dataset.
type Aggregator struct {
	ds   *dataset.Dataset
	opts Options
}

// New creates an aggregator over ds.
func New(ds *dataset.Dataset, opts ...Option) *Aggregator {
	o := Options{PieMode: PieRows, ColorBy: ColorByBoosterVersion}
	for _, opt := range opts {
		opt(&o)
	}
	return &Aggregator{ds: ds, opts: o}
}

// Options returns the effective options.
func (a *Aggregator) Options() Options {
	return a.opts
}

// SuccessPie aggregates launches for the pie chart. With all sites selected
// it returns one slice per site; otherwise a Success/Failure breakdown of the
// selected site. An unknown site yields zero-valued slices.
func (a *Aggregator) SuccessPie(site string) models.PieView {
	if models.IsAllSites(site) {
		return a.allSitesPie()
	}

	records := a.ds.BySite(site)
	successes := 0
	for _, r := range records {
		if r.IsSuccess() {
			successes++
		}
	}

	return models.PieView{
		Title: TitleSitePiePrefix + site,
		Site:  site,
		Slices: []models.PieSlice{
			{Label: models.LabelSuccess, Value: successes},
			{Label: models.LabelFailure, Value: len(records) - successes},
		},
	}
}

func (a *Aggregator) allSitesPie() models.PieView {
	counts := make(map[string]int)
	for _, r := range a.ds.Records() {
		switch a.opts.PieMode {
		case PieSuccessesOnly:
			if r.IsSuccess() {
				counts[r.LaunchSite]++
			}
		default:
			counts[r.LaunchSite]++
		}
	}

	sites := a.ds.Sites()
	slices.Sort(sites)

	view := models.PieView{
		Title:    TitleAllSitesPie,
		Site:     models.AllSites,
		AllSites: true,
		Slices:   make([]models.PieSlice, 0, len(sites)),
	}
	for _, site := range sites {
		view.Slices = append(view.Slices, models.PieSlice{Label: site, Value: counts[site]})
	}
	return view
}

// PayloadScatter selects launches for the payload/outcome scatter chart. The
// payload range becomes the view's X axis range; rows outside it are kept
// unless ScatterFilterRows is set.
func (a *Aggregator) PayloadScatter(site string, payload models.PayloadRange) models.ScatterView {
	payload = payload.Normalize()

	view := models.ScatterView{
		XRange:       payload,
		RowsFiltered: a.opts.ScatterFilterRows,
	}

	var candidates []models.LaunchRecord
	if models.IsAllSites(site) {
		view.Title = TitleAllSitesScatter
		view.Site = models.AllSites
		view.AllSites = true
		candidates = a.ds.Records()
	} else {
		view.Title = TitleSiteScatter + site
		view.Site = site
		candidates = a.ds.BySite(site)
	}

	view.Points = make([]models.ScatterPoint, 0, len(candidates))
	for _, r := range candidates {
		if a.opts.ScatterFilterRows && !payload.Contains(r.PayloadMassKg) {
			continue
		}
		view.Points = append(view.Points, models.ScatterPoint{
			PayloadMassKg: r.PayloadMassKg,
			Class:         r.Class,
			Category:      a.category(r),
			LaunchSite:    r.LaunchSite,
		})
	}
	return view
}

func (a *Aggregator) category(r models.LaunchRecord) string {
	if a.opts.ColorBy == ColorByBoosterCategory && r.BoosterCategory != "" {
		return r.BoosterCategory
	}
	return r.BoosterVersion
}
