package server

import (
	"spacexdash/internal/aggregate"
	"spacexdash/internal/charts"
	"spacexdash/internal/config"
	"spacexdash/internal/dashboard"
	"spacexdash/internal/dataset"
	"spacexdash/internal/metrics"
	"spacexdash/internal/reactive"
)

// NewDeps builds the dashboard components over ds as configured by cfg.
func NewDeps(cfg *config.Config, ds *dataset.Dataset) (Deps, error) {
	d := cfg.Dashboard

	agg := aggregate.New(ds,
		aggregate.WithPieMode(aggregate.PieMode(d.Pie.Mode)),
		aggregate.WithScatterFilterRows(d.Scatter.FilterRows),
		aggregate.WithColorBy(aggregate.ColorBy(d.Scatter.ColorBy)),
	)

	host := reactive.NewHost()
	if cfg.MetricsEnabled {
		metrics.Init(ds)
		host.Observe(metrics.RecordCallback)
	}

	layout := dashboard.NewLayout(ds, cfg.SiteTitle, d.SliderStep)
	dash, err := dashboard.New(agg, layout, host, cfg.ChartExt())
	if err != nil {
		return Deps{}, err
	}

	return Deps{
		Dataset:    ds,
		Aggregator: agg,
		Dashboard:  dash,
		Renderer:   charts.NewRenderer(d.ChartWidth, d.ChartHeight, cfg.ChartExt()),
	}, nil
}
