package dashboard

import (
	"strconv"

	"spacexdash/internal/dataset"
	"spacexdash/internal/models"
)

// DefaultSliderStep is the payload slider step in kilograms.
const DefaultSliderStep = 1000

// Placeholder is the site dropdown prompt.
const Placeholder = "Select Launch Site"

// Slider describes the payload range slider.
type Slider struct {
	Min   float64
	Max   float64
	Step  float64
	Marks []models.SliderMark
	Value models.PayloadRange
}

// Layout is the declarative description of the dashboard widgets.
type Layout struct {
	Title       string
	DatasetID   string
	Launches    int
	Placeholder string
	SiteOptions []models.SiteOption
	Slider      Slider
}

// NewLayout derives the widget layout from the dataset. The dropdown lists
// "All" followed by each site in order of first appearance; the slider spans
// the payload bounds plus one step.
func NewLayout(ds *dataset.Dataset, title string, step float64) Layout {
	if step < 1 {
		step = DefaultSliderStep
	}

	options := []models.SiteOption{{Label: models.AllSites, Value: models.AllSites}}
	for _, site := range ds.Sites() {
		options = append(options, models.SiteOption{Label: site, Value: site})
	}

	lo, hi := ds.PayloadBounds()

	return Layout{
		Title:       title,
		DatasetID:   ds.ID().String(),
		Launches:    ds.Len(),
		Placeholder: Placeholder,
		SiteOptions: options,
		Slider: Slider{
			Min:   lo,
			Max:   hi + step,
			Step:  step,
			Marks: sliderMarks(lo, hi, step),
			Value: models.PayloadRange{Low: lo, High: hi},
		},
	}
}

// sliderMarks labels every step from int(lo) up to, but excluding,
// int(hi)+step.
func sliderMarks(lo, hi, step float64) []models.SliderMark {
	start, end, inc := int(lo), int(hi)+int(step), int(step)

	var marks []models.SliderMark
	for v := start; v < end; v += inc {
		marks = append(marks, models.SliderMark{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return marks
}

// Response converts the layout for the JSON API.
func (l Layout) Response() models.LayoutResponse {
	return models.LayoutResponse{
		Title:       l.Title,
		DatasetID:   l.DatasetID,
		Launches:    l.Launches,
		Placeholder: l.Placeholder,
		SiteOptions: l.SiteOptions,
		Slider: models.SliderResponse{
			Min:   l.Slider.Min,
			Max:   l.Slider.Max,
			Step:  l.Slider.Step,
			Marks: l.Slider.Marks,
			Value: l.Slider.Value,
		},
	}
}
