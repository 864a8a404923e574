package models

// SiteOption is one entry of the launch site dropdown.
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SliderMark labels a position on the payload range slider.
type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// SliderResponse describes the payload range slider.
type SliderResponse struct {
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []SliderMark `json:"marks"`
	Value PayloadRange `json:"value"`
}

// CallbackResponse names an output slot and the widgets it is recomputed from.
type CallbackResponse struct {
	Output string   `json:"output"`
	Inputs []string `json:"inputs"`
}

// LayoutResponse describes the dashboard widgets for API clients.
type LayoutResponse struct {
	Title       string         `json:"title"`
	DatasetID   string         `json:"dataset_id"`
	Launches    int            `json:"launches"`
	Placeholder string         `json:"placeholder"`
	SiteOptions []SiteOption   `json:"site_options"`
	Slider      SliderResponse     `json:"slider"`
	Callbacks   []CallbackResponse `json:"callbacks,omitempty"`
}

// FigureResponse pairs a chart view with the URL of its rendered image.
type FigureResponse struct {
	Output   string `json:"output"`
	ImageURL string `json:"image_url"`
	View     any    `json:"view"`
}
