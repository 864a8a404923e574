package models

// Pie slice labels used for a single site's outcome breakdown.
const (
	LabelSuccess = "Success"
	LabelFailure = "Failure"
)

// PieSlice is one labelled count in a pie chart.
type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PieView is the chart-ready result of the site/outcome aggregation.
type PieView struct {
	Title    string     `json:"title"`
	Site     string     `json:"site"`
	AllSites bool       `json:"all_sites"`
	Slices   []PieSlice `json:"slices"`
}

// Total returns the sum of all slice values.
func (v PieView) Total() int {
	total := 0
	for _, s := range v.Slices {
		total += s.Value
	}
	return total
}

// IsEmpty returns true if there is nothing to draw.
func (v PieView) IsEmpty() bool {
	return v.Total() == 0
}

// Values returns the slices as a label to value map.
func (v PieView) Values() map[string]int {
	m := make(map[string]int, len(v.Slices))
	for _, s := range v.Slices {
		m[s.Label] = s.Value
	}
	return m
}

// ScatterPoint is one launch plotted by payload mass against outcome.
type ScatterPoint struct {
	PayloadMassKg float64 `json:"x"`
	Class         int     `json:"y"`
	Category      string  `json:"category"`
	LaunchSite    string  `json:"launch_site"`
}

// ScatterView is the chart-ready result of the payload/outcome selection.
// XRange is a display instruction; Points are only restricted to it when
// RowsFiltered is true.
type ScatterView struct {
	Title        string         `json:"title"`
	Site         string         `json:"site"`
	AllSites     bool           `json:"all_sites"`
	XRange       PayloadRange   `json:"x_range"`
	RowsFiltered bool           `json:"rows_filtered"`
	Points       []ScatterPoint `json:"points"`
}

// IsEmpty returns true if there are no points to draw.
func (v ScatterView) IsEmpty() bool {
	return len(v.Points) == 0
}

// Categories returns the distinct point categories in first-seen order.
func (v ScatterView) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range v.Points {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
