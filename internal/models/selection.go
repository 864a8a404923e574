package models

// AllSites is the site dropdown value that selects every launch site.
const AllSites = "All"

// PayloadRange is a closed payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether mass lies within the closed interval.
func (r PayloadRange) Contains(mass float64) bool {
	return mass >= r.Low && mass <= r.High
}

// Normalize returns the range with its bounds ordered low to high.
func (r PayloadRange) Normalize() PayloadRange {
	if r.Low > r.High {
		return PayloadRange{Low: r.High, High: r.Low}
	}
	return r
}

// Selection is a snapshot of the dashboard's input widgets.
type Selection struct {
	Site    string       `json:"site"` // "All", "" (unset) or a launch site name
	Payload PayloadRange `json:"payload"`
}

// IsAllSites returns true if the selection covers every launch site.
func IsAllSites(site string) bool {
	return site == "" || site == AllSites
}
