package models

// Outcome class values as stored in the dataset's class column.
const (
	OutcomeFailure = 0
	OutcomeSuccess = 1
)

// LaunchRecord is one launch attempt from the launch dataset.
type LaunchRecord struct {
	FlightNumber    int     `json:"flight_number,omitempty"`
	LaunchSite      string  `json:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Class           int     `json:"class"`
	BoosterVersion  string  `json:"booster_version"`
	BoosterCategory string  `json:"booster_category,omitempty"`
}

// IsSuccess returns true if the launch outcome class is a success.
func (r LaunchRecord) IsSuccess() bool {
	return r.Class == OutcomeSuccess
}
