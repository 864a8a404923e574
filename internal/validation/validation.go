package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"spacexdash/internal/models"
)

// WidgetIDPattern defines the valid widget ID format: lowercase alphanumerics and hyphens.
var WidgetIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// maxSiteLength bounds the site query value; longer values can't name a site.
const maxSiteLength = 100

// NormalizeSite trims a site selection. Overlong values are treated as unset.
func NormalizeSite(site string) string {
	site = strings.TrimSpace(site)
	if len(site) > maxSiteLength {
		return ""
	}
	return site
}

// ParsePayload parses a payload mass in kilograms. Empty, non-numeric, NaN
// and infinite values are rejected.
func ParsePayload(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParsePayloadRange builds a payload range from raw query values. Each bound
// that fails to parse falls back to the matching bound of fallback, and the
// result is ordered low to high.
func ParsePayloadRange(lowRaw, highRaw string, fallback models.PayloadRange) models.PayloadRange {
	r := fallback
	if v, ok := ParsePayload(lowRaw); ok {
		r.Low = v
	}
	if v, ok := ParsePayload(highRaw); ok {
		r.High = v
	}
	return r.Normalize()
}

// ParseWidgetIDs splits a comma-separated list of widget IDs, dropping
// anything that isn't a valid ID.
func ParseWidgetIDs(raw string) []string {
	return FilterWidgetIDs(strings.Split(raw, ","))
}

// maxWidgetIDLength bounds a widget ID.
const maxWidgetIDLength = 64

// IsValidWidgetID reports whether id is a well-formed widget ID.
func IsValidWidgetID(id string) bool {
	return len(id) <= maxWidgetIDLength && WidgetIDPattern.MatchString(id)
}

// FilterWidgetIDs trims ids and keeps the well-formed ones in order.
func FilterWidgetIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if IsValidWidgetID(id) {
			out = append(out, id)
		}
	}
	return out
}

// ParseSelection builds a widget selection from raw query values, falling
// back to the given payload range for missing or invalid bounds.
func ParseSelection(site, lowRaw, highRaw string, fallback models.PayloadRange) models.Selection {
	return models.Selection{
		Site:    NormalizeSite(site),
		Payload: ParsePayloadRange(lowRaw, highRaw, fallback),
	}
}
