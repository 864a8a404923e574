// Package dataset loads the launch records CSV and holds it read-only for
// the lifetime of the process.
package dataset

import (
	"bytes"
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"spacexdash/internal/models"
)

// Column headers of the launch dataset.
const (
	ColumnLaunchSite      = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnClass           = "class"
	ColumnBoosterVersion  = "Booster Version"
	ColumnFlightNumber    = "Flight Number"
	ColumnBoosterCategory = "Booster Version Category"
)

var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterVersion,
}

// namespace for content-derived dataset IDs
var datasetNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("spacexdash/dataset"))

// Dataset is an immutable, ordered collection of launch records.
type Dataset struct {
	id      uuid.UUID
	records []models.LaunchRecord
	sites   []string
}

// Load reads the dataset CSV at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	ds, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	ds.id = uuid.NewSHA1(datasetNamespace, data)
	return ds, nil
}

// Parse reads CSV launch records from r. The first row must be a header;
// columns are located by name and unknown columns are ignored.
func Parse(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var records []models.LaunchRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec, err := parseRecord(row, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return New(records), nil
}

func parseRecord(row []string, index map[string]int) (models.LaunchRecord, error) {
	field := func(name string) (string, bool) {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var rec models.LaunchRecord
	rec.LaunchSite, _ = field(ColumnLaunchSite)
	rec.BoosterVersion, _ = field(ColumnBoosterVersion)
	rec.BoosterCategory, _ = field(ColumnBoosterCategory)

	raw, _ := field(ColumnPayloadMass)
	mass, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return rec, fmt.Errorf("%w: %s %q", ErrInvalidValue, ColumnPayloadMass, raw)
	}
	rec.PayloadMassKg = mass

	raw, _ = field(ColumnClass)
	class, err := strconv.Atoi(raw)
	if err != nil || (class != models.OutcomeFailure && class != models.OutcomeSuccess) {
		return rec, fmt.Errorf("%w: %s %q", ErrInvalidValue, ColumnClass, raw)
	}
	rec.Class = class

	if raw, ok := field(ColumnFlightNumber); ok && raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return rec, fmt.Errorf("%w: %s %q", ErrInvalidValue, ColumnFlightNumber, raw)
		}
		rec.FlightNumber = n
	}

	return rec, nil
}

// New builds a dataset from records. The slice is copied.
func New(records []models.LaunchRecord) *Dataset {
	ds := &Dataset{records: slices.Clone(records)}

	seen := make(map[string]bool)
	for _, r := range ds.records {
		if !seen[r.LaunchSite] {
			seen[r.LaunchSite] = true
			ds.sites = append(ds.sites, r.LaunchSite)
		}
	}

	ds.id = uuid.NewSHA1(datasetNamespace, []byte(fmt.Sprintf("%v", ds.records)))
	return ds
}

// ID returns an identifier derived from the dataset content.
func (d *Dataset) ID() uuid.UUID {
	return d.id
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all records in dataset order.
func (d *Dataset) Records() []models.LaunchRecord {
	return slices.Clone(d.records)
}

// Filter returns the records for which keep returns true, in dataset order.
func (d *Dataset) Filter(keep func(models.LaunchRecord) bool) []models.LaunchRecord {
	var out []models.LaunchRecord
	for _, r := range d.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// BySite returns the records launched from site, in dataset order.
func (d *Dataset) BySite(site string) []models.LaunchRecord {
	return d.Filter(func(r models.LaunchRecord) bool {
		return r.LaunchSite == site
	})
}

// Sites returns the distinct launch sites in order of first appearance.
func (d *Dataset) Sites() []string {
	return slices.Clone(d.sites)
}

// PayloadBounds returns the minimum and maximum payload mass. Both are zero
// for an empty dataset.
func (d *Dataset) PayloadBounds() (minKg, maxKg float64) {
	if len(d.records) == 0 {
		return 0, 0
	}
	lo := slices.MinFunc(d.records, func(a, b models.LaunchRecord) int {
		return cmp.Compare(a.PayloadMassKg, b.PayloadMassKg)
	})
	hi := slices.MaxFunc(d.records, func(a, b models.LaunchRecord) int {
		return cmp.Compare(a.PayloadMassKg, b.PayloadMassKg)
	})
	return lo.PayloadMassKg, hi.PayloadMassKg
}
