// Package testutil provides test utilities and helpers.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spacexdash/internal/dataset"
	"spacexdash/internal/models"
)

// SampleCSV is a small launch dataset in the published column layout,
// including the unnamed index column.
const SampleCSV = `,Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0
1,2,CCAFS LC-40,0,525.0,F9 v1.0  B0005,v1.0
2,3,CCAFS LC-40,1,677.0,F9 v1.0  B0007,v1.0
3,4,VAFB SLC-4E,0,500.0,F9 v1.1B1003,v1.1
4,5,CCAFS LC-40,1,3170.0,F9 v1.1,v1.1
5,6,KSC LC-39A,1,2490.0,F9 FT B1031.1,FT
6,7,KSC LC-39A,1,5600.0,F9 FT B1030,FT
7,8,VAFB SLC-4E,1,9600.0,F9 FT B1036.1,FT
8,9,KSC LC-39A,0,5300.0,F9 FT B1035.1,FT
9,10,CCAFS SLC-40,1,3669.0,F9 B5 B1046.1,B5
`

// ExampleRecords is the three-launch dataset used to illustrate the
// aggregation behavior.
func ExampleRecords() []models.LaunchRecord {
	return []models.LaunchRecord{
		{LaunchSite: "A", PayloadMassKg: 500, Class: 1, BoosterVersion: "B1"},
		{LaunchSite: "A", PayloadMassKg: 1500, Class: 0, BoosterVersion: "B2"},
		{LaunchSite: "B", PayloadMassKg: 800, Class: 1, BoosterVersion: "B1"},
	}
}

// ExampleDataset wraps ExampleRecords in a dataset.
func ExampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return dataset.New(ExampleRecords())
}

// SampleDataset parses SampleCSV.
func SampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.Parse(strings.NewReader(SampleCSV))
	if err != nil {
		t.Fatalf("failed to parse sample dataset: %v", err)
	}
	return ds
}

// WriteCSV writes content to a temporary CSV file and returns its path.
func WriteCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "launches.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}
