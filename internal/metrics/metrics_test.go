package metrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	fixtures "spacexdash/internal/testutil"
)

func TestDatasetCollector(t *testing.T) {
	c := NewDatasetCollector(fixtures.ExampleDataset(t))

	expected := `
# HELP spacexdash_dataset_launches Launches in the loaded dataset by site and outcome
# TYPE spacexdash_dataset_launches gauge
spacexdash_dataset_launches{outcome="failure",site="A"} 1
spacexdash_dataset_launches{outcome="failure",site="B"} 0
spacexdash_dataset_launches{outcome="success",site="A"} 1
spacexdash_dataset_launches{outcome="success",site="B"} 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestRecordCallback(t *testing.T) {
	before := testutil.ToFloat64(callbackInvocations.WithLabelValues("success-pie-chart", "ok"))
	beforeErr := testutil.ToFloat64(callbackInvocations.WithLabelValues("success-pie-chart", "error"))

	RecordCallback("success-pie-chart", nil)
	RecordCallback("success-pie-chart", nil)
	RecordCallback("success-pie-chart", errors.New("render failed"))

	if got := testutil.ToFloat64(callbackInvocations.WithLabelValues("success-pie-chart", "ok")) - before; got != 2 {
		t.Errorf("ok invocations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(callbackInvocations.WithLabelValues("success-pie-chart", "error")) - beforeErr; got != 1 {
		t.Errorf("error invocations = %v, want 1", got)
	}
}
