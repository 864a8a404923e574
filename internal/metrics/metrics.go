package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"spacexdash/internal/dataset"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	launchesDesc = prometheus.NewDesc(
		"spacexdash_dataset_launches",
		"Launches in the loaded dataset by site and outcome",
		[]string{"site", "outcome"},
		nil,
	)

	callbackInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spacexdash_callback_invocations_total",
			Help: "Chart update callback invocations by output and result",
		},
		[]string{"output", "result"},
	)
)

// DatasetCollector is a custom Prometheus collector that reports launch
// counts from the dataset on each scrape.
type DatasetCollector struct {
	ds *dataset.Dataset
}

// NewDatasetCollector creates a collector over ds.
func NewDatasetCollector(ds *dataset.Dataset) *DatasetCollector {
	return &DatasetCollector{ds: ds}
}

// Describe sends the metric descriptor to the channel.
func (c *DatasetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- launchesDesc
}

// Collect counts launches per site and emits them as gauges.
func (c *DatasetCollector) Collect(ch chan<- prometheus.Metric) {
	for _, site := range c.ds.Sites() {
		var success, failure int
		for _, r := range c.ds.BySite(site) {
			if r.IsSuccess() {
				success++
			} else {
				failure++
			}
		}
		ch <- prometheus.MustNewConstMetric(launchesDesc, prometheus.GaugeValue, float64(success), site, OutcomeSuccess)
		ch <- prometheus.MustNewConstMetric(launchesDesc, prometheus.GaugeValue, float64(failure), site, OutcomeFailure)
	}
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(ds *dataset.Dataset) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewDatasetCollector(ds), callbackInvocations)
	})
}

// RecordCallback counts one callback invocation. Its signature matches a
// reactive host observer.
func RecordCallback(output string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	callbackInvocations.WithLabelValues(output, result).Inc()
}
