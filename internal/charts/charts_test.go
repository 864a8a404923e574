package charts

import (
	"bytes"
	"image/png"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacexdash/internal/aggregate"
	"spacexdash/internal/models"
	"spacexdash/internal/testutil"
)

func TestNewRenderer_Format(t *testing.T) {
	tests := []struct {
		format      string
		wantFormat  string
		contentType string
	}{
		{"svg", FormatSVG, "image/svg+xml"},
		{"png", FormatPNG, "image/png"},
		{"gif", FormatSVG, "image/svg+xml"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r := NewRenderer(600, 400, tt.format)
			assert.Equal(t, tt.wantFormat, r.Format)
			assert.Equal(t, tt.contentType, r.ContentType())
		})
	}
}

func TestPie_SVG(t *testing.T) {
	agg := aggregate.New(testutil.SampleDataset(t))
	r := NewRenderer(600, 400, FormatSVG)

	var buf bytes.Buffer
	require.NoError(t, r.Pie(agg.SuccessPie(models.AllSites), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg"), "output is not an SVG document")
	assert.Contains(t, out, "KSC LC-39A (3)")
}

func TestPie_SingleSite(t *testing.T) {
	agg := aggregate.New(testutil.ExampleDataset(t))
	r := NewRenderer(600, 400, FormatSVG)

	var buf bytes.Buffer
	require.NoError(t, r.Pie(agg.SuccessPie("B"), &buf))
	// failure slice is zero and left out
	assert.Contains(t, buf.String(), "Success (1)")
	assert.NotContains(t, buf.String(), "Failure (0)")
}

func TestPie_EmptyRendersPlaceholder(t *testing.T) {
	agg := aggregate.New(testutil.ExampleDataset(t))
	r := NewRenderer(600, 400, FormatSVG)

	var buf bytes.Buffer
	require.NoError(t, r.Pie(agg.SuccessPie("unknown"), &buf))
	assert.Contains(t, buf.String(), "No launches match the current selection")
}

func TestScatter_SVG(t *testing.T) {
	agg := aggregate.New(testutil.SampleDataset(t))
	r := NewRenderer(800, 400, FormatSVG)

	var buf bytes.Buffer
	view := agg.PayloadScatter(models.AllSites, models.PayloadRange{Low: 0, High: 10000})
	require.NoError(t, r.Scatter(view, &buf))

	out := buf.String()
	assert.Contains(t, out, "Launch Success by Payload")
	assert.Contains(t, out, "F9 FT B1030")
}

func TestScatter_DegenerateRange(t *testing.T) {
	agg := aggregate.New(testutil.ExampleDataset(t))
	r := NewRenderer(800, 400, FormatSVG)

	var buf bytes.Buffer
	view := agg.PayloadScatter("B", models.PayloadRange{Low: 800, High: 800})
	assert.NoError(t, r.Scatter(view, &buf))
}

func TestScatter_EmptyRendersPlaceholder(t *testing.T) {
	r := NewRenderer(800, 400, FormatSVG)

	var buf bytes.Buffer
	require.NoError(t, r.Scatter(models.ScatterView{Title: "Launch Success by Payload for: X"}, &buf))
	assert.Contains(t, buf.String(), "No launches match the current selection")
}

func TestPie_PNG(t *testing.T) {
	agg := aggregate.New(testutil.ExampleDataset(t))
	r := NewRenderer(300, 200, FormatPNG)

	var buf bytes.Buffer
	require.NoError(t, r.Pie(agg.SuccessPie(models.AllSites), &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
}

var circleCX = regexp.MustCompile(`<circle cx="(-?\d+)"`)

func TestScatter_ClipsPointsToRange(t *testing.T) {
	r := NewRenderer(900, 450, FormatSVG)
	view := models.ScatterView{
		Title:  "Launch Success by Payload",
		XRange: models.PayloadRange{Low: 3000, High: 5000},
		Points: []models.ScatterPoint{
			{PayloadMassKg: 2950, Class: 1, Category: "v1.1"},
			{PayloadMassKg: 4000, Class: 0, Category: "v1.1"},
			{PayloadMassKg: 5050, Class: 1, Category: "FT"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Scatter(view, &buf))

	matches := circleCX.FindAllStringSubmatch(buf.String(), -1)
	require.Len(t, matches, 1, "only the point inside the range is drawn")

	cx, err := strconv.Atoi(matches[0][1])
	require.NoError(t, err)
	assert.Greater(t, cx, 900/4)
	assert.Less(t, cx, 900*3/4)
	// the view itself is not filtered
	assert.Len(t, view.Points, 3)
}

func TestScatter_AllPointsOutsideRangeRendersPlaceholder(t *testing.T) {
	r := NewRenderer(600, 400, FormatSVG)
	view := models.ScatterView{
		Title:  "Launch Success by Payload",
		XRange: models.PayloadRange{Low: 3000, High: 5000},
		Points: []models.ScatterPoint{{PayloadMassKg: 9600, Class: 1, Category: "B5"}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Scatter(view, &buf))
	assert.Contains(t, buf.String(), "No launches match the current selection")
}
