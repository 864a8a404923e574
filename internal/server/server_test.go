package server

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"spacexdash/internal/config"
	"spacexdash/internal/testutil"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()

	cfg := &config.Config{
		Env:            "test",
		BaseURL:        "http://localhost:8050",
		RateLimitMax:   1000,
		MetricsEnabled: true,
		SiteTitle:      "SpaceX Launch Records Dashboard",
		ChartFormat:    "svg",
		Dashboard:      config.DefaultDashboardConfig(),
	}
	if mutate != nil {
		mutate(cfg)
	}

	deps, err := NewDeps(cfg, testutil.SampleDataset(t))
	if err != nil {
		t.Fatalf("NewDeps() error = %v", err)
	}

	s := New(cfg)
	s.RegisterRoutes(deps)
	return s
}

func get(t *testing.T, s *Server, target string, headers map[string]string) (int, http.Header, string) {
	t.Helper()

	req, _ := http.NewRequest("GET", target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("GET %s failed: %v", target, err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, resp.Header, string(body)
}

func TestIndex_RendersLayoutAndCharts(t *testing.T) {
	s := newTestServer(t, nil)

	status, _, body := get(t, s, "/", nil)
	if status != 200 {
		t.Fatalf("GET / = %d, want 200: %s", status, body)
	}

	for _, want := range []string{
		"SpaceX Launch Records Dashboard",
		`id="site-dropdown"`,
		"Select Launch Site",
		`<option value="All"`,
		`<option value="KSC LC-39A"`,
		`id="payload-slider"`,
		`max="10600"`,
		`id="success-pie-chart"`,
		`id="success-payload-scatter-chart"`,
		"/charts/pie.svg?",
		"/charts/scatter.svg?",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("GET / body missing %q", want)
		}
	}
}

func TestUpdate_OnlyDependentOutputs(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name        string
		target      string
		headers     map[string]string
		wantPie     bool
		wantScatter bool
	}{
		{
			name:        "site change via HX-Trigger",
			target:      "/update?site=KSC+LC-39A&payload_low=0&payload_high=9600",
			headers:     map[string]string{"HX-Trigger": "site-dropdown"},
			wantPie:     true,
			wantScatter: true,
		},
		{
			name:        "payload change via query",
			target:      "/update?site=All&payload_low=1000&payload_high=5000&changed=payload-slider",
			wantPie:     false,
			wantScatter: true,
		},
		{
			name:        "nothing reported refreshes everything",
			target:      "/update",
			wantPie:     true,
			wantScatter: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, body := get(t, s, tt.target, tt.headers)
			if status != 200 {
				t.Fatalf("status = %d, want 200: %s", status, body)
			}
			if got := strings.Contains(body, `id="success-pie-chart"`); got != tt.wantPie {
				t.Errorf("pie fragment present = %v, want %v", got, tt.wantPie)
			}
			if got := strings.Contains(body, `id="success-payload-scatter-chart"`); got != tt.wantScatter {
				t.Errorf("scatter fragment present = %v, want %v", got, tt.wantScatter)
			}
			if !strings.Contains(body, `hx-swap-oob="true"`) {
				t.Error("fragments are not out-of-band swaps")
			}
			if strings.Contains(body, "<html") {
				t.Error("update response rendered the page layout")
			}
		})
	}
}

func TestChartImages(t *testing.T) {
	s := newTestServer(t, nil)

	for _, target := range []string{
		"/charts/pie.svg?site=All",
		"/charts/pie.svg?site=Boca+Chica",
		"/charts/scatter.svg?site=All&payload_low=0&payload_high=1000",
		"/charts/scatter.svg?site=KSC+LC-39A",
	} {
		status, header, body := get(t, s, target, nil)
		if status != 200 {
			t.Errorf("GET %s = %d, want 200", target, status)
			continue
		}
		if ct := header.Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("GET %s Content-Type = %q, want image/svg+xml", target, ct)
		}
		if !strings.HasPrefix(body, "<svg") {
			t.Errorf("GET %s did not return an SVG document", target)
		}
	}
}

func TestChartImages_PNGRoutes(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) { cfg.ChartFormat = "png" })

	status, header, _ := get(t, s, "/charts/pie.png", nil)
	if status != 200 {
		t.Fatalf("GET /charts/pie.png = %d, want 200", status)
	}
	if ct := header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}

	if status, _, _ := get(t, s, "/charts/pie.svg", nil); status != 404 {
		t.Errorf("GET /charts/pie.svg = %d, want 404 when serving PNG", status)
	}
}

func TestProbes(t *testing.T) {
	s := newTestServer(t, nil)

	for _, target := range []string{"/healthz", "/readyz"} {
		status, _, body := get(t, s, target, nil)
		if status != 200 || !strings.Contains(body, `"status":"ok"`) {
			t.Errorf("GET %s = %d %s, want 200 ok", target, status, body)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	// trigger callback invocations
	get(t, s, "/", nil)

	status, _, body := get(t, s, "/metrics", nil)
	if status != 200 {
		t.Fatalf("GET /metrics = %d, want 200", status)
	}
	if !strings.Contains(body, "spacexdash_callback_invocations_total") {
		t.Error("metrics output missing spacexdash_callback_invocations_total")
	}
}

func TestMetricsDisabled(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) { cfg.MetricsEnabled = false })

	if status, _, _ := get(t, s, "/metrics", nil); status != 404 {
		t.Errorf("GET /metrics = %d, want 404 when disabled", status)
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) { cfg.RateLimitMax = 2 })

	for i := 0; i < 2; i++ {
		if status, _, _ := get(t, s, "/healthz", nil); status != 200 {
			t.Fatalf("request %d = %d, want 200", i+1, status)
		}
	}
	if status, _, _ := get(t, s, "/healthz", nil); status != 429 {
		t.Errorf("request over limit = %d, want 429", status)
	}
}
