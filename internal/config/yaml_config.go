package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Dashboard tuning that's easier to manage in YAML than env vars.
type YAMLConfig struct {
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// DashboardConfig tunes the layout and the chart callbacks.
type DashboardConfig struct {
	Title       string        `yaml:"title,omitempty"`       // Overrides SITE_TITLE
	SliderStep  float64       `yaml:"slider_step"`           // Payload slider step in kg
	ChartWidth  int           `yaml:"chart_width"`           // Rendered chart width in px
	ChartHeight int           `yaml:"chart_height"`          // Rendered chart height in px
	Pie         PieConfig     `yaml:"pie"`
	Scatter     ScatterConfig `yaml:"scatter"`
}

// PieConfig configures the success pie chart.
type PieConfig struct {
	Mode string `yaml:"mode"` // "rows" (every launch per site) or "successes"
}

// ScatterConfig configures the payload scatter chart.
type ScatterConfig struct {
	FilterRows bool   `yaml:"filter_rows"` // Drop rows outside the payload range instead of only clipping the axis
	ColorBy    string `yaml:"color_by"`    // "version" or "category"
}

// DefaultDashboardConfig returns the dashboard settings used without a
// config file.
func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		SliderStep:  1000,
		ChartWidth:  900,
		ChartHeight: 450,
		Pie:         PieConfig{Mode: "rows"},
		Scatter:     ScatterConfig{ColorBy: "version"},
	}
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	cfg := YAMLConfig{Dashboard: DefaultDashboardConfig()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	d := &cfg.Dashboard
	defaults := DefaultDashboardConfig()
	if d.SliderStep <= 0 {
		d.SliderStep = defaults.SliderStep
	}
	if d.ChartWidth <= 0 {
		d.ChartWidth = defaults.ChartWidth
	}
	if d.ChartHeight <= 0 {
		d.ChartHeight = defaults.ChartHeight
	}
	if d.Pie.Mode == "" {
		d.Pie.Mode = defaults.Pie.Mode
	}
	if d.Scatter.ColorBy == "" {
		d.Scatter.ColorBy = defaults.Scatter.ColorBy
	}

	return &cfg, nil
}

// Apply merges the YAML settings into cfg. A nil receiver leaves cfg
// unchanged.
func (y *YAMLConfig) Apply(cfg *Config) {
	if y == nil {
		return
	}
	cfg.Dashboard = y.Dashboard
	if y.Dashboard.Title != "" {
		cfg.SiteTitle = y.Dashboard.Title
	}
}
