// Package config provides YAML-based configuration for the simulator:
// the responsive layout policy and the simulation speed defaults.
package config

import (
	"github.com/vovakirdan/tui-life/internal/life"
)

// Config is the root configuration document.
type Config struct {
	Layout     LayoutConfig     `yaml:"layout"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// LayoutConfig mirrors life.LayoutPolicy in YAML form. All lengths are in
// layout units, not terminal cells.
type LayoutConfig struct {
	CellSize     int `yaml:"cell_size"`
	MarginX      int `yaml:"margin_x"`
	ChromeHeight int `yaml:"chrome_height"`

	MinRows       int `yaml:"min_rows"`
	MaxRows       int `yaml:"max_rows"`
	MaxRowsMobile int `yaml:"max_rows_mobile"`
	MinCols       int `yaml:"min_cols"`
	MaxCols       int `yaml:"max_cols"`

	FallbackRows int `yaml:"fallback_rows"`
	FallbackCols int `yaml:"fallback_cols"`

	TabletMinWidth  int `yaml:"tablet_min_width"`
	DesktopMinWidth int `yaml:"desktop_min_width"`
}

// SimulationConfig holds simulation tuning.
type SimulationConfig struct {
	// DefaultSpeedMs is the initial tick interval. Runtime changes are
	// still clamped to the fixed [100, 2000] range.
	DefaultSpeedMs int `yaml:"default_speed_ms"`
	// RandomDensity is the live-cell probability used by randomize.
	RandomDensity float64 `yaml:"random_density"`
}

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			CellSize:        20,
			MarginX:         20,
			ChromeHeight:    120,
			MinRows:         8,
			MaxRows:         40,
			MaxRowsMobile:   25,
			MinCols:         10,
			MaxCols:         40,
			FallbackRows:    15,
			FallbackCols:    20,
			TabletMinWidth:  768,
			DesktopMinWidth: 1024,
		},
		Simulation: SimulationConfig{
			DefaultSpeedMs: life.DefaultSpeedMs,
			RandomDensity:  0.25,
		},
	}
}

// LayoutPolicy converts the layout section into the policy the sim consumes.
func (c Config) LayoutPolicy() life.LayoutPolicy {
	l := c.Layout
	return life.LayoutPolicy{
		CellSize:        l.CellSize,
		MarginX:         l.MarginX,
		ChromeHeight:    l.ChromeHeight,
		MinRows:         l.MinRows,
		MaxRows:         l.MaxRows,
		MaxRowsMobile:   l.MaxRowsMobile,
		MinCols:         l.MinCols,
		MaxCols:         l.MaxCols,
		FallbackRows:    l.FallbackRows,
		FallbackCols:    l.FallbackCols,
		TabletMinWidth:  l.TabletMinWidth,
		DesktopMinWidth: l.DesktopMinWidth,
	}
}
