package config

// Settings holds front-end and runner settings (settings.json)
type Settings struct {
	Display    DisplayConfig    `json:"display"`
	Render     RenderConfig     `json:"render"`
	Simulation SimulationConfig `json:"simulation"`
}

// DisplayConfig holds GUI window settings
type DisplayConfig struct {
	TileSize int `json:"tileSize"`
	Scale    int `json:"scale"`
	TPS      int `json:"tps"`
}

// RenderConfig holds renderer settings
type RenderConfig struct {
	HideTraps bool `json:"hideTraps"`
}

// SimulationConfig holds command runner settings
type SimulationConfig struct {
	StopOnEnd bool `json:"stopOnEnd"`
}

// DefaultSettings returns the settings used when settings.json is absent
func DefaultSettings() *Settings {
	return &Settings{
		Display: DisplayConfig{
			TileSize: 24,
			Scale:    2,
			TPS:      30,
		},
		Simulation: SimulationConfig{
			StopOnEnd: true,
		},
	}
}

// Validate checks that the display values can size a window and a tick rate
func (s *Settings) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"tileSize", s.Display.TileSize},
		{"scale", s.Display.Scale},
		{"tps", s.Display.TPS},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return malformed("display.%s must be positive, got %d", f.name, f.value)
		}
	}
	return nil
}
