package config

import "sort"

// preset builds a named variant on top of the defaults so presets stay
// complete configs no matter how few knobs they touch.
func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

var Presets = map[string]*Config{
	"nearby-fast": preset(func(c *Config) {
		c.Catalog.MinPM = 500
		c.Catalog.Limit = 100
		c.Animate.YearsPerStep = 500
		c.Animate.Steps = 120
	}),
	"wide-survey": preset(func(c *Config) {
		c.Catalog.MinPM = 50
		c.Catalog.Limit = 1000
		c.Animate.YearsPerStep = 2000
		c.Animate.Steps = 80
		c.Display.Palette = "plasma"
	}),
	"century": preset(func(c *Config) {
		c.Catalog.Limit = 300
		c.Animate.YearsPerStep = 1
		c.Animate.Steps = 100
		c.Animate.IntervalMs = 50
	}),
	"slow-sky": preset(func(c *Config) {
		c.Catalog.MinPM = 20
		c.Catalog.Limit = 2000
		c.Animate.YearsPerStep = 5000
		c.Animate.Steps = 60
		c.Display.Palette = "mono"
	}),
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
