package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint   = "https://gea.esac.esa.int/tap-server/tap/sync"
	DefaultTable      = "gaiadr3.gaia_source"
	DefaultEpochYear  = 2016.0
	DefaultMinPM      = 100.0
	DefaultLimit      = 500
	DefaultCacheFiles = 5

	DefaultYearsPerStep = 1000.0
	DefaultSteps        = 100
	DefaultIntervalMs   = 100

	DefaultWidth  = 60
	DefaultHeight = 22
)

type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Animate AnimateConfig `yaml:"animate"`
	Display DisplayConfig `yaml:"display"`
}

type CatalogConfig struct {
	URL           string  `yaml:"url"`
	Table         string  `yaml:"table"`
	EpochYear     float64 `yaml:"epoch_year"`
	MinPM         float64 `yaml:"min_pm_mas_yr"`
	Limit         int     `yaml:"limit"`
	CacheDir      string  `yaml:"cache_dir"`
	MaxCacheFiles int     `yaml:"max_cache_files"`
}

type AnimateConfig struct {
	YearsPerStep float64 `yaml:"years_per_step"`
	Steps        int     `yaml:"steps"`
	IntervalMs   int     `yaml:"interval_ms"`
}

type DisplayConfig struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Theme   string   `yaml:"theme"`
	Palette string   `yaml:"palette"`
	VMin    *float64 `yaml:"vmin,omitempty"`
	VMax    *float64 `yaml:"vmax,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			URL:           DefaultEndpoint,
			Table:         DefaultTable,
			EpochYear:     DefaultEpochYear,
			MinPM:         DefaultMinPM,
			Limit:         DefaultLimit,
			MaxCacheFiles: DefaultCacheFiles,
		},
		Animate: AnimateConfig{
			YearsPerStep: DefaultYearsPerStep,
			Steps:        DefaultSteps,
			IntervalMs:   DefaultIntervalMs,
		},
		Display: DisplayConfig{
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Theme:   "dark",
			Palette: "viridis",
		},
	}
}

// Load reads a config file over the defaults, so partial files only
// override what they mention.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.Animate.IntervalMs) * time.Millisecond
}

// ScaleBounds reports the configured color scale. ok is false when
// either bound is absent and the scale should derive from the data.
func (d *DisplayConfig) ScaleBounds() (vmin, vmax float64, ok bool) {
	if d.VMin == nil || d.VMax == nil {
		return 0, 0, false
	}
	return *d.VMin, *d.VMax, true
}
