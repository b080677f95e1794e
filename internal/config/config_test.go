package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Catalog.URL != DefaultEndpoint {
		t.Errorf("catalog url = %q", cfg.Catalog.URL)
	}
	if cfg.Catalog.Limit <= 0 {
		t.Error("row limit should be positive")
	}
	if cfg.Animate.YearsPerStep <= 0 {
		t.Error("years per step should be positive")
	}
	if cfg.Interval() != 100*time.Millisecond {
		t.Errorf("interval = %v, want 100ms", cfg.Interval())
	}
	if _, _, ok := cfg.Display.ScaleBounds(); ok {
		t.Error("default scale should derive from data, not config")
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stardrift.yaml")
	body := []byte("catalog:\n  min_pm_mas_yr: 250\ndisplay:\n  vmin: 2.5\n  vmax: 40\n")
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.MinPM != 250 {
		t.Errorf("min pm = %v, want 250", cfg.Catalog.MinPM)
	}
	if cfg.Catalog.Table != DefaultTable {
		t.Errorf("unset field lost its default: table = %q", cfg.Catalog.Table)
	}
	vmin, vmax, ok := cfg.Display.ScaleBounds()
	if !ok || vmin != 2.5 || vmax != 40 {
		t.Errorf("scale bounds = (%v, %v, %v), want (2.5, 40, true)", vmin, vmax, ok)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stardrift.yaml")

	cfg := DefaultConfig()
	cfg.Animate.Steps = 42
	cfg.Display.Palette = "plasma"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Animate.Steps != 42 {
		t.Errorf("steps = %d, want 42", got.Animate.Steps)
	}
	if got.Display.Palette != "plasma" {
		t.Errorf("palette = %q, want plasma", got.Display.Palette)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("nearby-fast")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Catalog.MinPM != 500 {
		t.Errorf("min pm = %v, want 500", cfg.Catalog.MinPM)
	}
	if cfg.Catalog.Table != DefaultTable {
		t.Error("preset should keep defaults for untouched fields")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("preset names not sorted: %v", names)
	}
	found := false
	for _, n := range names {
		if n == "century" {
			found = true
		}
	}
	if !found {
		t.Errorf("century preset missing from %v", names)
	}
}
