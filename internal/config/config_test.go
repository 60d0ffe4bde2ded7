package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Data.Dataset != "data/coordinates.json" {
		t.Errorf("expected default dataset path, got %s", cfg.Data.Dataset)
	}
	if cfg.Data.AssetsRoot != "public" {
		t.Errorf("expected assets root 'public', got %s", cfg.Data.AssetsRoot)
	}

	if cfg.View.Language != "en" {
		t.Errorf("expected language 'en', got %s", cfg.View.Language)
	}
	if cfg.View.ShuffleRange != 60 {
		t.Errorf("expected shuffle range 60, got %f", cfg.View.ShuffleRange)
	}
	if cfg.View.AnimationStep <= 0 || cfg.View.AnimationStep > 1 {
		t.Errorf("animation step out of (0,1]: %f", cfg.View.AnimationStep)
	}
	if cfg.View.BackgroundSize >= cfg.View.PointSize || cfg.View.PointSize >= cfg.View.SelectedSize {
		t.Error("expected background < normal < selected point sizes")
	}

	if cfg.Audio.Enabled {
		t.Error("expected audio to be disabled by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  vsync: false

data:
  dataset: "https://example.com/data/coordinates.json"
  assets_root: "assets"

view:
  language: "ko"
  point_size: 8
  shuffle_range: 40

logging:
  level: "debug"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync false after load")
	}
	if cfg.Data.Dataset != "https://example.com/data/coordinates.json" {
		t.Errorf("unexpected dataset: %s", cfg.Data.Dataset)
	}
	if cfg.View.Language != "ko" {
		t.Errorf("expected language 'ko', got %s", cfg.View.Language)
	}
	if cfg.View.ShuffleRange != 40 {
		t.Errorf("expected shuffle range 40, got %f", cfg.View.ShuffleRange)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}

	// Fields absent from the file keep their defaults.
	if cfg.View.SelectedSize != 12 {
		t.Errorf("expected selected size default 12, got %f", cfg.View.SelectedSize)
	}
	if cfg.Data.Stats != "data/statistics.json" {
		t.Errorf("expected stats default, got %s", cfg.Data.Stats)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics: [not a map"), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.View.Language = "ko"
	cfg.Graphics.Width = 1600

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile after save: %v", err)
	}
	if loaded.View.Language != "ko" {
		t.Errorf("expected language 'ko' after round trip, got %s", loaded.View.Language)
	}
	if loaded.Graphics.Width != 1600 {
		t.Errorf("expected width 1600 after round trip, got %d", loaded.Graphics.Width)
	}
}
