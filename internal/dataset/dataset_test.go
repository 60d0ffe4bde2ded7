package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/archiviz/universe/internal/logger"
)

func TestMain(m *testing.M) {
	// Silent logger; Parse logs category fallbacks at debug.
	_ = logger.InitWithRotation("error", logger.RotationConfig{}, false)
	os.Exit(m.Run())
}

const sampleJSON = `[
  {"id": 0, "x": 1.5, "y": -2.0, "z": 3.25, "type": "exterior",
   "filename": "tower_01.webp", "path": "Midjourney 1/tower_01.webp",
   "is_architecture": true, "description": "glass tower at dusk"},
  {"id": 1, "x": 0, "y": 0, "z": 0, "type": "interior",
   "filename": "lobby.webp", "path": "Midjourney 1/lobby.webp",
   "is_architecture": true},
  {"id": 2, "x": -4, "y": 5, "z": 6, "type": "hologram",
   "filename": "weird.webp", "path": "x/weird.webp"}
]`

func TestParse(t *testing.T) {
	records, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	r := records[0]
	if r.ID != 0 || r.X != 1.5 || r.Y != -2.0 || r.Z != 3.25 {
		t.Errorf("record 0 fields wrong: %+v", r)
	}
	if r.Type != CategoryExterior {
		t.Errorf("record 0 type = %q, want exterior", r.Type)
	}

	// Absent description decodes to empty, not an error.
	if records[1].Description != "" {
		t.Errorf("absent description = %q, want empty", records[1].Description)
	}

	// Unknown category falls back to other.
	if records[2].Type != CategoryOther {
		t.Errorf("unknown category = %q, want other", records[2].Type)
	}
}

func TestParseDeduplicatesByID(t *testing.T) {
	doubled := `[
	  {"id": 7, "x": 1, "y": 2, "z": 3, "type": "nature", "filename": "a.webp", "path": "a.webp"},
	  {"id": 7, "x": 1, "y": 2, "z": 3, "type": "nature", "filename": "a.webp", "path": "a.webp"}
	]`
	records, err := Parse([]byte(doubled))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected duplicate id collapsed to 1 record, got %d", len(records))
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte(`{"not": "an array"}`)); err == nil {
		t.Error("expected error for non-array dataset")
	}
	if _, err := Parse([]byte(`[{`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestFinite(t *testing.T) {
	if got := finite(math.NaN()); got != 0 {
		t.Errorf("finite(NaN) = %f, want 0", got)
	}
	if got := finite(math.Inf(1)); got != 0 {
		t.Errorf("finite(+Inf) = %f, want 0", got)
	}
	if got := finite(math.Inf(-1)); got != 0 {
		t.Errorf("finite(-Inf) = %f, want 0", got)
	}
	if got := finite(-12.5); got != -12.5 {
		t.Errorf("finite(-12.5) = %f", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coordinates.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 records, got %d", len(records))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing dataset file")
	}
}

func TestLoadStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statistics.json")
	statsJSON := `{
	  "total_images": 120,
	  "architecture_images": 90,
	  "type_distribution": {"exterior": 50, "interior": 30, "aerial": 10}
	}`
	if err := os.WriteFile(path, []byte(statsJSON), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	stats, err := LoadStats(path)
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.TotalImages != 120 || stats.ArchitectureImages != 90 {
		t.Errorf("stats totals wrong: %+v", stats)
	}
	if got := stats.CategoryCount(CategoryExterior); got != 50 {
		t.Errorf("exterior count = %d, want 50", got)
	}
	if got := stats.CategoryCount(CategoryNature); got != 0 {
		t.Errorf("nature count = %d, want 0", got)
	}

	var nilStats *Stats
	if got := nilStats.CategoryCount(CategoryOther); got != 0 {
		t.Errorf("nil stats count = %d, want 0", got)
	}
}

func TestCacheBust(t *testing.T) {
	now := time.Unix(1700000000, 42)
	busted, err := CacheBust("https://example.com/data/coordinates.json", now)
	if err != nil {
		t.Fatalf("CacheBust: %v", err)
	}
	if !strings.Contains(busted, "t=") {
		t.Errorf("expected timestamp query, got %s", busted)
	}
	if !strings.HasPrefix(busted, "https://example.com/data/coordinates.json?") {
		t.Errorf("base URL mangled: %s", busted)
	}

	// Existing query parameters survive.
	busted, err = CacheBust("https://example.com/d.json?v=2", now)
	if err != nil {
		t.Fatalf("CacheBust: %v", err)
	}
	if !strings.Contains(busted, "v=2") || !strings.Contains(busted, "t=") {
		t.Errorf("query parameters lost: %s", busted)
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"exterior", CategoryExterior},
		{"interior", CategoryInterior},
		{"aerial", CategoryAerial},
		{"nature", CategoryNature},
		{"other", CategoryOther},
		{"spaceship", CategoryOther},
		{"", CategoryOther},
		{"Exterior", CategoryOther}, // strict: case matters in the artifact
	}
	for _, tc := range cases {
		if got := ParseCategory(tc.in); got != tc.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
