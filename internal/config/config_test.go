package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.VolumeUnit != "ml" {
		t.Errorf("VolumeUnit = %q, want ml", cfg.VolumeUnit)
	}
	if cfg.ExportDir != "" || cfg.Debug {
		t.Errorf("unexpected non-default config: %+v", cfg)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "export_dir: /tmp/exports\nvolume_unit: oz\ndebug: true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ExportDir != "/tmp/exports" || cfg.VolumeUnit != "oz" || !cfg.Debug {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadRejectsBadVolumeUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("volume_unit: liters\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with bad volume_unit succeeded, want error")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("volume_unit: [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML succeeded, want error")
	}
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timezone: Mars/Olympus\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with unknown timezone succeeded, want error")
	}
}

func TestLocation(t *testing.T) {
	loc, err := Config{}.Location()
	if err != nil || loc != time.Local {
		t.Errorf("Location() with empty timezone = %v, %v; want local", loc, err)
	}

	loc, err = Config{Timezone: "Asia/Tokyo"}.Location()
	if err != nil {
		t.Fatalf("Location(Asia/Tokyo) error: %v", err)
	}
	if loc.String() != "Asia/Tokyo" {
		t.Errorf("Location(Asia/Tokyo) = %v", loc)
	}

	if _, err := (Config{Timezone: "not-a-zone"}).Location(); err == nil {
		t.Error("Location() with bad timezone succeeded, want error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := Config{ExportDir: "/data/exports", VolumeUnit: "oz", Timezone: "Asia/Tokyo"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
