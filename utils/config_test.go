package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	original := &Config{
		UI: UIConfig{
			Theme:        "dark",
			Language:     "en",
			FontSize:     16,
			WindowWidth:  1024,
			WindowHeight: 768,
		},
		Data: DataConfig{
			DBPath: filepath.Join(t.TempDir(), "app.db"),
		},
	}

	if err := SaveConfig(path, original); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.UI != original.UI {
		t.Errorf("ui config changed: %+v != %+v", loaded.UI, original.UI)
	}
	if loaded.Data.DBPath != original.Data.DBPath {
		t.Errorf("db path changed: %q != %q", loaded.Data.DBPath, original.Data.DBPath)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := SaveConfig(path, &Config{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
