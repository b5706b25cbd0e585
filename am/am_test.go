package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Database.Path != "lattix.db" {
		t.Errorf("expected default database path 'lattix.db', got %q", cfg.Database.Path)
	}

	if cfg.Log.Theme != "everforest" {
		t.Errorf("expected default log theme 'everforest', got %q", cfg.Log.Theme)
	}

	if cfg.Log.JSON {
		t.Error("JSON log output should default to false")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `database:
  path: /tmp/custom.db
log:
  theme: gruvbox
  json: true
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("expected database path '/tmp/custom.db', got %q", cfg.Database.Path)
	}
	if cfg.Log.Theme != "gruvbox" {
		t.Errorf("expected log theme 'gruvbox', got %q", cfg.Log.Theme)
	}
	if !cfg.Log.JSON {
		t.Error("expected JSON log output to be enabled")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestGetDatabasePath_EnvOverride(t *testing.T) {
	Reset()
	t.Setenv("DB_PATH", "/tmp/override.db")

	path, err := GetDatabasePath()
	if err != nil {
		t.Fatalf("GetDatabasePath() failed: %v", err)
	}
	if path != "/tmp/override.db" {
		t.Errorf("expected env override path, got %q", path)
	}
}
