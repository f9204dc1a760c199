package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Scan.Includes) != 1 || cfg.Scan.Includes[0] != "**/*.go" {
		t.Errorf("unexpected includes: %v", cfg.Scan.Includes)
	}
	if cfg.Scan.IncludeTests {
		t.Error("expected tests excluded by default")
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled by default")
	}
	if cfg.Cache.TTLMinutes != 15 {
		t.Errorf("expected TTLMinutes=15, got %d", cfg.Cache.TTLMinutes)
	}
	if cfg.Report.Format != "text" {
		t.Errorf("expected format=text, got %s", cfg.Report.Format)
	}
	if cfg.Prompt.Style != "godoc" {
		t.Errorf("expected style=godoc, got %s", cfg.Prompt.Style)
	}
}

func TestEffectiveExcludes(t *testing.T) {
	cfg := DefaultConfig()

	excludes := cfg.EffectiveExcludes()
	found := false
	for _, p := range excludes {
		if p == "**/*_test.go" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected test files excluded: %v", excludes)
	}

	cfg.Scan.IncludeTests = true
	for _, p := range cfg.EffectiveExcludes() {
		if p == "**/*_test.go" {
			t.Error("test files must not be excluded when include_tests is set")
		}
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "doccov.yaml")

	content := `
scan:
  workers: 8
  include_tests: true
cache:
  enabled: false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Scan.Workers != 8 {
		t.Errorf("expected Workers=8, got %d", cfg.Scan.Workers)
	}
	if !cfg.Scan.IncludeTests {
		t.Error("expected IncludeTests=true")
	}
	if cfg.Cache.Enabled {
		t.Error("expected Cache.Enabled=false")
	}
	if cfg.Report.Format != "text" {
		t.Errorf("expected defaults preserved, got format %s", cfg.Report.Format)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "doccov.yaml")

	content := `
report:
  format: markdown
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Report.Format != "markdown" {
		t.Errorf("expected format=markdown, got %s", cfg.Report.Format)
	}
}

func TestScanDBPath(t *testing.T) {
	path := ScanDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".doccov", "scan.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
