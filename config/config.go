package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the doccov tool.
type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Cache  CacheConfig  `yaml:"cache"`
	Report ReportConfig `yaml:"report"`
	Prompt PromptConfig `yaml:"prompt"`
}

// ScanConfig holds file selection and scan behavior.
type ScanConfig struct {
	Includes     []string `yaml:"includes"`
	Excludes     []string `yaml:"excludes"`
	IncludeTests bool     `yaml:"include_tests"`
	Workers      int      `yaml:"workers"` // 0 = one per CPU
}

// CacheConfig holds the session report cache settings.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	TTLMinutes int  `yaml:"ttl_minutes"`
	MaxEntries int  `yaml:"max_entries"`
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	Format string `yaml:"format"` // "text", "json", "yaml", "markdown", "csv"
	Output string `yaml:"output"` // empty = stdout
}

// PromptConfig holds draft-prompt settings.
type PromptConfig struct {
	Style           string `yaml:"style"` // "godoc", "google", "numpy", "rest"
	MaxSnippetLines int    `yaml:"max_snippet_lines"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Includes:     []string{"**/*.go"},
			Excludes:     []string{"**/vendor/**", "**/.git/**", "**/testdata/**", "**/node_modules/**", "**/.doccov/**"},
			IncludeTests: false,
			Workers:      0,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLMinutes: 15,
			MaxEntries: 256,
		},
		Report: ReportConfig{
			Format: "text",
			Output: "",
		},
		Prompt: PromptConfig{
			Style:           "godoc",
			MaxSnippetLines: 60,
		},
	}
}

// EffectiveExcludes returns the exclude patterns with test files added
// unless tests are included in the scan.
func (c *Config) EffectiveExcludes() []string {
	excludes := c.Scan.Excludes
	if !c.Scan.IncludeTests {
		excludes = append(append([]string{}, excludes...), "**/*_test.go")
	}
	return excludes
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for doccov.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "doccov.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".doccov", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ScanDBPath returns the path to the scan database.
func ScanDBPath(dir string) string {
	return filepath.Join(dir, ".doccov", "scan.db")
}

// EnsureDoccovDir ensures the .doccov directory exists.
func EnsureDoccovDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".doccov"), 0755)
}
