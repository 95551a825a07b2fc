package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ReferenceNames lists the reference kinds accepted in analysis.references.
// "all" selects every kind.
var ReferenceNames = []string{"local", "type", "base", "item", "member", "all"}

// Config holds all configuration options for xsdscope.
type Config struct {
	// Analysis settings
	Analysis AnalysisConfig `koanf:"analysis"`

	// Diagnostics formatting
	Diagnostics DiagnosticsConfig `koanf:"diagnostics"`

	// Logging
	Log LogConfig `koanf:"log"`
}

// AnalysisConfig controls the usage analyzer and the batch runner.
type AnalysisConfig struct {
	References      []string `koanf:"references"`
	SkipAnnotations bool     `koanf:"skip_annotations"`
	Capacity        int      `koanf:"capacity"` // initial count table size
	Workers         int      `koanf:"workers"`  // 0 = GOMAXPROCS
}

// DiagnosticsConfig controls component descriptions and paths.
type DiagnosticsConfig struct {
	Color     bool `koanf:"color"`
	Locations bool `koanf:"locations"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			References:      []string{"all"},
			SkipAnnotations: true,
			Capacity:        256,
			Workers:         0,
		},
		Diagnostics: DiagnosticsConfig{
			Color:     false,
			Locations: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a file. Values absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"xsdscope.toml",
		"xsdscope.yaml",
		"xsdscope.yml",
		"xsdscope.json",
		".xsdscope.toml",
		".xsdscope.yaml",
		".xsdscope.yml",
		".xsdscope.json",
	}

	// Search in current directory and .xsdscope directory
	searchDirs := []string{".", ".xsdscope"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if len(c.Analysis.References) == 0 {
		return fmt.Errorf("analysis.references: at least one reference kind is required")
	}
	for _, name := range c.Analysis.References {
		if !slices.Contains(ReferenceNames, strings.ToLower(strings.TrimSpace(name))) {
			return fmt.Errorf("analysis.references: unknown reference kind %q", name)
		}
	}
	if c.Analysis.Capacity < 0 {
		return fmt.Errorf("analysis.capacity: must not be negative, got %d", c.Analysis.Capacity)
	}
	if c.Analysis.Workers < 0 {
		return fmt.Errorf("analysis.workers: must not be negative, got %d", c.Analysis.Workers)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses log.level. An empty level means info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.LogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
