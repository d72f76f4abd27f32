package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kmyport-dev/kmyport/internal/text"
)

// Config represents the optional kmyport.yaml configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Journal JournalConfig `yaml:"journal"`
}

// OutputConfig controls where converted journals are written.
type OutputConfig struct {
	// Suffix is appended to the input path to form the output path.
	Suffix string `yaml:"suffix"`
}

// JournalConfig controls the journal text itself.
type JournalConfig struct {
	// LineBreak replaces literal newlines inside memos and comments.
	LineBreak string `yaml:"line_break"`
	// DecimalPlaces is the fixed precision of emitted amounts.
	DecimalPlaces int32 `yaml:"decimal_places"`
}

// Load reads a kmyport.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Suffix: ".journal",
		},
		Journal: JournalConfig{
			LineBreak:     text.DefaultLineBreak,
			DecimalPlaces: 2,
		},
	}
}
