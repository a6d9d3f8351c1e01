package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the contents of a config file. Flags given on the command line
// override it.
type Config struct {
	Precision *int `yaml:"precision"`
	MaxDepth  *int `yaml:"max_depth"`
	Detailed  bool `yaml:"detailed"`
	// Definitions are evaluated in order, like --def flags.
	Definitions []string `yaml:"definitions"`
}

// LoadConfig reads a config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// apply copies settings into opts for each flag not given explicitly.
func (cfg Config) apply(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	if cfg.Precision != nil && !f.Changed("precision") {
		opts.prec = *cfg.Precision
	}
	if cfg.MaxDepth != nil && !f.Changed("max-depth") {
		opts.maxDepth = *cfg.MaxDepth
	}
	if cfg.Detailed && !f.Changed("detailed") {
		opts.detailed = true
	}
}
