// Package config defines the run configuration consumed by every engine
// (the Go analogue of CsvProcessorConfig.java) and an optional YAML
// defaults loader in the manner of johndauphine-dmt's dbconfig package.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects which engine processes a run.
type Mode string

const (
	ModeSequential       Mode = "sequential"
	ModeConcurrentParts  Mode = "concurrent-parts"
	ModeConcurrentMemory Mode = "concurrent-memory"
)

// Config is the immutable plan for one run, built from CLI flags, an
// optional YAML defaults file, or the interactive prompt flow.
type Config struct {
	InputPath        string
	OutputPath       string
	ColumnsSpec      string
	FilterExpression string
	Parts            *int
	Mode             Mode
	Separator        string
}

// Defaults holds fallback values read from an optional YAML file; any zero
// field is left to the CLI flag or prompt to supply.
type Defaults struct {
	InputPath        string `yaml:"input_path"`
	OutputPath       string `yaml:"output_path"`
	ColumnsSpec      string `yaml:"columns"`
	FilterExpression string `yaml:"filter"`
	Parts            *int   `yaml:"parts"`
	Mode             string `yaml:"mode"`
	Separator        string `yaml:"separator"`
}

// LoadDefaults reads path as YAML. A missing file is not an error — it
// simply yields zero-value defaults, since supplying a defaults file is
// optional. A present-but-malformed file is an error.
func LoadDefaults(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults{}, nil
		}
		return Defaults{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return d, nil
}

// ApplyDefaults fills any zero-valued field of cfg from d, without
// overwriting fields already set by the CLI flags or prompts.
func ApplyDefaults(cfg Config, d Defaults) Config {
	if cfg.InputPath == "" {
		cfg.InputPath = d.InputPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = d.OutputPath
	}
	if cfg.ColumnsSpec == "" {
		cfg.ColumnsSpec = d.ColumnsSpec
	}
	if cfg.FilterExpression == "" {
		cfg.FilterExpression = d.FilterExpression
	}
	if cfg.Parts == nil {
		cfg.Parts = d.Parts
	}
	if cfg.Mode == "" && d.Mode != "" {
		cfg.Mode = Mode(d.Mode)
	}
	if cfg.Separator == "" {
		cfg.Separator = d.Separator
	}
	if cfg.Separator == "" {
		cfg.Separator = ","
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeConcurrentMemory
	}
	return cfg
}
