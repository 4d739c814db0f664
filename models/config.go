package models

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultPruneThreshold is the minimum global count a word needs to survive pruning.
const DefaultPruneThreshold = 100

// CompileConfig holds runtime configuration for a compile run.
// Values come from an optional YAML file, overridden by CLI flags.
type CompileConfig struct {
	InputDir       string `yaml:"input_dir"`
	OutputDir      string `yaml:"output_dir"`
	PruneThreshold uint64 `yaml:"prune_threshold"`
	WorkerCount    int    `yaml:"worker_count"`
	DetectLanguage bool   `yaml:"detect_language"`
	DBPath         string `yaml:"db_path"`
}

// DefaultCompileConfig returns a config with all defaults applied.
func DefaultCompileConfig() *CompileConfig {
	return &CompileConfig{
		OutputDir:      "output",
		PruneThreshold: DefaultPruneThreshold,
		WorkerCount:    runtime.GOMAXPROCS(0),
	}
}

// LoadCompileConfig reads a YAML config file on top of the defaults.
func LoadCompileConfig(path string) (*CompileConfig, error) {
	config := DefaultCompileConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.WorkerCount <= 0 {
		config.WorkerCount = runtime.GOMAXPROCS(0)
	}
	return config, nil
}
