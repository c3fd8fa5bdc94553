// Package condor generates job-submission files for the HTCondor
// cluster scheduler from a light-curve infile and a pipeline config.
package condor

import (
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Config describes how infile entries are packed into scheduler jobs.
type Config struct {
	// Universe is the HTCondor runtime environment.
	Universe string `yaml:"universe"`

	// Executable is the program every job runs, typically the
	// pipeline wrapper script.
	Executable string `yaml:"executable"`

	// Arguments are prepended before the per-job chunk file.
	Arguments string `yaml:"arguments"`

	// ChunkSize is the number of infile lines per job.
	ChunkSize int `yaml:"chunk_size"`

	RequestMemory string `yaml:"request_memory"`
	Notification  string `yaml:"notification"`
}

// LoadConfig reads a YAML pipeline config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Universe:  "vanilla",
		ChunkSize: 1,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, xerrors.Errorf("condor: parse config %s: %w", path, err)
	}

	if cfg.Executable == "" {
		return nil, xerrors.Errorf("condor: config %s names no executable", path)
	}
	if cfg.ChunkSize < 1 {
		return nil, xerrors.Errorf("condor: chunk size %d is not positive", cfg.ChunkSize)
	}

	return cfg, nil
}
