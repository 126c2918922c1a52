// Package config loads optional defaults for the tally CLI from a YAML
// file. Values set explicitly on the command line always win; the file
// only fills in what the user did not say.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no --config
// path is given.
const DefaultFileName = ".tally.yml"

// Config holds the file-configurable defaults.
type Config struct {
	// Format is the default output format: plain, human, or json.
	Format string `yaml:"format"`
	// ChunkSize is the scan chunk size in bytes.
	ChunkSize int `yaml:"chunk_size"`
	// Workers bounds scan parallelism.
	Workers int `yaml:"workers"`
}

// Load reads the config file at path. An empty path selects
// DefaultFileName, and its absence is not an error — a zero Config is
// returned. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if cfg.ChunkSize < 0 {
		return nil, fmt.Errorf("config file %s: chunk_size must not be negative", path)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config file %s: workers must not be negative", path)
	}
	return &cfg, nil
}
