package config

import (
	"fmt"

	"github.com/fsbox-cli/fsbox/internal/core/checksum"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

// Config is the toolkit configuration. Everything has a sensible
// default; the config file is optional.
type Config struct {
	// AssumeYes skips confirmation prompts for destructive commands.
	// Threaded into each command's options, never read ambiently.
	AssumeYes bool `mapstructure:"assume_yes"`

	Hash  HashConfig  `mapstructure:"hash"`
	Clean CleanConfig `mapstructure:"clean"`
	Tree  TreeConfig  `mapstructure:"tree"`
	Log   LogConfig   `mapstructure:"log"`
}

// HashConfig controls content digesting
type HashConfig struct {
	// Algorithm: md5, sha256, or xxh64
	Algorithm string `mapstructure:"algorithm"`

	// MaxSize caps the bytes hashed per file (0 = unlimited)
	MaxSize int64 `mapstructure:"max_size"`

	// Workers bounds the hashing pool (0 = GOMAXPROCS)
	Workers int `mapstructure:"workers"`
}

// CleanConfig overrides the junk lists
type CleanConfig struct {
	Names      []string `mapstructure:"names"`
	Extensions []string `mapstructure:"extensions"`
}

// TreeConfig holds tree display defaults
type TreeConfig struct {
	Depth int `mapstructure:"depth"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	File     string `mapstructure:"file"`
	MaxSize  int    `mapstructure:"max_size_mb"`
	Backups  int    `mapstructure:"backups"`
	Compress bool   `mapstructure:"compress"`
}

// Default returns the built-in configuration used when no file or
// environment overrides are present.
func Default() *Config {
	return &Config{
		Hash: HashConfig{Algorithm: "sha256"},
		Tree: TreeConfig{Depth: 4},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.Hash.Algorithm != "" {
		if _, err := checksum.ParseAlgorithm(c.Hash.Algorithm); err != nil {
			return fmt.Errorf("%w: hash.algorithm: %v", domain.ErrConfigInvalid, err)
		}
	}
	if c.Hash.MaxSize < 0 {
		return fmt.Errorf("%w: hash.max_size cannot be negative", domain.ErrConfigInvalid)
	}
	if c.Hash.Workers < 0 {
		return fmt.Errorf("%w: hash.workers cannot be negative", domain.ErrConfigInvalid)
	}
	if c.Tree.Depth < 0 {
		return fmt.Errorf("%w: tree.depth cannot be negative", domain.ErrConfigInvalid)
	}
	return nil
}

// Algorithm returns the configured digest algorithm
func (c *Config) Algorithm() checksum.Algorithm {
	if c.Hash.Algorithm == "" {
		return checksum.SHA256
	}
	return checksum.Algorithm(c.Hash.Algorithm)
}
