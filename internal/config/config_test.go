package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsbox-cli/fsbox/internal/core/checksum"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml")); err == nil {
		t.Fatal("expected error for explicit missing file")
	}

	cfg, err := LoadFromString("")
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if cfg.Hash.Algorithm != "sha256" {
		t.Errorf("default algorithm = %q, want sha256", cfg.Hash.Algorithm)
	}
	if cfg.Tree.Depth != 4 {
		t.Errorf("default tree depth = %d, want 4", cfg.Tree.Depth)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Log.Level)
	}
	if cfg.AssumeYes {
		t.Error("assume_yes should default to false")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
assume_yes: true
hash:
  algorithm: xxh64
  workers: 8
clean:
  names:
    - node_modules
tree:
  depth: 2
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.AssumeYes {
		t.Error("assume_yes not loaded")
	}
	if cfg.Hash.Algorithm != "xxh64" {
		t.Errorf("algorithm = %q, want xxh64", cfg.Hash.Algorithm)
	}
	if cfg.Hash.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Hash.Workers)
	}
	if len(cfg.Clean.Names) != 1 || cfg.Clean.Names[0] != "node_modules" {
		t.Errorf("clean names = %v", cfg.Clean.Names)
	}
	if cfg.Tree.Depth != 2 {
		t.Errorf("tree depth = %d, want 2", cfg.Tree.Depth)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Algorithm() != checksum.XXH64 {
		t.Errorf("Algorithm() = %v, want xxh64", cfg.Algorithm())
	}
}

func TestLoadInvalidAlgorithm(t *testing.T) {
	_, err := LoadFromString("hash:\n  algorithm: crc7\n")
	if !errors.Is(err, domain.ErrConfigInvalid) {
		t.Fatalf("err = %v, want ErrConfigInvalid", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := LoadFromString("hash: [unclosed\n")
	if !errors.Is(err, domain.ErrConfigInvalid) {
		t.Fatalf("err = %v, want ErrConfigInvalid", err)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FSBOX_HASH_ALGORITHM", "md5")

	cfg, err := LoadFromString("hash:\n  algorithm: sha256\n")
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if cfg.Hash.Algorithm != "md5" {
		t.Errorf("algorithm = %q, want md5 from environment", cfg.Hash.Algorithm)
	}
}

func TestValidateNegativeWorkers(t *testing.T) {
	_, err := LoadFromString("hash:\n  workers: -2\n")
	if !errors.Is(err, domain.ErrConfigInvalid) {
		t.Fatalf("err = %v, want ErrConfigInvalid", err)
	}
}
