// Package config loads the spacy4j configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up in the user config dir
// when SPACY4J_CONFIG is not set.
const FileName = "spacy4j.toml"

// Environment variables honored by the CLI. Flags take precedence over
// the environment, the environment over the file.
const (
	EnvConfig = "SPACY4J_CONFIG"
	EnvStore  = "SPACY4J_STORE"
	EnvFormat = "SPACY4J_FORMAT"
)

type Config struct {
	Store  Store  `toml:"store"`
	Render Render `toml:"render"`
}

// Store points to the document store. Path is a docfile directory, a
// sqlite file or a postgres:// DSN.
type Store struct {
	Path string `toml:"path"`
}

type Render struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Render: Render{Color: true}}
}

// Path returns the configuration file location: SPACY4J_CONFIG when
// set, otherwise FileName inside the user config dir.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}

	return filepath.Join(dir, "spacy4j", FileName), nil
}

// Load reads the configuration at path. A missing file yields the
// defaults. Keys absent from the file keep their default value.
func Load(path string) (Config, error) {
	var cfg Config

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if !meta.IsDefined("render", "color") {
		cfg.Render.Color = true
	}

	return cfg, nil
}
