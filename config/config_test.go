package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "spacy4j.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}

	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	if !cfg.Render.Color {
		t.Fatal("expected color enabled by default")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacy4j.toml")
	content := `[store]
path = "/var/lib/spacy4j/docs"

[render]
format = "table"
color = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if cfg.Store.Path != "/var/lib/spacy4j/docs" {
		t.Fatalf("expected store path, got %q", cfg.Store.Path)
	}

	if cfg.Render.Format != "table" {
		t.Fatalf("expected format 'table', got %q", cfg.Render.Format)
	}

	if cfg.Render.Color {
		t.Fatal("expected color disabled")
	}
}

func TestLoadColorDefaultsTrue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacy4j.toml")
	content := `[store]
path = "docs.db"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if !cfg.Render.Color {
		t.Fatal("expected color enabled when key is absent")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacy4j.toml")
	if err := os.WriteFile(path, []byte("[store\npath ="), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/spacy4j/spacy4j.toml")

	path, err := Path()
	if err != nil {
		t.Fatalf("failed to resolve path: %v", err)
	}

	if path != "/etc/spacy4j/spacy4j.toml" {
		t.Fatalf("expected env path, got %q", path)
	}
}
