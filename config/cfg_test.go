package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"cssv/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.Logging.Console.Level != "normal" {
		t.Errorf("default console level = %q, want %q", cfg.Logging.Console.Level, "normal")
	}
}

func TestLoadEmptyPathKeepsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Console.Level != "normal" {
		t.Errorf("console level = %q, want %q", cfg.Logging.Console.Level, "normal")
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  console:\n    level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Console.Level != "debug" {
		t.Errorf("console level = %q, want %q", cfg.Logging.Console.Level, "debug")
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  console:\n    level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for unsupported level")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPrepareLogger(t *testing.T) {
	for _, level := range []string{"none", "normal", "debug"} {
		conf := config.LoggingConfig{Console: config.LoggerConfig{Level: level}}
		log, err := conf.Prepare()
		if err != nil {
			t.Fatalf("level %q: %v", level, err)
		}
		if log == nil {
			t.Fatalf("level %q: nil logger", level)
		}
	}
}
