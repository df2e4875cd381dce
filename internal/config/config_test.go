package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DataDir != dir {
		t.Errorf("dataDir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.DBPath != filepath.Join(dir, "intake.sqlite") {
		t.Errorf("dbPath = %q", cfg.DBPath)
	}
	if cfg.RecognizerSocket != "" {
		t.Errorf("recognizerSocket = %q, want empty", cfg.RecognizerSocket)
	}
	if cfg.TranscribeTimeout != 30*time.Second {
		t.Errorf("transcribeTimeout = %v", cfg.TranscribeTimeout)
	}
	if cfg.Demo {
		t.Error("demo should default to false")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	yaml := `db_file: other.sqlite
transcribe_timeout: 5s
simulated_latency: 100ms
demo: true
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DBPath != filepath.Join(dir, "other.sqlite") {
		t.Errorf("dbPath = %q", cfg.DBPath)
	}
	if cfg.TranscribeTimeout != 5*time.Second {
		t.Errorf("transcribeTimeout = %v", cfg.TranscribeTimeout)
	}
	if cfg.SimulatedLatency != 100*time.Millisecond {
		t.Errorf("simulatedLatency = %v", cfg.SimulatedLatency)
	}
	if !cfg.Demo {
		t.Error("demo should be true")
	}
}

func TestLoadCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "intake")

	if _, err := Load(dir); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	dir := t.TempDir()

	yaml := "transcribe_timeout: 0s\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TranscribeTimeout != 30*time.Second {
		t.Errorf("transcribeTimeout = %v, want default", cfg.TranscribeTimeout)
	}
}
