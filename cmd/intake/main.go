package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwulff/intake/internal/app"
	"github.com/jwulff/intake/internal/config"
	"github.com/jwulff/intake/internal/db"
	"github.com/jwulff/intake/internal/item"
	"github.com/jwulff/intake/internal/recognizer"
	"github.com/jwulff/intake/internal/transcribe"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "intake:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("INTAKE_DATA_DIR"))
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; everything logs to a file instead.
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "intake.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	dbPath := cfg.DBPath
	if cfg.Demo {
		dbPath = filepath.Join(os.TempDir(), fmt.Sprintf("intake-demo-%d.sqlite", os.Getpid()))
		defer os.Remove(dbPath)
	}

	store, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Demo {
		if err := seedSamples(store); err != nil {
			return err
		}
	}

	socket := cfg.RecognizerSocket
	if socket == "" {
		socket = recognizer.SocketPath(cfg.DataDir)
	}
	var svc transcribe.Service = transcribe.Simulated{Latency: cfg.SimulatedLatency}
	if client, err := recognizer.Connect(socket); err != nil {
		logger.Warn("recognizer unavailable, using simulated service", "err", err)
	} else {
		defer client.Close()
		svc = transcribe.Daemon{Client: client, Locale: cfg.Locale}
	}

	m := app.New(store, svc, cfg.TranscribeTimeout, logger)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func seedSamples(store *db.Store) error {
	items, err := store.LoadItems()
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	for _, e := range item.Samples(time.Now()) {
		if err := store.InsertItem(e); err != nil {
			return fmt.Errorf("seed sample: %w", err)
		}
	}
	return nil
}
