// Package config loads intake configuration from config.yaml and INTAKE_*
// environment variables. A missing config file is not an error; defaults
// work out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir            = "data_dir"
	cfgKeyDBFile             = "db_file"
	cfgKeyRecognizerSocket   = "recognizer_socket"
	cfgKeyTranscribeTimeout  = "transcribe_timeout"
	cfgKeySimulatedLatency   = "simulated_latency"
	cfgKeyLocale             = "locale"
	cfgKeyDemo               = "demo"

	defaultDBFile            = "intake.sqlite"
	defaultTranscribeTimeout = 30 * time.Second
	defaultSimulatedLatency  = 2 * time.Second
	defaultLocale            = "en_US"
)

// Config holds the resolved runtime configuration.
type Config struct {
	DataDir           string
	DBPath            string
	RecognizerSocket  string // empty means the default socket inside DataDir
	TranscribeTimeout time.Duration
	SimulatedLatency  time.Duration
	Locale            string
	Demo              bool // start with the sample inbox instead of the database
}

// DefaultDataDir returns ~/.intake, falling back to the current directory
// when the home directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".intake"
	}
	return filepath.Join(home, ".intake")
}

// Load reads configuration from dataDir/config.yaml, applying defaults and
// INTAKE_* environment overrides. The data directory is created if missing.
func Load(dataDir string) (Config, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure data dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDataDir, dataDir)
	v.SetDefault(cfgKeyDBFile, defaultDBFile)
	v.SetDefault(cfgKeyRecognizerSocket, "")
	v.SetDefault(cfgKeyTranscribeTimeout, defaultTranscribeTimeout)
	v.SetDefault(cfgKeySimulatedLatency, defaultSimulatedLatency)
	v.SetDefault(cfgKeyLocale, defaultLocale)
	v.SetDefault(cfgKeyDemo, false)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dataDir)
	v.SetEnvPrefix("INTAKE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DataDir:           v.GetString(cfgKeyDataDir),
		RecognizerSocket:  v.GetString(cfgKeyRecognizerSocket),
		TranscribeTimeout: v.GetDuration(cfgKeyTranscribeTimeout),
		SimulatedLatency:  v.GetDuration(cfgKeySimulatedLatency),
		Locale:            v.GetString(cfgKeyLocale),
		Demo:              v.GetBool(cfgKeyDemo),
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, v.GetString(cfgKeyDBFile))

	if cfg.TranscribeTimeout <= 0 {
		cfg.TranscribeTimeout = defaultTranscribeTimeout
	}
	return cfg, nil
}
