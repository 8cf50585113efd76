// ABOUTME: studylog configuration loaded from TOML and the environment
// ABOUTME: Resolution order is defaults, then config file, then env vars
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment overrides.
const (
	EnvDataFile    = "STUDYLOG_DATA_FILE"
	EnvJournalFile = "STUDYLOG_JOURNAL_FILE"
	EnvLogLevel    = "STUDYLOG_LOG_LEVEL"
)

// Config holds the file locations and log level for a studylog run.
type Config struct {
	DataFile    string `toml:"data_file"`
	JournalFile string `toml:"journal_file"`
	LogLevel    string `toml:"log_level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	dir := DataDir()
	return &Config{
		DataFile:    filepath.Join(dir, "study_data.csv"),
		JournalFile: filepath.Join(dir, "error_log.json"),
		LogLevel:    "warn",
	}
}

// Load builds the configuration. An empty path reads DefaultConfigPath and
// tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv(EnvJournalFile); v != "" {
		cfg.JournalFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
