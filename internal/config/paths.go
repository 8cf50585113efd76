// ABOUTME: XDG base directory resolution for studylog files
// ABOUTME: Data lives under XDG_DATA_HOME, config under XDG_CONFIG_HOME
package config

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "studylog"

// DataHome returns XDG_DATA_HOME, falling back to ~/.local/share.
func DataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share")
}

// ConfigHome returns XDG_CONFIG_HOME, falling back to ~/.config.
func ConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

// DataDir is where the study log and error journal live by default.
func DataDir() string {
	return filepath.Join(DataHome(), AppName)
}

// DefaultConfigPath is the config file read when --config is not given.
func DefaultConfigPath() string {
	return filepath.Join(ConfigHome(), AppName, "config.toml")
}
