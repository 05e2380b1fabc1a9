package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - LJ2HTML_CONFIG_PATH: config file location (default: ~/.config/lj2html.toml)
//   - LJ2HTML_HOME: base directory for lj2html data (default: ~/.local/share/lj2html)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// getConfigPath returns the config file path, checking LJ2HTML_CONFIG_PATH
// first, then falling back to the default ~/.config/lj2html.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("LJ2HTML_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "lj2html.toml"), nil
}

// getBaseDir returns the base directory for lj2html data, checking LJ2HTML_HOME
// first, then falling back to the XDG default ~/.local/share/lj2html.
func getBaseDir() (string, error) {
	if path := os.Getenv("LJ2HTML_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "lj2html"), nil
}
