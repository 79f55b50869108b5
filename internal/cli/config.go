package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig holds the optional config file values. Flags set on the
// command line take precedence over every field here.
type fileConfig struct {
	APIURL       string `toml:"api_url"`
	APIUsername  string `toml:"api_username"`
	APIPassword  string `toml:"api_password"`
	WorkbookPath string `toml:"workbook_path"`
}

// configPath returns the config file location using the XDG standard
// (~/.config/hubver/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfigFile reads the config file if present. A missing file is
// not an error; the zero config is returned instead.
func loadConfigFile() (fileConfig, error) {
	var cfg fileConfig

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, err
	}
	return cfg, nil
}
