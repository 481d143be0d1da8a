package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/durableprogramming/dotenvk/internal/secret"
)

// ConfigFileName is the per-project configuration file, looked up in the
// working directory.
const ConfigFileName = ".dotenvk.toml"

type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	XKCD     XKCDConfig     `toml:"xkcd"`
}

// DefaultsConfig holds fallback values for flags the user did not pass.
type DefaultsConfig struct {
	File    string `toml:"file"`
	Length  int    `toml:"length"`
	Numeric bool   `toml:"numeric"`
	Symbol  bool   `toml:"symbol"`
}

// XKCDConfig selects the external passphrase generator.
type XKCDConfig struct {
	Command string `toml:"command"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: DefaultsConfig{
			File:   ".env",
			Length: secret.DefaultLength,
		},
		XKCD: XKCDConfig{
			Command: secret.DefaultXKCDCommand,
		},
	}
}

// Load resolves configuration for a command running in dir. Missing
// files are fine; a file that exists but fails to parse is an error the
// user needs to see rather than silently falling back to defaults.
func Load(dir string) (Config, error) {
	cfg := Default()

	local := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(local); err == nil {
		if err := LoadTOML(local, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load %s: %w", local, err)
		}
		return cfg, nil
	}

	userDir, err := os.UserConfigDir()
	if err != nil {
		return cfg, nil
	}
	global := filepath.Join(userDir, "dotenvk", "config.toml")
	if _, err := os.Stat(global); err == nil {
		if err := LoadTOML(global, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load %s: %w", global, err)
		}
	}
	return cfg, nil
}
