package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional config file. All fields are overridable by
// command-line flags.
type fileConfig struct {
	Database     string   `toml:"database"`
	Interval     duration `toml:"interval"`
	Timeout      duration `toml:"timeout"`
	ScanInterval duration `toml:"scan_interval"`
	Port         int      `toml:"port"`
	Hours        int      `toml:"hours"`
	OutputDir    string   `toml:"output_dir"`
	NoColor      bool     `toml:"no_color"`
}

// duration wraps time.Duration for TOML decoding ("2s", "1m30s").
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// DefaultConfigPath returns the expected config file location, or "" when the
// user config directory cannot be resolved.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wifiwatch", "config.toml")
}

// applyFile overlays values from the TOML file at path onto cfg. A missing
// file is not an error; a malformed one is.
func applyFile(cfg Config, path string) (Config, error) {
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var file fileConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return cfg, err
	}

	if file.Database != "" {
		cfg.DatabasePath = file.Database
	}
	if file.Interval.Duration > 0 {
		cfg.Interval = file.Interval.Duration
	}
	if file.Timeout.Duration > 0 {
		cfg.Timeout = file.Timeout.Duration
	}
	if file.ScanInterval.Duration > 0 {
		cfg.ScanInterval = file.ScanInterval.Duration
	}
	if file.Port != 0 {
		cfg.Port = file.Port
	}
	if file.Hours != 0 {
		cfg.Hours = file.Hours
	}
	if file.OutputDir != "" {
		cfg.OutputDir = file.OutputDir
	}
	if file.NoColor {
		cfg.NoColor = true
	}
	return cfg, nil
}
