package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for wifiwatch
type Config struct {
	// SSID is the monitor target.
	SSID string
	// Interval is the delay between monitor ticks.
	Interval time.Duration
	// Timeout bounds a single scan invocation.
	Timeout time.Duration
	// Count limits the number of monitor ticks; 0 runs until interrupted.
	Count int
	// DatabasePath locates the history database; empty disables persistence.
	DatabasePath string
	Port         int
	// ScanInterval is the delay between background scans in serve mode.
	ScanInterval time.Duration
	// Hours is the history window for reports and queries.
	Hours     int
	OutputDir string
	NoColor   bool
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Count < 0 {
		return fmt.Errorf("count cannot be negative")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.ScanInterval <= 0 {
		return fmt.Errorf("scan interval must be positive")
	}
	if c.Hours <= 0 {
		return fmt.Errorf("hours must be positive")
	}
	return nil
}
