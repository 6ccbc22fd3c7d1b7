package config

import (
	"flag"
	"fmt"
	"log"
	"time"
)

// Defaults returns the built-in configuration, overlaid with the optional
// config file when present.
func Defaults() Config {
	cfg := Config{
		Interval:     2 * time.Second,
		Timeout:      10 * time.Second,
		Count:        0,
		DatabasePath: "wifiwatch.db",
		Port:         8080,
		ScanInterval: time.Minute,
		Hours:        24,
		OutputDir:    "reports",
	}
	cfg, err := applyFile(cfg, DefaultConfigPath())
	if err != nil {
		// A broken config file must not take the tool down; flags still work.
		log.Printf("Warning: ignoring config file: %v", err)
	}
	return cfg
}

// ParseScanFlags parses flags for the scan subcommand
func ParseScanFlags(args []string) (Config, error) {
	cfg := Defaults()
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Scan timeout")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "History database path (empty disables recording)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseMonitorFlags parses flags and the SSID argument for the monitor
// subcommand
func ParseMonitorFlags(args []string) (Config, error) {
	cfg := Defaults()
	fs := flag.NewFlagSet("monitor", flag.ContinueOnError)
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Delay between ticks")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Scan timeout per tick")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of ticks, 0 runs until interrupted")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "History database path (empty disables recording)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.SSID = fs.Arg(0)
	if cfg.SSID == "" {
		return cfg, fmt.Errorf("monitor requires an SSID argument")
	}
	return cfg, nil
}

// ParseReportFlags parses flags for the report subcommand
func ParseReportFlags(args []string) (Config, error) {
	cfg := Defaults()
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "History database path")
	fs.IntVar(&cfg.Hours, "hours", cfg.Hours, "History window in hours")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Report output directory")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.DatabasePath == "" {
		return cfg, fmt.Errorf("report requires a database path")
	}
	return cfg, nil
}

// ParseServeFlags parses flags for the serve subcommand
func ParseServeFlags(args []string) (Config, error) {
	cfg := Defaults()
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "Web server port")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "History database path")
	fs.DurationVar(&cfg.ScanInterval, "scan-interval", cfg.ScanInterval, "Delay between background scans")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Scan timeout")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.DatabasePath == "" {
		return cfg, fmt.Errorf("serve requires a database path")
	}
	return cfg, nil
}
