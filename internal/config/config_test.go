package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	valid := Config{
		Interval:     2 * time.Second,
		Timeout:      10 * time.Second,
		Port:         8080,
		ScanInterval: time.Minute,
		Hours:        24,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero interval", func(c *Config) { c.Interval = 0 }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"negative count", func(c *Config) { c.Count = -1 }, true},
		{"zero count is infinite", func(c *Config) { c.Count = 0 }, false},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"zero scan interval", func(c *Config) { c.ScanInterval = 0 }, true},
		{"zero hours", func(c *Config) { c.Hours = 0 }, true},
		{"empty database path allowed", func(c *Config) { c.DatabasePath = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
database = "/var/lib/wifiwatch/history.db"
interval = "5s"
port = 9090
no_color = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	base := Config{
		Interval:     2 * time.Second,
		Timeout:      10 * time.Second,
		DatabasePath: "wifiwatch.db",
		Port:         8080,
		ScanInterval: time.Minute,
		Hours:        24,
	}

	cfg, err := applyFile(base, path)
	if err != nil {
		t.Fatalf("applyFile: %v", err)
	}

	if cfg.DatabasePath != "/var/lib/wifiwatch/history.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.Interval != 5*time.Second {
		t.Errorf("Interval = %v, want 5s", cfg.Interval)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if !cfg.NoColor {
		t.Error("NoColor not applied")
	}
	// Values absent from the file keep their defaults.
	if cfg.Timeout != 10*time.Second || cfg.Hours != 24 {
		t.Errorf("unset fields changed: timeout=%v hours=%d", cfg.Timeout, cfg.Hours)
	}
}

func TestApplyFileMissing(t *testing.T) {
	base := Config{Port: 8080}
	cfg, err := applyFile(base, filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg != base {
		t.Errorf("config changed by missing file: %+v", cfg)
	}
}

func TestApplyFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`interval = "not a duration"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := applyFile(Config{}, path); err == nil {
		t.Error("expected error for malformed duration")
	}
}

func TestParseMonitorFlags(t *testing.T) {
	cfg, err := ParseMonitorFlags([]string{"-interval", "500ms", "-count", "3", "MyWiFi"})
	if err != nil {
		t.Fatalf("ParseMonitorFlags: %v", err)
	}
	if cfg.SSID != "MyWiFi" {
		t.Errorf("SSID = %q, want MyWiFi", cfg.SSID)
	}
	if cfg.Interval != 500*time.Millisecond || cfg.Count != 3 {
		t.Errorf("interval/count = %v/%d", cfg.Interval, cfg.Count)
	}

	if _, err := ParseMonitorFlags(nil); err == nil {
		t.Error("expected error without SSID argument")
	}
}

func TestDefaultsWarnsOnBrokenConfigFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override relies on XDG_CONFIG_HOME")
	}
	confDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confDir)
	if err := os.MkdirAll(filepath.Join(confDir, "wifiwatch"), 0o755); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(confDir, "wifiwatch", "config.toml")
	if err := os.WriteFile(broken, []byte("interval = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	cfg := Defaults()

	// The broken file is ignored, built-in defaults survive and the
	// warning goes through the logger rather than stdout.
	if cfg.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want built-in default", cfg.Interval)
	}
	if !strings.Contains(buf.String(), "ignoring config file") {
		t.Errorf("no warning logged, log output: %q", buf.String())
	}
}
