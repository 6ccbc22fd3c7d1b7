package wifi

import (
	"context"
	"errors"
	"testing"

	"wifiwatch/internal/models"
)

func TestNewUnsupportedPlatform(t *testing.T) {
	for _, goos := range []string{"windows", "freebsd", ""} {
		scanner, err := New(goos)
		if scanner != nil {
			t.Errorf("New(%q) returned a scanner", goos)
		}
		if !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("New(%q) error = %v, want ErrUnsupportedPlatform", goos, err)
		}
	}
}

func TestNewKnownPlatforms(t *testing.T) {
	for _, goos := range []string{"linux", "darwin"} {
		scanner, err := New(goos)
		if err != nil {
			t.Errorf("New(%q) error = %v", goos, err)
		}
		if scanner == nil {
			t.Errorf("New(%q) returned no scanner", goos)
		}
	}
}

func TestScanCommandFailureYieldsScanError(t *testing.T) {
	// With an empty PATH the platform command cannot be spawned, which is
	// the same failure path as a missing or broken scan tool.
	t.Setenv("PATH", "")

	scanners := map[string]models.Scanner{
		"nmcli":           NewNmcliScanner(),
		"system_profiler": NewAirportScanner(),
	}
	for name, scanner := range scanners {
		records, err := scanner.Scan(context.Background())
		if records != nil {
			t.Errorf("%s: got records %v after command failure", name, records)
		}
		var scanErr *ScanError
		if !errors.As(err, &scanErr) {
			t.Fatalf("%s: error = %v, want *ScanError", name, err)
		}
		if scanErr.Command != name {
			t.Errorf("%s: ScanError.Command = %q", name, scanErr.Command)
		}
		if scanErr.Unwrap() == nil {
			t.Errorf("%s: ScanError carries no cause", name)
		}
	}
}

func TestScanErrorUnwrapsCause(t *testing.T) {
	err := &ScanError{Command: "nmcli", Err: errEmptyOutput}
	if !errors.Is(err, errEmptyOutput) {
		t.Errorf("errors.Is did not reach the wrapped cause of %v", err)
	}
}
