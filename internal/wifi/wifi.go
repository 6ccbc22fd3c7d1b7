package wifi

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"wifiwatch/internal/models"
)

// ErrUnsupportedPlatform is returned by New for a GOOS without a scan adapter.
var ErrUnsupportedPlatform = errors.New("no wifi scan adapter for this platform")

var errEmptyOutput = errors.New("command produced no output")

// ScanError reports a failed scan attempt: the platform command could not be
// executed, exited non-zero, or produced no usable output.
type ScanError struct {
	Command string
	Err     error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("wifi scan via %s failed: %v", e.Command, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// New returns the scan adapter for the given GOOS value. The caller resolves
// the platform once at startup (typically runtime.GOOS) and passes it in
// explicitly.
func New(goos string) (models.Scanner, error) {
	switch goos {
	case "linux":
		return NewNmcliScanner(), nil
	case "darwin":
		return NewAirportScanner(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// runCommand executes the platform command and captures stdout.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, &ScanError{Command: name, Err: err}
	}
	return out, nil
}
