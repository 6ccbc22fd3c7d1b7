package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	ping "github.com/go-ping/ping"
)

// ErrNoGateway is returned when the routing table has no default route.
var ErrNoGateway = errors.New("no default gateway")

// Prober measures ICMP round-trip time to the default gateway. Monitor ticks
// use it as a live link-health figure next to the scanned signal level.
type Prober struct {
	goos    string
	timeout time.Duration
}

// New creates a new Prober for an explicit GOOS value.
func New(goos string, timeout time.Duration) *Prober {
	return &Prober{goos: goos, timeout: timeout}
}

// GatewayRTT discovers the default gateway and pings it once.
func (p *Prober) GatewayRTT(ctx context.Context) (time.Duration, error) {
	gateway, err := p.defaultGateway(ctx)
	if err != nil {
		return 0, err
	}

	pinger, err := ping.NewPinger(gateway)
	if err != nil {
		return 0, err
	}
	pinger.Count = 1
	pinger.Timeout = p.timeout

	if err := pinger.Run(); err != nil {
		return 0, fmt.Errorf("pinging gateway %s: %w", gateway, err)
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return 0, fmt.Errorf("gateway %s did not reply", gateway)
	}
	return stats.AvgRtt, nil
}

// defaultGateway reads the gateway address from the platform routing tools.
func (p *Prober) defaultGateway(ctx context.Context) (string, error) {
	switch p.goos {
	case "linux":
		out, err := exec.CommandContext(ctx, "ip", "route", "show", "default").Output()
		if err != nil {
			return "", fmt.Errorf("reading default route: %w", err)
		}
		return parseIPRouteOutput(string(out))
	case "darwin":
		out, err := exec.CommandContext(ctx, "route", "-n", "get", "default").Output()
		if err != nil {
			return "", fmt.Errorf("reading default route: %w", err)
		}
		return parseRouteGetOutput(string(out))
	default:
		return "", fmt.Errorf("%w on %s", ErrNoGateway, p.goos)
	}
}

// parseIPRouteOutput extracts the gateway from `ip route show default`:
// "default via 192.168.1.1 dev wlan0 proto dhcp metric 600"
func parseIPRouteOutput(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		for i := 0; i < len(fields)-1; i++ {
			if fields[i] == "via" {
				return fields[i+1], nil
			}
		}
	}
	return "", ErrNoGateway
}

// parseRouteGetOutput extracts the gateway from `route -n get default`:
// "    gateway: 192.168.1.1"
func parseRouteGetOutput(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == "gateway" {
			if gw := strings.TrimSpace(value); gw != "" {
				return gw, nil
			}
		}
	}
	return "", ErrNoGateway
}
