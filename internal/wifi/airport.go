package wifi

import (
	"context"
	"strconv"
	"strings"
	"time"

	"wifiwatch/internal/models"
)

// AirportScanner scans via system_profiler on macOS.
type AirportScanner struct{}

// NewAirportScanner creates a new AirportScanner
func NewAirportScanner() *AirportScanner {
	return &AirportScanner{}
}

// Scan runs system_profiler and parses its airport data report.
func (s *AirportScanner) Scan(ctx context.Context) ([]models.NetworkRecord, error) {
	out, err := runCommand(ctx, "system_profiler", "SPAirPortDataType")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(out)) == "" {
		return nil, &ScanError{Command: "system_profiler", Err: errEmptyOutput}
	}
	return parseAirportOutput(string(out), time.Now()), nil
}

// parseAirportOutput extracts network records from `system_profiler
// SPAirPortDataType` text output. The report indents SSID headers with fewer
// than 14 spaces and their fields with 14 or more; the connected network sits
// under "Current Network Information:", everything else under "Other Local
// Wi-Fi Networks:". Blocks missing a signal or channel are skipped.
func parseAirportOutput(output string, now time.Time) []models.NetworkRecord {
	const fieldIndent = "              " // 14 spaces

	var records []models.NetworkRecord
	var cur models.NetworkRecord
	var hasSignal bool
	section := ""

	flush := func() {
		if cur.SSID != "" && hasSignal && cur.Channel != 0 {
			cur.FrequencyMHz = FrequencyForChannel(cur.Channel)
			cur.Band = BandForFrequency(cur.FrequencyMHz)
			cur.SeenAt = now
			records = append(records, cur)
		}
		cur = models.NetworkRecord{}
		hasSignal = false
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.Contains(line, "Current Network Information:"):
			flush()
			section = "current"
			continue
		case strings.Contains(line, "Other Local Wi-Fi Networks:"):
			flush()
			section = "others"
			continue
		}
		if section == "" {
			continue
		}
		// Another section at this level ends the network listings.
		if strings.HasSuffix(trimmed, "Networks:") {
			flush()
			section = ""
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}

		if !strings.HasPrefix(line, fieldIndent) {
			// New SSID header.
			flush()
			cur.SSID = strings.TrimSuffix(trimmed, ":")
			cur.Connected = section == "current"
			continue
		}

		key, value, ok := strings.Cut(trimmed, ":")
		if !ok || cur.SSID == "" {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Channel":
			if ch, err := strconv.Atoi(firstToken(value)); err == nil {
				cur.Channel = ch
			}
		case "Signal / Noise":
			sig, noise, ok := parseSignalNoise(value)
			if !ok {
				continue
			}
			cur.SignalDBM = sig
			cur.SignalPercent = percentFromSNR(sig, noise)
			hasSignal = true
		case "Security":
			cur.Security = value
		case "Network Type":
			if strings.HasPrefix(value, "Infrastructure") {
				value = "Infra"
			}
			cur.Mode = value
		case "Transmit Rate":
			cur.Rate = value
		}
	}
	flush()
	return records
}

// parseSignalNoise parses a "-48 dBm / -94 dBm" value. The noise half is
// optional and defaults to -100 dBm.
func parseSignalNoise(value string) (sig, noise int, ok bool) {
	parts := strings.Split(value, "/")
	sig, err := strconv.Atoi(firstToken(strings.TrimSpace(parts[0])))
	if err != nil {
		return 0, 0, false
	}
	noise = -100
	if len(parts) > 1 {
		if n, err := strconv.Atoi(firstToken(strings.TrimSpace(parts[1]))); err == nil {
			noise = n
		}
	}
	return sig, noise, true
}

// percentFromSNR estimates a 0-100 quality figure from the signal-to-noise
// ratio, matching what NetworkManager reports for comparable conditions.
func percentFromSNR(sig, noise int) int {
	snr := sig - noise
	percent := (snr + 100) / 2
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent
}

func firstToken(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
