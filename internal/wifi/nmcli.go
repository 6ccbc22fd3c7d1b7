package wifi

import (
	"context"
	"strconv"
	"strings"
	"time"

	"wifiwatch/internal/models"
)

// nmcli terse field list, in order.
const nmcliFields = "ACTIVE,SSID,BSSID,SIGNAL,CHAN,FREQ,MODE,RATE,SECURITY"

// NmcliScanner scans via NetworkManager's nmcli on Linux.
type NmcliScanner struct{}

// NewNmcliScanner creates a new NmcliScanner
func NewNmcliScanner() *NmcliScanner {
	return &NmcliScanner{}
}

// Scan runs one nmcli scan and parses its terse output.
func (s *NmcliScanner) Scan(ctx context.Context) ([]models.NetworkRecord, error) {
	out, err := runCommand(ctx, "nmcli", "-t", "-f", nmcliFields, "device", "wifi", "list")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(out)) == "" {
		return nil, &ScanError{Command: "nmcli", Err: errEmptyOutput}
	}
	return parseNmcliOutput(string(out), time.Now()), nil
}

// parseNmcliOutput parses `nmcli -t` terse output into network records.
// Malformed lines are skipped.
func parseNmcliOutput(output string, now time.Time) []models.NetworkRecord {
	var records []models.NetworkRecord
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := splitNmcliLine(line)
		if len(fields) < 9 {
			continue
		}

		percent, err := strconv.Atoi(fields[3])
		if err != nil {
			continue
		}

		ssid := fields[1]
		if ssid == "" {
			ssid = models.HiddenSSID
		}

		freq, _ := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(fields[5], "MHz")))
		channel, _ := strconv.Atoi(fields[4])
		if channel == 0 && freq != 0 {
			channel = ChannelForFrequency(freq)
		}
		if freq == 0 && channel != 0 {
			freq = FrequencyForChannel(channel)
		}

		records = append(records, models.NetworkRecord{
			SSID:          ssid,
			BSSID:         fields[2],
			SignalDBM:     dbmFromPercent(percent),
			SignalPercent: percent,
			FrequencyMHz:  freq,
			Channel:       channel,
			Band:          BandForFrequency(freq),
			Mode:          fields[6],
			Rate:          fields[7],
			Security:      fields[8],
			Connected:     fields[0] == "yes",
			SeenAt:        now,
		})
	}
	return records
}

// splitNmcliLine splits a terse nmcli line on unescaped colons. nmcli escapes
// colons inside field values (BSSIDs in particular) as `\:`.
func splitNmcliLine(line string) []string {
	var fields []string
	var b strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

// dbmFromPercent converts a 0-100 NetworkManager signal quality figure to an
// estimated dBm value, inverting the usual percent = 2*(dBm+100) rule.
func dbmFromPercent(percent int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent/2 - 100
}
