package models

import "time"

// Band is the frequency range a network operates in.
type Band string

const (
	Band24      Band = "2.4GHz"
	Band5       Band = "5GHz"
	BandUnknown Band = "unknown"
)

// HiddenSSID is the placeholder used when a network broadcasts no name.
const HiddenSSID = "<hidden>"

// NetworkRecord represents one WiFi network observed during a scan.
// Records are fresh per scan; there is no identity across scans.
type NetworkRecord struct {
	SSID          string    `json:"ssid"`
	BSSID         string    `json:"bssid,omitempty"`
	SignalDBM     int       `json:"signal_dbm"`
	SignalPercent int       `json:"signal_percent"`
	FrequencyMHz  int       `json:"freq_mhz"`
	Channel       int       `json:"channel"`
	Band          Band      `json:"band"`
	Mode          string    `json:"mode,omitempty"`
	Rate          string    `json:"rate,omitempty"`
	Security      string    `json:"security,omitempty"`
	Connected     bool      `json:"connected"`
	SeenAt        time.Time `json:"seen_at"`
}

// ScanResult is the outcome of one scan invocation.
type ScanResult struct {
	StartedAt time.Time       `json:"started_at"`
	Platform  string          `json:"platform"`
	Networks  []NetworkRecord `json:"networks"`
}
