package wifi

import (
	"reflect"
	"testing"
	"time"

	"wifiwatch/internal/models"
)

func TestParseNmcliOutput(t *testing.T) {
	output := `yes:MyHomeWiFi:AA\:BB\:CC\:DD\:EE\:FF:74:6:2437 MHz:Infra:405 Mbit/s:WPA2
no:Office5G:11\:22\:33\:44\:55\:66:55:149:5745 MHz:Infra:866.7 Mbit/s:WPA2
no::66\:77\:88\:99\:AA\:BB:40:11:2462 MHz:Infra:195 Mbit/s:WPA1 WPA2
not a terse nmcli line
no:Broken:CC\:CC\:CC\:CC\:CC\:CC:notanumber:6:2437 MHz:Infra:100 Mbit/s:WPA2
`

	now := time.Now()
	records := parseNmcliOutput(output, now)

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	home := records[0]
	if home.SSID != "MyHomeWiFi" {
		t.Errorf("SSID = %q, want MyHomeWiFi", home.SSID)
	}
	if home.BSSID != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("BSSID = %q, escaped colons not unescaped", home.BSSID)
	}
	if !home.Connected {
		t.Error("expected ACTIVE:yes to mark the record connected")
	}
	if home.SignalPercent != 74 || home.SignalDBM != -63 {
		t.Errorf("signal = %d%% / %d dBm, want 74%% / -63 dBm", home.SignalPercent, home.SignalDBM)
	}
	if home.FrequencyMHz != 2437 || home.Channel != 6 || home.Band != models.Band24 {
		t.Errorf("freq/channel/band = %d/%d/%v, want 2437/6/2.4GHz", home.FrequencyMHz, home.Channel, home.Band)
	}
	if home.SeenAt != now {
		t.Errorf("SeenAt = %v, want %v", home.SeenAt, now)
	}

	office := records[1]
	if office.Connected {
		t.Error("ACTIVE:no record must not be connected")
	}
	if office.Band != models.Band5 || office.Channel != 149 {
		t.Errorf("band/channel = %v/%d, want 5GHz/149", office.Band, office.Channel)
	}
	if office.Rate != "866.7 Mbit/s" || office.Security != "WPA2" {
		t.Errorf("rate/security = %q/%q", office.Rate, office.Security)
	}

	hidden := records[2]
	if hidden.SSID != models.HiddenSSID {
		t.Errorf("empty SSID should map to %q, got %q", models.HiddenSSID, hidden.SSID)
	}
	if hidden.SignalDBM != -80 {
		t.Errorf("signal = %d dBm, want -80", hidden.SignalDBM)
	}
}

func TestParseNmcliOutputMissingFrequency(t *testing.T) {
	// Frequency derived from channel when the FREQ field is empty.
	output := `no:NoFreq:AA\:AA\:AA\:AA\:AA\:AA:60:11::Infra:130 Mbit/s:WPA2`

	records := parseNmcliOutput(output, time.Now())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].FrequencyMHz != 2462 {
		t.Errorf("FrequencyMHz = %d, want derived 2462", records[0].FrequencyMHz)
	}
	if records[0].Band != models.Band24 {
		t.Errorf("Band = %v, want 2.4GHz", records[0].Band)
	}
}

func TestParseNmcliOutputEmpty(t *testing.T) {
	if records := parseNmcliOutput("", time.Now()); len(records) != 0 {
		t.Errorf("expected no records from empty output, got %d", len(records))
	}
}

func TestSplitNmcliLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "plain fields",
			line:     "yes:Home:74",
			expected: []string{"yes", "Home", "74"},
		},
		{
			name:     "escaped colons stay in field",
			line:     `no:AP:AA\:BB\:CC:55`,
			expected: []string{"no", "AP", "AA:BB:CC", "55"},
		},
		{
			name:     "escaped backslash",
			line:     `no:weird\\name:10`,
			expected: []string{"no", `weird\name`, "10"},
		},
		{
			name:     "trailing empty field",
			line:     "no:SSID:",
			expected: []string{"no", "SSID", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitNmcliLine(tt.line); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitNmcliLine(%q) = %q, want %q", tt.line, got, tt.expected)
			}
		})
	}
}

func TestDBMFromPercent(t *testing.T) {
	tests := []struct {
		percent  int
		expected int
	}{
		{100, -50},
		{74, -63},
		{50, -75},
		{0, -100},
		{-5, -100},
		{150, -50},
	}

	for _, tt := range tests {
		if got := dbmFromPercent(tt.percent); got != tt.expected {
			t.Errorf("dbmFromPercent(%d) = %d, want %d", tt.percent, got, tt.expected)
		}
	}
}
