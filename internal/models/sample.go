package models

import "time"

// MonitorSample represents one tick of the monitor loop for a target SSID.
// Found is false when the SSID was absent from that tick's scan; Records is
// empty in that case.
type MonitorSample struct {
	TakenAt      time.Time       `json:"taken_at"`
	SSID         string          `json:"ssid"`
	Found        bool            `json:"found"`
	Records      []NetworkRecord `json:"records"`
	GatewayRTTMs float64         `json:"gateway_rtt_ms,omitempty"`
}

// Best returns the strongest matching record of the sample.
func (s MonitorSample) Best() (NetworkRecord, bool) {
	if len(s.Records) == 0 {
		return NetworkRecord{}, false
	}
	return s.Records[0], true
}
