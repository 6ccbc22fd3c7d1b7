package models

import "time"

// BandStats represents aggregated observations for one band
type BandStats struct {
	Band         Band    `json:"band"`
	Observations int     `json:"observations"`
	UniqueSSIDs  int     `json:"unique_ssids"`
	AvgSignalDBM float64 `json:"avg_signal_dbm"`
	MaxSignalDBM int     `json:"max_signal_dbm"`
	MinSignalDBM int     `json:"min_signal_dbm"`
}

// SignalPoint is one historical signal measurement for an SSID
type SignalPoint struct {
	Timestamp time.Time `json:"timestamp"`
	SSID      string    `json:"ssid"`
	SignalDBM float64   `json:"signal_dbm"`
}
