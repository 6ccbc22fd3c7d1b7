package models

import (
	"context"
	"time"
)

// Scanner performs one WiFi scan and returns the observed networks.
type Scanner interface {
	Scan(ctx context.Context) ([]NetworkRecord, error)
}

// Prober measures round-trip time to the default gateway.
type Prober interface {
	GatewayRTT(ctx context.Context) (time.Duration, error)
}

// Database interface defines operations for history persistence
type Database interface {
	SaveScan(result ScanResult) error
	SaveMonitorSample(sample MonitorSample) error
	GetLatestScan() (ScanResult, error)
	GetRecentObservations(hours int) ([]NetworkRecord, error)
	GetStrongest(hours, limit int) ([]NetworkRecord, error)
	GetBandStats(hours int) ([]BandStats, error)
	GetSignalHistory(ssid string, hours int) ([]SignalPoint, error)
	ArchiveOldData() error
	Close() error
}

// Monitor interface defines the monitoring lifecycle
type Monitor interface {
	Start() error
	Stop()
	Wait()
	Samples() <-chan MonitorSample
}
