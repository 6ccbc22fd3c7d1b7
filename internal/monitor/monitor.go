package monitor

import (
	"context"
	"log"
	"sync"

	"wifiwatch/internal/config"
	"wifiwatch/internal/models"
)

// sampleStore is the slice of the database the monitor needs.
type sampleStore interface {
	SaveMonitorSample(sample models.MonitorSample) error
}

// Monitor repeatedly scans for one SSID and emits a sample per tick.
type Monitor struct {
	config   config.Config
	store    sampleStore
	scanner  models.Scanner
	prober   models.Prober
	results  chan models.MonitorSample
	samples  chan models.MonitorSample
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// New creates a new Monitor. store and prober may be nil: without a store
// samples are not persisted, without a prober samples carry no gateway RTT.
func New(cfg config.Config, store sampleStore, scanner models.Scanner, prober models.Prober) *Monitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		config:  cfg,
		store:   store,
		scanner: scanner,
		prober:  prober,
		results: make(chan models.MonitorSample, 100),
		samples: make(chan models.MonitorSample, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins the monitoring process
func (m *Monitor) Start() error {
	log.Printf("Monitoring SSID %q every %v", m.config.SSID, m.config.Interval)

	m.wg.Add(1)
	go m.processResults()

	m.wg.Add(1)
	go m.tickWorker()

	return nil
}

// Stop gracefully stops the monitor. Safe to call more than once.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		m.cancel()
	})
}

// Wait blocks until all goroutines finish
func (m *Monitor) Wait() {
	m.wg.Wait()
}

// Samples exposes the per-tick sample stream for live display.
func (m *Monitor) Samples() <-chan models.MonitorSample {
	return m.samples
}
