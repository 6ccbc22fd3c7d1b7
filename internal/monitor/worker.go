package monitor

import (
	"context"
	"log"
	"time"

	"wifiwatch/internal/models"
	"wifiwatch/internal/wifi"
)

// tickWorker performs a scan per tick until cancelled or the configured tick
// count is reached. Count 0 means run until stopped.
func (m *Monitor) tickWorker() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	// Immediate first tick
	ticks := 1
	m.performTick()

	for {
		if m.config.Count > 0 && ticks >= m.config.Count {
			m.Stop()
			return
		}
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			ticks++
			m.performTick()
		}
	}
}

// performTick scans once, filters for the target SSID and emits a sample.
// A failed scan is logged and skipped; the loop itself never stops on scan
// errors.
func (m *Monitor) performTick() {
	ctx, cancel := context.WithTimeout(m.ctx, m.config.Timeout)
	defer cancel()

	records, err := m.scanner.Scan(ctx)
	if err != nil {
		log.Printf("Scan failed: %v", err)
		return
	}

	matches := wifi.Aggregate(wifi.FilterSSID(records, m.config.SSID))
	sample := models.MonitorSample{
		TakenAt: time.Now(),
		SSID:    m.config.SSID,
		Found:   len(matches) > 0,
		Records: matches,
	}

	if m.prober != nil {
		if rtt, err := m.prober.GatewayRTT(ctx); err == nil {
			sample.GatewayRTTMs = float64(rtt.Microseconds()) / 1000.0
		}
	}

	select {
	case m.results <- sample:
	default:
		log.Printf("Result channel full, dropping sample for %s", m.config.SSID)
	}
}

// processResults persists samples and forwards them to the display stream.
func (m *Monitor) processResults() {
	defer m.wg.Done()
	defer close(m.samples)

	for {
		select {
		case <-m.ctx.Done():
			// Drain anything the final tick already produced.
			for {
				select {
				case sample := <-m.results:
					m.handleSample(sample)
				default:
					return
				}
			}
		case sample := <-m.results:
			m.handleSample(sample)
		}
	}
}

func (m *Monitor) handleSample(sample models.MonitorSample) {
	if m.store != nil {
		if err := m.store.SaveMonitorSample(sample); err != nil {
			log.Printf("Failed to save sample: %v", err)
		}
	}
	select {
	case m.samples <- sample:
	default:
	}
}
