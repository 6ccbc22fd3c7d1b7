package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"wifiwatch/internal/database"
)

// Generator creates static charts and summaries from the scan history
type Generator struct {
	db *database.DB
}

// NewGenerator creates a new report generator
func NewGenerator(db *database.DB) *Generator {
	return &Generator{db: db}
}

// GenerateReport creates a report directory with charts and a text summary
func (g *Generator) GenerateReport(outputDir string, hours int) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	reportDir := filepath.Join(outputDir, fmt.Sprintf("wifi_report_%s", timestamp))
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := g.generateSignalCharts(reportDir, hours); err != nil {
		log.Printf("Failed to generate signal charts: %v", err)
	}

	if err := g.generateBandChart(reportDir, hours); err != nil {
		log.Printf("Failed to generate band chart: %v", err)
	}

	if err := g.generateTextReport(reportDir, hours); err != nil {
		log.Printf("Failed to generate text report: %v", err)
	}

	log.Printf("Report generated in: %s", reportDir)
	return nil
}

// monitoredSSIDs lists SSIDs with signal history in the window: everything
// that was monitored, topped up with the strongest scanned networks.
func (g *Generator) monitoredSSIDs(hours int) ([]string, error) {
	query := `
        SELECT DISTINCT ssid
        FROM monitor_samples
        WHERE taken_at > datetime('now', '-' || ? || ' hours')
    `

	rows, err := g.db.Query(query, hours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]bool)
	var ssids []string
	for rows.Next() {
		var ssid string
		if err := rows.Scan(&ssid); err != nil {
			continue
		}
		seen[ssid] = true
		ssids = append(ssids, ssid)
	}

	strongest, err := g.db.GetStrongest(hours, 5)
	if err != nil {
		return ssids, nil
	}
	for _, r := range strongest {
		if !seen[r.SSID] {
			ssids = append(ssids, r.SSID)
		}
	}
	return ssids, nil
}
