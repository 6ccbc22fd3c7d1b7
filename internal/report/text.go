package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func (g *Generator) generateTextReport(outputDir string, hours int) error {
	filename := filepath.Join(outputDir, "summary.txt")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "WiFi Environment Report\n")
	fmt.Fprintf(file, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "Period: Last %d hours\n\n", hours)
	fmt.Fprintln(file, strings.Repeat("=", 60))

	fmt.Fprintln(file, "\nSTRONGEST NETWORKS")

	strongest, err := g.db.GetStrongest(hours, 20)
	if err != nil {
		return err
	}
	for i, r := range strongest {
		fmt.Fprintf(file, "%2d. %s\n", i+1, r.SSID)
		fmt.Fprintf(file, "    Best Signal: %d dBm\n", r.SignalDBM)
		if r.FrequencyMHz > 0 {
			fmt.Fprintf(file, "    Frequency: %d MHz (channel %d, %s)\n", r.FrequencyMHz, r.Channel, r.Band)
		}
		if r.Security != "" {
			fmt.Fprintf(file, "    Security: %s\n", r.Security)
		}
		fmt.Fprintln(file)
	}
	if len(strongest) == 0 {
		fmt.Fprintln(file, "No scan observations in this period.")
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))
	fmt.Fprintln(file, "\nBAND OCCUPANCY")

	bands, err := g.db.GetBandStats(hours)
	if err != nil {
		return err
	}
	for _, b := range bands {
		fmt.Fprintf(file, "Band: %s\n", b.Band)
		fmt.Fprintf(file, "  Observations: %d\n", b.Observations)
		fmt.Fprintf(file, "  Unique SSIDs: %d\n", b.UniqueSSIDs)
		fmt.Fprintf(file, "  Signal: avg %.1f dBm, best %d dBm, worst %d dBm\n",
			b.AvgSignalDBM, b.MaxSignalDBM, b.MinSignalDBM)
		fmt.Fprintln(file)
	}
	if len(bands) == 0 {
		fmt.Fprintln(file, "No band data in this period.")
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))
	fmt.Fprintln(file, "\nMONITOR COVERAGE")

	query := `
        SELECT ssid,
               COUNT(*) as ticks,
               SUM(CASE WHEN found THEN 1 ELSE 0 END) as found_ticks,
               AVG(CASE WHEN found THEN signal_dbm ELSE NULL END) as avg_signal
        FROM monitor_samples
        WHERE taken_at > datetime('now', '-' || ? || ' hours')
        GROUP BY ssid
        ORDER BY ticks DESC
    `
	rows, err := g.db.Query(query, hours)
	if err != nil {
		return err
	}
	defer rows.Close()

	monitored := 0
	for rows.Next() {
		var ssid string
		var ticks, foundTicks int
		var avgSignal *float64

		if scanErr := rows.Scan(&ssid, &ticks, &foundTicks, &avgSignal); scanErr != nil {
			continue
		}

		visibility := float64(foundTicks) / float64(ticks) * 100
		fmt.Fprintf(file, "SSID: %s\n", ssid)
		fmt.Fprintf(file, "  Ticks: %d\n", ticks)
		fmt.Fprintf(file, "  Visible: %d (%.1f%%)\n", foundTicks, visibility)
		if avgSignal != nil {
			fmt.Fprintf(file, "  Average Signal: %.1f dBm\n", *avgSignal)
		}
		fmt.Fprintln(file)
		monitored++
	}

	if monitored == 0 {
		fmt.Fprintln(file, "No monitor samples in this period.")
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))
	fmt.Fprintln(file, "\nCharts for monitored networks are in the accompanying PNG files.")

	return nil
}
