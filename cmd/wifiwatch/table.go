package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"wifiwatch/internal/models"
)

func useColor(noColor bool) bool {
	return !noColor && isatty.IsTerminal(os.Stdout.Fd())
}

// colorize pads first and colors second so escape codes do not break
// column alignment.
func colorize(enabled bool, s string, attrs ...color.Attribute) string {
	if !enabled {
		return s
	}
	return color.New(attrs...).Sprint(s)
}

func signalColor(dbm int) color.Attribute {
	switch {
	case dbm > -60:
		return color.FgGreen
	case dbm > -80:
		return color.FgYellow
	default:
		return color.FgRed
	}
}

func bandColor(band models.Band) color.Attribute {
	switch band {
	case models.Band5:
		return color.FgCyan
	case models.Band24:
		return color.FgMagenta
	default:
		return color.FgWhite
	}
}

func printNetworkTable(w io.Writer, records []models.NetworkRecord, noColor bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No networks found")
		return
	}
	colored := useColor(noColor)

	fmt.Fprintf(w, "%-28s %-9s %-5s %-5s %-8s %-7s %s\n",
		"SSID", "SIGNAL", "PCT", "CHAN", "BAND", "MODE", "SECURITY")
	for _, r := range records {
		ssid := r.SSID
		if r.Connected {
			ssid = "* " + ssid
		}
		if len(ssid) > 28 {
			ssid = ssid[:25] + "..."
		}

		sig := fmt.Sprintf("%-9s", fmt.Sprintf("%d dBm", r.SignalDBM))
		band := fmt.Sprintf("%-8s", r.Band)

		name := fmt.Sprintf("%-28s", ssid)
		if r.Connected {
			name = colorize(colored, name, color.FgGreen, color.Bold)
		}

		fmt.Fprintf(w, "%s %s %-5s %-5d %s %-7s %s\n",
			name,
			colorize(colored, sig, signalColor(r.SignalDBM)),
			fmt.Sprintf("%d%%", r.SignalPercent),
			r.Channel,
			colorize(colored, band, bandColor(r.Band)),
			r.Mode,
			r.Security)
	}
	fmt.Fprintf(w, "\n%d networks\n", len(records))
}

func printMonitorSample(w io.Writer, sample models.MonitorSample, noColor bool) {
	colored := useColor(noColor)
	stamp := sample.TakenAt.Format("15:04:05")

	best, ok := sample.Best()
	if !ok {
		fmt.Fprintf(w, "%s  %s  %s\n",
			stamp, sample.SSID, colorize(colored, "not found", color.FgRed))
		return
	}

	sig := fmt.Sprintf("%d dBm", best.SignalDBM)
	line := fmt.Sprintf("%s  %s  %s  %d%%  ch %d  %s",
		stamp, sample.SSID,
		colorize(colored, sig, signalColor(best.SignalDBM)),
		best.SignalPercent, best.Channel, best.Band)
	if len(sample.Records) > 1 {
		line += fmt.Sprintf("  (%d BSSIDs)", len(sample.Records))
	}
	if sample.GatewayRTTMs > 0 {
		line += fmt.Sprintf("  rtt %.1fms", sample.GatewayRTTMs)
	}
	fmt.Fprintln(w, line)
}
