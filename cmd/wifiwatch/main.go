package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"wifiwatch/internal/config"
	"wifiwatch/internal/database"
	"wifiwatch/internal/models"
	"wifiwatch/internal/monitor"
	"wifiwatch/internal/probe"
	"wifiwatch/internal/report"
	"wifiwatch/internal/web"
	"wifiwatch/internal/wifi"
)

const usage = `Usage: wifiwatch <command> [flags]

Commands:
  scan      Scan for nearby WiFi networks and print a table
  monitor   Watch one SSID, printing a sample per tick
  report    Generate signal charts and a text summary from history
  serve     Run the web API with a background scan worker

Run 'wifiwatch <command> -h' for command flags.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "scan":
		err = runScan(os.Args[2:])
	case "monitor":
		err = runMonitor(os.Args[2:])
	case "report":
		err = runReport(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// openDatabase opens and initializes the history database. An empty path
// disables persistence and returns nil.
func openDatabase(path string) (*database.DB, error) {
	if path == "" {
		return nil, nil
	}
	db, err := database.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.InitSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}
	return db, nil
}

func runScan(args []string) error {
	cfg, err := config.ParseScanFlags(args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	scanner, err := wifi.New(runtime.GOOS)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	records, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}
	records = wifi.Aggregate(records)

	printNetworkTable(os.Stdout, records, cfg.NoColor)

	db, err := openDatabase(cfg.DatabasePath)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		result := models.ScanResult{
			StartedAt: time.Now(),
			Platform:  runtime.GOOS,
			Networks:  records,
		}
		if err := db.SaveScan(result); err != nil {
			log.Printf("Failed to record scan: %v", err)
		}
	}
	return nil
}

func runMonitor(args []string) error {
	cfg, err := config.ParseMonitorFlags(args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	scanner, err := wifi.New(runtime.GOOS)
	if err != nil {
		return err
	}
	prober := probe.New(runtime.GOOS, cfg.Timeout)

	db, err := openDatabase(cfg.DatabasePath)
	if err != nil {
		return err
	}

	var mon *monitor.Monitor
	if db != nil {
		defer db.Close()
		mon = monitor.New(cfg, db, scanner, prober)
	} else {
		mon = monitor.New(cfg, nil, scanner, prober)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := mon.Start(); err != nil {
		return fmt.Errorf("failed to start monitor: %w", err)
	}

	go func() {
		<-sigChan
		log.Println("Shutting down...")
		mon.Stop()
	}()

	for sample := range mon.Samples() {
		printMonitorSample(os.Stdout, sample, cfg.NoColor)
	}
	mon.Wait()
	return nil
}

func runReport(args []string) error {
	cfg, err := config.ParseReportFlags(args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := openDatabase(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	gen := report.NewGenerator(db)
	return gen.GenerateReport(cfg.OutputDir, cfg.Hours)
}

func runServe(args []string) error {
	cfg, err := config.ParseServeFlags(args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	scanner, err := wifi.New(runtime.GOOS)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go scanWorker(ctx, db, scanner, cfg.ScanInterval, cfg.Timeout)
	go maintenanceWorker(ctx, db)

	webServer := web.New(db, cfg.Port)
	go func() {
		if err := webServer.Start(); err != nil {
			log.Fatalf("Failed to start web server: %v", err)
		}
	}()

	log.Printf("Scanning every %v, web interface at http://localhost:%d", cfg.ScanInterval, cfg.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down...")
	return nil
}

// scanWorker scans in the background and records each result. The first
// scan runs immediately so the API has data as soon as the server is up.
func scanWorker(ctx context.Context, db *database.DB, scanner models.Scanner, interval, timeout time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	scanOnce := func() {
		scanCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		records, err := scanner.Scan(scanCtx)
		if err != nil {
			log.Printf("Background scan failed: %v", err)
			return
		}
		result := models.ScanResult{
			StartedAt: time.Now(),
			Platform:  runtime.GOOS,
			Networks:  wifi.Aggregate(records),
		}
		if err := db.SaveScan(result); err != nil {
			log.Printf("Failed to record scan: %v", err)
		}
	}

	scanOnce()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scanOnce()
		}
	}
}

// maintenanceWorker prunes old history once an hour.
func maintenanceWorker(ctx context.Context, db *database.DB) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := db.ArchiveOldData(); err != nil {
				log.Printf("Database maintenance failed: %v", err)
			}
		}
	}
}
