package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"wifiwatch/internal/database"
	"wifiwatch/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "web_test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.InitSchema(); err != nil {
		t.Fatalf("initializing schema: %v", err)
	}

	now := time.Now()
	scan := models.ScanResult{
		StartedAt: now,
		Platform:  "linux",
		Networks: []models.NetworkRecord{
			{SSID: "MyHomeWiFi", SignalDBM: -48, FrequencyMHz: 2437, Channel: 6, Band: models.Band24, Connected: true, SeenAt: now},
			{SSID: "Office5G", SignalDBM: -60, FrequencyMHz: 5745, Channel: 149, Band: models.Band5, SeenAt: now},
		},
	}
	if err := db.SaveScan(scan); err != nil {
		t.Fatalf("saving scan: %v", err)
	}

	srv := httptest.NewServer(New(db, 0).routes())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHandleNetworks(t *testing.T) {
	srv := newTestServer(t)

	var result models.ScanResult
	if code := getJSON(t, srv.URL+"/api/networks", &result); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}

	if result.Platform != "linux" || len(result.Networks) != 2 {
		t.Fatalf("unexpected scan result: %+v", result)
	}
	// Strongest first, connected flag preserved.
	if result.Networks[0].SSID != "MyHomeWiFi" || !result.Networks[0].Connected {
		t.Errorf("first network = %+v", result.Networks[0])
	}
}

func TestHandleStrongest(t *testing.T) {
	srv := newTestServer(t)

	var records []models.NetworkRecord
	if code := getJSON(t, srv.URL+"/api/strongest?hours=24&limit=1", &records); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(records) != 1 || records[0].SSID != "MyHomeWiFi" {
		t.Errorf("strongest = %+v", records)
	}
}

func TestHandleBands(t *testing.T) {
	srv := newTestServer(t)

	var stats []models.BandStats
	if code := getJSON(t, srv.URL+"/api/bands", &stats); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(stats) != 2 {
		t.Errorf("expected 2 bands, got %+v", stats)
	}
}

func TestHandleSignalRequiresSSID(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/signal")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleSignal(t *testing.T) {
	srv := newTestServer(t)

	var points []models.SignalPoint
	if code := getJSON(t, srv.URL+"/api/signal?ssid=MyHomeWiFi", &points); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(points) != 1 {
		t.Errorf("expected 1 point from scan observations, got %+v", points)
	}
}
