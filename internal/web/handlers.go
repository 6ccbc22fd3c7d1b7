package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"wifiwatch/internal/wifi"
)

func queryInt(r *http.Request, name string, fallback int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// handleNetworks serves the most recent scan
func (s *Server) handleNetworks(w http.ResponseWriter, r *http.Request) {
	result, err := s.db.GetLatestScan()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// handleHistory serves recent observations
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.db.GetRecentObservations(queryInt(r, "hours", 24))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, records)
}

// handleStrongest serves the strongest observation per SSID
func (s *Server) handleStrongest(w http.ResponseWriter, r *http.Request) {
	records, err := s.db.GetStrongest(queryInt(r, "hours", 24), queryInt(r, "limit", 20))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, records)
}

// handleBands serves per-band statistics
func (s *Server) handleBands(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetBandStats(queryInt(r, "hours", 24))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats)
}

// handleSignal serves the signal history for one SSID
func (s *Server) handleSignal(w http.ResponseWriter, r *http.Request) {
	ssid := r.URL.Query().Get("ssid")
	if ssid == "" {
		http.Error(w, "ssid parameter required", http.StatusBadRequest)
		return
	}

	points, err := s.db.GetSignalHistory(ssid, queryInt(r, "hours", 24))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, points)
}

// handleInterfaces serves the wireless interface names wpa_supplicant reports
func (s *Server) handleInterfaces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, wifi.WirelessInterfaces())
}
