package database

import (
	"database/sql"

	"wifiwatch/internal/models"
)

// SaveScan saves one scan and all of its observations
func (db *DB) SaveScan(result models.ScanResult) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO scans (started_at, platform, network_count) VALUES (?, ?, ?)`,
		result.StartedAt, result.Platform, len(result.Networks),
	)
	if err != nil {
		return err
	}
	scanID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
        INSERT INTO observations
            (scan_id, ssid, bssid, signal_dbm, signal_percent, freq_mhz, channel, band, mode, rate, security, connected, seen_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, n := range result.Networks {
		if _, err := stmt.Exec(scanID, n.SSID, n.BSSID, n.SignalDBM, n.SignalPercent,
			n.FrequencyMHz, n.Channel, string(n.Band), n.Mode, n.Rate, n.Security,
			n.Connected, n.SeenAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveMonitorSample saves a monitor tick to the database
func (db *DB) SaveMonitorSample(sample models.MonitorSample) error {
	var (
		signal  sql.NullInt64
		freq    sql.NullInt64
		channel sql.NullInt64
		band    sql.NullString
	)
	if best, ok := sample.Best(); ok {
		signal = sql.NullInt64{Int64: int64(best.SignalDBM), Valid: true}
		freq = sql.NullInt64{Int64: int64(best.FrequencyMHz), Valid: true}
		channel = sql.NullInt64{Int64: int64(best.Channel), Valid: true}
		band = sql.NullString{String: string(best.Band), Valid: true}
	}

	var rtt sql.NullFloat64
	if sample.GatewayRTTMs > 0 {
		rtt = sql.NullFloat64{Float64: sample.GatewayRTTMs, Valid: true}
	}

	query := `
        INSERT INTO monitor_samples (taken_at, ssid, found, signal_dbm, freq_mhz, channel, band, gateway_rtt_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := db.Exec(query, sample.TakenAt, sample.SSID, sample.Found, signal, freq, channel, band, rtt)
	return err
}

// GetLatestScan retrieves the most recent scan with its observations. A
// database without scans yields an empty result, not an error.
func (db *DB) GetLatestScan() (models.ScanResult, error) {
	var result models.ScanResult
	var scanID int64

	row := db.QueryRow(`SELECT id, started_at, platform FROM scans ORDER BY started_at DESC, id DESC LIMIT 1`)
	if err := row.Scan(&scanID, &result.StartedAt, &result.Platform); err != nil {
		if err == sql.ErrNoRows {
			return result, nil
		}
		return result, err
	}

	query := `
        SELECT ssid, bssid, signal_dbm, signal_percent, freq_mhz, channel, band, mode, rate, security, connected, seen_at
        FROM observations
        WHERE scan_id = ?
        ORDER BY signal_dbm DESC
    `
	rows, err := db.Query(query, scanID)
	if err != nil {
		return result, err
	}
	defer rows.Close()

	result.Networks, err = scanNetworkRows(rows)
	return result, err
}

// GetRecentObservations retrieves recent scan observations
func (db *DB) GetRecentObservations(hours int) ([]models.NetworkRecord, error) {
	query := `
        SELECT ssid, bssid, signal_dbm, signal_percent, freq_mhz, channel, band, mode, rate, security, connected, seen_at
        FROM observations
        WHERE seen_at > datetime('now', '-' || ? || ' hours')
        ORDER BY seen_at DESC
        LIMIT 10000
    `

	rows, err := db.Query(query, hours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNetworkRows(rows)
}

// GetStrongest retrieves the strongest observation per SSID
func (db *DB) GetStrongest(hours, limit int) ([]models.NetworkRecord, error) {
	query := `
        SELECT ssid, bssid, MAX(signal_dbm) as signal_dbm, signal_percent, freq_mhz, channel, band, mode, rate, security, connected, seen_at
        FROM observations
        WHERE seen_at > datetime('now', '-' || ? || ' hours')
        GROUP BY ssid
        ORDER BY signal_dbm DESC
        LIMIT ?
    `

	rows, err := db.Query(query, hours, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNetworkRows(rows)
}

// GetBandStats retrieves aggregated statistics per band
func (db *DB) GetBandStats(hours int) ([]models.BandStats, error) {
	query := `
        SELECT
            band,
            COUNT(*) as observations,
            COUNT(DISTINCT ssid) as unique_ssids,
            AVG(signal_dbm) as avg_signal,
            MAX(signal_dbm) as max_signal,
            MIN(signal_dbm) as min_signal
        FROM observations
        WHERE seen_at > datetime('now', '-' || ? || ' hours')
        GROUP BY band
        ORDER BY band
    `

	rows, err := db.Query(query, hours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.BandStats
	for rows.Next() {
		var s models.BandStats
		var band string
		err := rows.Scan(&band, &s.Observations, &s.UniqueSSIDs,
			&s.AvgSignalDBM, &s.MaxSignalDBM, &s.MinSignalDBM)
		if err != nil {
			continue
		}
		s.Band = models.Band(band)
		stats = append(stats, s)
	}

	return stats, nil
}

// GetSignalHistory retrieves signal measurements for one SSID, oldest first.
// Scan observations and monitor samples both contribute points.
func (db *DB) GetSignalHistory(ssid string, hours int) ([]models.SignalPoint, error) {
	query := `
        SELECT seen_at, ssid, CAST(signal_dbm AS REAL)
        FROM observations
        WHERE ssid = ? AND seen_at > datetime('now', '-' || ? || ' hours')
        UNION ALL
        SELECT taken_at, ssid, CAST(signal_dbm AS REAL)
        FROM monitor_samples
        WHERE ssid = ? AND found = 1 AND taken_at > datetime('now', '-' || ? || ' hours')
        ORDER BY 1
    `

	rows, err := db.Query(query, ssid, hours, ssid, hours)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []models.SignalPoint
	for rows.Next() {
		var p models.SignalPoint
		if err := rows.Scan(&p.Timestamp, &p.SSID, &p.SignalDBM); err != nil {
			continue
		}
		points = append(points, p)
	}

	return points, nil
}

func scanNetworkRows(rows *sql.Rows) ([]models.NetworkRecord, error) {
	var records []models.NetworkRecord
	for rows.Next() {
		var r models.NetworkRecord
		var bssid, band, mode, rate, security sql.NullString
		err := rows.Scan(&r.SSID, &bssid, &r.SignalDBM, &r.SignalPercent,
			&r.FrequencyMHz, &r.Channel, &band, &mode, &rate, &security,
			&r.Connected, &r.SeenAt)
		if err != nil {
			continue
		}
		r.BSSID = bssid.String
		r.Band = models.Band(band.String)
		r.Mode = mode.String
		r.Rate = rate.String
		r.Security = security.String
		records = append(records, r)
	}

	return records, nil
}
