package database

import (
	"time"
)

// ArchiveOldData removes aged-out history. Raw observations are kept for 7
// days, monitor samples for 30.
func (db *DB) ArchiveOldData() error {
	deleteObservations := `DELETE FROM observations WHERE seen_at < datetime('now', '-7 days')`
	if _, err := db.Exec(deleteObservations); err != nil {
		return err
	}

	deleteScans := `
        DELETE FROM scans
        WHERE id NOT IN (SELECT DISTINCT scan_id FROM observations)
        AND started_at < datetime('now', '-7 days')
    `
	if _, err := db.Exec(deleteScans); err != nil {
		return err
	}

	deleteSamples := `DELETE FROM monitor_samples WHERE taken_at < datetime('now', '-30 days')`
	if _, err := db.Exec(deleteSamples); err != nil {
		return err
	}

	// Vacuum to reclaim space (run occasionally)
	if time.Now().Day() == 1 { // Run on first day of month
		_, err := db.Exec("VACUUM")
		return err
	}

	return nil
}
