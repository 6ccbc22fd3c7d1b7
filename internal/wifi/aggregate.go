package wifi

import (
	"sort"

	"wifiwatch/internal/models"
)

// Aggregate orders scan records by descending signal strength. The sort is
// stable, so records with equal signal keep their scan order and the result
// is idempotent under re-aggregation. Connected flags pass through untouched;
// no deduplication happens here because multiple access points can
// legitimately share an SSID.
func Aggregate(records []models.NetworkRecord) []models.NetworkRecord {
	out := make([]models.NetworkRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SignalDBM > out[j].SignalDBM
	})
	return out
}

// FilterSSID returns the records matching the given SSID, in input order.
func FilterSSID(records []models.NetworkRecord, ssid string) []models.NetworkRecord {
	var out []models.NetworkRecord
	for _, r := range records {
		if r.SSID == ssid {
			out = append(out, r)
		}
	}
	return out
}
