package reports

import (
	"sort"

	"safereport-be/models"
)

// topStationLimit bounds the top_stations list in the analytics payload.
const topStationLimit = 10

// StationCount pairs a station with its report count.
type StationCount struct {
	Station string `json:"station"`
	Count   int    `json:"count"`
}

// Stats is the analytics summary over the entire store. Breakdown maps
// only carry keys that occur at least once.
type Stats struct {
	Total       int            `json:"total"`
	ByCategory  map[string]int `json:"by_category"`
	ByUrgency   map[string]int `json:"by_urgency"`
	ByCity      map[string]int `json:"by_city"`
	ByStatus    map[string]int `json:"by_status"`
	TopStations []StationCount `json:"top_stations"`
}

// ComputeStats derives every breakdown from scratch out of a single
// snapshot of the store, so the counts are always mutually consistent.
// Callers computing percentages must guard Total == 0 themselves.
func ComputeStats(all []models.Report) Stats {
	stats := Stats{
		Total:      len(all),
		ByCategory: make(map[string]int),
		ByUrgency:  make(map[string]int),
		ByCity:     make(map[string]int),
		ByStatus:   make(map[string]int),
	}

	stationCounts := make(map[string]int)
	for _, report := range all {
		stats.ByCategory[string(report.IssueCategory)]++
		stats.ByUrgency[string(report.UrgencyLevel)]++
		stats.ByCity[string(report.StationCity)]++
		stats.ByStatus[string(report.Status)]++
		stationCounts[report.StationName]++
	}

	stats.TopStations = make([]StationCount, 0, len(stationCounts))
	for station, count := range stationCounts {
		stats.TopStations = append(stats.TopStations, StationCount{Station: station, Count: count})
	}

	sort.Slice(stats.TopStations, func(i, j int) bool {
		if stats.TopStations[i].Count != stats.TopStations[j].Count {
			return stats.TopStations[i].Count > stats.TopStations[j].Count
		}
		return stats.TopStations[i].Station < stats.TopStations[j].Station
	})

	if len(stats.TopStations) > topStationLimit {
		stats.TopStations = stats.TopStations[:topStationLimit]
	}

	return stats
}
