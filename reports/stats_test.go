package reports_test

import (
	"fmt"
	"testing"
	"time"

	"safereport-be/models"
	"safereport-be/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeStats_CountsAreConsistent verifies every breakdown sums to
// the total.
func TestComputeStats_CountsAreConsistent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	all := []models.Report{
		mkReport("a", models.Edmonton, "Churchill", models.Submitted, models.Critical, "x", base),
		mkReport("b", models.Edmonton, "Churchill", models.Resolved, models.Low, "y", base),
		mkReport("c", models.Calgary, "Tuscany", models.Submitted, models.Medium, "z", base),
		mkReport("d", models.Calgary, "Chinook", models.UnderReview, models.Medium, "w", base),
	}

	stats := reports.ComputeStats(all)
	assert.Equal(t, 4, stats.Total)

	for name, breakdown := range map[string]map[string]int{
		"by_category": stats.ByCategory,
		"by_urgency":  stats.ByUrgency,
		"by_city":     stats.ByCity,
		"by_status":   stats.ByStatus,
	} {
		sum := 0
		for _, count := range breakdown {
			sum += count
		}
		assert.Equal(t, stats.Total, sum, "%s must sum to total", name)
	}

	assert.Equal(t, 2, stats.ByCity["Edmonton"])
	assert.Equal(t, 2, stats.ByCity["Calgary"])
	assert.Equal(t, 2, stats.ByStatus["Submitted"])
	assert.Equal(t, 1, stats.ByUrgency["Critical"])
}

// TestComputeStats_OnlyOccurringKeys verifies breakdown maps carry no
// zero-count entries.
func TestComputeStats_OnlyOccurringKeys(t *testing.T) {
	all := []models.Report{
		mkReport("a", models.Edmonton, "Churchill", models.Submitted, models.Low, "x", time.Now()),
	}

	stats := reports.ComputeStats(all)
	assert.Len(t, stats.ByStatus, 1)
	assert.Len(t, stats.ByUrgency, 1)
	assert.Len(t, stats.ByCity, 1)
	assert.NotContains(t, stats.ByStatus, "Resolved")
	assert.NotContains(t, stats.ByCity, "Calgary")
}

// TestComputeStats_TopStationsOrdering verifies descending counts with
// station-name ascending tie-breaks.
func TestComputeStats_TopStationsOrdering(t *testing.T) {
	base := time.Now()
	var all []models.Report
	add := func(id, station string, n int) {
		for i := 0; i < n; i++ {
			all = append(all, mkReport(fmt.Sprintf("%s%d", id, i), models.Edmonton, station, models.Submitted, models.Low, "x", base))
		}
	}
	add("c", "Churchill", 3)
	add("s", "Southgate", 1)
	add("ce", "Central", 3)
	add("cl", "Clareview", 2)

	stats := reports.ComputeStats(all)
	require.Len(t, stats.TopStations, 4)

	// Central before Churchill: equal counts break by name.
	assert.Equal(t, reports.StationCount{Station: "Central", Count: 3}, stats.TopStations[0])
	assert.Equal(t, reports.StationCount{Station: "Churchill", Count: 3}, stats.TopStations[1])
	assert.Equal(t, reports.StationCount{Station: "Clareview", Count: 2}, stats.TopStations[2])
	assert.Equal(t, reports.StationCount{Station: "Southgate", Count: 1}, stats.TopStations[3])
}

// TestComputeStats_TopStationsTruncated verifies the list never
// exceeds ten stations.
func TestComputeStats_TopStationsTruncated(t *testing.T) {
	base := time.Now()
	var all []models.Report
	for i, station := range models.Stations[models.Calgary] {
		all = append(all, mkReport(fmt.Sprintf("r%d", i), models.Calgary, station, models.Submitted, models.Low, "x", base))
	}
	require.Greater(t, len(all), 10, "needs more than ten distinct stations")

	stats := reports.ComputeStats(all)
	assert.Len(t, stats.TopStations, 10)
	for i := 1; i < len(stats.TopStations); i++ {
		assert.GreaterOrEqual(t, stats.TopStations[i-1].Count, stats.TopStations[i].Count)
	}
}

// TestComputeStats_EmptyStore verifies a zero total with empty, not
// nil, collections so JSON consumers see {} and [].
func TestComputeStats_EmptyStore(t *testing.T) {
	stats := reports.ComputeStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.NotNil(t, stats.ByCategory)
	assert.NotNil(t, stats.ByStatus)
	assert.Empty(t, stats.ByCategory)
	assert.NotNil(t, stats.TopStations)
	assert.Empty(t, stats.TopStations)
}
