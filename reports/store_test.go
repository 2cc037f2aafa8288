package reports_test

import (
	"context"
	"sync"
	"testing"

	"safereport-be/models"
	"safereport-be/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() reports.Draft {
	return reports.Draft{
		StationCity:   "Edmonton",
		StationName:   "Churchill",
		IssueCategory: "Broken Elevator",
		Description:   "Elevator stuck",
		UrgencyLevel:  "Critical",
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// TestCreateThenGetByID_RoundTrip verifies a stored report equals the
// draft plus assigned id, created_date and Submitted status.
func TestCreateThenGetByID_RoundTrip(t *testing.T) {
	store := reports.NewMemoryStore()

	created, err := store.Create(context.Background(), validDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedDate.IsZero())
	assert.Equal(t, models.Submitted, created.Status)
	assert.Equal(t, models.Edmonton, created.StationCity)
	assert.Equal(t, "Churchill", created.StationName)
	assert.Equal(t, models.BrokenElevator, created.IssueCategory)
	assert.Equal(t, models.Critical, created.UrgencyLevel)
	assert.Nil(t, created.PhotoURL)
	assert.Nil(t, created.Latitude)
	assert.Nil(t, created.Longitude)

	fetched, err := store.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

// TestCreate_DefaultsUrgencyToMedium verifies an omitted urgency level
// falls back to Medium.
func TestCreate_DefaultsUrgencyToMedium(t *testing.T) {
	store := reports.NewMemoryStore()

	draft := validDraft()
	draft.UrgencyLevel = ""

	created, err := store.Create(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, models.Medium, created.UrgencyLevel)
}

// TestCreate_RejectsMissingOrInvalidFields verifies the validation
// error names the offending field and nothing is persisted.
func TestCreate_RejectsMissingOrInvalidFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*reports.Draft)
		field  string
	}{
		{"missing city", func(d *reports.Draft) { d.StationCity = "" }, "station_city"},
		{"unknown city", func(d *reports.Draft) { d.StationCity = "Toronto" }, "station_city"},
		{"missing station", func(d *reports.Draft) { d.StationName = "" }, "station_name"},
		{"unknown station", func(d *reports.Draft) { d.StationName = "Narnia Central" }, "station_name"},
		{"station from other city", func(d *reports.Draft) { d.StationName = "Tuscany" }, "station_name"},
		{"missing category", func(d *reports.Draft) { d.IssueCategory = "" }, "issue_category"},
		{"unknown category", func(d *reports.Draft) { d.IssueCategory = "Potholes" }, "issue_category"},
		{"empty description", func(d *reports.Draft) { d.Description = "   " }, "description"},
		{"unknown urgency", func(d *reports.Draft) { d.UrgencyLevel = "Urgent" }, "urgency_level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := reports.NewMemoryStore()

			draft := validDraft()
			tc.mutate(&draft)

			_, err := store.Create(context.Background(), draft)
			var vErr *reports.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)

			all, err := store.All(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

// TestCreate_GeolocationBothOrNeither verifies the coordinate pairing
// invariant.
func TestCreate_GeolocationBothOrNeither(t *testing.T) {
	store := reports.NewMemoryStore()

	draft := validDraft()
	draft.Latitude = floatPtr(53.5461)
	_, err := store.Create(context.Background(), draft)
	var vErr *reports.ValidationError
	require.ErrorAs(t, err, &vErr)

	draft.Longitude = floatPtr(-113.4938)
	created, err := store.Create(context.Background(), draft)
	require.NoError(t, err)
	require.NotNil(t, created.Latitude)
	require.NotNil(t, created.Longitude)
	assert.Equal(t, 53.5461, *created.Latitude)
	assert.Equal(t, -113.4938, *created.Longitude)
}

// TestUpdate_StatusIsFreeSet verifies any recognized status is
// accepted, including backward corrections.
func TestUpdate_StatusIsFreeSet(t *testing.T) {
	store := reports.NewMemoryStore()
	created, err := store.Create(context.Background(), validDraft())
	require.NoError(t, err)

	for _, status := range []string{"Resolved", "Under Review", "Closed", "Submitted"} {
		_, err := store.Update(context.Background(), created.ID, reports.Update{Status: strPtr(status)})
		require.NoError(t, err)

		fetched, err := store.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReportStatus(status), fetched.Status)
	}
}

// TestUpdate_RejectsUnknownStatus verifies the closed status set on
// updates.
func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	store := reports.NewMemoryStore()
	created, err := store.Create(context.Background(), validDraft())
	require.NoError(t, err)

	_, err = store.Update(context.Background(), created.ID, reports.Update{Status: strPtr("Done")})
	var vErr *reports.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "status", vErr.Field)

	fetched, err := store.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Submitted, fetched.Status, "rejected update must not change the record")
}

// TestUpdate_InspectorNotesOnly verifies notes can change without
// touching the status.
func TestUpdate_InspectorNotesOnly(t *testing.T) {
	store := reports.NewMemoryStore()
	created, err := store.Create(context.Background(), validDraft())
	require.NoError(t, err)

	updated, err := store.Update(context.Background(), created.ID, reports.Update{InspectorNotes: strPtr("parts ordered")})
	require.NoError(t, err)
	assert.Equal(t, "parts ordered", updated.InspectorNotes)
	assert.Equal(t, models.Submitted, updated.Status)
}

// TestUpdate_PreservesImmutableFields verifies id and created_date
// survive updates untouched.
func TestUpdate_PreservesImmutableFields(t *testing.T) {
	store := reports.NewMemoryStore()
	created, err := store.Create(context.Background(), validDraft())
	require.NoError(t, err)

	updated, err := store.Update(context.Background(), created.ID, reports.Update{
		Status:         strPtr("In Progress"),
		InspectorNotes: strPtr("technician dispatched"),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedDate, updated.CreatedDate)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.StationName, updated.StationName)
}

// TestUnknownID_NotFound verifies the not-found taxonomy on reads and
// updates.
func TestUnknownID_NotFound(t *testing.T) {
	store := reports.NewMemoryStore()

	_, err := store.GetByID(context.Background(), "missing")
	var nfErr *reports.NotFoundError
	require.ErrorAs(t, err, &nfErr)

	_, err = store.Update(context.Background(), "missing", reports.Update{Status: strPtr("Resolved")})
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "missing", nfErr.ID)
}

// TestAll_ReturnsInsertionOrder verifies the listing order the query
// engine relies on for stable tie-breaks.
func TestAll_ReturnsInsertionOrder(t *testing.T) {
	store := reports.NewMemoryStore()

	var ids []string
	for _, station := range []string{"Churchill", "Central", "Southgate"} {
		draft := validDraft()
		draft.StationName = station
		created, err := store.Create(context.Background(), draft)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	all, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, report := range all {
		assert.Equal(t, ids[i], report.ID)
	}
}

// TestConcurrentOperations verifies overlapping creates, reads and
// updates never corrupt the store.
func TestConcurrentOperations(t *testing.T) {
	store := reports.NewMemoryStore()
	created, err := store.Create(context.Background(), validDraft())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, err := store.Create(context.Background(), validDraft())
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			report, err := store.GetByID(context.Background(), created.ID)
			assert.NoError(t, err)
			assert.Equal(t, created.ID, report.ID)
		}()
		go func() {
			defer wg.Done()
			_, err := store.Update(context.Background(), created.ID, reports.Update{Status: strPtr("In Progress")})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 51)
}
