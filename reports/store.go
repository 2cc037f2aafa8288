package reports

import (
	"context"
	"strings"

	"safereport-be/models"
)

// Draft is an unvalidated, unpersisted submission awaiting store validation.
type Draft struct {
	StationCity     string
	StationName     string
	IssueCategory   string
	Description     string
	UrgencyLevel    string
	PhotoURL        *string
	Latitude        *float64
	Longitude       *float64
	ReporterContact string
	CreatedBy       string
}

// Update carries the only fields an inspector may change on a report.
// Nil means "leave unchanged".
type Update struct {
	Status         *string
	InspectorNotes *string
}

// Store is the authoritative holder of report entities. All returns
// reports in insertion order so the query engine can break sort ties
// deterministically.
type Store interface {
	Create(ctx context.Context, draft Draft) (models.Report, error)
	GetByID(ctx context.Context, id string) (models.Report, error)
	Update(ctx context.Context, id string, patch Update) (models.Report, error)
	All(ctx context.Context) ([]models.Report, error)
}

// validateDraft checks required fields, enum membership and the
// station/city pairing, and returns the normalized report without its
// id and created date. Status is always Submitted at creation.
func validateDraft(draft Draft) (models.Report, error) {
	city := models.City(draft.StationCity)
	if draft.StationCity == "" {
		return models.Report{}, &ValidationError{Field: "station_city", Message: "is required"}
	}
	if !city.Valid() {
		return models.Report{}, &ValidationError{Field: "station_city", Message: "unrecognized city"}
	}

	if draft.StationName == "" {
		return models.Report{}, &ValidationError{Field: "station_name", Message: "is required"}
	}
	if !models.ValidStation(city, draft.StationName) {
		return models.Report{}, &ValidationError{Field: "station_name", Message: "station does not belong to " + draft.StationCity}
	}

	category := models.IssueCategory(draft.IssueCategory)
	if draft.IssueCategory == "" {
		return models.Report{}, &ValidationError{Field: "issue_category", Message: "is required"}
	}
	if !category.Valid() {
		return models.Report{}, &ValidationError{Field: "issue_category", Message: "unrecognized category"}
	}

	if strings.TrimSpace(draft.Description) == "" {
		return models.Report{}, &ValidationError{Field: "description", Message: "is required"}
	}

	urgency := models.Medium
	if draft.UrgencyLevel != "" {
		urgency = models.UrgencyLevel(draft.UrgencyLevel)
		if !urgency.Valid() {
			return models.Report{}, &ValidationError{Field: "urgency_level", Message: "unrecognized urgency level"}
		}
	}

	// Geolocation is all-or-nothing: a single coordinate means the
	// client is broken, not that it opted out.
	if (draft.Latitude == nil) != (draft.Longitude == nil) {
		return models.Report{}, &ValidationError{Field: "latitude", Message: "latitude and longitude must be supplied together"}
	}

	return models.Report{
		StationCity:     city,
		StationName:     draft.StationName,
		IssueCategory:   category,
		Description:     draft.Description,
		UrgencyLevel:    urgency,
		Status:          models.Submitted,
		PhotoURL:        draft.PhotoURL,
		Latitude:        draft.Latitude,
		Longitude:       draft.Longitude,
		ReporterContact: draft.ReporterContact,
		CreatedBy:       draft.CreatedBy,
	}, nil
}

// validateUpdate rejects unrecognized status values before any write.
func validateUpdate(patch Update) error {
	if patch.Status != nil && !models.ReportStatus(*patch.Status).Valid() {
		return &ValidationError{Field: "status", Message: "unrecognized status"}
	}
	return nil
}
