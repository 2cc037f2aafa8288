package reports

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"safereport-be/models"
)

// MaxPhotoSize is the ceiling for an attached photo (10 MiB).
const MaxPhotoSize = 10 << 20

// PhotoStore is the external asset collaborator. Save persists the
// photo and returns the relative path the asset is later served from.
type PhotoStore interface {
	Save(filename string, r io.Reader) (string, error)
}

// Submission is the raw multipart payload as received from a rider,
// before any validation. Coordinates arrive as form strings; an empty
// string means the client did not supply geolocation.
type Submission struct {
	StationCity     string
	StationName     string
	IssueCategory   string
	Description     string
	UrgencyLevel    string
	ReporterContact string
	Latitude        string
	Longitude       string
	CreatedBy       string
	Photo           *multipart.FileHeader
}

// Pipeline validates and normalizes inbound submissions before they
// reach the store.
type Pipeline struct {
	store  Store
	photos PhotoStore
}

func NewPipeline(store Store, photos PhotoStore) *Pipeline {
	return &Pipeline{store: store, photos: photos}
}

// Submit turns a raw submission into a persisted report. The photo is
// size-checked before anything else, and stored before the record is
// persisted so photo_url never references a missing asset. Any
// client-supplied status is ignored; new reports are always Submitted.
func (p *Pipeline) Submit(ctx context.Context, sub Submission) (models.Report, error) {
	draft := Draft{
		StationCity:     sub.StationCity,
		StationName:     sub.StationName,
		IssueCategory:   sub.IssueCategory,
		Description:     sub.Description,
		UrgencyLevel:    sub.UrgencyLevel,
		ReporterContact: sub.ReporterContact,
		CreatedBy:       sub.CreatedBy,
	}

	var err error
	if draft.Latitude, err = parseCoordinate("latitude", sub.Latitude); err != nil {
		return models.Report{}, err
	}
	if draft.Longitude, err = parseCoordinate("longitude", sub.Longitude); err != nil {
		return models.Report{}, err
	}

	if sub.Photo != nil && sub.Photo.Size > MaxPhotoSize {
		return models.Report{}, &PayloadTooLargeError{Size: sub.Photo.Size, Limit: MaxPhotoSize}
	}

	// Catch invalid text fields before touching photo storage, so a
	// rejected submission never leaves an orphaned asset behind.
	if _, err := validateDraft(draft); err != nil {
		return models.Report{}, err
	}

	if sub.Photo != nil {
		file, err := sub.Photo.Open()
		if err != nil {
			return models.Report{}, fmt.Errorf("open photo: %w", err)
		}
		defer file.Close()

		path, err := p.photos.Save(sub.Photo.Filename, file)
		if err != nil {
			return models.Report{}, fmt.Errorf("store photo: %w", err)
		}
		draft.PhotoURL = &path
	}

	return p.store.Create(ctx, draft)
}

// parseCoordinate maps an empty form value to an absent coordinate.
// Geolocation is best-effort and never blocks a submission.
func parseCoordinate(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ValidationError{Field: field, Message: "must be a number"}
	}
	return &value, nil
}
