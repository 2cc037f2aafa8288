package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"safereport-be/reports"

	"github.com/gin-gonic/gin"
)

// ReportController serves the report resource endpoints.
type ReportController struct {
	pipeline *reports.Pipeline
	store    reports.Store
}

func NewReportController(store reports.Store, photos reports.PhotoStore) *ReportController {
	return &ReportController{
		pipeline: reports.NewPipeline(store, photos),
		store:    store,
	}
}

// CreateReport handles a multipart rider submission with an optional
// photo and optional geolocation.
func (rc *ReportController) CreateReport(c *gin.Context) {
	sub := reports.Submission{
		StationCity:     c.PostForm("station_city"),
		StationName:     c.PostForm("station_name"),
		IssueCategory:   c.PostForm("issue_category"),
		Description:     c.PostForm("description"),
		UrgencyLevel:    c.PostForm("urgency_level"),
		ReporterContact: c.PostForm("reporter_contact"),
		Latitude:        c.PostForm("latitude"),
		Longitude:       c.PostForm("longitude"),
	}

	// Identity is optional for riders; OptionalAuth sets it when a
	// valid token was sent.
	if userID, exists := c.Get("user_id"); exists {
		sub.CreatedBy, _ = userID.(string)
	}

	if file, err := c.FormFile("photo"); err == nil {
		sub.Photo = file
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	report, err := rc.pipeline.Submit(ctx, sub)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports applies the filter/sort query parameters over the full
// store listing and returns the ordered matches.
func (rc *ReportController) ListReports(c *gin.Context) {
	query := reports.ListQuery{
		Status:  c.Query("status"),
		Urgency: c.Query("urgency"),
		City:    c.Query("city"),
		Search:  c.Query("search"),
		Sort:    c.Query("sort"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	all, err := rc.store.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reports"})
		return
	}

	matched, err := query.Apply(all)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, matched)
}

// GetReport retrieves a single report by its ID.
func (rc *ReportController) GetReport(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	report, err := rc.store.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateReport applies an inspector's partial update. Only status and
// inspector_notes are writable; any other field in the payload is
// rejected as read-only.
func (rc *ReportController) UpdateReport(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var patch reports.Update
	for field, value := range body {
		raw, ok := value.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": field + " must be a string", "field": field})
			return
		}
		switch field {
		case "status":
			status := raw
			patch.Status = &status
		case "inspector_notes":
			notes := raw
			patch.InspectorNotes = &notes
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": field + " is read-only", "field": field})
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	report, err := rc.store.Update(ctx, c.Param("id"), patch)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetReportStats recomputes the analytics breakdown over the entire
// store on every call.
func (rc *ReportController) GetReportStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	all, err := rc.store.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reports"})
		return
	}

	c.JSON(http.StatusOK, reports.ComputeStats(all))
}

// respondReportError maps the report error taxonomy onto HTTP statuses
// with a field-level message where one exists.
func respondReportError(c *gin.Context, err error) {
	var validationErr *reports.ValidationError
	var notFoundErr *reports.NotFoundError
	var tooLargeErr *reports.PayloadTooLargeError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &tooLargeErr):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": tooLargeErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
