package reports

import (
	"sort"
	"strings"

	"safereport-be/models"
)

// ListQuery is the filter/sort specification for listing reports. Zero
// values (or "all") mean "no constraint" for the filter dimensions.
type ListQuery struct {
	Status  string
	Urgency string
	City    string
	Search  string
	Sort    string
}

const defaultSort = "-created_date"

// Apply returns the reports matching every supplied filter, ordered by
// the sort field. The input must be in insertion order; ties on the
// sort key preserve it, so identical store states always produce the
// same sequence.
func (q ListQuery) Apply(all []models.Report) ([]models.Report, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.Report, 0, len(all))
	for _, report := range all {
		if !unconstrained(q.Status) && report.Status != models.ReportStatus(q.Status) {
			continue
		}
		if !unconstrained(q.Urgency) && report.UrgencyLevel != models.UrgencyLevel(q.Urgency) {
			continue
		}
		if !unconstrained(q.City) && report.StationCity != models.City(q.City) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(report.StationName), search) &&
			!strings.Contains(strings.ToLower(report.Description), search) {
			continue
		}
		out = append(out, report)
	}

	field, descending := parseSort(q.Sort)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareReports(out[i], out[j], field)
		if descending {
			return c > 0
		}
		return c < 0
	})

	return out, nil
}

// unconstrained reports whether the value leaves its dimension unfiltered.
func unconstrained(value string) bool {
	return value == "" || value == "all"
}

func (q ListQuery) validate() error {
	if !unconstrained(q.Status) && !models.ReportStatus(q.Status).Valid() {
		return &ValidationError{Field: "status", Message: "unrecognized status"}
	}
	if !unconstrained(q.Urgency) && !models.UrgencyLevel(q.Urgency).Valid() {
		return &ValidationError{Field: "urgency", Message: "unrecognized urgency level"}
	}
	if !unconstrained(q.City) && !models.City(q.City).Valid() {
		return &ValidationError{Field: "city", Message: "unrecognized city"}
	}

	field, _ := parseSort(q.Sort)
	switch field {
	case "created_date", "station_name", "station_city", "issue_category", "urgency_level", "status":
		return nil
	}
	return &ValidationError{Field: "sort", Message: "unrecognized sort field"}
}

func parseSort(s string) (field string, descending bool) {
	if s == "" {
		s = defaultSort
	}
	if strings.HasPrefix(s, "-") {
		return strings.TrimPrefix(s, "-"), true
	}
	return s, false
}

// compareReports orders a before b when negative. Urgency and status
// compare by rank rather than lexically so the order means something
// to an inspector.
func compareReports(a, b models.Report, field string) int {
	switch field {
	case "created_date":
		if a.CreatedDate.Before(b.CreatedDate) {
			return -1
		}
		if a.CreatedDate.After(b.CreatedDate) {
			return 1
		}
		return 0
	case "station_name":
		return strings.Compare(a.StationName, b.StationName)
	case "station_city":
		return strings.Compare(string(a.StationCity), string(b.StationCity))
	case "issue_category":
		return strings.Compare(string(a.IssueCategory), string(b.IssueCategory))
	case "urgency_level":
		return a.UrgencyLevel.Rank() - b.UrgencyLevel.Rank()
	case "status":
		return a.Status.Rank() - b.Status.Rank()
	}
	return 0
}
