package models

import (
	"time"
)

// City enum
type City string

const (
	Edmonton City = "Edmonton"
	Calgary  City = "Calgary"
)

// Valid reports whether the city is one of the supported transit cities.
func (c City) Valid() bool {
	return c == Edmonton || c == Calgary
}

// IssueCategory enum
type IssueCategory string

const (
	SlipperySurface IssueCategory = "Slippery Surface"
	BlockedAccess   IssueCategory = "Blocked Access"
	BrokenElevator  IssueCategory = "Broken Elevator"
	LightingIssue   IssueCategory = "Lighting Issue"
	Vandalism       IssueCategory = "Vandalism"
	SafetyConcern   IssueCategory = "Safety Concern"
	Other           IssueCategory = "Other"
)

// Valid reports whether the category is recognized.
func (c IssueCategory) Valid() bool {
	switch c {
	case SlipperySurface, BlockedAccess, BrokenElevator, LightingIssue, Vandalism, SafetyConcern, Other:
		return true
	}
	return false
}

// UrgencyLevel enum
type UrgencyLevel string

const (
	Low      UrgencyLevel = "Low"
	Medium   UrgencyLevel = "Medium"
	High     UrgencyLevel = "High"
	Critical UrgencyLevel = "Critical"
)

// Valid reports whether the urgency level is recognized.
func (u UrgencyLevel) Valid() bool {
	return u.Rank() > 0
}

// Rank returns the severity order of the urgency level, lowest first.
// Unrecognized values rank 0.
func (u UrgencyLevel) Rank() int {
	switch u {
	case Low:
		return 1
	case Medium:
		return 2
	case High:
		return 3
	case Critical:
		return 4
	}
	return 0
}

// ReportStatus enum
type ReportStatus string

const (
	Submitted   ReportStatus = "Submitted"
	UnderReview ReportStatus = "Under Review"
	InProgress  ReportStatus = "In Progress"
	Resolved    ReportStatus = "Resolved"
	Closed      ReportStatus = "Closed"
)

// Valid reports whether the status is recognized. Transitions between
// recognized statuses are unrestricted; inspectors may move a report
// backward as a correction.
func (s ReportStatus) Valid() bool {
	return s.Rank() > 0
}

// Rank returns the lifecycle order of the status. Unrecognized values rank 0.
func (s ReportStatus) Rank() int {
	switch s {
	case Submitted:
		return 1
	case UnderReview:
		return 2
	case InProgress:
		return 3
	case Resolved:
		return 4
	case Closed:
		return 5
	}
	return 0
}

// Report represents an accessibility or safety issue reported at a station
type Report struct {
	ID              string        `bson:"_id,omitempty" json:"id"`
	StationCity     City          `bson:"stationCity" json:"station_city"`
	StationName     string        `bson:"stationName" json:"station_name"`
	IssueCategory   IssueCategory `bson:"issueCategory" json:"issue_category"`
	Description     string        `bson:"description" json:"description"`
	UrgencyLevel    UrgencyLevel  `bson:"urgencyLevel" json:"urgency_level"`
	Status          ReportStatus  `bson:"status" json:"status"`
	PhotoURL        *string       `bson:"photoUrl,omitempty" json:"photo_url,omitempty"`
	Latitude        *float64      `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude       *float64      `bson:"longitude,omitempty" json:"longitude,omitempty"`
	ReporterContact string        `bson:"reporterContact,omitempty" json:"reporter_contact,omitempty"`
	CreatedBy       string        `bson:"createdBy,omitempty" json:"created_by,omitempty"`
	CreatedDate     time.Time     `bson:"createdDate" json:"created_date"`
	InspectorNotes  string        `bson:"inspectorNotes,omitempty" json:"inspector_notes,omitempty"`
}
