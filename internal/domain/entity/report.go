package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportType names the kinds of detailed reports the backend can generate.
type ReportType string

const (
	ReportNatal     ReportType = "natal"
	ReportCareer    ReportType = "career"
	ReportLove      ReportType = "love"
	ReportYearAhead ReportType = "year_ahead"
)

// IsValid checks if the ReportType is a known value.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportNatal, ReportCareer, ReportLove, ReportYearAhead:
		return true
	default:
		return false
	}
}

// ReportStatus tracks a report through its generation lifecycle.
// Transitions: pending -> generating -> ready | failed.
type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportGenerating ReportStatus = "generating"
	ReportReady      ReportStatus = "ready"
	ReportFailed     ReportStatus = "failed"
)

// DetailedReport is a long-form generated reading. Creation returns
// immediately with status pending; clients poll until ready.
type DetailedReport struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Type        ReportType   `json:"type"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary,omitempty"`
	Content     string       `json:"content,omitempty"`
	Status      ReportStatus `json:"status"`
	GeneratedAt *time.Time   `json:"generated_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
