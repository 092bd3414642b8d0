// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReportNotFound is returned when a detailed report is not found.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository defines persistence operations for generated reports.
type ReportRepository interface {
	// CreateReport persists a new report in pending status.
	CreateReport(ctx context.Context, report *entity.DetailedReport) error

	// FindReportByID retrieves a single report by its unique ID.
	FindReportByID(ctx context.Context, id uuid.UUID) (*entity.DetailedReport, error)

	// FindReportsByUser lists a user's reports, newest first.
	FindReportsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DetailedReport, error)

	// UpdateReport stores status transitions and generated content.
	UpdateReport(ctx context.Context, report *entity.DetailedReport) error
}
