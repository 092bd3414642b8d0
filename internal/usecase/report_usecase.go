package usecase

import (
	"context"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportUsecase manages long-form generated reports. Generation is
// asynchronous: requesting a report returns immediately in pending status
// and a background worker fills in the content.
type ReportUsecase interface {
	// RequestReport enqueues generation of a report and returns it in
	// pending status. Requires a complete profile.
	RequestReport(ctx context.Context, userID uuid.UUID, reportType entity.ReportType) (*entity.DetailedReport, error)

	// GetReport returns a report with its current status. Only the owner
	// may read it.
	GetReport(ctx context.Context, userID, reportID uuid.UUID) (*entity.DetailedReport, error)

	// ListReports returns the user's reports, newest first.
	ListReports(ctx context.Context, userID uuid.UUID) ([]*entity.DetailedReport, error)
}
