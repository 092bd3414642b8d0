package postgres

import (
	"context"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// CreateReport persists a new report in pending status.
func (repo *reportRepository) CreateReport(ctx context.Context, report *entity.DetailedReport) error {
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt

	return nil
}

// FindReportByID retrieves a single report.
func (repo *reportRepository) FindReportByID(ctx context.Context, id uuid.UUID) (*entity.DetailedReport, error) {
	var reportM model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by ID")
	}

	return toReportDomain(&reportM), nil
}

// FindReportsByUser lists a user's reports, newest first.
func (repo *reportRepository) FindReportsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DetailedReport, error) {
	var reportModels []*model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reports by user")
	}

	reports := make([]*entity.DetailedReport, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toReportDomain(reportM))
	}

	return reports, nil
}

// UpdateReport stores status transitions and generated content.
func (repo *reportRepository) UpdateReport(ctx context.Context, report *entity.DetailedReport) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("id = ?", report.ID).
		Updates(map[string]any{
			"status":       string(report.Status),
			"summary":      report.Summary,
			"content":      report.Content,
			"generated_at": report.GeneratedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update report")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}

func toReportDomain(data *model.ReportModel) *entity.DetailedReport {
	return &entity.DetailedReport{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        entity.ReportType(data.Type),
		Title:       data.Title,
		Summary:     data.Summary,
		Content:     data.Content,
		Status:      entity.ReportStatus(data.Status),
		GeneratedAt: data.GeneratedAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromReportDomain(data *entity.DetailedReport) *model.ReportModel {
	return &model.ReportModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        string(data.Type),
		Title:       data.Title,
		Summary:     data.Summary,
		Content:     data.Content,
		Status:      string(data.Status),
		GeneratedAt: data.GeneratedAt,
	}
}
