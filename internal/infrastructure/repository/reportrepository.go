package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mantis/internal/domain/report"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
	apperrors "mantis/internal/shared/errors"
)

type ReportRepository struct {
	db     *gorm.DB
	mapper mappers.ReportMapper
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db:     db,
		mapper: mappers.NewReportMapper(),
	}
}

func (r *ReportRepository) Save(ctx context.Context, rep *report.Report) error {
	model := r.mapper.ToModel(rep)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	if err := rep.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ReportRepository) Update(ctx context.Context, rep *report.Report) error {
	model := r.mapper.ToModel(rep)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReportModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"description":      model.Description,
			"before_photo_url": model.BeforePhotoURL,
			"after_photo_url":  model.AfterPhotoURL,
			"version":          model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update report: %w", result.Error)
	}

	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, reportID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ReportModel{}, reportID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("report not found")
	}
	return nil
}

func (r *ReportRepository) GetByID(ctx context.Context, reportID uint) (*report.Report, error) {
	var model models.ReportModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, reportID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("report not found")
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
