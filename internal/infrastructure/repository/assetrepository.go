package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mantis/internal/domain/asset"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
	apperrors "mantis/internal/shared/errors"
)

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{
		db:     db,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("asset number already exists")
		}
		return fmt.Errorf("failed to save asset: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":                      model.Name,
			"description":               model.Description,
			"latitude":                  model.Latitude,
			"longitude":                 model.Longitude,
			"installation_date":         model.InstallationDate,
			"cleaning_interval_days":    model.CleaningIntervalDays,
			"cleaning_next_date":        model.CleaningNextDate,
			"maintenance_interval_days": model.MaintenanceIntervalDays,
			"maintenance_next_date":     model.MaintenanceNextDate,
			"version":                   model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}

	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, assetID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.AssetModel{}, assetID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("asset not found")
	}
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, assetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) GetByAssetNo(ctx context.Context, assetNo string) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("asset_no = ?", assetNo).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssetModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	query = query.Order("asset_no ASC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var rows []models.AssetModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assets, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

func (r *AssetRepository) ListCleaningDue(ctx context.Context, today time.Time) ([]*asset.Asset, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AssetModel
	if err := tx.
		Where("cleaning_next_date <= ?", today.UnixMilli()).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list cleaning-due assets: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *AssetRepository) ListMaintenanceDue(ctx context.Context, today time.Time) ([]*asset.Asset, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AssetModel
	if err := tx.
		Where("maintenance_next_date <= ?", today.UnixMilli()).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance-due assets: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *AssetRepository) toDomainList(rows []models.AssetModel) ([]*asset.Asset, error) {
	assets := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}
