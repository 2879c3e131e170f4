package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mantis/internal/domain/inventory"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
	apperrors "mantis/internal/shared/errors"
)

type SparePartRepository struct {
	db     *gorm.DB
	mapper mappers.SparePartMapper
}

func NewSparePartRepository(db *gorm.DB) *SparePartRepository {
	return &SparePartRepository{
		db:     db,
		mapper: mappers.NewSparePartMapper(),
	}
}

func (r *SparePartRepository) Save(ctx context.Context, p *inventory.SparePart) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("spare part number or barcode already exists")
		}
		return fmt.Errorf("failed to save spare part: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SparePartRepository) Update(ctx context.Context, p *inventory.SparePart) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SparePartModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"part_name":      model.PartName,
			"quantity":       model.Quantity,
			"min_stock":      model.MinStock,
			"max_stock":      model.MaxStock,
			"expiry_date":    model.ExpiryDate,
			"lead_time_days": model.LeadTimeDays,
			"storage_type":   model.StorageType,
			"version":        model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update spare part: %w", result.Error)
	}

	return nil
}

func (r *SparePartRepository) Delete(ctx context.Context, partID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.SparePartModel{}, partID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete spare part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("spare part not found")
	}
	return nil
}

func (r *SparePartRepository) GetByID(ctx context.Context, partID uint) (*inventory.SparePart, error) {
	var model models.SparePartModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, partID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("spare part not found")
		}
		return nil, fmt.Errorf("failed to find spare part: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SparePartRepository) GetByPartNo(ctx context.Context, partNo string) (*inventory.SparePart, error) {
	var model models.SparePartModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("part_no = ?", partNo).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("spare part not found")
		}
		return nil, fmt.Errorf("failed to find spare part: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SparePartRepository) GetByBarcode(ctx context.Context, barcode string) (*inventory.SparePart, error) {
	var model models.SparePartModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("part_barcode = ?", barcode).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("spare part not found")
		}
		return nil, fmt.Errorf("failed to find spare part: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SparePartRepository) List(ctx context.Context, filter inventory.Filter) ([]*inventory.SparePart, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.SparePartModel{})

	if filter.StorageType != nil {
		query = query.Where("storage_type = ?", filter.StorageType.String())
	}
	if filter.BelowMinStock {
		query = query.Where("quantity < min_stock")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count spare parts: %w", err)
	}

	query = query.Order("part_no ASC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var rows []models.SparePartModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list spare parts: %w", err)
	}

	parts := make([]*inventory.SparePart, 0, len(rows))
	for i := range rows {
		p, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		parts = append(parts, p)
	}

	return parts, total, nil
}

// Reserve decrements the quantity with one conditional update. Concurrent
// reservations serialize on the row: the last unit goes to exactly one
// caller, the rest get a conflict. The post-image is read inside the same
// transaction as the decrement, so the row lock taken by the update is
// still held and no other reservation can slip in between. That keeps the
// min-stock crossing observable by exactly one caller.
func (r *SparePartRepository) Reserve(ctx context.Context, partID uint) (*inventory.Reservation, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	var reservation *inventory.Reservation
	err := conn.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.SparePartModel{}).
			Where("id = ? AND quantity > 0", partID).
			Update("quantity", gorm.Expr("quantity - 1"))

		if result.Error != nil {
			return fmt.Errorf("failed to reserve spare part: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.SparePartModel{}).Where("id = ?", partID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check spare part existence: %w", err)
			}
			if count == 0 {
				return apperrors.NewNotFoundError("spare part not found")
			}
			return apperrors.NewConflictError("spare part is out of stock")
		}

		var model models.SparePartModel
		if err := tx.First(&model, partID).Error; err != nil {
			return fmt.Errorf("failed to reload spare part: %w", err)
		}

		reservation = &inventory.Reservation{
			PartID:    partID,
			Remaining: model.Quantity,
			// The decrement took exactly one unit, so a crossing happened iff
			// the post-image sits exactly one below the threshold boundary.
			CrossedMinStock: model.Quantity == model.MinStock-1,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}
