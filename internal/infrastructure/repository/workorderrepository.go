package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mantis/internal/domain/workorder"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
	apperrors "mantis/internal/shared/errors"
)

type WorkOrderRepository struct {
	db     *gorm.DB
	mapper mappers.WorkOrderMapper
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{
		db:     db,
		mapper: mappers.NewWorkOrderMapper(),
	}
}

func (r *WorkOrderRepository) Save(ctx context.Context, w *workorder.WorkOrder) error {
	model := r.mapper.ToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("ticket already has a work order")
		}
		return fmt.Errorf("failed to save work order: %w", err)
	}

	if err := w.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *WorkOrderRepository) Update(ctx context.Context, w *workorder.WorkOrder) error {
	model := r.mapper.ToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.WorkOrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":              model.Status,
			"require_spare_parts": model.RequireSpareParts,
			"spare_part_ids":      model.SparePartIDs,
			"report_id":           model.ReportID,
			"reject_report_id":    model.RejectReportID,
			"note":                model.Note,
			"croca_type":          model.CrocaType,
			"croca_cost":          model.CrocaCost,
			"croca_photo_url":     model.CrocaPhotoURL,
			"version":             model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update work order: %w", result.Error)
	}

	return nil
}

func (r *WorkOrderRepository) Delete(ctx context.Context, workOrderID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.WorkOrderModel{}, workOrderID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete work order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("work order not found")
	}
	return nil
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, workOrderID uint) (*workorder.WorkOrder, error) {
	var model models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, workOrderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("work order not found")
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkOrderRepository) GetByTicketID(ctx context.Context, ticketID uint) (*workorder.WorkOrder, error) {
	var model models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("work order not found")
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkOrderRepository) List(ctx context.Context, filter workorder.Filter) ([]*workorder.WorkOrder, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.WorkOrderModel{})

	if filter.Kind != nil {
		query = query.Where("kind = ?", filter.Kind.String())
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		query = query.Where("status IN ?", statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count work orders: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var rows []models.WorkOrderModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list work orders: %w", err)
	}

	orders := make([]*workorder.WorkOrder, 0, len(rows))
	for i := range rows {
		w, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, w)
	}

	return orders, total, nil
}
