package usecases

import (
	"context"

	"mantis/internal/application/inventory/dto"
	"mantis/internal/domain/inventory"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ListSparePartsQuery struct {
	StorageType   string
	BelowMinStock bool
	Page          int
	PageSize      int
}

type ListSparePartsResult struct {
	SpareParts []*dto.SparePartDTO
	Total      int64
	Page       int
	PageSize   int
}

type ListSparePartsUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewListSparePartsUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *ListSparePartsUseCase {
	return &ListSparePartsUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *ListSparePartsUseCase) Execute(ctx context.Context, query ListSparePartsQuery) (*ListSparePartsResult, error) {
	filter := inventory.Filter{
		BelowMinStock: query.BelowMinStock,
		Page:          query.Page,
		PageSize:      query.PageSize,
	}

	if query.StorageType != "" {
		storageType, err := inventory.NewStorageType(query.StorageType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.StorageType = &storageType
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	parts, total, err := uc.inventoryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list spare parts", "error", err)
		return nil, err
	}

	return &ListSparePartsResult{
		SpareParts: dto.FromSpareParts(parts),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}
