package usecases

import (
	"context"

	"mantis/internal/application/inventory/dto"
	"mantis/internal/domain/inventory"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type UpdateSparePartStockCommand struct {
	PartID   uint
	Quantity *int
	MinStock *int
	MaxStock *int
}

type UpdateSparePartStockResult struct {
	SparePart *dto.SparePartDTO
}

// UpdateSparePartStockUseCase adjusts the quantity and stock bounds of a
// part. Bounds apply before the quantity so a restock against the new
// ceiling validates in one call.
type UpdateSparePartStockUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewUpdateSparePartStockUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *UpdateSparePartStockUseCase {
	return &UpdateSparePartStockUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *UpdateSparePartStockUseCase) Execute(ctx context.Context, cmd UpdateSparePartStockCommand) (*UpdateSparePartStockResult, error) {
	uc.logger.Infow("executing update spare part stock use case", "part_id", cmd.PartID)

	if cmd.PartID == 0 {
		return nil, errors.NewValidationError("part ID is required")
	}
	if cmd.Quantity == nil && cmd.MinStock == nil && cmd.MaxStock == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	part, err := uc.inventoryRepo.GetByID(ctx, cmd.PartID)
	if err != nil {
		return nil, err
	}

	if cmd.MinStock != nil || cmd.MaxStock != nil {
		minStock := part.MinStock()
		maxStock := part.MaxStock()
		if cmd.MinStock != nil {
			minStock = *cmd.MinStock
		}
		if cmd.MaxStock != nil {
			maxStock = *cmd.MaxStock
		}
		if err := part.UpdateStockBounds(minStock, maxStock); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Quantity != nil {
		if err := part.AdjustQuantity(*cmd.Quantity); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.inventoryRepo.Update(ctx, part); err != nil {
		uc.logger.Errorw("failed to update spare part", "part_id", cmd.PartID, "error", err)
		return nil, err
	}

	return &UpdateSparePartStockResult{SparePart: dto.FromSparePart(part)}, nil
}
