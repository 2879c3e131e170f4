package usecases

import (
	"context"

	"mantis/internal/domain/inventory"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type DeleteSparePartCommand struct {
	PartID uint
}

type DeleteSparePartResult struct {
	PartID uint
}

type DeleteSparePartUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewDeleteSparePartUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *DeleteSparePartUseCase {
	return &DeleteSparePartUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *DeleteSparePartUseCase) Execute(ctx context.Context, cmd DeleteSparePartCommand) (*DeleteSparePartResult, error) {
	uc.logger.Infow("executing delete spare part use case", "part_id", cmd.PartID)

	if cmd.PartID == 0 {
		return nil, errors.NewValidationError("part ID is required")
	}

	if err := uc.inventoryRepo.Delete(ctx, cmd.PartID); err != nil {
		uc.logger.Errorw("failed to delete spare part", "part_id", cmd.PartID, "error", err)
		return nil, err
	}

	return &DeleteSparePartResult{PartID: cmd.PartID}, nil
}
