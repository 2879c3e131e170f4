package usecases

import (
	"context"
	"time"

	"mantis/internal/application/inventory/dto"
	"mantis/internal/domain/inventory"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type CreateSparePartCommand struct {
	PartNo       string
	PartName     string
	PartBarcode  string
	Quantity     int
	MinStock     int
	MaxStock     int
	ExpiryDate   *time.Time
	LeadTimeDays int
	StorageType  string
}

type CreateSparePartResult struct {
	SparePart *dto.SparePartDTO
}

// CreateSparePartUseCase registers a new part in the inventory ledger.
// Part number and barcode are unique across the ledger.
type CreateSparePartUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewCreateSparePartUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *CreateSparePartUseCase {
	return &CreateSparePartUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *CreateSparePartUseCase) Execute(ctx context.Context, cmd CreateSparePartCommand) (*CreateSparePartResult, error) {
	uc.logger.Infow("executing create spare part use case",
		"part_no", cmd.PartNo,
		"part_name", cmd.PartName,
	)

	storageType, err := inventory.NewStorageType(cmd.StorageType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if existing, err := uc.inventoryRepo.GetByPartNo(ctx, cmd.PartNo); err == nil && existing != nil {
		return nil, errors.NewConflictError("part number already exists")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if existing, err := uc.inventoryRepo.GetByBarcode(ctx, cmd.PartBarcode); err == nil && existing != nil {
		return nil, errors.NewConflictError("part barcode already exists")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	part, err := inventory.NewSparePart(
		cmd.PartNo,
		cmd.PartName,
		cmd.PartBarcode,
		cmd.Quantity,
		cmd.MinStock,
		cmd.MaxStock,
		cmd.ExpiryDate,
		cmd.LeadTimeDays,
		storageType,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inventoryRepo.Save(ctx, part); err != nil {
		uc.logger.Errorw("failed to save spare part", "part_no", cmd.PartNo, "error", err)
		return nil, err
	}

	uc.logger.Infow("spare part created", "part_id", part.ID(), "part_no", part.PartNo())

	return &CreateSparePartResult{SparePart: dto.FromSparePart(part)}, nil
}
