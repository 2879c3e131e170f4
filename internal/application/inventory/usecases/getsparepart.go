package usecases

import (
	"context"

	"mantis/internal/application/inventory/dto"
	"mantis/internal/domain/inventory"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GetSparePartQuery struct {
	PartID  uint
	PartNo  string
	Barcode string
}

type GetSparePartResult struct {
	SparePart *dto.SparePartDTO
}

// GetSparePartUseCase resolves a part by ID, part number, or barcode,
// whichever the query carries. Barcode lookup backs the warehouse scanner.
type GetSparePartUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewGetSparePartUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *GetSparePartUseCase {
	return &GetSparePartUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *GetSparePartUseCase) Execute(ctx context.Context, query GetSparePartQuery) (*GetSparePartResult, error) {
	var (
		part *inventory.SparePart
		err  error
	)

	switch {
	case query.PartID != 0:
		part, err = uc.inventoryRepo.GetByID(ctx, query.PartID)
	case query.PartNo != "":
		part, err = uc.inventoryRepo.GetByPartNo(ctx, query.PartNo)
	case query.Barcode != "":
		part, err = uc.inventoryRepo.GetByBarcode(ctx, query.Barcode)
	default:
		return nil, errors.NewValidationError("part ID, part number, or barcode is required")
	}
	if err != nil {
		return nil, err
	}

	return &GetSparePartResult{SparePart: dto.FromSparePart(part)}, nil
}
