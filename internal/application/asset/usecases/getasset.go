package usecases

import (
	"context"

	"mantis/internal/application/asset/dto"
	"mantis/internal/domain/asset"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GetAssetQuery struct {
	AssetID uint
	AssetNo string
}

type GetAssetResult struct {
	Asset *dto.AssetDTO
}

type GetAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewGetAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *GetAssetUseCase {
	return &GetAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, query GetAssetQuery) (*GetAssetResult, error) {
	var (
		a   *asset.Asset
		err error
	)

	switch {
	case query.AssetID != 0:
		a, err = uc.assetRepo.GetByID(ctx, query.AssetID)
	case query.AssetNo != "":
		a, err = uc.assetRepo.GetByAssetNo(ctx, query.AssetNo)
	default:
		return nil, errors.NewValidationError("asset ID or asset number is required")
	}
	if err != nil {
		return nil, err
	}

	return &GetAssetResult{Asset: dto.FromAsset(a)}, nil
}
