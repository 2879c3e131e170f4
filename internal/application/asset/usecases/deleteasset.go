package usecases

import (
	"context"

	"mantis/internal/domain/asset"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type DeleteAssetCommand struct {
	AssetID uint
}

type DeleteAssetResult struct {
	AssetID uint
}

type DeleteAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewDeleteAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *DeleteAssetUseCase) Execute(ctx context.Context, cmd DeleteAssetCommand) (*DeleteAssetResult, error) {
	uc.logger.Infow("executing delete asset use case", "asset_id", cmd.AssetID)

	if cmd.AssetID == 0 {
		return nil, errors.NewValidationError("asset ID is required")
	}

	if err := uc.assetRepo.Delete(ctx, cmd.AssetID); err != nil {
		uc.logger.Errorw("failed to delete asset", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	return &DeleteAssetResult{AssetID: cmd.AssetID}, nil
}
