package usecases

import (
	"context"

	"mantis/internal/application/asset/dto"
	"mantis/internal/domain/asset"
	"mantis/internal/shared/logger"
)

type ListAssetsQuery struct {
	Page     int
	PageSize int
}

type ListAssetsResult struct {
	Assets   []*dto.AssetDTO
	Total    int64
	Page     int
	PageSize int
}

type ListAssetsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewListAssetsUseCase(assetRepo asset.Repository, logger logger.Interface) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error) {
	filter := asset.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
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

	assets, total, err := uc.assetRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, err
	}

	return &ListAssetsResult{
		Assets:   dto.FromAssets(assets),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
