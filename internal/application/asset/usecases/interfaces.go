package usecases

import "context"

type CreateAssetExecutor interface {
	Execute(ctx context.Context, cmd CreateAssetCommand) (*CreateAssetResult, error)
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, query GetAssetQuery) (*GetAssetResult, error)
}

type ListAssetsExecutor interface {
	Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error)
}

type DeleteAssetExecutor interface {
	Execute(ctx context.Context, cmd DeleteAssetCommand) (*DeleteAssetResult, error)
}
