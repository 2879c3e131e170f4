package usecases

import "context"

type CreateSparePartExecutor interface {
	Execute(ctx context.Context, cmd CreateSparePartCommand) (*CreateSparePartResult, error)
}

type UpdateSparePartStockExecutor interface {
	Execute(ctx context.Context, cmd UpdateSparePartStockCommand) (*UpdateSparePartStockResult, error)
}

type GetSparePartExecutor interface {
	Execute(ctx context.Context, query GetSparePartQuery) (*GetSparePartResult, error)
}

type ListSparePartsExecutor interface {
	Execute(ctx context.Context, query ListSparePartsQuery) (*ListSparePartsResult, error)
}

type DeleteSparePartExecutor interface {
	Execute(ctx context.Context, cmd DeleteSparePartCommand) (*DeleteSparePartResult, error)
}
