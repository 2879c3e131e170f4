package asset

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, assetID uint) error
	GetByID(ctx context.Context, assetID uint) (*Asset, error)
	GetByAssetNo(ctx context.Context, assetNo string) (*Asset, error)
	List(ctx context.Context, filter Filter) ([]*Asset, int64, error)

	// ListCleaningDue returns assets whose next cleaning date is at or
	// before the given midnight-normalized reference time.
	ListCleaningDue(ctx context.Context, today time.Time) ([]*Asset, error)

	// ListMaintenanceDue returns assets whose next maintenance date is at
	// or before the given midnight-normalized reference time.
	ListMaintenanceDue(ctx context.Context, today time.Time) ([]*Asset, error)
}

type Filter struct {
	Page     int
	PageSize int
}
