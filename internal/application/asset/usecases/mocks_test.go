package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/shared/logger"
)

type mockAssetRepository struct {
	SaveFunc               func(ctx context.Context, a *asset.Asset) error
	UpdateFunc             func(ctx context.Context, a *asset.Asset) error
	DeleteFunc             func(ctx context.Context, assetID uint) error
	GetByIDFunc            func(ctx context.Context, assetID uint) (*asset.Asset, error)
	GetByAssetNoFunc       func(ctx context.Context, assetNo string) (*asset.Asset, error)
	ListFunc               func(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error)
	ListCleaningDueFunc    func(ctx context.Context, today time.Time) ([]*asset.Asset, error)
	ListMaintenanceDueFunc func(ctx context.Context, today time.Time) ([]*asset.Asset, error)
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, assetID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, assetID)
	}
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, assetID uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, assetID)
	}
	return nil, nil
}

func (m *mockAssetRepository) GetByAssetNo(ctx context.Context, assetNo string) (*asset.Asset, error) {
	if m.GetByAssetNoFunc != nil {
		return m.GetByAssetNoFunc(ctx, assetNo)
	}
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssetRepository) ListCleaningDue(ctx context.Context, today time.Time) ([]*asset.Asset, error) {
	if m.ListCleaningDueFunc != nil {
		return m.ListCleaningDueFunc(ctx, today)
	}
	return nil, nil
}

func (m *mockAssetRepository) ListMaintenanceDue(ctx context.Context, today time.Time) ([]*asset.Asset, error) {
	if m.ListMaintenanceDueFunc != nil {
		return m.ListMaintenanceDueFunc(ctx, today)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
