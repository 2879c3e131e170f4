package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/asset"
	"mantis/internal/shared/errors"
)

func storedAsset(t *testing.T, id uint, assetNo string) *asset.Asset {
	t.Helper()
	installed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cleaning, err := asset.ReconstructSchedule(7, installed.AddDate(0, 0, 7))
	require.NoError(t, err)
	maintenance, err := asset.ReconstructSchedule(30, installed.AddDate(0, 0, 30))
	require.NoError(t, err)
	a, err := asset.ReconstructAsset(id, assetNo, "Elevator", "", asset.Coordinates{Lat: 40.4, Lng: -3.7},
		installed, cleaning, maintenance, 1, installed, installed)
	require.NoError(t, err)
	return a
}

func TestCreateAssetUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	validCmd := CreateAssetCommand{
		AssetNo:                 "AST-001",
		Name:                    "Elevator",
		Lat:                     40.4,
		Lng:                     -3.7,
		InstallationDate:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CleaningIntervalDays:    7,
		MaintenanceIntervalDays: 30,
	}

	t.Run("success seeds both schedules in the future", func(t *testing.T) {
		repo := &mockAssetRepository{
			GetByAssetNoFunc: func(ctx context.Context, assetNo string) (*asset.Asset, error) {
				return nil, errors.NewNotFoundError("asset not found")
			},
			SaveFunc: func(ctx context.Context, a *asset.Asset) error {
				return a.SetID(3)
			},
		}

		uc := NewCreateAssetUseCase(repo, &mockLogger{})
		result, err := uc.Execute(ctx, validCmd)
		require.NoError(t, err)

		assert.Equal(t, uint(3), result.Asset.ID)
		assert.Equal(t, 7, result.Asset.CleaningSchedule.IntervalDays)
		assert.Equal(t, 30, result.Asset.MaintenanceSchedule.IntervalDays)
		// Installation lies in the past, so seeding advances to the next
		// whole-interval boundary after now.
		assert.True(t, result.Asset.CleaningSchedule.NextDate.After(time.Now().UTC()))
		assert.True(t, result.Asset.MaintenanceSchedule.NextDate.After(time.Now().UTC()))
	})

	t.Run("duplicate asset number", func(t *testing.T) {
		repo := &mockAssetRepository{
			GetByAssetNoFunc: func(ctx context.Context, assetNo string) (*asset.Asset, error) {
				return storedAsset(t, 9, assetNo), nil
			},
		}

		uc := NewCreateAssetUseCase(repo, &mockLogger{})
		_, err := uc.Execute(ctx, validCmd)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		cmd := validCmd
		cmd.Lat = 95

		repo := &mockAssetRepository{
			GetByAssetNoFunc: func(ctx context.Context, assetNo string) (*asset.Asset, error) {
				return nil, errors.NewNotFoundError("asset not found")
			},
		}

		uc := NewCreateAssetUseCase(repo, &mockLogger{})
		_, err := uc.Execute(ctx, cmd)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("non-positive interval", func(t *testing.T) {
		cmd := validCmd
		cmd.CleaningIntervalDays = 0

		repo := &mockAssetRepository{
			GetByAssetNoFunc: func(ctx context.Context, assetNo string) (*asset.Asset, error) {
				return nil, errors.NewNotFoundError("asset not found")
			},
		}

		uc := NewCreateAssetUseCase(repo, &mockLogger{})
		_, err := uc.Execute(ctx, cmd)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetAssetUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup by asset number", func(t *testing.T) {
		repo := &mockAssetRepository{
			GetByAssetNoFunc: func(ctx context.Context, assetNo string) (*asset.Asset, error) {
				assert.Equal(t, "AST-001", assetNo)
				return storedAsset(t, 3, assetNo), nil
			},
		}

		uc := NewGetAssetUseCase(repo, &mockLogger{})
		result, err := uc.Execute(ctx, GetAssetQuery{AssetNo: "AST-001"})
		require.NoError(t, err)
		assert.Equal(t, uint(3), result.Asset.ID)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		uc := NewGetAssetUseCase(&mockAssetRepository{}, &mockLogger{})
		_, err := uc.Execute(ctx, GetAssetQuery{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListAssetsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	var captured asset.Filter
	repo := &mockAssetRepository{
		ListFunc: func(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
			captured = filter
			return []*asset.Asset{storedAsset(t, 3, "AST-001")}, 1, nil
		},
	}

	uc := NewListAssetsUseCase(repo, &mockLogger{})
	result, err := uc.Execute(ctx, ListAssetsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.PageSize)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Assets, 1)
	assert.Equal(t, "AST-001", result.Assets[0].AssetNo)
}

func TestDeleteAssetUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("delete propagates to the repository", func(t *testing.T) {
		var deleted uint
		repo := &mockAssetRepository{
			DeleteFunc: func(ctx context.Context, assetID uint) error {
				deleted = assetID
				return nil
			},
		}

		uc := NewDeleteAssetUseCase(repo, &mockLogger{})
		_, err := uc.Execute(ctx, DeleteAssetCommand{AssetID: 3})
		require.NoError(t, err)
		assert.Equal(t, uint(3), deleted)
	})

	t.Run("zero ID is rejected", func(t *testing.T) {
		uc := NewDeleteAssetUseCase(&mockAssetRepository{}, &mockLogger{})
		_, err := uc.Execute(ctx, DeleteAssetCommand{})
		require.Error(t, err)
	})
}
