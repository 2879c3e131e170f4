package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/inventory"
	"mantis/internal/infrastructure/persistence/models"
	apperrors "mantis/internal/shared/errors"
)

func createTestSparePart(t *testing.T, repo *SparePartRepository, quantity, minStock, maxStock int) *inventory.SparePart {
	t.Helper()
	part, err := inventory.NewSparePart(
		fmt.Sprintf("PN-%d-%d", quantity, minStock),
		"Bearing 6204",
		fmt.Sprintf("BC-%d-%d", quantity, minStock),
		quantity, minStock, maxStock,
		nil, 3, inventory.StorageRegular,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), part))
	return part
}

func TestSparePartRepository_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve decrements and reports the remaining quantity", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewSparePartRepository(gdb)
		part := createTestSparePart(t, repo, 5, 0, 10)

		reservation, err := repo.Reserve(ctx, part.ID())
		require.NoError(t, err)
		assert.Equal(t, part.ID(), reservation.PartID)
		assert.Equal(t, 4, reservation.Remaining)
		assert.False(t, reservation.CrossedMinStock)

		var row models.SparePartModel
		require.NoError(t, gdb.First(&row, part.ID()).Error)
		assert.Equal(t, 4, row.Quantity)
	})

	t.Run("crossing min stock is reported on exactly one reservation", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewSparePartRepository(gdb)
		part := createTestSparePart(t, repo, 3, 2, 10)

		// 3 -> 2: still at the threshold, no crossing.
		reservation, err := repo.Reserve(ctx, part.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, reservation.Remaining)
		assert.False(t, reservation.CrossedMinStock)

		// 2 -> 1: drops below min stock, the one crossing.
		reservation, err = repo.Reserve(ctx, part.ID())
		require.NoError(t, err)
		assert.Equal(t, 1, reservation.Remaining)
		assert.True(t, reservation.CrossedMinStock)

		// 1 -> 0: already below, no second crossing.
		reservation, err = repo.Reserve(ctx, part.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, reservation.Remaining)
		assert.False(t, reservation.CrossedMinStock)
	})

	t.Run("out of stock is a conflict", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewSparePartRepository(gdb)
		part := createTestSparePart(t, repo, 0, 0, 10)

		_, err := repo.Reserve(ctx, part.ID())
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))

		var row models.SparePartModel
		require.NoError(t, gdb.First(&row, part.ID()).Error)
		assert.Equal(t, 0, row.Quantity)
	})

	t.Run("missing part is not found", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewSparePartRepository(gdb)

		_, err := repo.Reserve(ctx, 9999)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("concurrent reservations never oversell", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewSparePartRepository(gdb)
		part := createTestSparePart(t, repo, 3, 0, 10)

		const callers = 10
		results := make(chan error, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Reserve(ctx, part.ID())
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		reserved, conflicted := 0, 0
		for err := range results {
			switch {
			case err == nil:
				reserved++
			case apperrors.IsConflictError(err):
				conflicted++
			default:
				t.Errorf("unexpected reservation error: %v", err)
			}
		}
		// Three units, ten callers: the stock is handed out exactly once.
		assert.Equal(t, 3, reserved)
		assert.Equal(t, 7, conflicted)

		var row models.SparePartModel
		require.NoError(t, gdb.First(&row, part.ID()).Error)
		assert.Equal(t, 0, row.Quantity)
	})
}
