package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mantis/internal/domain/ticket"
	vo "mantis/internal/domain/ticket/valueobjects"
	"mantis/internal/infrastructure/persistence/models"
	apperrors "mantis/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Each connection to a ":memory:" DSN opens its own database, so the
	// pool must stay on a single connection.
	sqlDB.SetMaxOpenConns(1)

	err = gdb.AutoMigrate(&models.TicketModel{}, &models.SparePartModel{})
	require.NoError(t, err)

	return gdb
}

func createTestTicket(t *testing.T, repo *TicketRepository) *ticket.Ticket {
	t.Helper()
	opener, err := vo.NewActor(vo.ActorAdmin, 2)
	require.NoError(t, err)
	tk, err := ticket.NewTicket(opener, nil, vo.PriorityHigh, 3, "pump leaking")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestTicketRepository_Claim(t *testing.T) {
	ctx := context.Background()

	t.Run("claim assigns an unassigned ticket", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewTicketRepository(gdb)
		tk := createTestTicket(t, repo)

		err := repo.Claim(ctx, tk.ID(), 7)
		require.NoError(t, err)

		var row models.TicketModel
		require.NoError(t, gdb.First(&row, tk.ID()).Error)
		require.NotNil(t, row.AssignedTo)
		assert.Equal(t, uint(7), *row.AssignedTo)
	})

	t.Run("claim of an assigned ticket is a conflict", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewTicketRepository(gdb)
		tk := createTestTicket(t, repo)
		require.NoError(t, repo.Claim(ctx, tk.ID(), 5))

		err := repo.Claim(ctx, tk.ID(), 7)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))

		// The first claim holds.
		var row models.TicketModel
		require.NoError(t, gdb.First(&row, tk.ID()).Error)
		require.NotNil(t, row.AssignedTo)
		assert.Equal(t, uint(5), *row.AssignedTo)
	})

	t.Run("claim of a missing ticket is not found", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewTicketRepository(gdb)

		err := repo.Claim(ctx, 9999, 7)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("concurrent claims assign exactly one winner", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewTicketRepository(gdb)
		tk := createTestTicket(t, repo)

		const techs = 8
		results := make(chan error, techs)
		var wg sync.WaitGroup
		for i := 0; i < techs; i++ {
			techID := uint(i + 1)
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- repo.Claim(ctx, tk.ID(), techID)
			}()
		}
		wg.Wait()
		close(results)

		won, lost := 0, 0
		for err := range results {
			switch {
			case err == nil:
				won++
			case apperrors.IsConflictError(err):
				lost++
			default:
				t.Errorf("unexpected claim error: %v", err)
			}
		}
		assert.Equal(t, 1, won)
		assert.Equal(t, techs-1, lost)

		var row models.TicketModel
		require.NoError(t, gdb.First(&row, tk.ID()).Error)
		assert.NotNil(t, row.AssignedTo)
	})
}

func TestTicketRepository_MarkStarted(t *testing.T) {
	ctx := context.Background()

	t.Run("records the start time and moves to in progress", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewTicketRepository(gdb)
		tk := createTestTicket(t, repo)
		startedAt := time.Now()

		err := repo.MarkStarted(ctx, tk.ID(), startedAt)
		require.NoError(t, err)

		var row models.TicketModel
		require.NoError(t, gdb.First(&row, tk.ID()).Error)
		require.NotNil(t, row.StartTime)
		assert.Equal(t, startedAt.UnixMilli(), *row.StartTime)
		assert.Equal(t, vo.StatusInProgress.String(), row.Status)
	})

	t.Run("second start is a conflict and keeps the first time", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewTicketRepository(gdb)
		tk := createTestTicket(t, repo)
		first := time.Now()
		require.NoError(t, repo.MarkStarted(ctx, tk.ID(), first))

		err := repo.MarkStarted(ctx, tk.ID(), first.Add(time.Hour))
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))

		var row models.TicketModel
		require.NoError(t, gdb.First(&row, tk.ID()).Error)
		require.NotNil(t, row.StartTime)
		assert.Equal(t, first.UnixMilli(), *row.StartTime)
	})

	t.Run("missing ticket is not found", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewTicketRepository(gdb)

		err := repo.MarkStarted(ctx, 9999, time.Now())
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
