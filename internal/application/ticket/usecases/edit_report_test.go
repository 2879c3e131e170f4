package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/report"
	"mantis/internal/domain/ticket"
	vo "mantis/internal/domain/ticket/valueobjects"
	"mantis/internal/domain/workorder"
	wovo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/errors"
)

func workOrderWithReport(t *testing.T, id, ticketID, reportID uint) *workorder.WorkOrder {
	t.Helper()
	now := time.Now()
	wo, err := workorder.ReconstructWorkOrder(
		id, ticketID, wovo.KindMaintenance, wovo.StatusInProgress,
		false, nil, &reportID, nil, "", nil, 1, now, now,
	)
	require.NoError(t, err)
	return wo
}

func storedReport(t *testing.T, id uint) *report.Report {
	t.Helper()
	now := time.Now()
	rep, err := report.ReconstructReport(id, "original", "before.jpg", "after.jpg", 1, now, now)
	require.NoError(t, err)
	return rep
}

func TestEditReportUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the report content", func(t *testing.T) {
		tk := inProgressTicket(t, 1, time.Hour)
		wo := workOrderWithReport(t, 10, 1, 40)
		rep := storedReport(t, 40)

		var updated *report.Report
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		workOrderRepo := &mockWorkOrderRepository{
			GetByTicketIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) { return wo, nil },
		}
		reportRepo := &mockReportRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*report.Report, error) {
				assert.Equal(t, uint(40), id)
				return rep, nil
			},
			UpdateFunc: func(ctx context.Context, r *report.Report) error {
				updated = r
				return nil
			},
		}

		uc := NewEditReportUseCase(ticketRepo, workOrderRepo, reportRepo, &mockLogger{})
		result, err := uc.Execute(ctx, EditReportCommand{
			TicketID:       1,
			Description:    "corrected",
			BeforePhotoURL: "before2.jpg",
			AfterPhotoURL:  "after2.jpg",
		})
		require.NoError(t, err)

		assert.Equal(t, uint(40), result.ReportID)
		require.NotNil(t, updated)
		assert.Equal(t, "corrected", updated.Description())
		assert.Equal(t, "before2.jpg", updated.BeforePhotoURL())
		assert.Equal(t, 2, updated.Version())
	})

	t.Run("rejects editing when the ticket is closed", func(t *testing.T) {
		opener, err := vo.NewActor(vo.ActorAdmin, 2)
		require.NoError(t, err)
		started := time.Now().Add(-2 * time.Hour)
		ended := time.Now().Add(-time.Hour)
		minutes := 60
		now := time.Now()
		tk, err := ticket.ReconstructTicket(
			1, &opener, nil, vo.PriorityLow, 3, "x",
			vo.StatusClosed, true, vo.ApprovalApproved, "",
			&started, &ended, &minutes, 2, now, now,
		)
		require.NoError(t, err)

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := NewEditReportUseCase(ticketRepo, &mockWorkOrderRepository{}, &mockReportRepository{}, &mockLogger{})
		_, err = uc.Execute(ctx, EditReportCommand{
			TicketID:       1,
			Description:    "late edit",
			BeforePhotoURL: "b.jpg",
			AfterPhotoURL:  "a.jpg",
		})
		assert.True(t, errors.IsPreconditionError(err))
	})

	t.Run("fails when no report has been attached", func(t *testing.T) {
		tk := inProgressTicket(t, 1, time.Hour)
		wo := inProgressWorkOrder(t, 10, 1, wovo.KindMaintenance)

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		workOrderRepo := &mockWorkOrderRepository{
			GetByTicketIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) { return wo, nil },
		}

		uc := NewEditReportUseCase(ticketRepo, workOrderRepo, &mockReportRepository{}, &mockLogger{})
		_, err := uc.Execute(ctx, EditReportCommand{
			TicketID:       1,
			Description:    "d",
			BeforePhotoURL: "b.jpg",
			AfterPhotoURL:  "a.jpg",
		})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects blank content", func(t *testing.T) {
		tk := inProgressTicket(t, 1, time.Hour)
		wo := workOrderWithReport(t, 10, 1, 40)
		rep := storedReport(t, 40)

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		workOrderRepo := &mockWorkOrderRepository{
			GetByTicketIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) { return wo, nil },
		}
		reportRepo := &mockReportRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*report.Report, error) { return rep, nil },
		}

		uc := NewEditReportUseCase(ticketRepo, workOrderRepo, reportRepo, &mockLogger{})
		_, err := uc.Execute(ctx, EditReportCommand{TicketID: 1})
		assert.True(t, errors.IsValidationError(err))
	})
}
