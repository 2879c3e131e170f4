package usecases

import (
	"context"
	"fmt"
	"time"

	"mantis/internal/domain/notification"
	"mantis/internal/domain/ticket"
	vo "mantis/internal/domain/ticket/valueobjects"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/db"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID  uint
	ActorKind string
	ActorID   uint
}

type CloseTicketResult struct {
	TicketID     uint
	Status       string
	TimerMinutes int
	EndTime      time.Time
}

// CloseTicketUseCase completes the ticket and its work order, deriving the
// work timer from the recorded start time.
type CloseTicketUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	txMgr         db.Tx
	publisher     notification.Publisher
	logger        logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	txMgr db.Tx,
	publisher notification.Publisher,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		txMgr:         txMgr,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case",
		"ticket_id", cmd.TicketID,
		"actor_kind", cmd.ActorKind,
		"actor_id", cmd.ActorID,
	)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	wo, err := uc.workOrderRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := t.Close(now); err != nil {
		return nil, errors.NewPreconditionError(err.Error())
	}
	if err := wo.Close(); err != nil {
		return nil, errors.NewPreconditionError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return uc.workOrderRepo.Update(txCtx, wo)
	})
	if err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if vo.ActorKind(cmd.ActorKind).IsTech() {
		event := notification.NewEvent(
			"Ticket closed",
			fmt.Sprintf("Technician %d closed ticket #%d", cmd.ActorID, t.ID()),
			fmt.Sprintf("tickets/%d", t.ID()),
		)
		if err := uc.publisher.Notify(ctx, notification.AllAdmins(), event); err != nil {
			uc.logger.Warnw("failed to notify admins of close", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket closed",
		"ticket_id", t.ID(),
		"timer_minutes", *t.TimerMinutes(),
	)

	return &CloseTicketResult{
		TicketID:     t.ID(),
		Status:       t.Status().String(),
		TimerMinutes: *t.TimerMinutes(),
		EndTime:      now,
	}, nil
}
