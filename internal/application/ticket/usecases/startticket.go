package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/ticket"
	vo "mantis/internal/domain/ticket/valueobjects"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type StartTicketCommand struct {
	TicketID uint
	TechID   uint
}

type StartTicketResult struct {
	TicketID  uint
	Status    string
	StartTime time.Time
}

// StartTicketUseCase records the beginning of work. State is read fresh on
// every call and the start time itself is set through a conditional update,
// so a second start always fails no matter how the calls interleave.
type StartTicketUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewStartTicketUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	logger logger.Interface,
) *StartTicketUseCase {
	return &StartTicketUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *StartTicketUseCase) Execute(ctx context.Context, cmd StartTicketCommand) (*StartTicketResult, error) {
	uc.logger.Infow("executing start ticket use case",
		"ticket_id", cmd.TicketID,
		"tech_id", cmd.TechID,
	)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.TechApproved() {
		return nil, errors.NewPreconditionError("ticket has not been cleared to start")
	}
	if t.StartTime() != nil {
		return nil, errors.NewConflictError("ticket already started")
	}
	if cmd.TechID != 0 && !t.IsAssignedTo(cmd.TechID) {
		return nil, errors.NewForbiddenError("ticket is not assigned to this technician")
	}

	now := time.Now()
	if err := uc.ticketRepo.MarkStarted(ctx, cmd.TicketID, now); err != nil {
		return nil, err
	}

	wo, err := uc.workOrderRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if err := wo.Start(); err != nil {
		return nil, errors.NewPreconditionError(err.Error())
	}
	if err := uc.workOrderRepo.Update(ctx, wo); err != nil {
		uc.logger.Errorw("failed to update work order", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket started", "ticket_id", cmd.TicketID)

	return &StartTicketResult{
		TicketID:  cmd.TicketID,
		Status:    vo.StatusInProgress.String(),
		StartTime: now,
	}, nil
}
