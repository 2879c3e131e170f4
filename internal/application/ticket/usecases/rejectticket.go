package usecases

import (
	"context"
	"fmt"

	"mantis/internal/domain/notification"
	"mantis/internal/domain/ticket"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type RejectTicketCommand struct {
	TicketID uint
	AdminID  uint
	Reason   string
}

type RejectTicketResult struct {
	TicketID uint
	Status   string
	Approval string
}

// RejectTicketUseCase decides a ticket against, with a mandatory reason.
type RejectTicketUseCase struct {
	ticketRepo ticket.Repository
	publisher  notification.Publisher
	logger     logger.Interface
}

func NewRejectTicketUseCase(
	ticketRepo ticket.Repository,
	publisher notification.Publisher,
	logger logger.Interface,
) *RejectTicketUseCase {
	return &RejectTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *RejectTicketUseCase) Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error) {
	uc.logger.Infow("executing reject ticket use case",
		"ticket_id", cmd.TicketID,
		"admin_id", cmd.AdminID,
	)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Reason) == 0 {
		return nil, errors.NewValidationError("rejection reason is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.Reject(cmd.Reason); err != nil {
		return nil, errors.NewPreconditionError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if assignee := t.AssigneeID(); assignee != nil {
		event := notification.NewEvent(
			"Ticket rejected",
			fmt.Sprintf("Ticket #%d was rejected: %s", t.ID(), cmd.Reason),
			fmt.Sprintf("tickets/%d", t.ID()),
		)
		if err := uc.publisher.Notify(ctx, notification.Technician(*assignee), event); err != nil {
			uc.logger.Warnw("failed to notify assignee of rejection", "ticket_id", t.ID(), "error", err)
		}
	}

	return &RejectTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
		Approval: t.Approval().String(),
	}, nil
}
