package usecases

import (
	"context"

	"mantis/internal/domain/ticket"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ClaimTicketCommand struct {
	TicketID uint
	TechID   uint
}

type ClaimTicketResult struct {
	TicketID   uint
	AssigneeID uint
}

// ClaimTicketUseCase lets a technician take an unassigned ticket. The
// assignment is one conditional update in the repository; two concurrent
// claims can never both win.
type ClaimTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewClaimTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ClaimTicketUseCase {
	return &ClaimTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ClaimTicketUseCase) Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error) {
	uc.logger.Infow("executing claim ticket use case",
		"ticket_id", cmd.TicketID,
		"tech_id", cmd.TechID,
	)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.TechID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	if err := uc.ticketRepo.Claim(ctx, cmd.TicketID, cmd.TechID); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Infow("claim lost to a concurrent assignment",
				"ticket_id", cmd.TicketID,
				"tech_id", cmd.TechID,
			)
		}
		return nil, err
	}

	uc.logger.Infow("ticket claimed", "ticket_id", cmd.TicketID, "tech_id", cmd.TechID)

	return &ClaimTicketResult{
		TicketID:   cmd.TicketID,
		AssigneeID: cmd.TechID,
	}, nil
}
