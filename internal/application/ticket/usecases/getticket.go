package usecases

import (
	"context"

	"mantis/internal/application/ticket/dto"
	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

// GetTicketUseCase loads one ticket with its work order.
type GetTicketUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	detail := &dto.TicketDetailDTO{Ticket: dto.FromTicket(t)}

	wo, err := uc.workOrderRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		// A missing work order is tolerated on read; deletion surfaces it.
	} else {
		woDTO := dto.FromWorkOrder(wo)
		detail.WorkOrder = &woDTO
	}

	return detail, nil
}
