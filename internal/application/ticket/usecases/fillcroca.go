package usecases

import (
	"context"

	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
	wovo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type FillCrocaCommand struct {
	TicketID  uint
	CrocaType string
	Cost      string
	PhotoURL  *string
}

type FillCrocaResult struct {
	TicketID uint
	Filled   bool
}

// FillCrocaUseCase records incident data on an accident work order.
type FillCrocaUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewFillCrocaUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	logger logger.Interface,
) *FillCrocaUseCase {
	return &FillCrocaUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *FillCrocaUseCase) Execute(ctx context.Context, cmd FillCrocaCommand) (*FillCrocaResult, error) {
	uc.logger.Infow("executing fill croca use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	crocaType, err := wovo.NewCrocaType(cmd.CrocaType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	croca, err := wovo.NewCroca(crocaType, cmd.Cost, cmd.PhotoURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	wo, err := uc.workOrderRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := wo.FillCroca(croca); err != nil {
		return nil, errors.NewPreconditionError(err.Error())
	}

	if err := uc.workOrderRepo.Update(ctx, wo); err != nil {
		uc.logger.Errorw("failed to update work order", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &FillCrocaResult{
		TicketID: cmd.TicketID,
		Filled:   wo.CrocaFilled(),
	}, nil
}
