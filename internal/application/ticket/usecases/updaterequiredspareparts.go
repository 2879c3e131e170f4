package usecases

import (
	"context"

	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type UpdateRequiredSparePartsCommand struct {
	TicketID          uint
	TechID            uint
	RequireSpareParts bool
	SparePartIDs      []uint
}

type UpdateRequiredSparePartsResult struct {
	TicketID          uint
	RequireSpareParts bool
	SparePartIDs      []uint
}

// UpdateRequiredSparePartsUseCase lets the assigned technician revise the
// declared spare-part needs before approval.
type UpdateRequiredSparePartsUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewUpdateRequiredSparePartsUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	logger logger.Interface,
) *UpdateRequiredSparePartsUseCase {
	return &UpdateRequiredSparePartsUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *UpdateRequiredSparePartsUseCase) Execute(ctx context.Context, cmd UpdateRequiredSparePartsCommand) (*UpdateRequiredSparePartsResult, error) {
	uc.logger.Infow("executing update required spare parts use case",
		"ticket_id", cmd.TicketID,
		"tech_id", cmd.TechID,
	)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.TechID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.IsAssignedTo(cmd.TechID) {
		return nil, errors.NewForbiddenError("only the assigned technician can update spare part requirements")
	}

	wo, err := uc.workOrderRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := wo.UpdateSpareParts(cmd.RequireSpareParts, cmd.SparePartIDs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.workOrderRepo.Update(ctx, wo); err != nil {
		uc.logger.Errorw("failed to update work order", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &UpdateRequiredSparePartsResult{
		TicketID:          cmd.TicketID,
		RequireSpareParts: wo.RequireSpareParts(),
		SparePartIDs:      wo.SparePartIDs(),
	}, nil
}
