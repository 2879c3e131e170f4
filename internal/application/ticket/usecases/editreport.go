package usecases

import (
	"context"

	"mantis/internal/domain/report"
	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type EditReportCommand struct {
	TicketID       uint
	Description    string
	BeforePhotoURL string
	AfterPhotoURL  string
}

type EditReportResult struct {
	TicketID uint
	ReportID uint
}

// EditReportUseCase replaces the content of an already attached report.
// Editing is allowed only while the parent ticket is still open.
type EditReportUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	reportRepo    report.Repository
	logger        logger.Interface
}

func NewEditReportUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	reportRepo report.Repository,
	logger logger.Interface,
) *EditReportUseCase {
	return &EditReportUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		reportRepo:    reportRepo,
		logger:        logger,
	}
}

func (uc *EditReportUseCase) Execute(ctx context.Context, cmd EditReportCommand) (*EditReportResult, error) {
	uc.logger.Infow("executing edit report use case",
		"ticket_id", cmd.TicketID,
	)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t.Status().IsTerminal() {
		return nil, errors.NewPreconditionError("cannot edit the report of a closed ticket")
	}

	wo, err := uc.workOrderRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if wo.ReportID() == nil {
		return nil, errors.NewNotFoundError("ticket has no report to edit")
	}

	rep, err := uc.reportRepo.GetByID(ctx, *wo.ReportID())
	if err != nil {
		return nil, err
	}
	if err := rep.Edit(cmd.Description, cmd.BeforePhotoURL, cmd.AfterPhotoURL); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.reportRepo.Update(ctx, rep); err != nil {
		uc.logger.Errorw("failed to update report", "report_id", rep.ID(), "error", err)
		return nil, err
	}

	return &EditReportResult{
		TicketID: t.ID(),
		ReportID: rep.ID(),
	}, nil
}
