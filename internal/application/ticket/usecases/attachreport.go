package usecases

import (
	"context"
	"fmt"

	"mantis/internal/domain/notification"
	"mantis/internal/domain/report"
	"mantis/internal/domain/ticket"
	vo "mantis/internal/domain/ticket/valueobjects"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/db"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type AttachReportCommand struct {
	TicketID       uint
	ActorKind      string
	ActorID        uint
	Description    string
	BeforePhotoURL string
	AfterPhotoURL  string
}

type AttachReportResult struct {
	TicketID uint
	ReportID uint
}

// AttachReportUseCase records the evidence report on the ticket's work order.
type AttachReportUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	reportRepo    report.Repository
	txMgr         db.Tx
	publisher     notification.Publisher
	logger        logger.Interface
}

func NewAttachReportUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	reportRepo report.Repository,
	txMgr db.Tx,
	publisher notification.Publisher,
	logger logger.Interface,
) *AttachReportUseCase {
	return &AttachReportUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		reportRepo:    reportRepo,
		txMgr:         txMgr,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *AttachReportUseCase) Execute(ctx context.Context, cmd AttachReportCommand) (*AttachReportResult, error) {
	uc.logger.Infow("executing attach report use case",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.ActorID,
	)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t.Status().IsTerminal() {
		return nil, errors.NewPreconditionError("cannot attach a report to a closed ticket")
	}

	wo, err := uc.workOrderRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	rep, err := report.NewReport(cmd.Description, cmd.BeforePhotoURL, cmd.AfterPhotoURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reportRepo.Save(txCtx, rep); err != nil {
			return err
		}
		if err := wo.AttachReport(rep.ID()); err != nil {
			return errors.NewConflictError(err.Error())
		}
		return uc.workOrderRepo.Update(txCtx, wo)
	})
	if err != nil {
		uc.logger.Errorw("failed to attach report", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if vo.ActorKind(cmd.ActorKind).IsTech() {
		event := notification.NewEvent(
			"Report uploaded",
			fmt.Sprintf("Technician %d uploaded a report for ticket #%d", cmd.ActorID, t.ID()),
			fmt.Sprintf("tickets/%d", t.ID()),
		)
		if err := uc.publisher.Notify(ctx, notification.AllAdmins(), event); err != nil {
			uc.logger.Warnw("failed to notify admins of report", "ticket_id", t.ID(), "error", err)
		}
	}

	return &AttachReportResult{
		TicketID: t.ID(),
		ReportID: rep.ID(),
	}, nil
}
