package usecases

import (
	"context"
	"fmt"

	"mantis/internal/domain/notification"
	"mantis/internal/domain/report"
	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/db"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type AttachRejectReportCommand struct {
	TicketID       uint
	TechID         uint
	Description    string
	BeforePhotoURL string
	AfterPhotoURL  string
}

type AttachRejectReportResult struct {
	TicketID uint
	ReportID uint
	Status   string
	Approval string
}

// AttachRejectReportUseCase answers a rejection: the technician uploads a
// corrective report and the ticket returns to the approval queue.
type AttachRejectReportUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	reportRepo    report.Repository
	txMgr         db.Tx
	publisher     notification.Publisher
	logger        logger.Interface
}

func NewAttachRejectReportUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	reportRepo report.Repository,
	txMgr db.Tx,
	publisher notification.Publisher,
	logger logger.Interface,
) *AttachRejectReportUseCase {
	return &AttachRejectReportUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		reportRepo:    reportRepo,
		txMgr:         txMgr,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *AttachRejectReportUseCase) Execute(ctx context.Context, cmd AttachRejectReportCommand) (*AttachRejectReportResult, error) {
	uc.logger.Infow("executing attach reject report use case",
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

	if !t.Approval().IsRejected() {
		return nil, errors.NewPreconditionError("reject reports can only be attached to rejected tickets")
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
		if err := wo.AttachRejectReport(rep.ID()); err != nil {
			return errors.NewPreconditionError(err.Error())
		}
		if err := wo.MarkPending(); err != nil {
			return errors.NewPreconditionError(err.Error())
		}
		if err := t.Resubmit(); err != nil {
			return errors.NewPreconditionError(err.Error())
		}
		if err := uc.workOrderRepo.Update(txCtx, wo); err != nil {
			return err
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to attach reject report", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	event := notification.NewEvent(
		"Ticket resubmitted",
		fmt.Sprintf("Technician %d resubmitted ticket #%d for approval", cmd.TechID, t.ID()),
		fmt.Sprintf("tickets/%d", t.ID()),
	)
	if err := uc.publisher.Notify(ctx, notification.AllAdmins(), event); err != nil {
		uc.logger.Warnw("failed to notify admins of resubmission", "ticket_id", t.ID(), "error", err)
	}

	return &AttachRejectReportResult{
		TicketID: t.ID(),
		ReportID: rep.ID(),
		Status:   t.Status().String(),
		Approval: t.Approval().String(),
	}, nil
}
