package usecases

import (
	"context"

	"mantis/internal/domain/report"
	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/db"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketResult struct {
	TicketID uint
}

// DeleteTicketUseCase removes a ticket and everything hanging off it:
// reports first, then the work order, then the ticket. A work order whose
// ticket is missing means the store lost an invariant; that is surfaced,
// never skipped.
type DeleteTicketUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	reportRepo    report.Repository
	txMgr         db.Tx
	logger        logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	reportRepo report.Repository,
	txMgr db.Tx,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		reportRepo:    reportRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	wo, err := uc.workOrderRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	if wo != nil {
		if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
			if errors.IsNotFoundError(err) {
				uc.logger.Errorw("work order exists without its ticket",
					"ticket_id", cmd.TicketID,
					"work_order_id", wo.ID(),
				)
				return nil, errors.NewIntegrityError("work order exists without its ticket")
			}
			return nil, err
		}
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if wo != nil {
			if reportID := wo.ReportID(); reportID != nil {
				if err := uc.reportRepo.Delete(txCtx, *reportID); err != nil && !errors.IsNotFoundError(err) {
					return err
				}
			}
			if rejectReportID := wo.RejectReportID(); rejectReportID != nil {
				if err := uc.reportRepo.Delete(txCtx, *rejectReportID); err != nil && !errors.IsNotFoundError(err) {
					return err
				}
			}
			if err := uc.workOrderRepo.Delete(txCtx, wo.ID()); err != nil {
				return err
			}
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
