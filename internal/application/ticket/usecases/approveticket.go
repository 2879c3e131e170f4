package usecases

import (
	"context"
	"fmt"

	"mantis/internal/domain/inventory"
	"mantis/internal/domain/notification"
	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/db"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ApproveTicketCommand struct {
	TicketID uint
	AdminID  uint
}

type ApproveTicketResult struct {
	TicketID      uint
	Status        string
	Approval      string
	ReservedParts []uint
}

// ApproveTicketUseCase decides a ticket in favor and, when the work order
// requires spare parts, reserves each listed part in order. A mid-list
// reservation failure aborts the approval; parts reserved before the
// failure stay reserved.
type ApproveTicketUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	inventoryRepo inventory.Repository
	txMgr         db.Tx
	publisher     notification.Publisher
	logger        logger.Interface
}

func NewApproveTicketUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	inventoryRepo inventory.Repository,
	txMgr db.Tx,
	publisher notification.Publisher,
	logger logger.Interface,
) *ApproveTicketUseCase {
	return &ApproveTicketUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		inventoryRepo: inventoryRepo,
		txMgr:         txMgr,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *ApproveTicketUseCase) Execute(ctx context.Context, cmd ApproveTicketCommand) (*ApproveTicketResult, error) {
	uc.logger.Infow("executing approve ticket use case",
		"ticket_id", cmd.TicketID,
		"admin_id", cmd.AdminID,
	)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	wo, err := uc.workOrderRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.Approve(); err != nil {
		return nil, errors.NewPreconditionError(err.Error())
	}

	var reserved []uint
	if wo.RequireSpareParts() {
		reserved, err = uc.reserveParts(ctx, wo.SparePartIDs())
		if err != nil {
			return nil, err
		}
	}

	woOpened := false
	if wo.Status().IsPending() {
		if err := wo.MarkOpen(); err != nil {
			return nil, errors.NewPreconditionError(err.Error())
		}
		woOpened = true
	}

	// The work order and ticket move together; part reservations already
	// taken above are deliberately not rolled back with them.
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if woOpened {
			if err := uc.workOrderRepo.Update(txCtx, wo); err != nil {
				return err
			}
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist ticket approval", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &ApproveTicketResult{
		TicketID:      t.ID(),
		Status:        t.Status().String(),
		Approval:      t.Approval().String(),
		ReservedParts: reserved,
	}, nil
}

// reserveParts walks the part list in order and short-circuits on the first
// failure, naming the failing part. There is no compensation for parts
// already reserved.
func (uc *ApproveTicketUseCase) reserveParts(ctx context.Context, partIDs []uint) ([]uint, error) {
	reserved := make([]uint, 0, len(partIDs))

	for _, partID := range partIDs {
		reservation, err := uc.inventoryRepo.Reserve(ctx, partID)
		if err != nil {
			if errors.IsConflictError(err) {
				uc.logger.Warnw("spare part out of stock during approval",
					"part_id", partID,
					"reserved_so_far", reserved,
				)
				return reserved, errors.NewConflictError(fmt.Sprintf("spare part %d is out of stock", partID))
			}
			return reserved, err
		}

		reserved = append(reserved, partID)

		if reservation.CrossedMinStock {
			uc.notifyLowStock(ctx, partID, reservation.Remaining)
		}
	}

	return reserved, nil
}

func (uc *ApproveTicketUseCase) notifyLowStock(ctx context.Context, partID uint, remaining int) {
	event := notification.NewEvent(
		"Spare part low on stock",
		fmt.Sprintf("Spare part %d dropped below its minimum stock (%d remaining)", partID, remaining),
		fmt.Sprintf("spare-parts/%d", partID),
	)
	if err := uc.publisher.Notify(ctx, notification.AllAdmins(), event); err != nil {
		uc.logger.Warnw("failed to send low-stock notification", "part_id", partID, "error", err)
	}
}
