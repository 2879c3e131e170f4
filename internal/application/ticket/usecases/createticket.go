package usecases

import (
	"context"
	"fmt"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/domain/notification"
	"mantis/internal/domain/ticket"
	vo "mantis/internal/domain/ticket/valueobjects"
	"mantis/internal/domain/workorder"
	wovo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/db"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type CreateTicketCommand struct {
	OpenerKind        string
	OpenerID          uint
	AssigneeID        *uint
	Priority          string
	AssetID           uint
	Description       string
	WorkOrderKind     string
	RequireSpareParts bool
	SparePartIDs      []uint
	Note              string
}

type CreateTicketResult struct {
	TicketID    uint
	WorkOrderID uint
	Status      string
	CreatedAt   time.Time
}

// CreateTicketUseCase opens a ticket together with its kind-specific work
// order in a single transaction.
type CreateTicketUseCase struct {
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	assetRepo     asset.Repository
	txMgr         db.Tx
	publisher     notification.Publisher
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	assetRepo asset.Repository,
	txMgr db.Tx,
	publisher notification.Publisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		assetRepo:     assetRepo,
		txMgr:         txMgr,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"opener_kind", cmd.OpenerKind,
		"opener_id", cmd.OpenerID,
		"asset_id", cmd.AssetID,
	)

	openerKind, err := vo.NewActorKind(cmd.OpenerKind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	opener, err := vo.NewActor(openerKind, cmd.OpenerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	workOrderKind, err := wovo.NewKind(cmd.WorkOrderKind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.assetRepo.GetByID(ctx, cmd.AssetID); err != nil {
		uc.logger.Errorw("asset lookup failed", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(opener, cmd.AssigneeID, vo.Priority(cmd.Priority), cmd.AssetID, cmd.Description)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	newWorkOrder, err := uc.buildWorkOrder(workOrderKind, cmd, newTicket.Status())
	if err != nil {
		uc.logger.Errorw("failed to create work order entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}
		if err := newWorkOrder.BindToTicket(newTicket.ID()); err != nil {
			return err
		}
		return uc.workOrderRepo.Save(txCtx, newWorkOrder)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.notifyCreated(ctx, newTicket, opener)

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(),
		"work_order_id", newWorkOrder.ID(),
	)

	return &CreateTicketResult{
		TicketID:    newTicket.ID(),
		WorkOrderID: newWorkOrder.ID(),
		Status:      newTicket.Status().String(),
		CreatedAt:   newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) buildWorkOrder(kind wovo.Kind, cmd CreateTicketCommand, ticketStatus vo.Status) (*workorder.WorkOrder, error) {
	initialStatus := wovo.StatusOpen
	if ticketStatus.IsPending() {
		initialStatus = wovo.StatusPending
	}

	switch {
	case kind.IsMaintenance():
		return workorder.NewMaintenance(cmd.RequireSpareParts, cmd.SparePartIDs, initialStatus)
	case kind.IsCleaning():
		if cmd.RequireSpareParts || len(cmd.SparePartIDs) > 0 {
			return nil, fmt.Errorf("cleaning work orders do not use spare parts")
		}
		return workorder.NewCleaning(cmd.Note, initialStatus)
	default:
		return workorder.NewAccident(cmd.RequireSpareParts, cmd.SparePartIDs, initialStatus)
	}
}

func (uc *CreateTicketUseCase) notifyCreated(ctx context.Context, t *ticket.Ticket, opener vo.Actor) {
	route := fmt.Sprintf("tickets/%d", t.ID())

	if opener.IsTech() {
		event := notification.NewEvent(
			"Ticket awaiting approval",
			fmt.Sprintf("Technician %d opened ticket #%d", opener.ID(), t.ID()),
			route,
		)
		if err := uc.publisher.Notify(ctx, notification.AllAdmins(), event); err != nil {
			uc.logger.Warnw("failed to notify admins of new ticket", "ticket_id", t.ID(), "error", err)
		}
		return
	}

	if assignee := t.AssigneeID(); assignee != nil {
		event := notification.NewEvent(
			"Ticket assigned to you",
			fmt.Sprintf("Admin %d assigned you ticket #%d", opener.ID(), t.ID()),
			route,
		)
		if err := uc.publisher.Notify(ctx, notification.Technician(*assignee), event); err != nil {
			uc.logger.Warnw("failed to notify assignee of new ticket", "ticket_id", t.ID(), "error", err)
		}
	}
}
