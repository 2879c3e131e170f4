package workorder

import (
	"context"

	vo "mantis/internal/domain/workorder/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, w *WorkOrder) error
	Update(ctx context.Context, w *WorkOrder) error
	Delete(ctx context.Context, workOrderID uint) error
	GetByID(ctx context.Context, workOrderID uint) (*WorkOrder, error)
	GetByTicketID(ctx context.Context, ticketID uint) (*WorkOrder, error)
	List(ctx context.Context, filter Filter) ([]*WorkOrder, int64, error)
}

type Filter struct {
	Kind     *vo.Kind
	Statuses []vo.Status
	Page     int
	PageSize int
}
