package ticket

import (
	"context"
	"time"

	vo "mantis/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)

	// Claim atomically assigns an unassigned ticket to the given technician
	// with a single conditional update (assignee IS NULL -> techID). It
	// returns a conflict error when the ticket is already assigned and a
	// not-found error when the ticket does not exist.
	Claim(ctx context.Context, ticketID uint, techID uint) error

	// MarkStarted atomically records the start of work with a single
	// conditional update (start_time IS NULL -> startedAt). It returns a
	// conflict error when the ticket was already started.
	MarkStarted(ctx context.Context, ticketID uint, startedAt time.Time) error
}

type Filter struct {
	Statuses   []vo.Status
	Priority   *vo.Priority
	AssetID    *uint
	AssigneeID *uint
	OpenerKind *vo.ActorKind
	OpenerID   *uint
	Unassigned bool
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
