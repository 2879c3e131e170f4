package usecases

import (
	"context"

	"mantis/internal/application/ticket/dto"
	"mantis/internal/domain/ticket"
	vo "mantis/internal/domain/ticket/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ListTicketsQuery struct {
	Statuses   []string
	Priority   *string
	AssetID    *uint
	AssigneeID *uint
	OpenerKind *string
	OpenerID   *uint
	Unassigned bool
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets  []dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

// ListTicketsUseCase returns a filtered, paginated ticket page.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	dtos := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, dto.FromTicket(t))
	}

	return &ListTicketsResult{
		Tickets:  dtos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	filter := ticket.Filter{
		AssetID:    query.AssetID,
		AssigneeID: query.AssigneeID,
		OpenerID:   query.OpenerID,
		Unassigned: query.Unassigned,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	for _, s := range query.Statuses {
		status, err := vo.NewStatus(s)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	if query.OpenerKind != nil {
		kind, err := vo.NewActorKind(*query.OpenerKind)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.OpenerKind = &kind
	}

	return filter, nil
}
