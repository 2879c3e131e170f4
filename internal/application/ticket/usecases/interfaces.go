package usecases

import (
	"context"

	"mantis/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ApproveTicketExecutor interface {
	Execute(ctx context.Context, cmd ApproveTicketCommand) (*ApproveTicketResult, error)
}

type RejectTicketExecutor interface {
	Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error)
}

type ClaimTicketExecutor interface {
	Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error)
}

type StartTicketExecutor interface {
	Execute(ctx context.Context, cmd StartTicketCommand) (*StartTicketResult, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

type AttachReportExecutor interface {
	Execute(ctx context.Context, cmd AttachReportCommand) (*AttachReportResult, error)
}

type EditReportExecutor interface {
	Execute(ctx context.Context, cmd EditReportCommand) (*EditReportResult, error)
}

type AttachRejectReportExecutor interface {
	Execute(ctx context.Context, cmd AttachRejectReportCommand) (*AttachRejectReportResult, error)
}

type UpdateRequiredSparePartsExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequiredSparePartsCommand) (*UpdateRequiredSparePartsResult, error)
}

type FillCrocaExecutor interface {
	Execute(ctx context.Context, cmd FillCrocaCommand) (*FillCrocaResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
