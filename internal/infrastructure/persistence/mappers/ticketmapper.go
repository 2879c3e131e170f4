package mappers

import (
	"fmt"
	"time"

	"mantis/internal/domain/ticket"
	vo "mantis/internal/domain/ticket/valueobjects"
	"mantis/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:              t.ID(),
		AssignedTo:      t.AssigneeID(),
		Priority:        t.Priority().String(),
		AssetID:         t.AssetID(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		TechApproved:    t.TechApproved(),
		Approval:        t.Approval().String(),
		RejectionReason: t.RejectionReason(),
		TimerMinutes:    t.TimerMinutes(),
		Version:         t.Version(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}

	// Scheduler-generated tickets have no opener.
	if opener := t.Opener(); opener != nil {
		kind := opener.Kind().String()
		id := opener.ID()
		model.OpenerKind = &kind
		model.OpenerID = &id
	}

	if t.StartTime() != nil {
		start := t.StartTime().UnixMilli()
		model.StartTime = &start
	}

	if t.EndTime() != nil {
		end := t.EndTime().UnixMilli()
		model.EndTime = &end
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	approval, err := vo.NewApproval(model.Approval)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	var opener *vo.Actor
	if model.OpenerKind != nil && model.OpenerID != nil {
		kind, err := vo.NewActorKind(*model.OpenerKind)
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
		}
		actor, err := vo.NewActor(kind, *model.OpenerID)
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
		}
		opener = &actor
	}

	var startTime, endTime *time.Time
	if model.StartTime != nil {
		ts := convertMillisToTime(*model.StartTime)
		startTime = &ts
	}
	if model.EndTime != nil {
		ts := convertMillisToTime(*model.EndTime)
		endTime = &ts
	}

	return ticket.ReconstructTicket(
		model.ID,
		opener,
		model.AssignedTo,
		priority,
		model.AssetID,
		model.Description,
		status,
		model.TechApproved,
		approval,
		model.RejectionReason,
		startTime,
		endTime,
		model.TimerMinutes,
		model.Version,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
