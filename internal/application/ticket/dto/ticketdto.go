package dto

import (
	"time"

	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
)

// TicketDTO is the transport shape of a ticket for the interface layer.
type TicketDTO struct {
	ID              uint       `json:"id"`
	OpenerKind      *string    `json:"opener_kind,omitempty"`
	OpenerID        *uint      `json:"opener_id,omitempty"`
	AssigneeID      *uint      `json:"assignee_id,omitempty"`
	Priority        string     `json:"priority"`
	AssetID         uint       `json:"asset_id"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	TechApproved    bool       `json:"tech_approved"`
	Approval        string     `json:"approval"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	TimerMinutes    *int       `json:"timer_minutes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// WorkOrderDTO is the transport shape of the kind-specific payload.
type WorkOrderDTO struct {
	ID                uint      `json:"id"`
	TicketID          uint      `json:"ticket_id"`
	Kind              string    `json:"kind"`
	Status            string    `json:"status"`
	RequireSpareParts bool      `json:"require_spare_parts"`
	SparePartIDs      []uint    `json:"spare_part_ids,omitempty"`
	ReportID          *uint     `json:"report_id,omitempty"`
	RejectReportID    *uint     `json:"reject_report_id,omitempty"`
	Note              string    `json:"note,omitempty"`
	Croca             *CrocaDTO `json:"croca,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CrocaDTO carries accident incident data.
type CrocaDTO struct {
	Type     string  `json:"type"`
	Cost     string  `json:"cost"`
	PhotoURL *string `json:"photo_url,omitempty"`
	Filled   bool    `json:"filled"`
}

// TicketDetailDTO pairs a ticket with its work order.
type TicketDetailDTO struct {
	Ticket    TicketDTO     `json:"ticket"`
	WorkOrder *WorkOrderDTO `json:"work_order,omitempty"`
}

func FromTicket(t *ticket.Ticket) TicketDTO {
	d := TicketDTO{
		ID:              t.ID(),
		AssigneeID:      t.AssigneeID(),
		Priority:        t.Priority().String(),
		AssetID:         t.AssetID(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		TechApproved:    t.TechApproved(),
		Approval:        t.Approval().String(),
		RejectionReason: t.RejectionReason(),
		StartTime:       t.StartTime(),
		EndTime:         t.EndTime(),
		TimerMinutes:    t.TimerMinutes(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}

	if opener := t.Opener(); opener != nil {
		kind := opener.Kind().String()
		id := opener.ID()
		d.OpenerKind = &kind
		d.OpenerID = &id
	}

	return d
}

func FromWorkOrder(w *workorder.WorkOrder) WorkOrderDTO {
	d := WorkOrderDTO{
		ID:                w.ID(),
		TicketID:          w.TicketID(),
		Kind:              w.Kind().String(),
		Status:            w.Status().String(),
		RequireSpareParts: w.RequireSpareParts(),
		SparePartIDs:      w.SparePartIDs(),
		ReportID:          w.ReportID(),
		RejectReportID:    w.RejectReportID(),
		Note:              w.Note(),
		CreatedAt:         w.CreatedAt(),
		UpdatedAt:         w.UpdatedAt(),
	}

	if croca := w.Croca(); croca != nil {
		d.Croca = &CrocaDTO{
			Type:     croca.Type().String(),
			Cost:     croca.Cost(),
			PhotoURL: croca.PhotoURL(),
			Filled:   w.CrocaFilled(),
		}
	}

	return d
}
