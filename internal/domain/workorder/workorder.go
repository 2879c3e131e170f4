package workorder

import (
	"fmt"
	"time"

	vo "mantis/internal/domain/workorder/valueobjects"
)

// WorkOrder is the kind-specific payload paired 1:1 with a ticket. The
// three specializations (maintenance, cleaning, accident) share one
// aggregate discriminated by Kind; kind-specific fields are only
// meaningful for the kinds that own them.
type WorkOrder struct {
	id                uint
	ticketID          uint
	kind              vo.Kind
	status            vo.Status
	requireSpareParts bool
	sparePartIDs      []uint
	reportID          *uint
	rejectReportID    *uint
	note              string
	croca             *vo.Croca
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

// NewMaintenance creates a maintenance work order. Spare part IDs are only
// accepted when the order declares it requires spare parts.
func NewMaintenance(requireSpareParts bool, sparePartIDs []uint, initialStatus vo.Status) (*WorkOrder, error) {
	if err := validateSpareParts(requireSpareParts, sparePartIDs); err != nil {
		return nil, err
	}
	if err := validateInitialStatus(initialStatus); err != nil {
		return nil, err
	}

	now := time.Now()
	return &WorkOrder{
		kind:              vo.KindMaintenance,
		status:            initialStatus,
		requireSpareParts: requireSpareParts,
		sparePartIDs:      copyIDs(sparePartIDs),
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// NewCleaning creates a cleaning work order. Cleaning never touches spare parts.
func NewCleaning(note string, initialStatus vo.Status) (*WorkOrder, error) {
	if err := validateInitialStatus(initialStatus); err != nil {
		return nil, err
	}

	now := time.Now()
	return &WorkOrder{
		kind:      vo.KindCleaning,
		status:    initialStatus,
		note:      note,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewAccident creates an accident work order with the croca sentinel
// defaulted; the croca counts as unfilled until any field diverges from
// that default.
func NewAccident(requireSpareParts bool, sparePartIDs []uint, initialStatus vo.Status) (*WorkOrder, error) {
	if err := validateSpareParts(requireSpareParts, sparePartIDs); err != nil {
		return nil, err
	}
	if err := validateInitialStatus(initialStatus); err != nil {
		return nil, err
	}

	now := time.Now()
	croca := vo.DefaultCroca()
	return &WorkOrder{
		kind:              vo.KindAccident,
		status:            initialStatus,
		requireSpareParts: requireSpareParts,
		sparePartIDs:      copyIDs(sparePartIDs),
		croca:             &croca,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructWorkOrder(
	id uint,
	ticketID uint,
	kind vo.Kind,
	status vo.Status,
	requireSpareParts bool,
	sparePartIDs []uint,
	reportID *uint,
	rejectReportID *uint,
	note string,
	croca *vo.Croca,
	version int,
	createdAt, updatedAt time.Time,
) (*WorkOrder, error) {
	if id == 0 {
		return nil, fmt.Errorf("work order ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("work order ticket ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid work order kind")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid work order status")
	}
	if kind.IsAccident() && croca == nil {
		return nil, fmt.Errorf("accident work order requires croca data")
	}

	return &WorkOrder{
		id:                id,
		ticketID:          ticketID,
		kind:              kind,
		status:            status,
		requireSpareParts: requireSpareParts,
		sparePartIDs:      copyIDs(sparePartIDs),
		reportID:          reportID,
		rejectReportID:    rejectReportID,
		note:              note,
		croca:             croca,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func validateSpareParts(require bool, ids []uint) error {
	if !require && len(ids) > 0 {
		return fmt.Errorf("spare parts listed but not required")
	}
	for _, id := range ids {
		if id == 0 {
			return fmt.Errorf("spare part ID cannot be zero")
		}
	}
	return nil
}

func validateInitialStatus(s vo.Status) error {
	if !s.IsPending() && !s.IsOpen() {
		return fmt.Errorf("initial work order status must be pending or open, got %s", s)
	}
	return nil
}

func copyIDs(ids []uint) []uint {
	out := make([]uint, len(ids))
	copy(out, ids)
	return out
}

func (w *WorkOrder) ID() uint {
	return w.id
}

func (w *WorkOrder) TicketID() uint {
	return w.ticketID
}

func (w *WorkOrder) Kind() vo.Kind {
	return w.kind
}

func (w *WorkOrder) Status() vo.Status {
	return w.status
}

func (w *WorkOrder) RequireSpareParts() bool {
	return w.requireSpareParts
}

func (w *WorkOrder) SparePartIDs() []uint {
	return copyIDs(w.sparePartIDs)
}

func (w *WorkOrder) ReportID() *uint {
	return w.reportID
}

func (w *WorkOrder) RejectReportID() *uint {
	return w.rejectReportID
}

func (w *WorkOrder) Note() string {
	return w.note
}

func (w *WorkOrder) Croca() *vo.Croca {
	return w.croca
}

func (w *WorkOrder) Version() int {
	return w.version
}

func (w *WorkOrder) CreatedAt() time.Time {
	return w.createdAt
}

func (w *WorkOrder) UpdatedAt() time.Time {
	return w.updatedAt
}

func (w *WorkOrder) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("work order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("work order ID cannot be zero")
	}
	w.id = id
	return nil
}

// BindToTicket links the work order to its ticket. Ticket and work order
// are created in the same transaction; the link is set exactly once.
func (w *WorkOrder) BindToTicket(ticketID uint) error {
	if w.ticketID != 0 {
		return fmt.Errorf("work order is already bound to ticket %d", w.ticketID)
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	w.ticketID = ticketID
	return nil
}

// Start moves the work order to in-progress alongside its ticket.
func (w *WorkOrder) Start() error {
	if w.status.IsInProgress() {
		return fmt.Errorf("work order already in progress")
	}
	if w.status.IsCompleted() || w.status.IsClosed() {
		return fmt.Errorf("work order already finished")
	}

	w.status = vo.StatusInProgress
	w.updatedAt = time.Now()
	w.version++

	return nil
}

// Close finishes the work order: maintenance ends completed, cleaning and
// accident end closed.
func (w *WorkOrder) Close() error {
	if w.status.IsCompleted() || w.status.IsClosed() {
		return fmt.Errorf("work order already finished")
	}

	if w.kind.IsMaintenance() {
		w.status = vo.StatusCompleted
	} else {
		w.status = vo.StatusClosed
	}
	w.updatedAt = time.Now()
	w.version++

	return nil
}

// MarkOpen releases a pending work order for execution once its ticket
// clears approval.
func (w *WorkOrder) MarkOpen() error {
	if !w.status.IsPending() {
		return fmt.Errorf("only pending work orders can be opened, got %s", w.status)
	}

	w.status = vo.StatusOpen
	w.updatedAt = time.Now()
	w.version++

	return nil
}

// MarkPending returns the work order to the approval queue during the
// reject-then-resubmit flow.
func (w *WorkOrder) MarkPending() error {
	if w.status.IsCompleted() || w.status.IsClosed() {
		return fmt.Errorf("work order already finished")
	}

	w.status = vo.StatusPending
	w.updatedAt = time.Now()
	w.version++

	return nil
}

// AttachReport links the evidence report. The link is set once.
func (w *WorkOrder) AttachReport(reportID uint) error {
	if reportID == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	if w.reportID != nil {
		return fmt.Errorf("report already attached")
	}

	w.reportID = &reportID
	w.updatedAt = time.Now()
	w.version++

	return nil
}

// AttachRejectReport links the resubmission report for a rejected ticket.
// Cleaning work orders have no reject-report flow.
func (w *WorkOrder) AttachRejectReport(reportID uint) error {
	if !w.kind.SupportsRejectReport() {
		return fmt.Errorf("%s work orders have no reject report", w.kind)
	}
	if reportID == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	if w.rejectReportID != nil {
		return fmt.Errorf("reject report already attached")
	}

	w.rejectReportID = &reportID
	w.updatedAt = time.Now()
	w.version++

	return nil
}

// DetachReports clears report links prior to cascade deletion.
func (w *WorkOrder) DetachReports() {
	w.reportID = nil
	w.rejectReportID = nil
	w.updatedAt = time.Now()
}

// UpdateSpareParts replaces the required-parts declaration. Turning the
// requirement off clears the part list.
func (w *WorkOrder) UpdateSpareParts(require bool, sparePartIDs []uint) error {
	if !w.kind.SupportsSpareParts() {
		return fmt.Errorf("%s work orders do not use spare parts", w.kind)
	}
	if !require {
		sparePartIDs = nil
	}
	if err := validateSpareParts(require, sparePartIDs); err != nil {
		return err
	}

	w.requireSpareParts = require
	w.sparePartIDs = copyIDs(sparePartIDs)
	w.updatedAt = time.Now()
	w.version++

	return nil
}

// FillCroca records incident data on an accident work order.
func (w *WorkOrder) FillCroca(croca vo.Croca) error {
	if !w.kind.IsAccident() {
		return fmt.Errorf("%s work orders have no croca data", w.kind)
	}

	w.croca = &croca
	w.updatedAt = time.Now()
	w.version++

	return nil
}

// CrocaFilled reports whether incident data diverges from the creation sentinel.
func (w *WorkOrder) CrocaFilled() bool {
	return w.kind.IsAccident() && w.croca != nil && !w.croca.IsDefault()
}
