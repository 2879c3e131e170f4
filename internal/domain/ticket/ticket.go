package ticket

import (
	"fmt"
	"time"

	vo "mantis/internal/domain/ticket/valueobjects"
)

// ScheduledDescription is the fixed description used for tickets
// materialized by the recurring-work scheduler.
const ScheduledDescription = "Scheduled work generated from asset schedule"

type Ticket struct {
	id              uint
	opener          *vo.Actor
	assigneeID      *uint
	priority        vo.Priority
	assetID         uint
	description     string
	status          vo.Status
	techApproved    bool
	approval        vo.Approval
	rejectionReason string
	startTime       *time.Time
	endTime         *time.Time
	timerMinutes    *int
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTicket creates a ticket opened by a human actor.
// A tech-opened ticket starts pending and needs an admin's clearance before
// work can start; an admin-opened ticket is cleared immediately. A tech
// opening a ticket with no assignee is auto-assigned to themselves.
func NewTicket(
	opener vo.Actor,
	assigneeID *uint,
	priority vo.Priority,
	assetID uint,
	description string,
) (*Ticket, error) {
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if opener.ID() == 0 {
		return nil, fmt.Errorf("opener is required")
	}
	if assigneeID != nil && *assigneeID == 0 {
		return nil, fmt.Errorf("assignee ID cannot be zero")
	}

	status := vo.StatusOpen
	techApproved := true
	if opener.IsTech() {
		status = vo.StatusPending
		techApproved = false
		if assigneeID == nil {
			openerID := opener.ID()
			assigneeID = &openerID
		}
	}

	now := time.Now()
	openerCopy := opener

	return &Ticket{
		opener:       &openerCopy,
		assigneeID:   assigneeID,
		priority:     priority,
		assetID:      assetID,
		description:  description,
		status:       status,
		techApproved: techApproved,
		approval:     vo.ApprovalUndecided,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewScheduledTicket creates a ticket materialized by the recurring-work
// scheduler: medium priority, no opener, no assignee, cleared to start.
func NewScheduledTicket(assetID uint) (*Ticket, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}

	now := time.Now()
	return &Ticket{
		priority:     vo.PriorityMedium,
		assetID:      assetID,
		description:  ScheduledDescription,
		status:       vo.StatusOpen,
		techApproved: true,
		approval:     vo.ApprovalUndecided,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id uint,
	opener *vo.Actor,
	assigneeID *uint,
	priority vo.Priority,
	assetID uint,
	description string,
	status vo.Status,
	techApproved bool,
	approval vo.Approval,
	rejectionReason string,
	startTime *time.Time,
	endTime *time.Time,
	timerMinutes *int,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !approval.IsValid() {
		return nil, fmt.Errorf("invalid approval state")
	}
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}

	return &Ticket{
		id:              id,
		opener:          opener,
		assigneeID:      assigneeID,
		priority:        priority,
		assetID:         assetID,
		description:     description,
		status:          status,
		techApproved:    techApproved,
		approval:        approval,
		rejectionReason: rejectionReason,
		startTime:       startTime,
		endTime:         endTime,
		timerMinutes:    timerMinutes,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Opener() *vo.Actor {
	return t.opener
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) AssetID() uint {
	return t.assetID
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

// TechApproved reports whether a supervising admin has cleared a
// tech-opened ticket to begin work. Admin-opened and scheduler-generated
// tickets are cleared from the start.
func (t *Ticket) TechApproved() bool {
	return t.techApproved
}

func (t *Ticket) Approval() vo.Approval {
	return t.approval
}

func (t *Ticket) RejectionReason() string {
	return t.rejectionReason
}

func (t *Ticket) StartTime() *time.Time {
	return t.startTime
}

func (t *Ticket) EndTime() *time.Time {
	return t.endTime
}

// TimerMinutes is the derived work duration, set exactly once at close.
func (t *Ticket) TimerMinutes() *int {
	return t.timerMinutes
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Approve moves the approval state from undecided to approved.
func (t *Ticket) Approve() error {
	if !t.approval.IsUndecided() {
		return fmt.Errorf("ticket approval already decided: %s", t.approval)
	}

	t.approval = vo.ApprovalApproved
	t.techApproved = true
	if t.status.IsPending() {
		t.status = vo.StatusOpen
	}
	t.updatedAt = time.Now()
	t.version++

	return nil
}

// Reject moves the approval state from undecided to rejected.
// A rejection reason is mandatory.
func (t *Ticket) Reject(reason string) error {
	if !t.approval.IsUndecided() {
		return fmt.Errorf("ticket approval already decided: %s", t.approval)
	}
	if len(reason) == 0 {
		return fmt.Errorf("rejection reason is required")
	}

	t.approval = vo.ApprovalRejected
	t.rejectionReason = reason
	t.status = vo.StatusRejected
	t.updatedAt = time.Now()
	t.version++

	return nil
}

// Resubmit returns a rejected ticket to the approval step after a
// reject report has been attached.
func (t *Ticket) Resubmit() error {
	if !t.approval.IsRejected() {
		return fmt.Errorf("only rejected tickets can be resubmitted")
	}

	t.approval = vo.ApprovalUndecided
	t.rejectionReason = ""
	t.status = vo.StatusPending
	t.updatedAt = time.Now()
	t.version++

	return nil
}

// Start records the beginning of work. The start time is set at most once;
// a second call fails with an already-started error.
func (t *Ticket) Start(now time.Time) error {
	if !t.techApproved {
		return fmt.Errorf("ticket has not been cleared to start")
	}
	if t.startTime != nil {
		return fmt.Errorf("ticket already started")
	}
	if !t.status.CanTransitionTo(vo.StatusInProgress) {
		return fmt.Errorf("cannot start ticket with status %s", t.status)
	}

	t.startTime = &now
	t.status = vo.StatusInProgress
	t.updatedAt = now
	t.version++

	return nil
}

// Close completes the ticket and derives the timer. It requires the
// approval to be decided in favor and the work to have been started.
func (t *Ticket) Close(now time.Time) error {
	if !t.approval.IsApproved() {
		return fmt.Errorf("ticket cannot be closed before approval")
	}
	if t.startTime == nil {
		return fmt.Errorf("ticket has not been started")
	}
	if t.timerMinutes != nil {
		return fmt.Errorf("ticket already closed")
	}
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket with status %s", t.status)
	}

	minutes := int(now.Sub(*t.startTime) / time.Minute)
	t.endTime = &now
	t.timerMinutes = &minutes
	t.status = vo.StatusClosed
	t.updatedAt = now
	t.version++

	return nil
}

// Assign sets the assignee at creation time. Later reassignment happens
// through the atomic claim operation on the repository.
func (t *Ticket) Assign(techID uint) error {
	if techID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &techID
	t.updatedAt = time.Now()
	t.version++

	return nil
}

// IsAssigned reports whether a technician holds the ticket.
func (t *Ticket) IsAssigned() bool {
	return t.assigneeID != nil
}

// IsAssignedTo reports whether the given technician holds the ticket.
func (t *Ticket) IsAssignedTo(techID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == techID
}
