package valueobjects

import "fmt"

type Status string

const (
	// StatusOpen is the initial state for admin-opened and scheduler-generated tickets.
	StatusOpen Status = "open"
	// StatusPending is the initial state for tech-opened tickets awaiting admin clearance.
	StatusPending Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusRejected   Status = "rejected"
	StatusDone       Status = "done"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusPending:    true,
	StatusInProgress: true,
	StatusRejected:   true,
	StatusDone:       true,
	StatusClosed:     true,
}

var statusTransitions = map[Status][]Status{
	StatusOpen: {
		StatusInProgress,
		StatusRejected,
		StatusClosed,
	},
	StatusPending: {
		StatusOpen,
		StatusInProgress,
		StatusRejected,
	},
	StatusInProgress: {
		StatusDone,
		StatusClosed,
	},
	StatusRejected: {
		// Reject-then-resubmit report flow returns the ticket to the approval step.
		StatusPending,
	},
	StatusDone: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsRejected() bool {
	return s == StatusRejected
}

func (s Status) IsDone() bool {
	return s == StatusDone
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// IsTerminal reports whether no further work happens on the ticket.
func (s Status) IsTerminal() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}
