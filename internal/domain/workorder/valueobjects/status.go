package valueobjects

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusOpen:       true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid work order status: %s", s)
	}
	return st, nil
}
