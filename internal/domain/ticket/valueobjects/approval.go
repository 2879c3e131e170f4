package valueobjects

import "fmt"

// Approval is the admin's decision on a ticket. It is a three-variant
// enum rather than a nullable bool so call sites handle the undecided
// state explicitly.
type Approval string

const (
	ApprovalUndecided Approval = "undecided"
	ApprovalApproved  Approval = "approved"
	ApprovalRejected  Approval = "rejected"
)

var validApprovals = map[Approval]bool{
	ApprovalUndecided: true,
	ApprovalApproved:  true,
	ApprovalRejected:  true,
}

func (a Approval) String() string {
	return string(a)
}

func (a Approval) IsValid() bool {
	return validApprovals[a]
}

func (a Approval) IsUndecided() bool {
	return a == ApprovalUndecided
}

func (a Approval) IsApproved() bool {
	return a == ApprovalApproved
}

func (a Approval) IsRejected() bool {
	return a == ApprovalRejected
}

func NewApproval(s string) (Approval, error) {
	a := Approval(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid approval state: %s", s)
	}
	return a, nil
}
