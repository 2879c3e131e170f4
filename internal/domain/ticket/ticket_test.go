package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "mantis/internal/domain/ticket/valueobjects"
)

func mustActor(t *testing.T, kind vo.ActorKind, id uint) vo.Actor {
	t.Helper()
	actor, err := vo.NewActor(kind, id)
	require.NoError(t, err)
	return actor
}

func TestNewTicket_TechOpener(t *testing.T) {
	opener := mustActor(t, vo.ActorTech, 7)

	tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "pump leaking")
	require.NoError(t, err)

	assert.Equal(t, vo.StatusPending, tkt.Status())
	assert.False(t, tkt.TechApproved())
	assert.Equal(t, vo.ApprovalUndecided, tkt.Approval())

	// Tech with no explicit assignee is auto-assigned to themselves.
	require.NotNil(t, tkt.AssigneeID())
	assert.Equal(t, uint(7), *tkt.AssigneeID())
}

func TestNewTicket_TechOpenerWithExplicitAssignee(t *testing.T) {
	opener := mustActor(t, vo.ActorTech, 7)
	assignee := uint(9)

	tkt, err := NewTicket(opener, &assignee, vo.PriorityLow, 3, "filter swap")
	require.NoError(t, err)

	require.NotNil(t, tkt.AssigneeID())
	assert.Equal(t, uint(9), *tkt.AssigneeID())
}

func TestNewTicket_AdminOpener(t *testing.T) {
	opener := mustActor(t, vo.ActorAdmin, 2)

	tkt, err := NewTicket(opener, nil, vo.PriorityMedium, 5, "inspection")
	require.NoError(t, err)

	assert.Equal(t, vo.StatusOpen, tkt.Status())
	assert.True(t, tkt.TechApproved())
	assert.Nil(t, tkt.AssigneeID())
}

func TestNewTicket_ValidationErrors(t *testing.T) {
	opener := mustActor(t, vo.ActorTech, 7)
	zero := uint(0)

	tests := []struct {
		name     string
		run      func() error
		expected string
	}{
		{
			name: "invalid priority",
			run: func() error {
				_, err := NewTicket(opener, nil, vo.Priority("critical"), 3, "x")
				return err
			},
			expected: "invalid priority",
		},
		{
			name: "missing asset",
			run: func() error {
				_, err := NewTicket(opener, nil, vo.PriorityLow, 0, "x")
				return err
			},
			expected: "asset ID is required",
		},
		{
			name: "zero assignee",
			run: func() error {
				_, err := NewTicket(opener, &zero, vo.PriorityLow, 3, "x")
				return err
			},
			expected: "assignee ID cannot be zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestNewScheduledTicket(t *testing.T) {
	tkt, err := NewScheduledTicket(4)
	require.NoError(t, err)

	assert.Nil(t, tkt.Opener())
	assert.Nil(t, tkt.AssigneeID())
	assert.Equal(t, vo.PriorityMedium, tkt.Priority())
	assert.Equal(t, vo.StatusOpen, tkt.Status())
	assert.True(t, tkt.TechApproved())
	assert.Equal(t, ScheduledDescription, tkt.Description())
}

func TestTicket_ApproveAndReject(t *testing.T) {
	opener := mustActor(t, vo.ActorTech, 7)

	t.Run("approve undecided", func(t *testing.T) {
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)

		require.NoError(t, tkt.Approve())
		assert.Equal(t, vo.ApprovalApproved, tkt.Approval())
		assert.True(t, tkt.TechApproved())
		assert.Equal(t, vo.StatusOpen, tkt.Status())
	})

	t.Run("approve twice fails", func(t *testing.T) {
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)

		require.NoError(t, tkt.Approve())
		err = tkt.Approve()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already decided")
	})

	t.Run("reject requires reason", func(t *testing.T) {
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)

		err = tkt.Reject("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rejection reason is required")
	})

	t.Run("reject moves to rejected", func(t *testing.T) {
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)

		require.NoError(t, tkt.Reject("wrong asset"))
		assert.Equal(t, vo.ApprovalRejected, tkt.Approval())
		assert.Equal(t, "wrong asset", tkt.RejectionReason())
		assert.Equal(t, vo.StatusRejected, tkt.Status())
	})

	t.Run("reject after approve fails", func(t *testing.T) {
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)

		require.NoError(t, tkt.Approve())
		err = tkt.Reject("too late")
		require.Error(t, err)
	})
}

func TestTicket_Resubmit(t *testing.T) {
	opener := mustActor(t, vo.ActorTech, 7)

	tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
	require.NoError(t, err)
	require.NoError(t, tkt.Reject("missing info"))

	require.NoError(t, tkt.Resubmit())
	assert.Equal(t, vo.ApprovalUndecided, tkt.Approval())
	assert.Empty(t, tkt.RejectionReason())
	assert.Equal(t, vo.StatusPending, tkt.Status())

	err = tkt.Resubmit()
	require.Error(t, err)
}

func TestTicket_StartGuards(t *testing.T) {
	now := time.Now()

	t.Run("uncleared tech ticket cannot start", func(t *testing.T) {
		opener := mustActor(t, vo.ActorTech, 7)
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)

		err = tkt.Start(now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not been cleared")
	})

	t.Run("start is idempotent-guarded", func(t *testing.T) {
		opener := mustActor(t, vo.ActorAdmin, 2)
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)

		require.NoError(t, tkt.Start(now))
		assert.Equal(t, vo.StatusInProgress, tkt.Status())
		require.NotNil(t, tkt.StartTime())

		first := *tkt.StartTime()
		err = tkt.Start(now.Add(time.Minute))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already started")
		assert.Equal(t, first, *tkt.StartTime())
	})
}

func TestTicket_Close(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	newStarted := func(t *testing.T) *Ticket {
		opener := mustActor(t, vo.ActorAdmin, 2)
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)
		require.NoError(t, tkt.Approve())
		require.NoError(t, tkt.Start(start))
		return tkt
	}

	t.Run("close computes timer in whole minutes", func(t *testing.T) {
		tkt := newStarted(t)

		end := start.Add(125 * time.Minute)
		require.NoError(t, tkt.Close(end))

		require.NotNil(t, tkt.TimerMinutes())
		assert.Equal(t, 125, *tkt.TimerMinutes())
		assert.Equal(t, vo.StatusClosed, tkt.Status())
		require.NotNil(t, tkt.EndTime())
		assert.Equal(t, end, *tkt.EndTime())
	})

	t.Run("close truncates partial minutes", func(t *testing.T) {
		tkt := newStarted(t)

		end := start.Add(125*time.Minute + 45*time.Second)
		require.NoError(t, tkt.Close(end))
		assert.Equal(t, 125, *tkt.TimerMinutes())
	})

	t.Run("close before approval fails", func(t *testing.T) {
		opener := mustActor(t, vo.ActorAdmin, 2)
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)
		require.NoError(t, tkt.Start(start))

		err = tkt.Close(start.Add(time.Hour))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "before approval")
		assert.Equal(t, vo.StatusInProgress, tkt.Status())
	})

	t.Run("close rejected ticket fails", func(t *testing.T) {
		opener := mustActor(t, vo.ActorAdmin, 2)
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)
		require.NoError(t, tkt.Reject("no"))

		err = tkt.Close(start.Add(time.Hour))
		require.Error(t, err)
		assert.Equal(t, vo.StatusRejected, tkt.Status())
	})

	t.Run("close unstarted ticket fails", func(t *testing.T) {
		opener := mustActor(t, vo.ActorAdmin, 2)
		tkt, err := NewTicket(opener, nil, vo.PriorityHigh, 3, "x")
		require.NoError(t, err)
		require.NoError(t, tkt.Approve())

		err = tkt.Close(start.Add(time.Hour))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not been started")
	})

	t.Run("timer set only once", func(t *testing.T) {
		tkt := newStarted(t)
		require.NoError(t, tkt.Close(start.Add(time.Hour)))

		err := tkt.Close(start.Add(2 * time.Hour))
		require.Error(t, err)
		assert.Equal(t, 60, *tkt.TimerMinutes())
	})
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, vo.StatusOpen.CanTransitionTo(vo.StatusInProgress))
	assert.True(t, vo.StatusPending.CanTransitionTo(vo.StatusRejected))
	assert.True(t, vo.StatusRejected.CanTransitionTo(vo.StatusPending))
	assert.True(t, vo.StatusInProgress.CanTransitionTo(vo.StatusClosed))
	assert.True(t, vo.StatusDone.CanTransitionTo(vo.StatusClosed))

	assert.False(t, vo.StatusClosed.CanTransitionTo(vo.StatusOpen))
	assert.False(t, vo.StatusOpen.CanTransitionTo(vo.StatusDone))
	assert.False(t, vo.StatusRejected.CanTransitionTo(vo.StatusInProgress))
}
