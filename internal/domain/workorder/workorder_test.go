package workorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "mantis/internal/domain/workorder/valueobjects"
)

func TestNewMaintenance(t *testing.T) {
	tests := []struct {
		name          string
		require       bool
		partIDs       []uint
		initialStatus vo.Status
		wantErr       string
	}{
		{
			name:          "with required parts",
			require:       true,
			partIDs:       []uint{1, 2},
			initialStatus: vo.StatusPending,
		},
		{
			name:          "no parts",
			require:       false,
			initialStatus: vo.StatusOpen,
		},
		{
			name:          "parts without requirement",
			require:       false,
			partIDs:       []uint{1},
			initialStatus: vo.StatusPending,
			wantErr:       "spare parts listed but not required",
		},
		{
			name:          "zero part ID",
			require:       true,
			partIDs:       []uint{1, 0},
			initialStatus: vo.StatusPending,
			wantErr:       "spare part ID cannot be zero",
		},
		{
			name:          "invalid initial status",
			require:       false,
			initialStatus: vo.StatusCompleted,
			wantErr:       "initial work order status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wo, err := NewMaintenance(tt.require, tt.partIDs, tt.initialStatus)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.KindMaintenance, wo.Kind())
			assert.Equal(t, tt.initialStatus, wo.Status())
			assert.Equal(t, tt.require, wo.RequireSpareParts())
			assert.Len(t, wo.SparePartIDs(), len(tt.partIDs))
			assert.Nil(t, wo.Croca())
		})
	}
}

func TestNewAccident_CrocaSentinel(t *testing.T) {
	wo, err := NewAccident(false, nil, vo.StatusOpen)
	require.NoError(t, err)

	require.NotNil(t, wo.Croca())
	assert.True(t, wo.Croca().IsDefault())
	assert.False(t, wo.CrocaFilled())
}

func TestWorkOrder_FillCroca(t *testing.T) {
	t.Run("any divergence from the sentinel counts as filled", func(t *testing.T) {
		photo := "https://cdn.example.com/crash.jpg"
		tests := []struct {
			name      string
			crocaType vo.CrocaType
			cost      string
			photoURL  *string
			filled    bool
		}{
			{"sentinel triple", vo.CrocaTypeCroca, "0", nil, false},
			{"cost changed", vo.CrocaTypeCroca, "1500", nil, true},
			{"type changed", vo.CrocaTypeAnonymous, "0", nil, true},
			{"photo added", vo.CrocaTypeCroca, "0", &photo, true},
			{"insurance expired", vo.CrocaTypeInsuranceExpired, "900", &photo, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				wo, err := NewAccident(false, nil, vo.StatusOpen)
				require.NoError(t, err)

				croca, err := vo.NewCroca(tt.crocaType, tt.cost, tt.photoURL)
				require.NoError(t, err)
				require.NoError(t, wo.FillCroca(croca))

				assert.Equal(t, tt.filled, wo.CrocaFilled())
			})
		}
	})

	t.Run("non-accident kinds have no croca", func(t *testing.T) {
		wo, err := NewMaintenance(false, nil, vo.StatusOpen)
		require.NoError(t, err)

		croca, err := vo.NewCroca(vo.CrocaTypeAnonymous, "100", nil)
		require.NoError(t, err)
		err = wo.FillCroca(croca)
		require.Error(t, err)
	})
}

func TestWorkOrder_BindToTicket(t *testing.T) {
	wo, err := NewCleaning("weekly wipe-down", vo.StatusOpen)
	require.NoError(t, err)

	require.NoError(t, wo.BindToTicket(42))
	assert.Equal(t, uint(42), wo.TicketID())

	err = wo.BindToTicket(43)
	require.Error(t, err)
	assert.Equal(t, uint(42), wo.TicketID())
}

func TestWorkOrder_Close(t *testing.T) {
	t.Run("maintenance ends completed", func(t *testing.T) {
		wo, err := NewMaintenance(false, nil, vo.StatusOpen)
		require.NoError(t, err)

		require.NoError(t, wo.Close())
		assert.Equal(t, vo.StatusCompleted, wo.Status())
	})

	t.Run("cleaning ends closed", func(t *testing.T) {
		wo, err := NewCleaning("", vo.StatusOpen)
		require.NoError(t, err)

		require.NoError(t, wo.Close())
		assert.Equal(t, vo.StatusClosed, wo.Status())
	})

	t.Run("accident ends closed", func(t *testing.T) {
		wo, err := NewAccident(false, nil, vo.StatusOpen)
		require.NoError(t, err)

		require.NoError(t, wo.Close())
		assert.Equal(t, vo.StatusClosed, wo.Status())
	})

	t.Run("double close fails", func(t *testing.T) {
		wo, err := NewMaintenance(false, nil, vo.StatusOpen)
		require.NoError(t, err)

		require.NoError(t, wo.Close())
		err = wo.Close()
		require.Error(t, err)
	})
}

func TestWorkOrder_Reports(t *testing.T) {
	t.Run("report attaches once", func(t *testing.T) {
		wo, err := NewMaintenance(false, nil, vo.StatusOpen)
		require.NoError(t, err)

		require.NoError(t, wo.AttachReport(5))
		require.NotNil(t, wo.ReportID())
		assert.Equal(t, uint(5), *wo.ReportID())

		err = wo.AttachReport(6)
		require.Error(t, err)
	})

	t.Run("cleaning has no reject report", func(t *testing.T) {
		wo, err := NewCleaning("", vo.StatusOpen)
		require.NoError(t, err)

		err = wo.AttachRejectReport(5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no reject report")
	})

	t.Run("accident reject report attaches", func(t *testing.T) {
		wo, err := NewAccident(false, nil, vo.StatusPending)
		require.NoError(t, err)

		require.NoError(t, wo.AttachRejectReport(9))
		require.NotNil(t, wo.RejectReportID())
		assert.Equal(t, uint(9), *wo.RejectReportID())
	})

	t.Run("detach clears both links", func(t *testing.T) {
		wo, err := NewMaintenance(false, nil, vo.StatusOpen)
		require.NoError(t, err)
		require.NoError(t, wo.AttachReport(5))
		require.NoError(t, wo.AttachRejectReport(6))

		wo.DetachReports()
		assert.Nil(t, wo.ReportID())
		assert.Nil(t, wo.RejectReportID())
	})
}

func TestWorkOrder_UpdateSpareParts(t *testing.T) {
	t.Run("turning requirement off clears the list", func(t *testing.T) {
		wo, err := NewMaintenance(true, []uint{1, 2}, vo.StatusPending)
		require.NoError(t, err)

		require.NoError(t, wo.UpdateSpareParts(false, []uint{1, 2}))
		assert.False(t, wo.RequireSpareParts())
		assert.Empty(t, wo.SparePartIDs())
	})

	t.Run("cleaning never takes spare parts", func(t *testing.T) {
		wo, err := NewCleaning("", vo.StatusOpen)
		require.NoError(t, err)

		err = wo.UpdateSpareParts(true, []uint{1})
		require.Error(t, err)
	})
}
