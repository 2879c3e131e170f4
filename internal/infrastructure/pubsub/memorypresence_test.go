package pubsub

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/notification"
)

var _ notification.PresenceDirectory = (*MemoryPresenceDirectory)(nil)

func TestMemoryPresenceDirectory_Admins(t *testing.T) {
	ctx := context.Background()
	dir := NewMemoryPresenceDirectory()

	admins, err := dir.ConnectedAdmins(ctx)
	require.NoError(t, err)
	assert.Empty(t, admins)

	require.NoError(t, dir.RegisterAdmin(ctx, 3))
	require.NoError(t, dir.RegisterAdmin(ctx, 1))
	require.NoError(t, dir.RegisterAdmin(ctx, 3)) // re-register is idempotent

	admins, err = dir.ConnectedAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3}, admins)

	require.NoError(t, dir.DeregisterAdmin(ctx, 3))
	require.NoError(t, dir.DeregisterAdmin(ctx, 99)) // unknown ID is a no-op

	admins, err = dir.ConnectedAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, admins)
}

func TestMemoryPresenceDirectory_Techs(t *testing.T) {
	ctx := context.Background()
	dir := NewMemoryPresenceDirectory()

	connected, err := dir.IsTechConnected(ctx, 7)
	require.NoError(t, err)
	assert.False(t, connected)

	require.NoError(t, dir.RegisterTech(ctx, 7))

	connected, err = dir.IsTechConnected(ctx, 7)
	require.NoError(t, err)
	assert.True(t, connected)

	require.NoError(t, dir.DeregisterTech(ctx, 7))

	connected, err = dir.IsTechConnected(ctx, 7)
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestMemoryPresenceDirectory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	dir := NewMemoryPresenceDirectory()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_ = dir.RegisterTech(ctx, id)
			_, _ = dir.IsTechConnected(ctx, id)
			_ = dir.RegisterAdmin(ctx, id)
			_, _ = dir.ConnectedAdmins(ctx)
		}(uint(i))
	}
	wg.Wait()

	admins, err := dir.ConnectedAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 50)
}
