package pubsub

import (
	"context"
	"sort"
	"sync"
)

// MemoryPresenceDirectory tracks connected actors in process memory. It only
// sees connections held by this instance, so it suits single-instance
// deployments and tests; multi-instance setups use the Redis directory.
type MemoryPresenceDirectory struct {
	mu     sync.RWMutex
	admins map[uint]struct{}
	techs  map[uint]struct{}
}

func NewMemoryPresenceDirectory() *MemoryPresenceDirectory {
	return &MemoryPresenceDirectory{
		admins: make(map[uint]struct{}),
		techs:  make(map[uint]struct{}),
	}
}

func (d *MemoryPresenceDirectory) RegisterAdmin(_ context.Context, adminID uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.admins[adminID] = struct{}{}
	return nil
}

func (d *MemoryPresenceDirectory) DeregisterAdmin(_ context.Context, adminID uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.admins, adminID)
	return nil
}

func (d *MemoryPresenceDirectory) RegisterTech(_ context.Context, techID uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.techs[techID] = struct{}{}
	return nil
}

func (d *MemoryPresenceDirectory) DeregisterTech(_ context.Context, techID uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.techs, techID)
	return nil
}

func (d *MemoryPresenceDirectory) ConnectedAdmins(_ context.Context) ([]uint, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]uint, 0, len(d.admins))
	for id := range d.admins {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (d *MemoryPresenceDirectory) IsTechConnected(_ context.Context, techID uint) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.techs[techID]
	return ok, nil
}
