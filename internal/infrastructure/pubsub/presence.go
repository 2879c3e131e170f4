package pubsub

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"mantis/internal/shared/logger"
)

const (
	presenceAdminsKey = "mantis:presence:admins"
	presenceTechsKey  = "mantis:presence:techs"
)

// RedisPresenceDirectory tracks connected actors in shared Redis sets so
// that presence survives across server instances.
type RedisPresenceDirectory struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisPresenceDirectory(client *redis.Client, logger logger.Interface) *RedisPresenceDirectory {
	return &RedisPresenceDirectory{
		client: client,
		logger: logger,
	}
}

func (d *RedisPresenceDirectory) RegisterAdmin(ctx context.Context, adminID uint) error {
	if err := d.client.SAdd(ctx, presenceAdminsKey, adminID).Err(); err != nil {
		return fmt.Errorf("failed to register admin presence: %w", err)
	}
	d.logger.Debugw("admin connected", "admin_id", adminID)
	return nil
}

func (d *RedisPresenceDirectory) DeregisterAdmin(ctx context.Context, adminID uint) error {
	if err := d.client.SRem(ctx, presenceAdminsKey, adminID).Err(); err != nil {
		return fmt.Errorf("failed to deregister admin presence: %w", err)
	}
	d.logger.Debugw("admin disconnected", "admin_id", adminID)
	return nil
}

func (d *RedisPresenceDirectory) RegisterTech(ctx context.Context, techID uint) error {
	if err := d.client.SAdd(ctx, presenceTechsKey, techID).Err(); err != nil {
		return fmt.Errorf("failed to register tech presence: %w", err)
	}
	d.logger.Debugw("tech connected", "tech_id", techID)
	return nil
}

func (d *RedisPresenceDirectory) DeregisterTech(ctx context.Context, techID uint) error {
	if err := d.client.SRem(ctx, presenceTechsKey, techID).Err(); err != nil {
		return fmt.Errorf("failed to deregister tech presence: %w", err)
	}
	d.logger.Debugw("tech disconnected", "tech_id", techID)
	return nil
}

func (d *RedisPresenceDirectory) ConnectedAdmins(ctx context.Context) ([]uint, error) {
	members, err := d.client.SMembers(ctx, presenceAdminsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list connected admins: %w", err)
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 32)
		if err != nil {
			d.logger.Warnw("skipping malformed presence entry", "value", m)
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func (d *RedisPresenceDirectory) IsTechConnected(ctx context.Context, techID uint) (bool, error) {
	connected, err := d.client.SIsMember(ctx, presenceTechsKey, techID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check tech presence: %w", err)
	}
	return connected, nil
}
