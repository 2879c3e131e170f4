package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mantis/internal/domain/notification"
	"mantis/internal/shared/goroutine"
	"mantis/internal/shared/logger"
)

const notificationChannel = "mantis:notifications"

// NotificationEnvelope carries one event plus its audience selector across
// instances. Delivery gateways subscribe and filter for their own
// connected actors.
type NotificationEnvelope struct {
	AudienceKind string             `json:"audience_kind"`
	TechID       uint               `json:"tech_id,omitempty"`
	Event        notification.Event `json:"event"`
}

// NotificationSubscriber receives the cross-instance notification stream.
type NotificationSubscriber interface {
	Subscribe(ctx context.Context, handler func(envelope NotificationEnvelope)) error
}

// RedisNotificationBus implements notification.Publisher and
// NotificationSubscriber over Redis Pub/Sub.
type RedisNotificationBus struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisNotificationBus(client *redis.Client, logger logger.Interface) *RedisNotificationBus {
	return &RedisNotificationBus{
		client: client,
		logger: logger,
	}
}

// Notify publishes the event for the given audience. Publishing is best
// effort from the caller's point of view: delivery is never awaited.
func (b *RedisNotificationBus) Notify(ctx context.Context, audience notification.Audience, event notification.Event) error {
	if err := audience.Validate(); err != nil {
		return err
	}

	envelope := NotificationEnvelope{
		AudienceKind: string(audience.Kind),
		TechID:       audience.TechID,
		Event:        event,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal notification envelope: %w", err)
	}

	if err := b.client.Publish(ctx, notificationChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish notification",
			"audience", audience.Kind,
			"title", event.Title,
			"error", err,
		)
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	b.logger.Debugw("notification published",
		"audience", audience.Kind,
		"title", event.Title,
	)
	return nil
}

// Subscribe consumes the notification stream with automatic reconnection
// and exponential backoff.
func (b *RedisNotificationBus) Subscribe(ctx context.Context, handler func(envelope NotificationEnvelope)) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.logger.Warnw("notification subscription disconnected, reconnecting",
			"channel", notificationChannel,
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisNotificationBus) subscribe(ctx context.Context, handler func(envelope NotificationEnvelope)) error {
	pubsub := b.client.Subscribe(ctx, notificationChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", notificationChannel, err)
	}

	b.logger.Infow("subscribed to notification channel",
		"channel", notificationChannel,
	)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("notification subscriber stopped",
				"reason", ctx.Err(),
			)
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("notification channel closed")
				return nil
			}

			var envelope NotificationEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				b.logger.Warnw("failed to unmarshal notification envelope",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}

			goroutine.SafeGo(b.logger, "notification-handler", func() {
				handler(envelope)
			})
		}
	}
}
