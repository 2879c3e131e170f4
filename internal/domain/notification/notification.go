// Package notification defines the abstract lifecycle-event fan-out the
// ticket flows emit. Delivery mechanics (push channel, reconnection) are an
// external collaborator; this package only decides when and to whom events
// fire.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AudienceKind selects the recipients of an event.
type AudienceKind string

const (
	// AudienceAllAdmins addresses every admin collectively.
	AudienceAllAdmins AudienceKind = "all_admins"
	// AudienceTechnician addresses one technician by ID.
	AudienceTechnician AudienceKind = "technician"
)

// Audience is the recipient selector for one notification.
type Audience struct {
	Kind   AudienceKind
	TechID uint
}

// AllAdmins returns the collective-admin audience.
func AllAdmins() Audience {
	return Audience{Kind: AudienceAllAdmins}
}

// Technician returns the single-technician audience.
func Technician(techID uint) Audience {
	return Audience{Kind: AudienceTechnician, TechID: techID}
}

func (a Audience) Validate() error {
	switch a.Kind {
	case AudienceAllAdmins:
		return nil
	case AudienceTechnician:
		if a.TechID == 0 {
			return fmt.Errorf("technician audience requires a tech ID")
		}
		return nil
	default:
		return fmt.Errorf("invalid audience kind: %s", a.Kind)
	}
}

// Event is one lifecycle notification. Route is a client-side routing hint
// (which screen to open), not a server path.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Route     string    `json:"route"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent creates an event with a generated unique ID and current timestamp.
func NewEvent(title, message, route string) Event {
	return Event{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Route:     route,
		Timestamp: time.Now(),
	}
}

// Publisher fans an event out to an audience. Callers fire and forget:
// delivery confirmation is never awaited.
type Publisher interface {
	Notify(ctx context.Context, audience Audience, event Event) error
}

// PresenceDirectory tracks which actors currently hold a live delivery
// channel. It is an injected collaborator with explicit lifecycle, not a
// package-level registry.
type PresenceDirectory interface {
	RegisterAdmin(ctx context.Context, adminID uint) error
	DeregisterAdmin(ctx context.Context, adminID uint) error
	RegisterTech(ctx context.Context, techID uint) error
	DeregisterTech(ctx context.Context, techID uint) error

	ConnectedAdmins(ctx context.Context) ([]uint, error)
	IsTechConnected(ctx context.Context, techID uint) (bool, error)
}
