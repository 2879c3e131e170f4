package valueobjects

import "fmt"

// ActorKind discriminates technician and admin actors.
type ActorKind string

const (
	ActorTech  ActorKind = "tech"
	ActorAdmin ActorKind = "admin"
)

var validActorKinds = map[ActorKind]bool{
	ActorTech:  true,
	ActorAdmin: true,
}

func (k ActorKind) String() string {
	return string(k)
}

func (k ActorKind) IsValid() bool {
	return validActorKinds[k]
}

func (k ActorKind) IsTech() bool {
	return k == ActorTech
}

func (k ActorKind) IsAdmin() bool {
	return k == ActorAdmin
}

func NewActorKind(s string) (ActorKind, error) {
	k := ActorKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid actor kind: %s", s)
	}
	return k, nil
}

// Actor is a tagged reference to either a technician or an admin.
// The kind is resolved explicitly at read time, never via runtime dispatch.
type Actor struct {
	kind ActorKind
	id   uint
}

func NewActor(kind ActorKind, id uint) (Actor, error) {
	if !kind.IsValid() {
		return Actor{}, fmt.Errorf("invalid actor kind: %s", kind)
	}
	if id == 0 {
		return Actor{}, fmt.Errorf("actor ID is required")
	}
	return Actor{kind: kind, id: id}, nil
}

func (a Actor) Kind() ActorKind {
	return a.kind
}

func (a Actor) ID() uint {
	return a.id
}

func (a Actor) IsTech() bool {
	return a.kind.IsTech()
}

func (a Actor) IsAdmin() bool {
	return a.kind.IsAdmin()
}

func (a Actor) String() string {
	return fmt.Sprintf("%s:%d", a.kind, a.id)
}
