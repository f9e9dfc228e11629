package core

import (
	"github.com/dkeye/Plaza/internal/domain"
)

// RoomService is the single source of truth for one room's membership and live positions.
// Mutations are serialized per room; rooms never share a lock.
type RoomService interface {
	Room() domain.Room
	Info() domain.RoomInfo
	MemberCount() int
	MembersSnapshot() []domain.Participant
	Destroyed() bool

	// Join admits a new participant and announces it to every attached listener.
	Join(displayName string) (*Session, error)
	SessionByToken(token domain.SessionToken) (*Session, bool)
	// UpdatePosition is best effort: sessions that are not live in this room are ignored.
	UpdatePosition(s *Session, pos domain.Position)
	Leave(s *Session)
	DestroySession(s *Session)

	AddListener(l Listener)
	// AttachListener adds a listener owned by s; it is detached when s ends.
	AttachListener(s *Session, l Listener) error
	RemoveListener(l Listener)

	Rename(secret, name string) error
	SetVisibility(secret string, public bool) error
	Update(secret string, name *string, public *bool) error
	Destroy(secret string) error
}

// RoomManager is the process-wide directory of rooms. It is constructed once at
// startup and handed to whatever owns the transport.
type RoomManager interface {
	// CreateRoom returns the update secret exactly once; it cannot be recovered later.
	CreateRoom(friendlyName string, public bool) (domain.RoomID, domain.UpdateSecret, error)
	CreateDemoRoom(id domain.RoomID) error
	GetRoom(id domain.RoomID) (RoomService, bool)
	// List returns publicly listed rooms only, in no particular order.
	List() []domain.RoomInfo
	Count() int
	DeleteRoom(id domain.RoomID, secret string) error
	UpdateRoom(id domain.RoomID, secret string, name *string, public *bool) error
}
