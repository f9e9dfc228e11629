package app

import "github.com/dkeye/Plaza/internal/domain"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropEvent
	KickMember
)

// Policy decides what happens to a connection whose outbound queue is full.
type Policy interface {
	OnBackPressure(room domain.RoomID, participant domain.ParticipantID) BackpressureAction
}

// SimplePolicy kicks every slow connection.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(domain.RoomID, domain.ParticipantID) BackpressureAction {
	return KickMember
}
