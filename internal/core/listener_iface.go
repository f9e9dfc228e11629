//go:generate go run go.uber.org/mock/mockgen -source=listener_iface.go -destination=../mocks/mock_listener.go -package=mocks
package core

import "github.com/dkeye/Plaza/internal/domain"

// Listener receives the domain events of one room on behalf of one external connection.
// Callbacks run while the room is locked, so implementations must not block and must
// not call back into the room. Implementations must be comparable (use pointer receivers).
type Listener interface {
	OnParticipantMoved(p domain.Participant)
	OnParticipantJoined(p domain.Participant)
	OnParticipantLeft(p domain.Participant)
	OnRoomDestroyed()
}
