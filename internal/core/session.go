package core

import (
	"time"

	"github.com/dkeye/Plaza/internal/domain"
)

// Session binds a secret token to the participant admitted by Join.
// The participant's position is guarded by the owning room; only the
// immutable parts are exposed here.
type Session struct {
	Token     domain.SessionToken
	RoomID    domain.RoomID
	CreatedAt time.Time

	participant *domain.Participant
}

func (s *Session) ParticipantID() domain.ParticipantID { return s.participant.ID }
func (s *Session) DisplayName() string                 { return s.participant.DisplayName }
