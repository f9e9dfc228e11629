package signal

import (
	"errors"

	"github.com/dkeye/Plaza/internal/core"
	"github.com/dkeye/Plaza/internal/domain"
	"github.com/rs/zerolog/log"
)

// roomListener turns room events into frames on one connection.
// It runs under the room lock: it only enqueues and never touches the room.
type roomListener struct {
	ctl     *SignalWSController
	conn    *wsSignalConn
	session *core.Session
}

var _ core.Listener = (*roomListener)(nil)

func (l *roomListener) OnParticipantMoved(p domain.Participant) {
	l.push(participantFrame{Type: msgParticipantMoved, Participant: p})
}

func (l *roomListener) OnParticipantJoined(p domain.Participant) {
	l.push(participantFrame{Type: msgNewParticipant, Participant: p})
}

func (l *roomListener) OnParticipantLeft(p domain.Participant) {
	l.push(participantFrame{Type: msgParticipantDisconnect, Participant: p})
}

func (l *roomListener) OnRoomDestroyed() {
	l.push(typedFrame{Type: msgRoomClosing})
	l.conn.Shutdown()
}

func (l *roomListener) push(v any) {
	err := l.ctl.sendJSON(l.conn, v)
	if errors.Is(err, ErrBackpressure) {
		log.Warn().
			Str("module", "signal").
			Str("room_id", string(l.session.RoomID)).
			Str("participant_id", string(l.session.ParticipantID())).
			Msg("outbound queue full")
		l.ctl.Orch.OnBackPressure(l.session)
	}
}
