package signal

import (
	"encoding/json"

	"github.com/dkeye/Plaza/internal/core"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handlePing(c *wsSignalConn) {
	_ = ctl.sendJSON(c, typedFrame{Type: msgPong})
}

// handlePositionUpdate forwards the move as-is; coordinates are not bounds-checked.
func (ctl *SignalWSController) handlePositionUpdate(
	room core.RoomService,
	s *core.Session,
	c *wsSignalConn,
	data []byte,
) {
	var p positionUpdatePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad positionUpdate payload")
		ctl.sendError(c, errBadPayload)
		return
	}
	if err := p.Position.Validate(); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("participant_id", string(s.ParticipantID())).Msg("invalid position")
		ctl.sendError(c, errInvalidPosition)
		return
	}
	room.UpdatePosition(s, p.Position)
}
