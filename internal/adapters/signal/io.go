package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dkeye/Plaza/internal/core"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) writePump(ctx context.Context, c *wsSignalConn) {
	ticker := time.NewTicker(ctl.opts.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "signal").Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if err := c.ws.SetWriteDeadline(time.Now().Add(ctl.opts.WriteWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, msgRoomClosing))
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := c.ws.SetWriteDeadline(time.Now().Add(ctl.opts.WriteWait)); err != nil {
				return
			}
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Warn().Err(err).Str("module", "signal").Msg("writePump ping failed")
				return
			}
		}
	}
}

// readPump owns the disconnect path: when it returns the session is destroyed.
func (ctl *SignalWSController) readPump(
	ctx context.Context,
	cancel context.CancelFunc,
	room core.RoomService,
	s *core.Session,
	l *roomListener,
	c *wsSignalConn,
) {
	defer func() {
		cancel()
		ctl.Orch.Detach(room, s, l)
		log.Info().
			Str("module", "signal").
			Str("room_id", string(s.RoomID)).
			Str("participant_id", string(s.ParticipantID())).
			Msg("readPump closing")
	}()

	c.ws.SetReadLimit(ctl.opts.ReadLimit)
	_ = c.ws.SetReadDeadline(time.Now().Add(ctl.opts.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(ctl.opts.PongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && ctx.Err() == nil {
				log.Error().Err(err).Str("module", "signal").Msg("readPump read error")
			}
			return
		}
		ctl.handleSignal(room, s, c, data)
	}
}

func (ctl *SignalWSController) handleSignal(room core.RoomService, s *core.Session, c *wsSignalConn, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendError(c, errBadPayload)
		return
	}

	switch env.Type {
	case msgPositionUpdate:
		ctl.handlePositionUpdate(room, s, c, data)
	case msgPing:
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown signal")
		ctl.sendError(c, errUnknownType)
	}
}

func (ctl *SignalWSController) sendJSON(c *wsSignalConn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return err
	}
	return c.TrySend(b)
}

func (ctl *SignalWSController) sendError(c *wsSignalConn, code string) {
	_ = ctl.sendJSON(c, errorFrame{Type: msgError, Error: code})
}
