package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/dkeye/Plaza/internal/app/orch"
	"github.com/dkeye/Plaza/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var (
	ErrBackpressure = errors.New("backpressure")
	ErrConnClosed   = errors.New("connection closed")
)

type Options struct {
	ReadLimit  int64
	PingPeriod time.Duration
	PongWait   time.Duration
	WriteWait  time.Duration
	SendBuffer int
}

func DefaultOptions() Options {
	return Options{
		ReadLimit:  4096,
		PingPeriod: 54 * time.Second,
		PongWait:   60 * time.Second,
		WriteWait:  5 * time.Second,
		SendBuffer: 256,
	}
}

type SignalWSController struct {
	Orch     *orch.Orchestrator
	opts     Options
	upgrader websocket.Upgrader
}

func NewSignalWSController(o *orch.Orchestrator, opts Options) *SignalWSController {
	return &SignalWSController{
		Orch: o,
		opts: opts,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type wsSignalConn struct {
	ws   *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	closed bool
}

func newWsSignalConn(buffer int) *wsSignalConn {
	return &wsSignalConn{send: make(chan []byte, buffer)}
}

// TrySend enqueues a frame without blocking.
func (c *wsSignalConn) TrySend(b []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrConnClosed
	}
	select {
	case c.send <- b:
	default:
		return ErrBackpressure
	}
	return nil
}

// Shutdown stops accepting frames. The write pump flushes what is queued,
// sends a close frame and closes the socket.
func (c *wsSignalConn) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// HandleSignal authenticates the handshake before upgrading. Unknown rooms and
// tokens get 401, a token that already has a live connection gets 409.
func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	roomID := domain.RoomID(c.Query("roomId"))
	token := domain.SessionToken(c.Query("token"))

	room, s, err := ctl.Orch.Resolve(roomID, token)
	if err != nil {
		log.Warn().Str("module", "signal").Str("room_id", string(roomID)).Msg("handshake rejected")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	connCtx, cancel := context.WithCancel(ctx)
	conn := newWsSignalConn(ctl.opts.SendBuffer)
	l := &roomListener{ctl: ctl, conn: conn, session: s}

	if err := ctl.Orch.Attach(room, s, l, cancel); err != nil {
		cancel()
		status := http.StatusUnauthorized
		if errors.Is(err, orch.ErrAlreadyConnected) {
			status = http.StatusConflict
		}
		log.Warn().Err(err).Str("module", "signal").Str("room_id", string(roomID)).Msg("attach rejected")
		c.AbortWithStatus(status)
		return
	}

	ws, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		ctl.Orch.Detach(room, s, l)
		cancel()
		return
	}
	conn.ws = ws
	log.Info().
		Str("module", "signal").
		Str("room_id", string(roomID)).
		Str("participant_id", string(s.ParticipantID())).
		Msg("new WS connection")

	go ctl.writePump(connCtx, conn)
	go ctl.readPump(connCtx, cancel, room, s, l, conn)
}
