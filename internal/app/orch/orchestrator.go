package orch

import (
	"github.com/dkeye/Plaza/internal/app"
	"github.com/dkeye/Plaza/internal/core"
	"github.com/rs/zerolog/log"
)

// Orchestrator glues transports to the room directory. It never holds a room
// lock while talking to the video provider.
type Orchestrator struct {
	Rooms    core.RoomManager
	Registry *app.Registry
	Policy   app.Policy
	Video    core.VideoTokenIssuer
}

type Stats struct {
	Rooms       int `json:"rooms"`
	Connections int `json:"connections"`
}

func (o *Orchestrator) Stats() Stats {
	return Stats{Rooms: o.Rooms.Count(), Connections: o.Registry.Count()}
}

// Shutdown cancels every live connection; their adapters reap the sessions.
func (o *Orchestrator) Shutdown() {
	n := o.Registry.CancelAll()
	log.Info().Str("module", "orch").Int("connections", n).Msg("canceled live connections")
}
