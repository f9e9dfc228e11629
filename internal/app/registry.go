package app

import (
	"context"
	"sync"

	"github.com/dkeye/Plaza/internal/domain"
	"github.com/rs/zerolog/log"
)

type connEntry struct {
	RoomID domain.RoomID
	Cancel context.CancelFunc
}

// Registry tracks the live real-time connection of every session token.
// A token carries at most one connection at a time.
type Registry struct {
	mu    sync.RWMutex
	conns map[domain.SessionToken]*connEntry
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[domain.SessionToken]*connEntry),
	}
}

// Bind records a connection for token. It reports false if one is already bound.
func (r *Registry) Bind(token domain.SessionToken, roomID domain.RoomID, cancel context.CancelFunc) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.conns[token]; taken {
		return false
	}
	r.conns[token] = &connEntry{RoomID: roomID, Cancel: cancel}
	log.Debug().Str("module", "app.registry").Str("room_id", string(roomID)).Msg("bound connection")
	return true
}

func (r *Registry) Unbind(token domain.SessionToken) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, token)
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// Cancel ends the connection bound to token, if any.
func (r *Registry) Cancel(token domain.SessionToken) bool {
	r.mu.RLock()
	e, ok := r.conns[token]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("room_id", string(e.RoomID)).Msg("canceled connection")
	return true
}

func (r *Registry) CancelAll() int {
	r.mu.RLock()
	entries := make([]*connEntry, 0, len(r.conns))
	for _, e := range r.conns {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	for _, e := range entries {
		if e.Cancel != nil {
			e.Cancel()
		}
	}
	return len(entries)
}
