package core

import (
	"sync"
	"time"

	"github.com/dkeye/Plaza/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// roomImpl is a threadsafe in-memory room.
// Listener dispatch happens under the write lock, which keeps every listener's
// view of one participant in apply order and excludes attach/detach during fan-out.
type roomImpl struct {
	mu        sync.RWMutex
	room      domain.Room
	secret    domain.UpdateSecret
	destroyed bool

	participants map[domain.ParticipantID]*domain.Participant
	sessions     map[domain.SessionToken]*Session
	// listener -> owning session token ("" when unowned)
	listeners map[Listener]domain.SessionToken
}

func NewRoomService(room domain.Room, secret domain.UpdateSecret) RoomService {
	if room.MaxOccupancy <= 0 {
		room.MaxOccupancy = domain.DefaultMaxOccupancy
	}
	return &roomImpl{
		room:         room,
		secret:       secret,
		participants: make(map[domain.ParticipantID]*domain.Participant),
		sessions:     make(map[domain.SessionToken]*Session),
		listeners:    make(map[Listener]domain.SessionToken),
	}
}

func (r *roomImpl) Room() domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.room
}

func (r *roomImpl) Info() domain.RoomInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.RoomInfo{
		FriendlyName:     r.room.FriendlyName,
		RoomID:           r.room.ID,
		CurrentOccupancy: len(r.participants),
		MaxOccupancy:     r.room.MaxOccupancy,
	}
}

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.participants)
}

func (r *roomImpl) MembersSnapshot() []domain.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.MapToSlice(r.participants, func(_ domain.ParticipantID, p *domain.Participant) domain.Participant {
		return *p
	})
}

func (r *roomImpl) Destroyed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.destroyed
}

func (r *roomImpl) Join(displayName string) (*Session, error) {
	p, err := domain.NewParticipant(displayName)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return nil, domain.ErrRoomDestroyed
	}
	if len(r.participants) >= r.room.MaxOccupancy {
		return nil, domain.ErrRoomFull
	}

	token, err := r.freshTokenLocked()
	if err != nil {
		return nil, err
	}
	s := &Session{
		Token:       token,
		RoomID:      r.room.ID,
		CreatedAt:   time.Now(),
		participant: p,
	}
	r.participants[p.ID] = p
	r.sessions[token] = s

	snap := *p
	for l := range r.listeners {
		l.OnParticipantJoined(snap)
	}
	log.Info().
		Str("module", "core.room").
		Str("room_id", string(r.room.ID)).
		Str("participant_id", string(p.ID)).
		Int("occupancy", len(r.participants)).
		Msg("participant joined")
	return s, nil
}

func (r *roomImpl) freshTokenLocked() (domain.SessionToken, error) {
	for {
		token, err := domain.NewSessionToken()
		if err != nil {
			return "", err
		}
		if _, taken := r.sessions[token]; !taken {
			return token, nil
		}
	}
}

func (r *roomImpl) SessionByToken(token domain.SessionToken) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	return s, ok
}

// liveLocked reports whether s is the session this room currently holds for its token.
func (r *roomImpl) liveLocked(s *Session) bool {
	if s == nil {
		return false
	}
	live, ok := r.sessions[s.Token]
	return ok && live == s
}

func (r *roomImpl) UpdatePosition(s *Session, pos domain.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed || !r.liveLocked(s) {
		log.Debug().Str("module", "core.room").Str("room_id", string(r.room.ID)).Msg("position update for unknown session ignored")
		return
	}
	s.participant.Position = pos

	snap := *s.participant
	for l := range r.listeners {
		l.OnParticipantMoved(snap)
	}
	log.Debug().
		Str("module", "core.room").
		Str("room_id", string(r.room.ID)).
		Str("participant_id", string(snap.ID)).
		Int("listeners", len(r.listeners)).
		Msg("participant moved")
}

func (r *roomImpl) Leave(s *Session) { r.DestroySession(s) }

func (r *roomImpl) DestroySession(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.liveLocked(s) {
		return
	}
	delete(r.sessions, s.Token)
	delete(r.participants, s.participant.ID)
	for l, owner := range r.listeners {
		if owner == s.Token {
			delete(r.listeners, l)
		}
	}

	snap := *s.participant
	for l := range r.listeners {
		l.OnParticipantLeft(snap)
	}
	log.Info().
		Str("module", "core.room").
		Str("room_id", string(r.room.ID)).
		Str("participant_id", string(snap.ID)).
		Int("occupancy", len(r.participants)).
		Msg("participant left")
}

func (r *roomImpl) AddListener(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return
	}
	r.listeners[l] = ""
}

func (r *roomImpl) AttachListener(s *Session, l Listener) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return domain.ErrRoomDestroyed
	}
	if !r.liveLocked(s) {
		return domain.ErrNotFound
	}
	r.listeners[l] = s.Token
	return nil
}

func (r *roomImpl) RemoveListener(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listeners, l)
}

func (r *roomImpl) Rename(secret, name string) error {
	return r.Update(secret, &name, nil)
}

func (r *roomImpl) SetVisibility(secret string, public bool) error {
	return r.Update(secret, nil, &public)
}

// Update applies a rename and a visibility change atomically. The secret is
// checked before anything else; a request carrying neither field succeeds untouched.
func (r *roomImpl) Update(secret string, name *string, public *bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.secret.Matches(secret) {
		return domain.ErrUnauthorized
	}
	if r.destroyed {
		return domain.ErrRoomDestroyed
	}
	if name != nil {
		if err := domain.ValidateFriendlyName(*name); err != nil {
			return err
		}
		r.room.FriendlyName = *name
	}
	if public != nil {
		r.room.IsPubliclyListed = *public
	}
	log.Info().
		Str("module", "core.room").
		Str("room_id", string(r.room.ID)).
		Bool("renamed", name != nil).
		Bool("visibility_changed", public != nil).
		Msg("room updated")
	return nil
}

// Destroy notifies every listener and then drops all sessions. It is terminal.
func (r *roomImpl) Destroy(secret string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.secret.Matches(secret) {
		return domain.ErrUnauthorized
	}
	if r.destroyed {
		return domain.ErrRoomDestroyed
	}
	r.destroyed = true
	for l := range r.listeners {
		l.OnRoomDestroyed()
	}
	sessions := len(r.sessions)
	clear(r.listeners)
	clear(r.sessions)
	clear(r.participants)
	log.Info().
		Str("module", "core.room").
		Str("room_id", string(r.room.ID)).
		Int("sessions_closed", sessions).
		Msg("room destroyed")
	return nil
}
