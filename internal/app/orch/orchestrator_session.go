package orch

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkeye/Plaza/internal/app"
	"github.com/dkeye/Plaza/internal/core"
	"github.com/dkeye/Plaza/internal/domain"
	"github.com/rs/zerolog/log"
)

var ErrAlreadyConnected = errors.New("session already has a live connection")

type JoinResult struct {
	ParticipantID    domain.ParticipantID `json:"participantId"`
	SessionToken     domain.SessionToken  `json:"sessionToken"`
	VideoToken       string               `json:"videoProviderToken"`
	Participants     []domain.Participant `json:"currentParticipants"`
	FriendlyName     string               `json:"friendlyName"`
	IsPubliclyListed bool                 `json:"isPubliclyListed"`
}

// Join admits displayName into the room and then asks the video provider for a
// call token. If the provider fails, the fresh session is rolled back.
func (o *Orchestrator) Join(ctx context.Context, roomID domain.RoomID, displayName string) (*JoinResult, error) {
	room, ok := o.Rooms.GetRoom(roomID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	s, err := room.Join(displayName)
	if err != nil {
		return nil, err
	}

	var videoToken string
	if o.Video != nil {
		videoToken, err = o.Video.IssueToken(ctx, s.ParticipantID(), roomID)
		if err != nil {
			room.DestroySession(s)
			log.Error().Err(err).Str("module", "orch").Str("room_id", string(roomID)).Msg("video token issuance failed")
			return nil, fmt.Errorf("issue video token: %w", err)
		}
	}

	meta := room.Room()
	return &JoinResult{
		ParticipantID:    s.ParticipantID(),
		SessionToken:     s.Token,
		VideoToken:       videoToken,
		Participants:     room.MembersSnapshot(),
		FriendlyName:     meta.FriendlyName,
		IsPubliclyListed: meta.IsPubliclyListed,
	}, nil
}

// Resolve authenticates a real-time handshake.
func (o *Orchestrator) Resolve(roomID domain.RoomID, token domain.SessionToken) (core.RoomService, *core.Session, error) {
	room, ok := o.Rooms.GetRoom(roomID)
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	s, ok := room.SessionByToken(token)
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	return room, s, nil
}

// Attach binds a connection to s and registers l as its listener.
func (o *Orchestrator) Attach(room core.RoomService, s *core.Session, l core.Listener, cancel context.CancelFunc) error {
	if !o.Registry.Bind(s.Token, s.RoomID, cancel) {
		return ErrAlreadyConnected
	}
	if err := room.AttachListener(s, l); err != nil {
		o.Registry.Unbind(s.Token)
		return err
	}
	log.Info().Str("module", "orch").Str("room_id", string(s.RoomID)).Str("participant_id", string(s.ParticipantID())).Msg("listener attached")
	return nil
}

// Detach is the disconnect path: it removes l and ends s.
func (o *Orchestrator) Detach(room core.RoomService, s *core.Session, l core.Listener) {
	room.RemoveListener(l)
	room.DestroySession(s)
	o.Registry.Unbind(s.Token)
	log.Info().Str("module", "orch").Str("room_id", string(s.RoomID)).Str("participant_id", string(s.ParticipantID())).Msg("listener detached")
}

// OnBackPressure applies the policy to a connection that cannot keep up.
// It runs inside listener dispatch, so kicking only cancels the connection.
func (o *Orchestrator) OnBackPressure(s *core.Session) app.BackpressureAction {
	if o.Policy == nil {
		return app.NoAction
	}
	action := o.Policy.OnBackPressure(s.RoomID, s.ParticipantID())
	switch action {
	case app.KickMember:
		log.Warn().Str("module", "orch").Str("room_id", string(s.RoomID)).Str("participant_id", string(s.ParticipantID())).Msg("kicking slow connection")
		o.Registry.Cancel(s.Token)
	case app.DropEvent:
		log.Debug().Str("module", "orch").Str("room_id", string(s.RoomID)).Msg("event dropped")
	case app.NoAction:
	}
	return action
}
