package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dkeye/Plaza/internal/core"
	"github.com/dkeye/Plaza/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type RoomManagerImpl struct {
	mu           sync.RWMutex
	rooms        map[domain.RoomID]core.RoomService
	maxOccupancy int
}

func NewRoomManager(maxOccupancy int) core.RoomManager {
	if maxOccupancy <= 0 {
		maxOccupancy = domain.DefaultMaxOccupancy
	}
	return &RoomManagerImpl{
		rooms:        make(map[domain.RoomID]core.RoomService),
		maxOccupancy: maxOccupancy,
	}
}

func (f *RoomManagerImpl) CreateRoom(friendlyName string, public bool) (domain.RoomID, domain.UpdateSecret, error) {
	if err := domain.ValidateFriendlyName(friendlyName); err != nil {
		return "", "", err
	}
	secret, err := domain.NewUpdateSecret()
	if err != nil {
		return "", "", fmt.Errorf("create room: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	id := domain.NewRoomID()
	for f.rooms[id] != nil {
		id = domain.NewRoomID()
	}
	f.rooms[id] = core.NewRoomService(domain.Room{
		ID:               id,
		FriendlyName:     friendlyName,
		IsPubliclyListed: public,
		MaxOccupancy:     f.maxOccupancy,
	}, secret)
	log.Info().Str("module", "app.rooms").Str("room_id", string(id)).Bool("public", public).Msg("room created")
	return id, secret, nil
}

// CreateDemoRoom registers an unlisted room whose id and friendly name are both id.
// Its secret is discarded, so the demo room cannot be administered.
func (f *RoomManagerImpl) CreateDemoRoom(id domain.RoomID) error {
	if err := domain.ValidateFriendlyName(string(id)); err != nil {
		return err
	}
	secret, err := domain.NewUpdateSecret()
	if err != nil {
		return fmt.Errorf("create demo room: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.rooms[id]; exists {
		return fmt.Errorf("%w: room %q already exists", domain.ErrValidation, id)
	}
	f.rooms[id] = core.NewRoomService(domain.Room{
		ID:           id,
		FriendlyName: string(id),
		MaxOccupancy: f.maxOccupancy,
	}, secret)
	log.Info().Str("module", "app.rooms").Str("room_id", string(id)).Msg("demo room created")
	return nil
}

func (f *RoomManagerImpl) GetRoom(id domain.RoomID) (core.RoomService, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	room, ok := f.rooms[id]
	return room, ok
}

func (f *RoomManagerImpl) List() []domain.RoomInfo {
	f.mu.RLock()
	rooms := lo.Values(f.rooms)
	f.mu.RUnlock()

	return lo.FilterMap(rooms, func(r core.RoomService, _ int) (domain.RoomInfo, bool) {
		return r.Info(), r.Room().IsPubliclyListed
	})
}

func (f *RoomManagerImpl) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.rooms)
}

// DeleteRoom destroys the room and drops it from the directory. Once the secret
// has been accepted the room is unreachable, even if destruction raced with another delete.
func (f *RoomManagerImpl) DeleteRoom(id domain.RoomID, secret string) error {
	room, ok := f.GetRoom(id)
	if !ok {
		return domain.ErrNotFound
	}
	err := room.Destroy(secret)
	if errors.Is(err, domain.ErrUnauthorized) {
		log.Warn().Str("module", "app.rooms").Str("room_id", string(id)).Msg("delete rejected")
		return err
	}

	f.mu.Lock()
	if f.rooms[id] == room {
		delete(f.rooms, id)
	}
	f.mu.Unlock()

	if errors.Is(err, domain.ErrRoomDestroyed) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	log.Info().Str("module", "app.rooms").Str("room_id", string(id)).Msg("room deleted")
	return nil
}

func (f *RoomManagerImpl) UpdateRoom(id domain.RoomID, secret string, name *string, public *bool) error {
	room, ok := f.GetRoom(id)
	if !ok {
		return domain.ErrNotFound
	}
	if err := room.Update(secret, name, public); err != nil {
		if errors.Is(err, domain.ErrRoomDestroyed) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}
