package orch

import (
	"cmp"
	"slices"

	"github.com/dkeye/Plaza/internal/domain"
	"github.com/rs/zerolog/log"
)

type CreatedRoom struct {
	RoomID       domain.RoomID       `json:"roomId"`
	UpdateSecret domain.UpdateSecret `json:"updateSecret"`
}

func (o *Orchestrator) CreateRoom(friendlyName string, public bool) (*CreatedRoom, error) {
	id, secret, err := o.Rooms.CreateRoom(friendlyName, public)
	if err != nil {
		return nil, err
	}
	return &CreatedRoom{RoomID: id, UpdateSecret: secret}, nil
}

// ListRooms returns publicly listed rooms, busiest first.
func (o *Orchestrator) ListRooms() []domain.RoomInfo {
	rooms := o.Rooms.List()
	slices.SortFunc(rooms, func(a, b domain.RoomInfo) int {
		if c := cmp.Compare(b.CurrentOccupancy, a.CurrentOccupancy); c != 0 {
			return c
		}
		return cmp.Compare(a.FriendlyName, b.FriendlyName)
	})
	return rooms
}

func (o *Orchestrator) UpdateRoom(id domain.RoomID, secret string, name *string, public *bool) error {
	if err := o.Rooms.UpdateRoom(id, secret, name, public); err != nil {
		log.Warn().Err(err).Str("module", "orch").Str("room_id", string(id)).Msg("update room rejected")
		return err
	}
	return nil
}

func (o *Orchestrator) DeleteRoom(id domain.RoomID, secret string) error {
	return o.Rooms.DeleteRoom(id, secret)
}

func (o *Orchestrator) Participants(id domain.RoomID) ([]domain.Participant, error) {
	room, ok := o.Rooms.GetRoom(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return room.MembersSnapshot(), nil
}
