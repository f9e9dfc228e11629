// Package domain holds the value objects of rooms and participants and their validation rules.
package domain

// Participant is one connected user's presence inside a room.
// It is owned by the room controller that admitted it; values handed to
// listeners are copies.
type Participant struct {
	ID          ParticipantID `json:"id"`
	DisplayName string        `json:"displayName"`
	Position    Position      `json:"position"`
}

// NewParticipant is a tiny helper to avoid ad-hoc struct literals in the controller.
func NewParticipant(displayName string) (*Participant, error) {
	if err := ValidateDisplayName(displayName); err != nil {
		return nil, err
	}
	return &Participant{
		ID:          NewParticipantID(),
		DisplayName: displayName,
		Position:    DefaultPosition(),
	}, nil
}
