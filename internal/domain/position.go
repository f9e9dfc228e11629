package domain

import "fmt"

type Orientation string

const (
	OrientationFront Orientation = "front"
	OrientationBack  Orientation = "back"
	OrientationLeft  Orientation = "left"
	OrientationRight Orientation = "right"
)

// Position is where a participant stands and which way they face.
// Coordinates are not bounds-checked; the map belongs to the client.
type Position struct {
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Orientation Orientation `json:"orientation" validate:"required,oneof=front back left right"`
	IsMoving    bool        `json:"isMoving"`
}

func DefaultPosition() Position {
	return Position{Orientation: OrientationFront}
}

func (p Position) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: position %s", ErrValidation, failedTag(err))
	}
	return nil
}
