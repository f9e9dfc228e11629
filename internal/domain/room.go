package domain

const DefaultMaxOccupancy = 50

// Room is the administrative meta of a room. Membership lives in core.
type Room struct {
	ID               RoomID
	FriendlyName     string
	IsPubliclyListed bool
	MaxOccupancy     int
}

// RoomInfo is the listing view of a room.
type RoomInfo struct {
	FriendlyName     string `json:"friendlyName"`
	RoomID           RoomID `json:"roomId"`
	CurrentOccupancy int    `json:"currentOccupancy"`
	MaxOccupancy     int    `json:"maxOccupancy"`
}
