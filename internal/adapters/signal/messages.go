package signal

import "github.com/dkeye/Plaza/internal/domain"

const (
	msgPositionUpdate = "positionUpdate"
	msgPing           = "ping"

	msgParticipantMoved      = "participantMoved"
	msgNewParticipant        = "newParticipant"
	msgParticipantDisconnect = "participantDisconnect"
	msgRoomClosing           = "roomClosing"
	msgPong                  = "pong"
	msgError                 = "error"
)

const (
	errBadPayload      = "bad_payload"
	errUnknownType     = "unknown_type"
	errInvalidPosition = "invalid_position"
)

// positionUpdatePayload is flat on the wire: {"type","x","y","orientation","isMoving"}.
type positionUpdatePayload struct {
	Type string `json:"type"`
	domain.Position
}

type participantFrame struct {
	Type        string             `json:"type"`
	Participant domain.Participant `json:"participant"`
}

type typedFrame struct {
	Type string `json:"type"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
