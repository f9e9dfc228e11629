//go:generate go run go.uber.org/mock/mockgen -source=video_iface.go -destination=../mocks/mock_video.go -package=mocks
package core

import (
	"context"

	"github.com/dkeye/Plaza/internal/domain"
)

// VideoTokenIssuer grants a participant access to the call of a room.
// It may perform network I/O and is never invoked while a room is locked.
type VideoTokenIssuer interface {
	IssueToken(ctx context.Context, identity domain.ParticipantID, room domain.RoomID) (string, error)
}
