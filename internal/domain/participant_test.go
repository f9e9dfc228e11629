package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParticipant(t *testing.T) {
	tests := []struct {
		name    string
		display string
		wantErr bool
	}{
		{"valid", "Alice", false},
		{"empty", "", true},
		{"at limit", strings.Repeat("a", MaxDisplayNameLen), false},
		{"too long", strings.Repeat("a", MaxDisplayNameLen+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			p, err := NewParticipant(tt.display)
			if tt.wantErr {
				req.ErrorIs(err, ErrValidation)
				req.Equal(CodeValidation, CodeOf(err))
				return
			}
			req.NoError(err)
			req.NotEmpty(p.ID)
			req.Equal(tt.display, p.DisplayName)
			req.Equal(DefaultPosition(), p.Position)
		})
	}
}

func TestPosition_Validate(t *testing.T) {
	req := require.New(t)

	for _, o := range []Orientation{OrientationFront, OrientationBack, OrientationLeft, OrientationRight} {
		req.NoError(Position{X: -5, Y: 1e9, Orientation: o}.Validate())
	}
	req.ErrorIs(Position{Orientation: "up"}.Validate(), ErrValidation)
	req.ErrorIs(Position{}.Validate(), ErrValidation)
}

func TestCodeOf(t *testing.T) {
	req := require.New(t)

	req.Equal(Code(""), CodeOf(nil))
	req.Equal(CodeNotFound, CodeOf(ErrNotFound))
	req.Equal(CodeUnauthorized, CodeOf(ErrUnauthorized))
	req.Equal(CodeRoomFull, CodeOf(ErrRoomFull))
	req.Equal(CodeRoomDestroyed, CodeOf(ErrRoomDestroyed))
	req.Equal(CodeUnknown, CodeOf(errors.New("boom")))
}

