package domain

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type (
	RoomID        string
	ParticipantID string
	SessionToken  string
	UpdateSecret  string
)

const (
	sessionTokenBytes = 32
	updateSecretBytes = 24
)

var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewRoomID encodes the bytes of a random UUID as lowercase unpadded base32.
// The result is 26 characters long and URL safe.
func NewRoomID() RoomID {
	u := uuid.New()
	return RoomID(strings.ToLower(idEncoding.EncodeToString(u[:])))
}

func NewParticipantID() ParticipantID {
	return ParticipantID(uuid.NewString())
}

// NewSessionToken returns an unguessable bearer token bound to one join.
func NewSessionToken() (SessionToken, error) {
	s, err := randomString(sessionTokenBytes)
	if err != nil {
		return "", err
	}
	return SessionToken(s), nil
}

// NewUpdateSecret returns the administrative capability for a room.
func NewUpdateSecret() (UpdateSecret, error) {
	s, err := randomString(updateSecretBytes)
	if err != nil {
		return "", err
	}
	return UpdateSecret(s), nil
}

// Matches reports whether candidate is exactly the secret. An empty secret never matches.
func (s UpdateSecret) Matches(candidate string) bool {
	if s == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s), []byte(candidate)) == 1
}

func randomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
