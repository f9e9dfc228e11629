// Package video issues call-provider access tokens for admitted participants.
package video

import (
	"context"
	"errors"
	"time"

	"github.com/dkeye/Plaza/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptySigningKey = errors.New("video signing key is empty")

// Claims defines the data stored inside a call token.
type Claims struct {
	Identity string `json:"identity"`
	Room     string `json:"room"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens the call provider verifies with the shared key.
type JWTIssuer struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(key []byte, issuer string, ttl time.Duration) (*JWTIssuer, error) {
	if len(key) == 0 {
		return nil, ErrEmptySigningKey
	}
	return &JWTIssuer{key: key, issuer: issuer, ttl: ttl, now: time.Now}, nil
}

func (i *JWTIssuer) IssueToken(ctx context.Context, identity domain.ParticipantID, room domain.RoomID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	now := i.now()
	claims := &Claims{
		Identity: string(identity),
		Room:     string(room),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(identity),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}

// Parse validates signature and expiry of a token issued by i.
func (i *JWTIssuer) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return i.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(i.issuer))
	if err != nil {
		return nil, err
	}
	if claims, ok := parsed.Claims.(*Claims); ok && parsed.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
