package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("invalid update secret")
	ErrRoomFull      = errors.New("room is full")
	ErrValidation    = errors.New("validation failed")
	ErrRoomDestroyed = errors.New("room destroyed")
)

// Code is a machine-readable error code carried to clients.
type Code string

const (
	CodeUnknown       Code = "UNKNOWN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeRoomFull      Code = "ROOM_FULL"
	CodeValidation    Code = "VALIDATION"
	CodeRoomDestroyed Code = "ROOM_DESTROYED"
)

// CodeOf resolves the code of a possibly wrapped domain error.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrRoomFull):
		return CodeRoomFull
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrRoomDestroyed):
		return CodeRoomDestroyed
	default:
		return CodeUnknown
	}
}
