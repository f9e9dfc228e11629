package http

import (
	stdhttp "net/http"

	"github.com/dkeye/Plaza/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// envelope is the shape of every REST response.
type envelope struct {
	IsOK     bool        `json:"isOK"`
	Code     domain.Code `json:"code,omitempty"`
	Message  string      `json:"message,omitempty"`
	Response any         `json:"response,omitempty"`
}

func statusOf(code domain.Code) int {
	switch code {
	case domain.CodeNotFound:
		return stdhttp.StatusNotFound
	case domain.CodeUnauthorized:
		return stdhttp.StatusForbidden
	case domain.CodeRoomFull:
		return stdhttp.StatusConflict
	case domain.CodeValidation:
		return stdhttp.StatusBadRequest
	case domain.CodeRoomDestroyed:
		return stdhttp.StatusGone
	default:
		return stdhttp.StatusInternalServerError
	}
}

func respondOK(c *gin.Context, v any) {
	c.JSON(stdhttp.StatusOK, envelope{IsOK: true, Response: v})
}

func respondError(c *gin.Context, err error) {
	code := domain.CodeOf(err)
	status := statusOf(code)
	if status == stdhttp.StatusInternalServerError {
		log.Error().Err(err).Str("module", "adapters.http").Str("path", c.FullPath()).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, envelope{IsOK: false, Code: code, Message: err.Error()})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(stdhttp.StatusBadRequest, envelope{IsOK: false, Code: domain.CodeValidation, Message: msg})
}
