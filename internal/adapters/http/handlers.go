package http

import (
	stdhttp "net/http"

	"github.com/dkeye/Plaza/internal/app/orch"
	"github.com/dkeye/Plaza/internal/domain"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	sessionDisplayName = "displayName"
	sessionRoomID      = "roomId"
)

type joinRequest struct {
	DisplayName string `json:"displayName"`
	RoomID      string `json:"roomId" binding:"required"`
}

type createRoomRequest struct {
	FriendlyName     string `json:"friendlyName"`
	IsPubliclyListed bool   `json:"isPubliclyListed"`
}

type updateRoomRequest struct {
	UpdateSecret     string  `json:"updateSecret"`
	FriendlyName     *string `json:"friendlyName"`
	IsPubliclyListed *bool   `json:"isPubliclyListed"`
}

type deleteRoomRequest struct {
	UpdateSecret string `json:"updateSecret"`
}

type whoAmIResponse struct {
	DisplayName string `json:"displayName"`
	RoomID      string `json:"roomId,omitempty"`
}

type Handlers struct {
	orch    *orch.Orchestrator
	limiter *CreateRateLimiter
}

func NewHandlers(o *orch.Orchestrator, limiter *CreateRateLimiter) *Handlers {
	return &Handlers{orch: o, limiter: limiter}
}

func (h *Handlers) join(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "roomId is required")
		return
	}
	res, err := h.orch.Join(c.Request.Context(), domain.RoomID(req.RoomID), req.DisplayName)
	if err != nil {
		respondError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionDisplayName, req.DisplayName)
	session.Set(sessionRoomID, req.RoomID)
	if err := session.Save(); err != nil {
		log.Warn().Err(err).Str("module", "adapters.http").Msg("cookie session save")
	}
	respondOK(c, res)
}

func (h *Handlers) listRooms(c *gin.Context) {
	respondOK(c, gin.H{"rooms": h.orch.ListRooms()})
}

func (h *Handlers) createRoom(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		log.Warn().Str("module", "adapters.http").Str("ip", c.ClientIP()).Msg("room creation throttled")
		c.AbortWithStatusJSON(stdhttp.StatusTooManyRequests, envelope{IsOK: false, Message: "too many rooms created, try again later"})
		return
	}
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	created, err := h.orch.CreateRoom(req.FriendlyName, req.IsPubliclyListed)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, created)
}

func (h *Handlers) updateRoom(c *gin.Context) {
	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	id := domain.RoomID(c.Param("roomId"))
	if err := h.orch.UpdateRoom(id, req.UpdateSecret, req.FriendlyName, req.IsPubliclyListed); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *Handlers) deleteRoom(c *gin.Context) {
	var req deleteRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := h.orch.DeleteRoom(domain.RoomID(c.Param("roomId")), req.UpdateSecret); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *Handlers) participants(c *gin.Context) {
	ps, err := h.orch.Participants(domain.RoomID(c.Param("roomId")))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"participants": ps})
}

func (h *Handlers) whoAmI(c *gin.Context) {
	session := sessions.Default(c)
	name, _ := session.Get(sessionDisplayName).(string)
	if name == "" {
		respondError(c, domain.ErrNotFound)
		return
	}
	roomID, _ := session.Get(sessionRoomID).(string)
	respondOK(c, whoAmIResponse{DisplayName: name, RoomID: roomID})
}

func (h *Handlers) health(c *gin.Context) {
	respondOK(c, h.orch.Stats())
}
