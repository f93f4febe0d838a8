package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	trainingapp "github.com/summitmind/backend/internal/application/training"
)

// SessionHandler serves training session history and voice coach sessions
type SessionHandler struct {
	BaseHandler
	sessionService *trainingapp.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService *trainingapp.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// RegisterRoutes registers the session routes
func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.RecordSession)
		sessions.GET("", h.ListSessions)
		sessions.PUT("/:id/rating", h.RateSession)
	}

	voice := rg.Group("/voice-sessions")
	{
		voice.POST("", h.StartVoiceSession)
		voice.GET("", h.ListVoiceSessions)
		voice.POST("/:id/end", h.EndVoiceSession)
	}
}

// RateSessionRequest carries the rating for a completed session
type RateSessionRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// RecordSession records a completed training session
func (h *SessionHandler) RecordSession(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	var req trainingapp.RecordSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid session payload")
		return
	}

	result, err := h.sessionService.RecordSession(c.Request.Context(), athleteID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListSessions lists recent training sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.ListSessions(c.Request.Context(), athleteID, parseLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RateSession attaches a rating to a recorded session
func (h *SessionHandler) RateSession(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}
	sessionID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req RateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid rating payload")
		return
	}

	result, err := h.sessionService.RateSession(c.Request.Context(), athleteID, sessionID, req.Rating)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// StartVoiceSession opens a voice coach session
func (h *SessionHandler) StartVoiceSession(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.StartVoiceSession(c.Request.Context(), athleteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// EndVoiceSession closes a voice session with its summary
func (h *SessionHandler) EndVoiceSession(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}
	sessionID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req trainingapp.EndVoiceSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid payload")
		return
	}

	result, err := h.sessionService.EndVoiceSession(c.Request.Context(), athleteID, sessionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListVoiceSessions lists recent voice coach sessions
func (h *SessionHandler) ListVoiceSessions(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.ListVoiceSessions(c.Request.Context(), athleteID, parseLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
