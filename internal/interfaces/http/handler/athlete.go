package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/summitmind/backend/internal/application/identity"
)

// AthleteHandler serves the authenticated athlete's own account
type AthleteHandler struct {
	BaseHandler
	athleteService *identityapp.AthleteService
}

// NewAthleteHandler creates a new AthleteHandler
func NewAthleteHandler(athleteService *identityapp.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// RegisterRoutes registers the /me routes
func (h *AthleteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	me := rg.Group("/me")
	{
		me.GET("", h.GetProfile)
		me.PUT("", h.UpdateProfile)
		me.PUT("/password", h.ChangePassword)
		me.GET("/billing", h.GetBilling)
	}
}

// UpdateProfileRequest carries partial profile edits
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=200"`
	Sport       *string `json:"sport" binding:"omitempty,max=100"`
}

// ChangePasswordRequest carries a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// GetProfile returns the athlete's profile with the billing snapshot
func (h *AthleteHandler) GetProfile(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.athleteService.GetProfile(c.Request.Context(), athleteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateProfile applies partial edits to the athlete's profile
func (h *AthleteHandler) UpdateProfile(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid profile payload")
		return
	}

	result, err := h.athleteService.UpdateProfile(c.Request.Context(), athleteID, identityapp.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Sport:       req.Sport,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ChangePassword changes the athlete's password after verifying the
// current one
func (h *AthleteHandler) ChangePassword(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid password payload")
		return
	}

	err := h.athleteService.ChangePassword(c.Request.Context(), athleteID, identityapp.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GetBilling returns the billing snapshot read model. This is a read of
// the merged webhook state; nothing here writes billing columns.
func (h *AthleteHandler) GetBilling(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.athleteService.GetBilling(c.Request.Context(), athleteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
