package handler

import (
	"github.com/gin-gonic/gin"

	trainingapp "github.com/summitmind/backend/internal/application/training"
)

// CheckInHandler serves the athlete's daily check-ins
type CheckInHandler struct {
	BaseHandler
	checkInService *trainingapp.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler
func NewCheckInHandler(checkInService *trainingapp.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// RegisterRoutes registers the check-in routes
func (h *CheckInHandler) RegisterRoutes(rg *gin.RouterGroup) {
	checkins := rg.Group("/checkins")
	{
		checkins.POST("", h.CreateCheckIn)
		checkins.GET("", h.ListCheckIns)
		checkins.GET("/:date", h.GetCheckIn)
	}
}

// CreateCheckIn records the athlete's check-in for a local day. One
// check-in per day; a second attempt conflicts.
func (h *CheckInHandler) CreateCheckIn(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	var req trainingapp.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid check-in payload")
		return
	}

	result, err := h.checkInService.CreateCheckIn(c.Request.Context(), athleteID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListCheckIns lists check-ins within an optional date range
func (h *CheckInHandler) ListCheckIns(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.checkInService.ListCheckIns(c.Request.Context(), athleteID, c.Query("from"), c.Query("to"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetCheckIn returns the check-in for a specific date
func (h *CheckInHandler) GetCheckIn(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.checkInService.GetCheckIn(c.Request.Context(), athleteID, c.Param("date"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
