package handler

import (
	"github.com/gin-gonic/gin"

	trainingapp "github.com/summitmind/backend/internal/application/training"
)

// GoalHandler serves the athlete's training goals
type GoalHandler struct {
	BaseHandler
	goalService *trainingapp.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *trainingapp.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// RegisterRoutes registers the goal routes
func (h *GoalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	goals := rg.Group("/goals")
	{
		goals.POST("", h.CreateGoal)
		goals.GET("", h.ListGoals)
		goals.PUT("/:id", h.UpdateGoal)
		goals.POST("/:id/complete", h.CompleteGoal)
		goals.POST("/:id/archive", h.ArchiveGoal)
		goals.DELETE("/:id", h.DeleteGoal)
	}
}

// CreateGoal creates a new goal for the athlete
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	var req trainingapp.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid goal payload")
		return
	}

	result, err := h.goalService.CreateGoal(c.Request.Context(), athleteID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListGoals lists the athlete's goals, optionally filtered by status
func (h *GoalHandler) ListGoals(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.goalService.ListGoals(c.Request.Context(), athleteID, c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateGoal applies partial edits to a goal
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req trainingapp.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid goal payload")
		return
	}

	result, err := h.goalService.UpdateGoal(c.Request.Context(), athleteID, goalID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CompleteGoal marks a goal as completed
func (h *GoalHandler) CompleteGoal(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.goalService.CompleteGoal(c.Request.Context(), athleteID, goalID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ArchiveGoal archives a goal
func (h *GoalHandler) ArchiveGoal(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.goalService.ArchiveGoal(c.Request.Context(), athleteID, goalID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeleteGoal deletes a goal
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), athleteID, goalID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
