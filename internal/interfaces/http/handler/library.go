package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/summitmind/backend/internal/application/content"
)

// LibraryHandler serves the athlete-facing content library. Premium items
// appear locked for athletes without an entitled billing status; the lock
// decision lives in the library service.
type LibraryHandler struct {
	BaseHandler
	libraryService *contentapp.LibraryService
}

// NewLibraryHandler creates a new LibraryHandler
func NewLibraryHandler(libraryService *contentapp.LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

// RegisterRoutes registers the library routes
func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	library := rg.Group("/library")
	{
		library.GET("/scripts", h.ListScripts)
		library.GET("/scripts/:id", h.GetScript)
		library.GET("/techniques", h.ListTechniques)
		library.GET("/techniques/:id", h.GetTechnique)
	}
}

// ListScripts lists published scripts, optionally filtered by category
func (h *LibraryHandler) ListScripts(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.libraryService.ListScripts(c.Request.Context(), athleteID, c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetScript returns a published script body, with a short-lived audio URL
// when narration exists and the athlete is entitled
func (h *LibraryHandler) GetScript(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}
	scriptID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.libraryService.GetScript(c.Request.Context(), athleteID, scriptID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListTechniques lists published techniques
func (h *LibraryHandler) ListTechniques(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.libraryService.ListTechniques(c.Request.Context(), athleteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetTechnique returns a published technique article
func (h *LibraryHandler) GetTechnique(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}
	techniqueID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.libraryService.GetTechnique(c.Request.Context(), athleteID, techniqueID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
