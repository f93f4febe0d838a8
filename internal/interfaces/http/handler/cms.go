package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/summitmind/backend/internal/application/content"
)

// CMSHandler serves the admin content management endpoints. All routes are
// mounted behind the admin role middleware.
type CMSHandler struct {
	BaseHandler
	cmsService *contentapp.CMSService
}

// NewCMSHandler creates a new CMSHandler
func NewCMSHandler(cmsService *contentapp.CMSService) *CMSHandler {
	return &CMSHandler{cmsService: cmsService}
}

// RegisterRoutes registers the admin CMS routes
func (h *CMSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	scripts := rg.Group("/admin/scripts")
	{
		scripts.POST("", h.CreateScript)
		scripts.GET("", h.ListScripts)
		scripts.GET("/:id", h.GetScript)
		scripts.PUT("/:id", h.UpdateScript)
		scripts.DELETE("/:id", h.DeleteScript)
		scripts.POST("/:id/publish", h.PublishScript)
		scripts.POST("/:id/unpublish", h.UnpublishScript)
		scripts.POST("/:id/audio", h.InitiateAudioUpload)
		scripts.POST("/:id/audio/confirm", h.ConfirmAudioUpload)
	}

	techniques := rg.Group("/admin/techniques")
	{
		techniques.POST("", h.CreateTechnique)
		techniques.GET("", h.ListTechniques)
		techniques.PUT("/:id", h.UpdateTechnique)
		techniques.DELETE("/:id", h.DeleteTechnique)
		techniques.POST("/:id/publish", h.PublishTechnique)
		techniques.POST("/:id/unpublish", h.UnpublishTechnique)
	}
}

// ConfirmAudioUploadRequest confirms a completed narration upload
type ConfirmAudioUploadRequest struct {
	ObjectKey string `json:"object_key" binding:"required"`
}

// CreateScript creates a new script draft
func (h *CMSHandler) CreateScript(c *gin.Context) {
	var req contentapp.CreateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid script payload")
		return
	}

	result, err := h.cmsService.CreateScript(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListScripts lists all scripts including drafts
func (h *CMSHandler) ListScripts(c *gin.Context) {
	result, err := h.cmsService.ListAllScripts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetScript returns a script by ID regardless of publication state
func (h *CMSHandler) GetScript(c *gin.Context) {
	scriptID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.cmsService.GetScript(c.Request.Context(), scriptID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateScript applies partial edits to a script
func (h *CMSHandler) UpdateScript(c *gin.Context) {
	scriptID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req contentapp.UpdateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid script payload")
		return
	}

	result, err := h.cmsService.UpdateScript(c.Request.Context(), scriptID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeleteScript deletes a script
func (h *CMSHandler) DeleteScript(c *gin.Context) {
	scriptID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.cmsService.DeleteScript(c.Request.Context(), scriptID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// PublishScript makes a script visible in the athlete library
func (h *CMSHandler) PublishScript(c *gin.Context) {
	scriptID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.cmsService.PublishScript(c.Request.Context(), scriptID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UnpublishScript pulls a script back to draft
func (h *CMSHandler) UnpublishScript(c *gin.Context) {
	scriptID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.cmsService.UnpublishScript(c.Request.Context(), scriptID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// InitiateAudioUpload returns a presigned PUT slot for narration audio
func (h *CMSHandler) InitiateAudioUpload(c *gin.Context) {
	scriptID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req contentapp.InitiateAudioUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid upload payload")
		return
	}

	result, err := h.cmsService.InitiateAudioUpload(c.Request.Context(), scriptID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ConfirmAudioUpload attaches the uploaded object to the script after
// verifying it landed in storage
func (h *CMSHandler) ConfirmAudioUpload(c *gin.Context) {
	scriptID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req ConfirmAudioUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid confirm payload")
		return
	}

	result, err := h.cmsService.ConfirmAudioUpload(c.Request.Context(), scriptID, req.ObjectKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateTechnique creates a new technique draft
func (h *CMSHandler) CreateTechnique(c *gin.Context) {
	var req contentapp.CreateTechniqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid technique payload")
		return
	}

	result, err := h.cmsService.CreateTechnique(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListTechniques lists all techniques including drafts
func (h *CMSHandler) ListTechniques(c *gin.Context) {
	result, err := h.cmsService.ListAllTechniques(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateTechnique applies partial edits to a technique
func (h *CMSHandler) UpdateTechnique(c *gin.Context) {
	techniqueID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req contentapp.UpdateTechniqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid technique payload")
		return
	}

	result, err := h.cmsService.UpdateTechnique(c.Request.Context(), techniqueID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeleteTechnique deletes a technique
func (h *CMSHandler) DeleteTechnique(c *gin.Context) {
	techniqueID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.cmsService.DeleteTechnique(c.Request.Context(), techniqueID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// PublishTechnique makes a technique visible in the athlete library
func (h *CMSHandler) PublishTechnique(c *gin.Context) {
	h.setTechniquePublished(c, true)
}

// UnpublishTechnique pulls a technique back to draft
func (h *CMSHandler) UnpublishTechnique(c *gin.Context) {
	h.setTechniquePublished(c, false)
}

func (h *CMSHandler) setTechniquePublished(c *gin.Context, published bool) {
	techniqueID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.cmsService.SetTechniquePublished(c.Request.Context(), techniqueID, published)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
