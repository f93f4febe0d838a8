package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/content"
	"github.com/summitmind/backend/internal/domain/shared"
)

// AllowedAudioContentTypes whitelists upload content types for narration
// audio and maps them to the object key extension.
var AllowedAudioContentTypes = map[string]string{
	"audio/mpeg": ".mp3",
	"audio/mp4":  ".m4a",
	"audio/aac":  ".aac",
	"audio/ogg":  ".ogg",
	"audio/wav":  ".wav",
}

// CMSServiceConfig holds configuration for the CMS service
type CMSServiceConfig struct {
	// UploadURLExpiry is how long presigned audio upload URLs stay valid
	UploadURLExpiry time.Duration
}

// DefaultCMSServiceConfig returns the default configuration
func DefaultCMSServiceConfig() CMSServiceConfig {
	return CMSServiceConfig{
		UploadURLExpiry: 15 * time.Minute,
	}
}

// CMSService handles admin content management: script and technique
// CRUD, publishing, and the narration audio upload flow. Every write
// invalidates the published-listing cache.
type CMSService struct {
	scripts    content.ScriptRepository
	techniques content.TechniqueRepository
	storage    ObjectStorageService
	cache      ContentCache
	config     CMSServiceConfig
	logger     *zap.Logger
}

// NewCMSService creates a new CMSService
func NewCMSService(
	scripts content.ScriptRepository,
	techniques content.TechniqueRepository,
	storage ObjectStorageService,
	cache ContentCache,
	logger *zap.Logger,
) *CMSService {
	return &CMSService{
		scripts:    scripts,
		techniques: techniques,
		storage:    storage,
		cache:      cache,
		config:     DefaultCMSServiceConfig(),
		logger:     logger,
	}
}

// SetConfig sets the service configuration
func (s *CMSService) SetConfig(config CMSServiceConfig) {
	s.config = config
}

// CreateScript creates an unpublished script draft
func (s *CMSService) CreateScript(ctx context.Context, req CreateScriptRequest) (*ScriptResponse, error) {
	script, err := content.NewScript(req.Title, req.Category, req.Body, req.Premium)
	if err != nil {
		return nil, err
	}

	if err := s.scripts.Create(ctx, script); err != nil {
		return nil, err
	}

	s.cache.InvalidateAll()
	return scriptDetail(script), nil
}

// UpdateScript applies partial CMS edits to a script
func (s *CMSService) UpdateScript(ctx context.Context, scriptID uuid.UUID, req UpdateScriptRequest) (*ScriptResponse, error) {
	script, err := s.scripts.FindByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, shared.NewDomainError("INVALID_TITLE", "Script title is required")
		}
		if len(title) > 200 {
			return nil, shared.NewDomainError("INVALID_TITLE", "Script title cannot exceed 200 characters")
		}
		script.Title = title
	}
	if req.Category != nil {
		script.Category = strings.TrimSpace(*req.Category)
	}
	if req.Body != nil {
		if strings.TrimSpace(*req.Body) == "" {
			return nil, shared.NewDomainError("INVALID_BODY", "Script body is required")
		}
		script.Body = *req.Body
	}
	if req.Premium != nil {
		script.Premium = *req.Premium
	}
	script.UpdatedAt = time.Now()
	script.IncrementVersion()

	if err := s.scripts.Update(ctx, script); err != nil {
		return nil, err
	}

	s.cache.InvalidateAll()
	return scriptDetail(script), nil
}

// PublishScript makes a script visible in the athlete library
func (s *CMSService) PublishScript(ctx context.Context, scriptID uuid.UUID) (*ScriptResponse, error) {
	script, err := s.scripts.FindByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}

	if err := script.Publish(); err != nil {
		return nil, shared.NewDomainError("ALREADY_PUBLISHED", "Script is already published")
	}

	if err := s.scripts.Update(ctx, script); err != nil {
		return nil, err
	}

	s.cache.InvalidateAll()
	return scriptDetail(script), nil
}

// UnpublishScript removes a script from the athlete library
func (s *CMSService) UnpublishScript(ctx context.Context, scriptID uuid.UUID) (*ScriptResponse, error) {
	script, err := s.scripts.FindByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}

	script.Unpublish()

	if err := s.scripts.Update(ctx, script); err != nil {
		return nil, err
	}

	s.cache.InvalidateAll()
	return scriptDetail(script), nil
}

// DeleteScript deletes a script and its narration audio object
func (s *CMSService) DeleteScript(ctx context.Context, scriptID uuid.UUID) error {
	script, err := s.scripts.FindByID(ctx, scriptID)
	if err != nil {
		return err
	}

	if err := s.scripts.Delete(ctx, scriptID); err != nil {
		return err
	}

	if script.AudioObjectKey != "" {
		// The record is already gone, so an orphaned object only wastes space
		if err := s.storage.DeleteObject(ctx, script.AudioObjectKey); err != nil {
			s.logger.Warn("failed to delete narration audio",
				zap.String("script_id", scriptID.String()),
				zap.String("object_key", script.AudioObjectKey),
				zap.Error(err),
			)
		}
	}

	s.cache.InvalidateAll()
	return nil
}

// ListAllScripts returns every script including drafts, for the CMS
func (s *CMSService) ListAllScripts(ctx context.Context) ([]ScriptSummaryResponse, error) {
	scripts, err := s.scripts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ScriptSummaryResponse, 0, len(scripts))
	for _, script := range scripts {
		summaries = append(summaries, scriptSummary(script, true))
	}
	return summaries, nil
}

// GetScript returns a script by ID including drafts, for the CMS
func (s *CMSService) GetScript(ctx context.Context, scriptID uuid.UUID) (*ScriptResponse, error) {
	script, err := s.scripts.FindByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	return scriptDetail(script), nil
}

// InitiateAudioUpload returns a presigned PUT URL for a script's
// narration audio. The CMS uploads directly to storage and then calls
// ConfirmAudioUpload.
func (s *CMSService) InitiateAudioUpload(ctx context.Context, scriptID uuid.UUID, req InitiateAudioUploadRequest) (*InitiateAudioUploadResponse, error) {
	ext, ok := AllowedAudioContentTypes[req.ContentType]
	if !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_CONTENT_TYPE",
			fmt.Sprintf("Content type %q is not allowed for narration audio", req.ContentType))
	}

	script, err := s.scripts.FindByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("audio/scripts/%s%s", script.ID.String(), ext)
	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, objectKey, req.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload URL: %w", err)
	}

	return &InitiateAudioUploadResponse{
		ObjectKey: objectKey,
		UploadURL: uploadURL,
		ExpiresAt: expiresAt,
	}, nil
}

// ConfirmAudioUpload verifies the uploaded object exists and attaches it
// to the script
func (s *CMSService) ConfirmAudioUpload(ctx context.Context, scriptID uuid.UUID, objectKey string) (*ScriptResponse, error) {
	script, err := s.scripts.FindByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, objectKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check uploaded object: %w", err)
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "No uploaded object found for the given key")
	}

	if err := script.AttachAudio(objectKey); err != nil {
		return nil, err
	}

	if err := s.scripts.Update(ctx, script); err != nil {
		return nil, err
	}

	s.cache.InvalidateAll()
	return scriptDetail(script), nil
}

// CreateTechnique creates an unpublished technique draft
func (s *CMSService) CreateTechnique(ctx context.Context, req CreateTechniqueRequest) (*TechniqueResponse, error) {
	technique, err := content.NewTechnique(req.Title, req.Summary, req.Body, req.Premium)
	if err != nil {
		return nil, err
	}

	if err := s.techniques.Create(ctx, technique); err != nil {
		return nil, err
	}

	s.cache.InvalidateAll()
	return techniqueDetail(technique), nil
}

// UpdateTechnique applies partial CMS edits to a technique
func (s *CMSService) UpdateTechnique(ctx context.Context, techniqueID uuid.UUID, req UpdateTechniqueRequest) (*TechniqueResponse, error) {
	technique, err := s.techniques.FindByID(ctx, techniqueID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, shared.NewDomainError("INVALID_TITLE", "Technique title is required")
		}
		if len(title) > 200 {
			return nil, shared.NewDomainError("INVALID_TITLE", "Technique title cannot exceed 200 characters")
		}
		technique.Title = title
	}
	if req.Summary != nil {
		technique.Summary = strings.TrimSpace(*req.Summary)
	}
	if req.Body != nil {
		technique.Body = *req.Body
	}
	if req.Premium != nil {
		technique.Premium = *req.Premium
	}
	technique.UpdatedAt = time.Now()
	technique.IncrementVersion()

	if err := s.techniques.Update(ctx, technique); err != nil {
		return nil, err
	}

	s.cache.InvalidateAll()
	return techniqueDetail(technique), nil
}

// SetTechniquePublished toggles a technique's library visibility
func (s *CMSService) SetTechniquePublished(ctx context.Context, techniqueID uuid.UUID, published bool) (*TechniqueResponse, error) {
	technique, err := s.techniques.FindByID(ctx, techniqueID)
	if err != nil {
		return nil, err
	}

	technique.SetPublished(published)

	if err := s.techniques.Update(ctx, technique); err != nil {
		return nil, err
	}

	s.cache.InvalidateAll()
	return techniqueDetail(technique), nil
}

// DeleteTechnique deletes a technique
func (s *CMSService) DeleteTechnique(ctx context.Context, techniqueID uuid.UUID) error {
	if _, err := s.techniques.FindByID(ctx, techniqueID); err != nil {
		return err
	}

	if err := s.techniques.Delete(ctx, techniqueID); err != nil {
		return err
	}

	s.cache.InvalidateAll()
	return nil
}

// ListAllTechniques returns every technique including drafts, for the CMS
func (s *CMSService) ListAllTechniques(ctx context.Context) ([]TechniqueSummaryResponse, error) {
	techniques, err := s.techniques.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]TechniqueSummaryResponse, 0, len(techniques))
	for _, technique := range techniques {
		summaries = append(summaries, techniqueSummary(technique, true))
	}
	return summaries, nil
}
