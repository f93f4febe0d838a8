// Package content provides the application services behind the athlete
// library and the admin CMS: script and technique management, premium
// gating by billing status, and narration audio storage.
package content

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/content"
	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
)

// ObjectStorageService is the outbound interface for narration audio
// storage, implemented by the S3 adapter in the infrastructure layer.
type ObjectStorageService interface {
	// GenerateUploadURL returns a presigned URL for uploading an object
	GenerateUploadURL(ctx context.Context, objectKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL returns a presigned URL for downloading an object
	GenerateDownloadURL(ctx context.Context, objectKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, objectKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, objectKey string) (bool, error)
}

// ContentCache is the outbound interface for the published-listing cache
type ContentCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	InvalidateAll()
}

// Cache keys for published listings. Script listings append the category
// filter when one is given.
const (
	cacheKeyScripts    = "scripts:published"
	cacheKeyTechniques = "techniques:published"
)

// LibraryServiceConfig holds configuration for the library service
type LibraryServiceConfig struct {
	// AudioURLExpiry is how long presigned audio download URLs stay valid
	AudioURLExpiry time.Duration
}

// DefaultLibraryServiceConfig returns the default configuration
func DefaultLibraryServiceConfig() LibraryServiceConfig {
	return LibraryServiceConfig{
		AudioURLExpiry: 1 * time.Hour,
	}
}

// LibraryService serves the athlete-facing library. Published listings
// come from the content cache; premium items require a billing status of
// trial or active.
type LibraryService struct {
	scripts    content.ScriptRepository
	techniques content.TechniqueRepository
	athletes   identity.AthleteRepository
	storage    ObjectStorageService
	cache      ContentCache
	config     LibraryServiceConfig
	logger     *zap.Logger
}

// NewLibraryService creates a new LibraryService
func NewLibraryService(
	scripts content.ScriptRepository,
	techniques content.TechniqueRepository,
	athletes identity.AthleteRepository,
	storage ObjectStorageService,
	cache ContentCache,
	logger *zap.Logger,
) *LibraryService {
	return &LibraryService{
		scripts:    scripts,
		techniques: techniques,
		athletes:   athletes,
		storage:    storage,
		cache:      cache,
		config:     DefaultLibraryServiceConfig(),
		logger:     logger,
	}
}

// SetConfig sets the service configuration
func (s *LibraryService) SetConfig(config LibraryServiceConfig) {
	s.config = config
}

// ListScripts returns published scripts, optionally filtered by category.
// Premium scripts are listed for everyone but marked locked for athletes
// without an entitled billing status.
func (s *LibraryService) ListScripts(ctx context.Context, athleteID uuid.UUID, category string) ([]ScriptSummaryResponse, error) {
	hasPremium, err := s.hasPremium(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	scripts, err := s.publishedScripts(ctx, category)
	if err != nil {
		return nil, err
	}

	summaries := make([]ScriptSummaryResponse, 0, len(scripts))
	for _, script := range scripts {
		summaries = append(summaries, scriptSummary(script, hasPremium))
	}
	return summaries, nil
}

// GetScript returns a published script with its body and, when narration
// audio exists, a presigned download URL. Premium scripts require an
// entitled billing status.
func (s *LibraryService) GetScript(ctx context.Context, athleteID, scriptID uuid.UUID) (*ScriptResponse, error) {
	hasPremium, err := s.hasPremium(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	script, err := s.scripts.FindByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}

	// Drafts are invisible to athletes
	if !script.Published {
		return nil, shared.ErrNotFound
	}
	if !script.AccessibleTo(hasPremium) {
		return nil, shared.ErrPremiumRequired
	}

	resp := scriptDetail(script)
	if script.AudioObjectKey != "" {
		url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, script.AudioObjectKey, s.config.AudioURLExpiry)
		if err != nil {
			// The script text is still useful without audio
			s.logger.Warn("failed to presign audio download",
				zap.String("script_id", script.ID.String()),
				zap.Error(err),
			)
		} else {
			resp.AudioURL = url
			resp.AudioExpiresAt = &expiresAt
		}
	}
	return resp, nil
}

// ListTechniques returns published techniques with per-athlete lock flags
func (s *LibraryService) ListTechniques(ctx context.Context, athleteID uuid.UUID) ([]TechniqueSummaryResponse, error) {
	hasPremium, err := s.hasPremium(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	techniques, err := s.publishedTechniques(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]TechniqueSummaryResponse, 0, len(techniques))
	for _, technique := range techniques {
		summaries = append(summaries, techniqueSummary(technique, hasPremium))
	}
	return summaries, nil
}

// GetTechnique returns a published technique article. Premium techniques
// require an entitled billing status.
func (s *LibraryService) GetTechnique(ctx context.Context, athleteID, techniqueID uuid.UUID) (*TechniqueResponse, error) {
	hasPremium, err := s.hasPremium(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	technique, err := s.techniques.FindByID(ctx, techniqueID)
	if err != nil {
		return nil, err
	}

	if !technique.Published {
		return nil, shared.ErrNotFound
	}
	if !technique.AccessibleTo(hasPremium) {
		return nil, shared.ErrPremiumRequired
	}

	return techniqueDetail(technique), nil
}

// hasPremium loads the athlete and reports the current entitlement
func (s *LibraryService) hasPremium(ctx context.Context, athleteID uuid.UUID) (bool, error) {
	athlete, err := s.athletes.FindByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, shared.NewDomainError("ATHLETE_NOT_FOUND", "Athlete not found")
		}
		return false, err
	}
	return athlete.Billing.IsPremium(), nil
}

// publishedScripts reads the published listing through the cache
func (s *LibraryService) publishedScripts(ctx context.Context, category string) ([]*content.Script, error) {
	key := cacheKeyScripts
	if category != "" {
		key += ":" + category
	}

	if cached, ok := s.cache.Get(key); ok {
		if scripts, ok := cached.([]*content.Script); ok {
			return scripts, nil
		}
	}

	scripts, err := s.scripts.FindPublished(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, scripts)
	return scripts, nil
}

// publishedTechniques reads the published listing through the cache
func (s *LibraryService) publishedTechniques(ctx context.Context) ([]*content.Technique, error) {
	if cached, ok := s.cache.Get(cacheKeyTechniques); ok {
		if techniques, ok := cached.([]*content.Technique); ok {
			return techniques, nil
		}
	}

	techniques, err := s.techniques.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyTechniques, techniques)
	return techniques, nil
}
