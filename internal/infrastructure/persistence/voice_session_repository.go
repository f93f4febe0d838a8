package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/domain/training"
	"github.com/summitmind/backend/internal/infrastructure/persistence/models"
)

// GormVoiceSessionRepository implements VoiceSessionRepository using GORM
type GormVoiceSessionRepository struct {
	db *gorm.DB
}

// NewGormVoiceSessionRepository creates a new GormVoiceSessionRepository
func NewGormVoiceSessionRepository(db *gorm.DB) *GormVoiceSessionRepository {
	return &GormVoiceSessionRepository{db: db}
}

// Create creates a new voice session
func (r *GormVoiceSessionRepository) Create(ctx context.Context, session *training.VoiceSession) error {
	model := models.VoiceSessionModelFromDomain(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing voice session
func (r *GormVoiceSessionRepository) Update(ctx context.Context, session *training.VoiceSession) error {
	model := models.VoiceSessionModelFromDomain(session)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a voice session by ID
func (r *GormVoiceSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.VoiceSession, error) {
	var model models.VoiceSessionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAthlete returns the athlete's most recent voice sessions
func (r *GormVoiceSessionRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, limit int) ([]*training.VoiceSession, error) {
	if limit <= 0 {
		limit = 20
	}

	var sessionModels []*models.VoiceSessionModel
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("started_at DESC").
		Limit(limit).
		Find(&sessionModels).Error; err != nil {
		return nil, err
	}

	sessions := make([]*training.VoiceSession, len(sessionModels))
	for i, model := range sessionModels {
		sessions[i] = model.ToDomain()
	}
	return sessions, nil
}

// Ensure GormVoiceSessionRepository implements VoiceSessionRepository
var _ training.VoiceSessionRepository = (*GormVoiceSessionRepository)(nil)
