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

// GormSessionRepository implements SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Create creates a new training session
func (r *GormSessionRepository) Create(ctx context.Context, session *training.TrainingSession) error {
	model := models.TrainingSessionModelFromDomain(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing training session
func (r *GormSessionRepository) Update(ctx context.Context, session *training.TrainingSession) error {
	model := models.TrainingSessionModelFromDomain(session)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a training session by ID
func (r *GormSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.TrainingSession, error) {
	var model models.TrainingSessionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAthlete returns the athlete's most recent training sessions
func (r *GormSessionRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, limit int) ([]*training.TrainingSession, error) {
	if limit <= 0 {
		limit = 20
	}

	var sessionModels []*models.TrainingSessionModel
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&sessionModels).Error; err != nil {
		return nil, err
	}

	sessions := make([]*training.TrainingSession, len(sessionModels))
	for i, model := range sessionModels {
		sessions[i] = model.ToDomain()
	}
	return sessions, nil
}

// Ensure GormSessionRepository implements SessionRepository
var _ training.SessionRepository = (*GormSessionRepository)(nil)
