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

// GormGoalRepository implements GoalRepository using GORM
type GormGoalRepository struct {
	db *gorm.DB
}

// NewGormGoalRepository creates a new GormGoalRepository
func NewGormGoalRepository(db *gorm.DB) *GormGoalRepository {
	return &GormGoalRepository{db: db}
}

// Create creates a new goal
func (r *GormGoalRepository) Create(ctx context.Context, goal *training.Goal) error {
	model := models.GoalModelFromDomain(goal)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing goal
func (r *GormGoalRepository) Update(ctx context.Context, goal *training.Goal) error {
	model := models.GoalModelFromDomain(goal)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a goal by ID
func (r *GormGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a goal by ID
func (r *GormGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.Goal, error) {
	var model models.GoalModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAthlete returns the athlete's goals, optionally filtered by status
func (r *GormGoalRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, status *training.GoalStatus) ([]*training.Goal, error) {
	query := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var goalModels []*models.GoalModel
	if err := query.Find(&goalModels).Error; err != nil {
		return nil, err
	}

	goals := make([]*training.Goal, len(goalModels))
	for i, model := range goalModels {
		goals[i] = model.ToDomain()
	}
	return goals, nil
}

// Ensure GormGoalRepository implements GoalRepository
var _ training.GoalRepository = (*GormGoalRepository)(nil)
