package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/summitmind/backend/internal/domain/content"
	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/infrastructure/persistence/models"
)

// GormTechniqueRepository implements TechniqueRepository using GORM
type GormTechniqueRepository struct {
	db *gorm.DB
}

// NewGormTechniqueRepository creates a new GormTechniqueRepository
func NewGormTechniqueRepository(db *gorm.DB) *GormTechniqueRepository {
	return &GormTechniqueRepository{db: db}
}

// Create creates a new technique
func (r *GormTechniqueRepository) Create(ctx context.Context, technique *content.Technique) error {
	model := models.TechniqueModelFromDomain(technique)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing technique
func (r *GormTechniqueRepository) Update(ctx context.Context, technique *content.Technique) error {
	model := models.TechniqueModelFromDomain(technique)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a technique by ID
func (r *GormTechniqueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TechniqueModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a technique by ID
func (r *GormTechniqueRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Technique, error) {
	var model models.TechniqueModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every technique, drafts included, for the CMS
func (r *GormTechniqueRepository) FindAll(ctx context.Context) ([]*content.Technique, error) {
	var techniqueModels []*models.TechniqueModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&techniqueModels).Error; err != nil {
		return nil, err
	}
	return techniqueModelsToDomain(techniqueModels), nil
}

// FindPublished returns published techniques
func (r *GormTechniqueRepository) FindPublished(ctx context.Context) ([]*content.Technique, error) {
	var techniqueModels []*models.TechniqueModel
	if err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&techniqueModels).Error; err != nil {
		return nil, err
	}
	return techniqueModelsToDomain(techniqueModels), nil
}

func techniqueModelsToDomain(techniqueModels []*models.TechniqueModel) []*content.Technique {
	techniques := make([]*content.Technique, len(techniqueModels))
	for i, model := range techniqueModels {
		techniques[i] = model.ToDomain()
	}
	return techniques
}

// Ensure GormTechniqueRepository implements TechniqueRepository
var _ content.TechniqueRepository = (*GormTechniqueRepository)(nil)
