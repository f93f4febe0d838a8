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

// GormScriptRepository implements ScriptRepository using GORM
type GormScriptRepository struct {
	db *gorm.DB
}

// NewGormScriptRepository creates a new GormScriptRepository
func NewGormScriptRepository(db *gorm.DB) *GormScriptRepository {
	return &GormScriptRepository{db: db}
}

// Create creates a new script
func (r *GormScriptRepository) Create(ctx context.Context, script *content.Script) error {
	model := models.ScriptModelFromDomain(script)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing script
func (r *GormScriptRepository) Update(ctx context.Context, script *content.Script) error {
	model := models.ScriptModelFromDomain(script)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a script by ID
func (r *GormScriptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ScriptModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a script by ID
func (r *GormScriptRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Script, error) {
	var model models.ScriptModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every script, drafts included, for the CMS
func (r *GormScriptRepository) FindAll(ctx context.Context) ([]*content.Script, error) {
	var scriptModels []*models.ScriptModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&scriptModels).Error; err != nil {
		return nil, err
	}
	return scriptModelsToDomain(scriptModels), nil
}

// FindPublished returns published scripts, optionally filtered by category
func (r *GormScriptRepository) FindPublished(ctx context.Context, category string) ([]*content.Script, error) {
	query := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var scriptModels []*models.ScriptModel
	if err := query.Find(&scriptModels).Error; err != nil {
		return nil, err
	}
	return scriptModelsToDomain(scriptModels), nil
}

func scriptModelsToDomain(scriptModels []*models.ScriptModel) []*content.Script {
	scripts := make([]*content.Script, len(scriptModels))
	for i, model := range scriptModels {
		scripts[i] = model.ToDomain()
	}
	return scripts
}

// Ensure GormScriptRepository implements ScriptRepository
var _ content.ScriptRepository = (*GormScriptRepository)(nil)
