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

// GormCheckInRepository implements CheckInRepository using GORM
type GormCheckInRepository struct {
	db *gorm.DB
}

// NewGormCheckInRepository creates a new GormCheckInRepository
func NewGormCheckInRepository(db *gorm.DB) *GormCheckInRepository {
	return &GormCheckInRepository{db: db}
}

// Create creates a new check-in. The unique index on (athlete_id, date)
// rejects a second check-in for the same local day.
func (r *GormCheckInRepository) Create(ctx context.Context, checkIn *training.CheckIn) error {
	model := models.CheckInModelFromDomain(checkIn)
	err := r.db.WithContext(ctx).Create(model).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	return err
}

// FindByAthleteAndDate finds the athlete's check-in for a local date
func (r *GormCheckInRepository) FindByAthleteAndDate(ctx context.Context, athleteID uuid.UUID, date string) (*training.CheckIn, error) {
	var model models.CheckInModel
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND date = ?", athleteID, date).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAthlete returns the athlete's check-ins within the inclusive date range
func (r *GormCheckInRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, from, to string) ([]*training.CheckIn, error) {
	query := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("date DESC")
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}

	var checkInModels []*models.CheckInModel
	if err := query.Find(&checkInModels).Error; err != nil {
		return nil, err
	}

	checkIns := make([]*training.CheckIn, len(checkInModels))
	for i, model := range checkInModels {
		checkIns[i] = model.ToDomain()
	}
	return checkIns, nil
}

// Ensure GormCheckInRepository implements CheckInRepository
var _ training.CheckInRepository = (*GormCheckInRepository)(nil)
