package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/domain/training"
	"github.com/summitmind/backend/internal/infrastructure/persistence/models"
)

func setupTrainingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CheckInModel{},
		&models.GoalModel{},
		&models.TrainingSessionModel{},
		&models.VoiceSessionModel{},
	)
	require.NoError(t, err)

	return db
}

func TestGormCheckInRepository_Create(t *testing.T) {
	db := setupTrainingTestDB(t)
	repo := NewGormCheckInRepository(db)
	ctx := context.Background()
	athleteID := uuid.New()

	checkIn, err := training.NewCheckIn(athleteID, "2026-03-01", 7, 6, 3, "felt sharp")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, checkIn))

	t.Run("second check-in for the same day is rejected", func(t *testing.T) {
		dup, err := training.NewCheckIn(athleteID, "2026-03-01", 5, 5, 5, "")
		require.NoError(t, err)

		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("same day for another athlete is allowed", func(t *testing.T) {
		other, err := training.NewCheckIn(uuid.New(), "2026-03-01", 8, 8, 2, "")
		require.NoError(t, err)

		assert.NoError(t, repo.Create(ctx, other))
	})
}

func TestGormCheckInRepository_FindByAthleteAndDate(t *testing.T) {
	db := setupTrainingTestDB(t)
	repo := NewGormCheckInRepository(db)
	ctx := context.Background()
	athleteID := uuid.New()

	checkIn, err := training.NewCheckIn(athleteID, "2026-03-02", 9, 8, 2, "race day")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, checkIn))

	t.Run("finds existing check-in", func(t *testing.T) {
		found, err := repo.FindByAthleteAndDate(ctx, athleteID, "2026-03-02")

		require.NoError(t, err)
		assert.Equal(t, checkIn.ID, found.ID)
		assert.Equal(t, 9, found.Mood)
		assert.Equal(t, "race day", found.Note)
	})

	t.Run("returns not found for empty day", func(t *testing.T) {
		_, err := repo.FindByAthleteAndDate(ctx, athleteID, "2026-03-03")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCheckInRepository_FindByAthlete(t *testing.T) {
	db := setupTrainingTestDB(t)
	repo := NewGormCheckInRepository(db)
	ctx := context.Background()
	athleteID := uuid.New()

	for _, date := range []string{"2026-02-27", "2026-02-28", "2026-03-01"} {
		checkIn, err := training.NewCheckIn(athleteID, date, 5, 5, 5, "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, checkIn))
	}

	t.Run("range filter is inclusive", func(t *testing.T) {
		checkIns, err := repo.FindByAthlete(ctx, athleteID, "2026-02-28", "2026-03-01")

		require.NoError(t, err)
		require.Len(t, checkIns, 2)
		// newest first
		assert.Equal(t, "2026-03-01", checkIns[0].Date)
		assert.Equal(t, "2026-02-28", checkIns[1].Date)
	})

	t.Run("open range returns everything", func(t *testing.T) {
		checkIns, err := repo.FindByAthlete(ctx, athleteID, "", "")

		require.NoError(t, err)
		assert.Len(t, checkIns, 3)
	})
}
