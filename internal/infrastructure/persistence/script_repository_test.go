package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/summitmind/backend/internal/domain/content"
	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/infrastructure/persistence/models"
)

func setupContentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ScriptModel{}, &models.TechniqueModel{})
	require.NoError(t, err)

	return db
}

func TestGormScriptRepository_FindPublished(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewGormScriptRepository(db)
	ctx := context.Background()

	published, err := content.NewScript("Pre-race visualization", "visualization", "Close your eyes...", true)
	require.NoError(t, err)
	require.NoError(t, published.Publish())
	require.NoError(t, repo.Create(ctx, published))

	draft, err := content.NewScript("Breathing ladder", "breathing", "Inhale for four...", false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, draft))

	t.Run("drafts are excluded", func(t *testing.T) {
		scripts, err := repo.FindPublished(ctx, "")

		require.NoError(t, err)
		require.Len(t, scripts, 1)
		assert.Equal(t, published.ID, scripts[0].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		scripts, err := repo.FindPublished(ctx, "breathing")

		require.NoError(t, err)
		assert.Empty(t, scripts)
	})

	t.Run("FindAll includes drafts for the CMS", func(t *testing.T) {
		scripts, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.Len(t, scripts, 2)
	})
}

func TestGormScriptRepository_AttachAudio(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewGormScriptRepository(db)
	ctx := context.Background()

	script, err := content.NewScript("Reset routine", "composure", "Take one slow breath...", false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, script))

	require.NoError(t, script.AttachAudio("audio/scripts/reset-routine.mp3"))
	require.NoError(t, repo.Update(ctx, script))

	reloaded, err := repo.FindByID(ctx, script.ID)
	require.NoError(t, err)
	assert.Equal(t, "audio/scripts/reset-routine.mp3", reloaded.AudioObjectKey)
}

func TestGormScriptRepository_Delete(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewGormScriptRepository(db)
	ctx := context.Background()

	script, err := content.NewScript("Obsolete", "misc", "body", false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, script))

	require.NoError(t, repo.Delete(ctx, script.ID))

	_, err = repo.FindByID(ctx, script.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormTechniqueRepository(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewGormTechniqueRepository(db)
	ctx := context.Background()

	visible, err := content.NewTechnique("Box breathing", "A four-count breathing pattern", "...", false)
	require.NoError(t, err)
	visible.SetPublished(true)
	require.NoError(t, repo.Create(ctx, visible))

	hidden, err := content.NewTechnique("Anchor words", "Cue words under pressure", "...", true)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, hidden))

	t.Run("published listing", func(t *testing.T) {
		techniques, err := repo.FindPublished(ctx)

		require.NoError(t, err)
		require.Len(t, techniques, 1)
		assert.Equal(t, visible.ID, techniques[0].ID)
	})

	t.Run("update toggles visibility", func(t *testing.T) {
		hidden.SetPublished(true)
		require.NoError(t, repo.Update(ctx, hidden))

		techniques, err := repo.FindPublished(ctx)
		require.NoError(t, err)
		assert.Len(t, techniques, 2)
	})
}
