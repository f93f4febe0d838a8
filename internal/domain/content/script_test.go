package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript_PublishLifecycle(t *testing.T) {
	script, err := NewScript("Pre-competition breathing", "breathing", "Close your eyes...", false)
	require.NoError(t, err)

	assert.False(t, script.Published)
	require.NoError(t, script.Publish())
	assert.True(t, script.Published)
	assert.NotNil(t, script.PublishedAt)

	assert.Error(t, script.Publish())

	script.Unpublish()
	assert.False(t, script.Published)
}

func TestScript_AccessibleTo(t *testing.T) {
	free, err := NewScript("Body scan", "relaxation", "...", false)
	require.NoError(t, err)
	premium, err := NewScript("Race-day visualization", "visualization", "...", true)
	require.NoError(t, err)

	// drafts are invisible to everyone
	assert.False(t, free.AccessibleTo(true))

	require.NoError(t, free.Publish())
	require.NoError(t, premium.Publish())

	assert.True(t, free.AccessibleTo(false))
	assert.True(t, free.AccessibleTo(true))
	assert.False(t, premium.AccessibleTo(false))
	assert.True(t, premium.AccessibleTo(true))
}

func TestScript_AttachAudio(t *testing.T) {
	script, err := NewScript("Body scan", "relaxation", "...", false)
	require.NoError(t, err)

	assert.Error(t, script.AttachAudio(""))
	require.NoError(t, script.AttachAudio("scripts/body-scan/v1.mp3"))
	assert.Equal(t, "scripts/body-scan/v1.mp3", script.AudioObjectKey)
}
