package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summitmind/backend/internal/domain/billing"
)

func TestNewAthlete(t *testing.T) {
	athlete, err := NewAthlete("Jordan@Example.com", "secret-pass", "Jordan")
	require.NoError(t, err)

	assert.Equal(t, "jordan@example.com", athlete.Email)
	assert.Equal(t, "Jordan", athlete.DisplayName)
	assert.Equal(t, RoleAthlete, athlete.Role)
	assert.Equal(t, billing.StatusNone, athlete.Billing.Status)
	assert.NotEqual(t, "secret-pass", athlete.PasswordHash)
	assert.True(t, athlete.CheckPassword("secret-pass"))
	assert.False(t, athlete.CheckPassword("wrong"))

	events := athlete.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeAthleteRegistered, events[0].EventType())
}

func TestNewAthlete_Validation(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		displayName string
	}{
		{"empty email", "", "secret-pass", "Jordan"},
		{"bad email format", "not-an-email", "secret-pass", "Jordan"},
		{"short password", "jordan@example.com", "short", "Jordan"},
		{"empty display name", "jordan@example.com", "secret-pass", ""},
		{"long display name", "jordan@example.com", "secret-pass", strings.Repeat("x", 201)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAthlete(tt.email, tt.password, tt.displayName)
			assert.Error(t, err)
		})
	}
}

func TestAthlete_ChangePassword(t *testing.T) {
	athlete, err := NewAthlete("jordan@example.com", "secret-pass", "Jordan")
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		assert.Error(t, athlete.ChangePassword("nope", "another-pass"))
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, athlete.ChangePassword("secret-pass", "another-pass"))
		assert.True(t, athlete.CheckPassword("another-pass"))
		assert.False(t, athlete.CheckPassword("secret-pass"))
	})
}

func TestAthlete_HasPremiumAccess(t *testing.T) {
	athlete, err := NewAthlete("jordan@example.com", "secret-pass", "Jordan")
	require.NoError(t, err)

	assert.False(t, athlete.HasPremiumAccess())

	athlete.Billing.Status = billing.StatusTrial
	assert.True(t, athlete.HasPremiumAccess())

	athlete.Billing.Status = billing.StatusPastDue
	assert.False(t, athlete.HasPremiumAccess())
}
