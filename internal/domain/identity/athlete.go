package identity

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/shared"
)

// Role represents the access level of an account
type Role string

const (
	RoleAthlete Role = "athlete" // Regular dashboard user
	RoleAdmin   Role = "admin"   // CMS content manager
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Athlete represents an account in the system. It is the aggregate root for
// identity operations and carries the billing snapshot the webhook handler
// keeps in sync with the payment provider.
type Athlete struct {
	shared.BaseAggregateRoot
	Email        string
	PasswordHash string
	DisplayName  string
	Sport        string
	Role         Role
	LastLoginAt  *time.Time
	Billing      billing.Record
}

// NewAthlete creates a new athlete with required fields
func NewAthlete(email, password, displayName string) (*Athlete, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateDisplayName(displayName); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	athlete := &Athlete{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		DisplayName:       strings.TrimSpace(displayName),
		Role:              RoleAthlete,
		Billing:           billing.NewRecord(),
	}

	athlete.AddDomainEvent(NewAthleteRegisteredEvent(athlete))

	return athlete, nil
}

// SetDisplayName sets the athlete's display name
func (a *Athlete) SetDisplayName(displayName string) error {
	if err := validateDisplayName(displayName); err != nil {
		return err
	}

	a.DisplayName = strings.TrimSpace(displayName)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// SetSport sets the athlete's primary sport
func (a *Athlete) SetSport(sport string) error {
	if len(sport) > 100 {
		return shared.NewDomainError("INVALID_SPORT", "Sport cannot exceed 100 characters")
	}

	a.Sport = strings.TrimSpace(sport)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// ChangePassword verifies the current password and sets a new one
func (a *Athlete) ChangePassword(current, newPassword string) error {
	if !a.CheckPassword(current) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	a.PasswordHash = hash
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (a *Athlete) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// RecordLogin stamps the last successful login time
func (a *Athlete) RecordLogin(at time.Time) {
	a.LastLoginAt = &at
}

// IsAdmin reports whether the account may manage CMS content
func (a *Athlete) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// HasPremiumAccess reports whether the account may read premium content
func (a *Athlete) HasPremiumAccess() bool {
	return a.Billing.IsPremium()
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email is required")
	}
	if len(email) > 254 || !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func validateDisplayName(displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name is required")
	}
	if len(displayName) > 200 {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot exceed 200 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
