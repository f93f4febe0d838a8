package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/infrastructure/auth"
)

// AthleteService handles profile reads and edits for the dashboard
type AthleteService struct {
	athletes   identity.AthleteRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAthleteService creates a new AthleteService
func NewAthleteService(
	athletes identity.AthleteRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AthleteService {
	return &AthleteService{
		athletes:   athletes,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// GetProfile returns the account and its billing snapshot
func (s *AthleteService) GetProfile(ctx context.Context, athleteID uuid.UUID) (*ProfileResult, error) {
	athlete, err := s.findAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{
		Athlete: athleteInfo(athlete),
		Billing: billingInfo(athlete.Billing),
	}, nil
}

// GetBilling returns only the billing snapshot, read by the dashboard on
// page load
func (s *AthleteService) GetBilling(ctx context.Context, athleteID uuid.UUID) (*BillingInfo, error) {
	athlete, err := s.findAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	info := billingInfo(athlete.Billing)
	return &info, nil
}

// UpdateProfile applies partial profile edits
func (s *AthleteService) UpdateProfile(ctx context.Context, athleteID uuid.UUID, input UpdateProfileInput) (*ProfileResult, error) {
	athlete, err := s.findAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		if err := athlete.SetDisplayName(*input.DisplayName); err != nil {
			return nil, err
		}
	}
	if input.Sport != nil {
		if err := athlete.SetSport(*input.Sport); err != nil {
			return nil, err
		}
	}

	if err := s.athletes.Update(ctx, athlete); err != nil {
		return nil, err
	}

	return &ProfileResult{
		Athlete: athleteInfo(athlete),
		Billing: billingInfo(athlete.Billing),
	}, nil
}

// ChangePassword verifies the current password, stores the new hash, and
// invalidates every session issued before the change
func (s *AthleteService) ChangePassword(ctx context.Context, athleteID uuid.UUID, input ChangePasswordInput) error {
	athlete, err := s.findAthlete(ctx, athleteID)
	if err != nil {
		return err
	}

	if err := athlete.ChangePassword(input.CurrentPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.athletes.Update(ctx, athlete); err != nil {
		return err
	}

	// The invalidation marker only needs to outlive the longest-lived token
	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddAthleteTokensToBlacklist(ctx, athleteID.String(), ttl); err != nil {
		s.logger.Error("Failed to invalidate sessions after password change",
			zap.String("athlete_id", athleteID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("Password changed", zap.String("athlete_id", athleteID.String()))
	return nil
}

func (s *AthleteService) findAthlete(ctx context.Context, athleteID uuid.UUID) (*identity.Athlete, error) {
	athlete, err := s.athletes.FindByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ATHLETE_NOT_FOUND", "Athlete not found")
		}
		return nil, err
	}
	return athlete, nil
}
