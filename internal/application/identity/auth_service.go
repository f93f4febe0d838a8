// Package identity provides the application services for accounts:
// registration, login, token refresh and logout, and profile management.
package identity

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/infrastructure/auth"
)

// AuthService handles registration and the token lifecycle
type AuthService struct {
	athletes   identity.AthleteRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	eventBus   shared.EventBus
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	athletes identity.AthleteRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	eventBus shared.EventBus,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		athletes:   athletes,
		jwtService: jwtService,
		blacklist:  blacklist,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// Register creates an athlete account and returns a signed-in session
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	exists, err := s.athletes.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	athlete, err := identity.NewAthlete(input.Email, input.Password, input.DisplayName)
	if err != nil {
		return nil, err
	}
	if input.Sport != "" {
		if err := athlete.SetSport(input.Sport); err != nil {
			return nil, err
		}
	}

	if err := s.athletes.Create(ctx, athlete); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
		}
		return nil, err
	}

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, identity.NewAthleteRegisteredEvent(athlete)); err != nil {
			s.logger.Error("Failed to publish registration event", zap.Error(err))
		}
	}

	s.logger.Info("Athlete registered",
		zap.String("athlete_id", athlete.ID.String()),
	)

	return s.issueSession(athlete)
}

// Login authenticates an athlete and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	athlete, err := s.athletes.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email")
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !athlete.CheckPassword(input.Password) {
		s.logger.Warn("Invalid password attempt",
			zap.String("athlete_id", athlete.ID.String()),
		)
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	athlete.RecordLogin(time.Now())
	if err := s.athletes.Update(ctx, athlete); err != nil {
		// Login still succeeds, the timestamp is informational
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.logger.Info("Athlete logged in",
		zap.String("athlete_id", athlete.ID.String()),
	)

	return s.issueSession(athlete)
}

// RefreshToken validates a refresh token and issues a new pair. Claims are
// rebuilt from the current account state, so role changes apply here.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*AuthResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	if blocked, err := s.blacklist.IsBlacklisted(ctx, claims.ID); err != nil {
		return nil, err
	} else if blocked {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
	}
	if invalidated, err := s.blacklist.IsAthleteTokenInvalidated(ctx, claims.AthleteID, claims.GetIssuedAtTime()); err != nil {
		return nil, err
	} else if invalidated {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Session has been invalidated. Please log in again")
	}

	athleteID, err := claims.GetAthleteUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid athlete ID in token")
	}

	athlete, err := s.athletes.FindByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ATHLETE_NOT_FOUND", "Account no longer exists")
		}
		return nil, err
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, athlete.Email, string(athlete.Role))
	if err != nil {
		return nil, mapTokenError(err)
	}

	// The old refresh token is single use
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to blacklist rotated refresh token", zap.Error(err))
	}

	return &AuthResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Athlete:               athleteInfo(athlete),
	}, nil
}

// Logout blacklists the presented token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI == "" {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.RemainingTTL); err != nil {
		s.logger.Error("Failed to blacklist token on logout", zap.Error(err))
		return shared.NewDomainError("LOGOUT_FAILED", "Failed to revoke session")
	}
	return nil
}

// issueSession generates a token pair for the athlete
func (s *AuthService) issueSession(athlete *identity.Athlete) (*AuthResult, error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		AthleteID: athlete.ID,
		Email:     athlete.Email,
		Role:      string(athlete.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &AuthResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Athlete:               athleteInfo(athlete),
	}, nil
}

// mapTokenError translates JWT validation errors to domain errors
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidTokenType),
		errors.Is(err, auth.ErrInvalidClaims),
		errors.Is(err, auth.ErrMissingSubject):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate token")
	}
}
