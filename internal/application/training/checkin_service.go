package training

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/summitmind/backend/internal/domain/shared"
	"github.com/summitmind/backend/internal/domain/training"
)

// CheckInService handles daily check-ins. One check-in exists per athlete
// and local date; the unique index is the source of truth for that rule.
type CheckInService struct {
	checkIns training.CheckInRepository
	logger   *zap.Logger
}

// NewCheckInService creates a new CheckInService
func NewCheckInService(checkIns training.CheckInRepository, logger *zap.Logger) *CheckInService {
	return &CheckInService{checkIns: checkIns, logger: logger}
}

// CreateCheckIn records the athlete's check-in for a local date
func (s *CheckInService) CreateCheckIn(ctx context.Context, athleteID uuid.UUID, req CreateCheckInRequest) (*CheckInResponse, error) {
	checkIn, err := training.NewCheckIn(athleteID, req.Date, req.Mood, req.Energy, req.Stress, req.Note)
	if err != nil {
		return nil, err
	}

	if err := s.checkIns.Create(ctx, checkIn); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("CHECKIN_EXISTS", "A check-in already exists for this date")
		}
		return nil, err
	}
	return checkInResponse(checkIn), nil
}

// GetCheckIn returns the athlete's check-in for one local date
func (s *CheckInService) GetCheckIn(ctx context.Context, athleteID uuid.UUID, date string) (*CheckInResponse, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}

	checkIn, err := s.checkIns.FindByAthleteAndDate(ctx, athleteID, date)
	if err != nil {
		return nil, err
	}
	return checkInResponse(checkIn), nil
}

// ListCheckIns returns the athlete's check-ins in an inclusive date range,
// newest first. Empty bounds leave that side open.
func (s *CheckInService) ListCheckIns(ctx context.Context, athleteID uuid.UUID, from, to string) ([]*CheckInResponse, error) {
	if from != "" {
		if _, err := parseDate(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if _, err := parseDate(to); err != nil {
			return nil, err
		}
	}

	checkIns, err := s.checkIns.FindByAthlete(ctx, athleteID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]*CheckInResponse, 0, len(checkIns))
	for _, checkIn := range checkIns {
		responses = append(responses, checkInResponse(checkIn))
	}
	return responses, nil
}
