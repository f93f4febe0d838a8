package training

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/identity"
	"github.com/summitmind/backend/internal/domain/training"
)

// MockGoalRepository is a mock implementation of GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *training.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) Update(ctx context.Context, goal *training.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*training.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, status *training.GoalStatus) ([]*training.Goal, error) {
	args := m.Called(ctx, athleteID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*training.Goal), args.Error(1)
}

var _ training.GoalRepository = (*MockGoalRepository)(nil)

// MockCheckInRepository is a mock implementation of CheckInRepository
type MockCheckInRepository struct {
	mock.Mock
}

func (m *MockCheckInRepository) Create(ctx context.Context, checkIn *training.CheckIn) error {
	args := m.Called(ctx, checkIn)
	return args.Error(0)
}

func (m *MockCheckInRepository) FindByAthleteAndDate(ctx context.Context, athleteID uuid.UUID, date string) (*training.CheckIn, error) {
	args := m.Called(ctx, athleteID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*training.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, from, to string) ([]*training.CheckIn, error) {
	args := m.Called(ctx, athleteID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*training.CheckIn), args.Error(1)
}

var _ training.CheckInRepository = (*MockCheckInRepository)(nil)

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *training.TrainingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, session *training.TrainingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.TrainingSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*training.TrainingSession), args.Error(1)
}

func (m *MockSessionRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, limit int) ([]*training.TrainingSession, error) {
	args := m.Called(ctx, athleteID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*training.TrainingSession), args.Error(1)
}

var _ training.SessionRepository = (*MockSessionRepository)(nil)

// MockVoiceSessionRepository is a mock implementation of VoiceSessionRepository
type MockVoiceSessionRepository struct {
	mock.Mock
}

func (m *MockVoiceSessionRepository) Create(ctx context.Context, session *training.VoiceSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockVoiceSessionRepository) Update(ctx context.Context, session *training.VoiceSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockVoiceSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.VoiceSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*training.VoiceSession), args.Error(1)
}

func (m *MockVoiceSessionRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, limit int) ([]*training.VoiceSession, error) {
	args := m.Called(ctx, athleteID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*training.VoiceSession), args.Error(1)
}

var _ training.VoiceSessionRepository = (*MockVoiceSessionRepository)(nil)

// MockAthleteRepository is a mock implementation of identity.AthleteRepository
type MockAthleteRepository struct {
	mock.Mock
}

func (m *MockAthleteRepository) Create(ctx context.Context, athlete *identity.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *MockAthleteRepository) Update(ctx context.Context, athlete *identity.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *MockAthleteRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Athlete, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByEmail(ctx context.Context, email string) (*identity.Athlete, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*identity.Athlete, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByStripeSubscriptionID(ctx context.Context, subscriptionID string) (*identity.Athlete, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAthleteRepository) MergeBilling(ctx context.Context, id uuid.UUID, patch *billing.Patch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

var _ identity.AthleteRepository = (*MockAthleteRepository)(nil)
