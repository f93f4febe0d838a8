package content

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/domain/content"
	"github.com/summitmind/backend/internal/domain/identity"
)

// MockScriptRepository is a mock implementation of ScriptRepository
type MockScriptRepository struct {
	mock.Mock
}

func (m *MockScriptRepository) Create(ctx context.Context, script *content.Script) error {
	args := m.Called(ctx, script)
	return args.Error(0)
}

func (m *MockScriptRepository) Update(ctx context.Context, script *content.Script) error {
	args := m.Called(ctx, script)
	return args.Error(0)
}

func (m *MockScriptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScriptRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Script, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Script), args.Error(1)
}

func (m *MockScriptRepository) FindAll(ctx context.Context) ([]*content.Script, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Script), args.Error(1)
}

func (m *MockScriptRepository) FindPublished(ctx context.Context, category string) ([]*content.Script, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Script), args.Error(1)
}

var _ content.ScriptRepository = (*MockScriptRepository)(nil)

// MockTechniqueRepository is a mock implementation of TechniqueRepository
type MockTechniqueRepository struct {
	mock.Mock
}

func (m *MockTechniqueRepository) Create(ctx context.Context, technique *content.Technique) error {
	args := m.Called(ctx, technique)
	return args.Error(0)
}

func (m *MockTechniqueRepository) Update(ctx context.Context, technique *content.Technique) error {
	args := m.Called(ctx, technique)
	return args.Error(0)
}

func (m *MockTechniqueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTechniqueRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Technique, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Technique), args.Error(1)
}

func (m *MockTechniqueRepository) FindAll(ctx context.Context) ([]*content.Technique, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Technique), args.Error(1)
}

func (m *MockTechniqueRepository) FindPublished(ctx context.Context) ([]*content.Technique, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Technique), args.Error(1)
}

var _ content.TechniqueRepository = (*MockTechniqueRepository)(nil)

// MockAthleteRepository is a mock implementation of AthleteRepository
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

// MockObjectStorageService is a mock implementation of ObjectStorageService
type MockObjectStorageService struct {
	mock.Mock
}

func (m *MockObjectStorageService) GenerateUploadURL(ctx context.Context, objectKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, objectKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorageService) GenerateDownloadURL(ctx context.Context, objectKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, objectKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorageService) DeleteObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}

func (m *MockObjectStorageService) ObjectExists(ctx context.Context, objectKey string) (bool, error) {
	args := m.Called(ctx, objectKey)
	return args.Bool(0), args.Error(1)
}

var _ ObjectStorageService = (*MockObjectStorageService)(nil)

// fakeContentCache is a plain map cache without expiry, enough for
// asserting cache reads and invalidation
type fakeContentCache struct {
	items       map[string]any
	invalidated int
}

func newFakeContentCache() *fakeContentCache {
	return &fakeContentCache{items: make(map[string]any)}
}

func (c *fakeContentCache) Get(key string) (any, bool) {
	v, ok := c.items[key]
	return v, ok
}

func (c *fakeContentCache) Set(key string, value any) {
	c.items[key] = value
}

func (c *fakeContentCache) InvalidateAll() {
	c.items = make(map[string]any)
	c.invalidated++
}

var _ ContentCache = (*fakeContentCache)(nil)
