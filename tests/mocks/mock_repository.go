package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"macrofit/internal/models"
	"macrofit/internal/nutrition"
	"macrofit/internal/plan"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Create(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockNutritionEntryRepository
type MockNutritionEntryRepository struct {
	mock.Mock
}

func (m *MockNutritionEntryRepository) Create(entry *models.NutritionEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockNutritionEntryRepository) FindByID(id uint) (*models.NutritionEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionEntry), args.Error(1)
}

func (m *MockNutritionEntryRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.NutritionEntry, error) {
	args := m.Called(userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NutritionEntry), args.Error(1)
}

func (m *MockNutritionEntryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNutritionEntryRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockWorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(workout *models.Workout) error {
	args := m.Called(workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) FindByID(id uint) (*models.Workout, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Workout, error) {
	args := m.Called(userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMacroAdvisor stands in for the language-model macro advisor.
type MockMacroAdvisor struct {
	mock.Mock
}

func (m *MockMacroAdvisor) ComputeMacroTargets(ctx context.Context, metrics nutrition.Metrics) (nutrition.Targets, error) {
	args := m.Called(metrics)
	return args.Get(0).(nutrition.Targets), args.Error(1)
}

// MemoryPlanCacheProvider is an in-memory stand-in for the Redis-backed
// plan cache, keyed the same way (one namespace per user).
type MemoryPlanCacheProvider struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryPlanCacheProvider() *MemoryPlanCacheProvider {
	return &MemoryPlanCacheProvider{entries: make(map[string][]byte)}
}

func (p *MemoryPlanCacheProvider) PlanCache(userID uint) plan.Cache {
	return &memoryPlanCache{provider: p, userID: userID}
}

type memoryPlanCache struct {
	provider *MemoryPlanCacheProvider
	userID   uint
}

func (c *memoryPlanCache) key(weekKey string) string {
	return fmt.Sprintf("plan:%d:%s", c.userID, weekKey)
}

func (c *memoryPlanCache) Get(ctx context.Context, weekKey string) ([]byte, bool, error) {
	c.provider.mu.Lock()
	defer c.provider.mu.Unlock()
	payload, ok := c.provider.entries[c.key(weekKey)]
	return payload, ok, nil
}

func (c *memoryPlanCache) Set(ctx context.Context, weekKey string, payload []byte) error {
	c.provider.mu.Lock()
	defer c.provider.mu.Unlock()
	c.provider.entries[c.key(weekKey)] = payload
	return nil
}
