package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dailydiet/internal/models"
	"dailydiet/internal/services"
)

// MockMealRepository is a mock implementation of repositories.MealRepository.
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) GetAllByUser(userID string) ([]models.Meal, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) GetAllByUserOrdered(userID string) ([]models.Meal, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) GetByIDForUser(userID, mealID string) (*models.Meal, error) {
	args := m.Called(userID, mealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealRepository) Create(meal *models.Meal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealRepository) Update(userID, mealID string, fields map[string]interface{}) (int64, error) {
	args := m.Called(userID, mealID, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMealRepository) Delete(userID, mealID string) (int64, error) {
	args := m.Called(userID, mealID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMealRepository) CountByDiet(userID string) (int64, int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// mealsWithDietFlags builds a chronologically ordered meal sequence from a
// list of on-diet flags.
func mealsWithDietFlags(flags ...bool) []models.Meal {
	meals := make([]models.Meal, 0, len(flags))
	for i, flag := range flags {
		meals = append(meals, models.Meal{
			ID:       fmt.Sprintf("meal-%d", i),
			UserID:   "user-1",
			Name:     fmt.Sprintf("Meal %d", i),
			Date:     "2025-07-26",
			Time:     fmt.Sprintf("%02d:00", 6+i),
			IsOnDiet: flag,
		})
	}
	return meals
}

func TestMetricsService_EmptyHistory(t *testing.T) {
	mockRepo := new(MockMealRepository)
	service := services.NewMetricsService(mockRepo)

	mockRepo.On("CountByDiet", "user-1").Return(int64(0), int64(0), nil).Once()
	mockRepo.On("GetAllByUserOrdered", "user-1").Return([]models.Meal{}, nil).Once()

	metrics, err := service.Compute("user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), metrics.TotalMeals)
	assert.Equal(t, int64(0), metrics.MealsOnDiet)
	assert.Equal(t, int64(0), metrics.MealsOffDiet)
	assert.Equal(t, 0, metrics.BestOnDietStreak)
	mockRepo.AssertExpectations(t)
}

func TestMetricsService_BestStreakIsLongestRun(t *testing.T) {
	// on, on, off, on: the longest contiguous on-diet run is 2.
	meals := mealsWithDietFlags(true, true, false, true)

	mockRepo := new(MockMealRepository)
	service := services.NewMetricsService(mockRepo)

	mockRepo.On("CountByDiet", "user-1").Return(int64(3), int64(1), nil).Once()
	mockRepo.On("GetAllByUserOrdered", "user-1").Return(meals, nil).Once()

	metrics, err := service.Compute("user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(4), metrics.TotalMeals)
	assert.Equal(t, int64(3), metrics.MealsOnDiet)
	assert.Equal(t, int64(1), metrics.MealsOffDiet)
	assert.Equal(t, 2, metrics.BestOnDietStreak)
	mockRepo.AssertExpectations(t)
}

func TestMetricsService_StreakVariants(t *testing.T) {
	tests := []struct {
		name       string
		flags      []bool
		wantStreak int
	}{
		{"all on diet", []bool{true, true, true}, 3},
		{"all off diet", []bool{false, false}, 0},
		{"single on diet", []bool{true}, 1},
		{"longest run at the end", []bool{true, false, true, true, true}, 3},
		{"longest run at the start", []bool{true, true, false, true, false}, 2},
		{"alternating", []bool{true, false, true, false, true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meals := mealsWithDietFlags(tt.flags...)
			var onDiet, offDiet int64
			for _, f := range tt.flags {
				if f {
					onDiet++
				} else {
					offDiet++
				}
			}

			mockRepo := new(MockMealRepository)
			service := services.NewMetricsService(mockRepo)

			mockRepo.On("CountByDiet", "user-1").Return(onDiet, offDiet, nil).Once()
			mockRepo.On("GetAllByUserOrdered", "user-1").Return(meals, nil).Once()

			metrics, err := service.Compute("user-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStreak, metrics.BestOnDietStreak)
			assert.Equal(t, metrics.TotalMeals, metrics.MealsOnDiet+metrics.MealsOffDiet)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMetricsService_CountError(t *testing.T) {
	mockRepo := new(MockMealRepository)
	service := services.NewMetricsService(mockRepo)

	mockRepo.On("CountByDiet", "user-1").Return(int64(0), int64(0), fmt.Errorf("database error")).Once()

	metrics, err := service.Compute("user-1")

	assert.Error(t, err)
	assert.Nil(t, metrics)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}
