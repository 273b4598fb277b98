package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"dailydiet/internal/models"
)

// MockMealRepository is an in-memory implementation of MealRepository.
type MockMealRepository struct {
	meals map[string]models.Meal
	mu    sync.RWMutex
}

// NewMockMealRepository creates a new instance of MockMealRepository.
func NewMockMealRepository() *MockMealRepository {
	return &MockMealRepository{
		meals: make(map[string]models.Meal),
	}
}

// GetAllByUser returns all meals owned by the user.
func (r *MockMealRepository) GetAllByUser(userID string) ([]models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mealList := make([]models.Meal, 0)
	for _, meal := range r.meals {
		if meal.UserID == userID {
			mealList = append(mealList, meal)
		}
	}
	return mealList, nil
}

// GetAllByUserOrdered returns the user's meals ordered by date then time.
// ISO date and time strings sort chronologically as plain strings.
func (r *MockMealRepository) GetAllByUserOrdered(userID string) ([]models.Meal, error) {
	mealList, err := r.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(mealList, func(i, j int) bool {
		if mealList[i].Date != mealList[j].Date {
			return mealList[i].Date < mealList[j].Date
		}
		return mealList[i].Time < mealList[j].Time
	})
	return mealList, nil
}

// GetByIDForUser returns the meal matching both id and owner, or (nil, nil).
func (r *MockMealRepository) GetByIDForUser(userID, mealID string) (*models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meal, ok := r.meals[mealID]
	if !ok || meal.UserID != userID {
		return nil, nil
	}
	return &meal, nil
}

// Create adds a new meal.
func (r *MockMealRepository) Create(meal *models.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	meal.CreatedAt = time.Now()
	meal.UpdatedAt = time.Now()
	r.meals[meal.ID] = *meal
	return nil
}

// Update applies the given column values to the meal matching both id and
// owner, refreshing UpdatedAt.
func (r *MockMealRepository) Update(userID, mealID string, fields map[string]interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meal, ok := r.meals[mealID]
	if !ok || meal.UserID != userID {
		return 0, nil
	}

	for column, value := range fields {
		switch column {
		case "name":
			meal.Name = value.(string)
		case "description":
			meal.Description = value.(string)
		case "is_on_diet":
			meal.IsOnDiet = value.(bool)
		case "date":
			meal.Date = value.(string)
		case "time":
			meal.Time = value.(string)
		}
	}
	meal.UpdatedAt = time.Now()
	r.meals[mealID] = meal
	return 1, nil
}

// Delete removes the meal matching both id and owner.
func (r *MockMealRepository) Delete(userID, mealID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meal, ok := r.meals[mealID]
	if !ok || meal.UserID != userID {
		return 0, nil
	}
	delete(r.meals, mealID)
	return 1, nil
}

// CountByDiet counts the user's meals grouped by the on-diet flag.
func (r *MockMealRepository) CountByDiet(userID string) (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var onDiet, offDiet int64
	for _, meal := range r.meals {
		if meal.UserID != userID {
			continue
		}
		if meal.IsOnDiet {
			onDiet++
		} else {
			offDiet++
		}
	}
	return onDiet, offDiet, nil
}
