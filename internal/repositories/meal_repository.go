package repositories

import "dailydiet/internal/models"

// MealRepository defines the interface for meal data access. Every operation
// takes the owning user's id; reads and mutations match on both the meal id
// and user_id so a user can never observe or modify another user's meals.
type MealRepository interface {
	// GetAllByUser returns all meals owned by the user, in store-native order.
	GetAllByUser(userID string) ([]models.Meal, error)
	// GetAllByUserOrdered returns the user's meals ordered by date then time
	// ascending. The ordering is load-bearing for streak computation.
	GetAllByUserOrdered(userID string) ([]models.Meal, error)
	// GetByIDForUser returns the meal matching both id and owner, or
	// (nil, nil) when no such row exists. A meal owned by another user is
	// indistinguishable from a missing one.
	GetByIDForUser(userID, mealID string) (*models.Meal, error)
	// Create inserts a new meal, generating an id when absent.
	Create(meal *models.Meal) error
	// Update applies the given column values to the meal matching both id
	// and owner, refreshing updated_at. Returns the number of rows affected;
	// zero means the meal does not exist or is not owned by userID.
	Update(userID, mealID string, fields map[string]interface{}) (int64, error)
	// Delete removes the meal matching both id and owner. Returns the number
	// of rows affected.
	Delete(userID, mealID string) (int64, error)
	// CountByDiet returns how many of the user's meals are flagged on-diet
	// and off-diet, computed with a grouped count.
	CountByDiet(userID string) (onDiet int64, offDiet int64, err error)
}
