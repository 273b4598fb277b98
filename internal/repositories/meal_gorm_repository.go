package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dailydiet/internal/models"
)

// GORMMealRepository is a GORM implementation of MealRepository.
type GORMMealRepository struct {
	db *gorm.DB
}

// NewGORMMealRepository creates a new instance of GORMMealRepository.
func NewGORMMealRepository(db *gorm.DB) *GORMMealRepository {
	return &GORMMealRepository{
		db: db,
	}
}

// GetAllByUser retrieves all meals owned by the user.
func (r *GORMMealRepository) GetAllByUser(userID string) ([]models.Meal, error) {
	var meals []models.Meal
	if err := r.db.Where("user_id = ?", userID).Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to get meals for user %s: %w", userID, err)
	}
	return meals, nil
}

// GetAllByUserOrdered retrieves the user's meals ordered by date then time.
func (r *GORMMealRepository) GetAllByUserOrdered(userID string) ([]models.Meal, error) {
	var meals []models.Meal
	if err := r.db.Where("user_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to get ordered meals for user %s: %w", userID, err)
	}
	return meals, nil
}

// GetByIDForUser retrieves the meal matching both id and owner. A missing row
// is not an error: (nil, nil) is returned, whether the meal does not exist or
// belongs to another user.
func (r *GORMMealRepository) GetByIDForUser(userID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meal %s for user %s: %w", mealID, userID, err)
	}
	return &meal, nil
}

// Create inserts a new meal, generating an id when absent.
func (r *GORMMealRepository) Create(meal *models.Meal) error {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	if err := r.db.Create(meal).Error; err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	return nil
}

// Update applies the given column values to the meal matching both id and
// owner. GORM refreshes updated_at alongside the supplied columns; an update
// with no fields still refreshes it.
func (r *GORMMealRepository) Update(userID, mealID string, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		fields = map[string]interface{}{"updated_at": time.Now()}
	}
	res := r.db.Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update meal %s: %w", mealID, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes the meal matching both id and owner. The row is gone for
// good: the model carries no soft-delete column.
func (r *GORMMealRepository) Delete(userID, mealID string) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.Meal{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete meal %s: %w", mealID, res.Error)
	}
	return res.RowsAffected, nil
}

// CountByDiet counts the user's meals grouped by the on-diet flag.
func (r *GORMMealRepository) CountByDiet(userID string) (int64, int64, error) {
	type dietCount struct {
		IsOnDiet bool
		Total    int64
	}
	var rows []dietCount
	if err := r.db.Model(&models.Meal{}).
		Select("is_on_diet, count(*) as total").
		Where("user_id = ?", userID).
		Group("is_on_diet").
		Scan(&rows).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count meals for user %s: %w", userID, err)
	}

	var onDiet, offDiet int64
	for _, row := range rows {
		if row.IsOnDiet {
			onDiet = row.Total
		} else {
			offDiet = row.Total
		}
	}
	return onDiet, offDiet, nil
}
