package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dailydiet/internal/models"
	"dailydiet/internal/repositories"
)

// EventPublisher publishes meal lifecycle events to a message broker.
// Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// Outcome reports whether a mutation reached a row. The HTTP surface maps
// both values to the same success status; the distinction exists so callers
// and tests can tell a real update apart from a silent no-op.
type Outcome int

const (
	// OutcomeApplied means the mutation affected the target meal.
	OutcomeApplied Outcome = iota
	// OutcomeNotFoundOrForbidden means no row matched the meal id and user
	// id pair: the meal does not exist, or belongs to another user. The two
	// cases are deliberately indistinguishable.
	OutcomeNotFoundOrForbidden
)

// MealUpdate carries a partial update. Nil fields are left unchanged.
type MealUpdate struct {
	Name        *string
	Description *string
	IsOnDiet    *bool
	Date        *string
	Time        *string
}

// MealService handles business logic related to meals. Every operation is
// scoped to the authenticated user's id.
type MealService struct {
	repo      repositories.MealRepository
	publisher EventPublisher // nil disables event publishing
}

// NewMealService creates a new MealService. publisher may be nil.
func NewMealService(repo repositories.MealRepository, publisher EventPublisher) *MealService {
	return &MealService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListMeals retrieves all meals owned by the user.
func (s *MealService) ListMeals(userID string) ([]models.Meal, error) {
	return s.repo.GetAllByUser(userID)
}

// GetMeal retrieves a single meal matching both id and owner. Returns
// (nil, nil) when no such meal is visible to the user.
func (s *MealService) GetMeal(userID, mealID string) (*models.Meal, error) {
	return s.repo.GetByIDForUser(userID, mealID)
}

// CreateMeal persists a new meal owned by userID and publishes a
// meal.created event.
func (s *MealService) CreateMeal(userID string, meal *models.Meal) error {
	meal.ID = uuid.New().String()
	meal.UserID = userID

	if err := s.repo.Create(meal); err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}

	s.publishEvent("meal.created", map[string]interface{}{
		"mealID":   meal.ID,
		"userID":   meal.UserID,
		"name":     meal.Name,
		"isOnDiet": meal.IsOnDiet,
		"date":     meal.Date,
		"time":     meal.Time,
	})
	return nil
}

// UpdateMeal applies the supplied subset of fields to the meal matching both
// id and owner. A meal that does not exist or is not owned by userID yields
// OutcomeNotFoundOrForbidden, never an error.
func (s *MealService) UpdateMeal(userID, mealID string, update MealUpdate) (Outcome, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.IsOnDiet != nil {
		fields["is_on_diet"] = *update.IsOnDiet
	}
	if update.Date != nil {
		fields["date"] = *update.Date
	}
	if update.Time != nil {
		fields["time"] = *update.Time
	}

	affected, err := s.repo.Update(userID, mealID, fields)
	if err != nil {
		return OutcomeNotFoundOrForbidden, fmt.Errorf("failed to update meal %s: %w", mealID, err)
	}
	if affected == 0 {
		return OutcomeNotFoundOrForbidden, nil
	}

	s.publishEvent("meal.updated", map[string]interface{}{
		"mealID": mealID,
		"userID": userID,
	})
	return OutcomeApplied, nil
}

// DeleteMeal removes the meal matching both id and owner. Deletion is
// permanent. A missing or non-owned meal yields OutcomeNotFoundOrForbidden.
func (s *MealService) DeleteMeal(userID, mealID string) (Outcome, error) {
	affected, err := s.repo.Delete(userID, mealID)
	if err != nil {
		return OutcomeNotFoundOrForbidden, fmt.Errorf("failed to delete meal %s: %w", mealID, err)
	}
	if affected == 0 {
		return OutcomeNotFoundOrForbidden, nil
	}

	s.publishEvent("meal.deleted", map[string]interface{}{
		"mealID": mealID,
		"userID": userID,
	})
	return OutcomeApplied, nil
}

// publishEvent sends a meal lifecycle event. Publishing is best-effort: a
// broker failure is logged and never surfaced to the request.
func (s *MealService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logrus.Warnf("failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.publisher.Publish(eventType, body); err != nil {
		logrus.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
