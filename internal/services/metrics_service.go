package services

import (
	"fmt"

	"dailydiet/internal/repositories"
)

// DietMetrics aggregates a user's diet adherence statistics.
type DietMetrics struct {
	TotalMeals       int64 `json:"totalMeals"`
	MealsOnDiet      int64 `json:"mealsOnDiet"`
	MealsOffDiet     int64 `json:"mealsOffDiet"`
	BestOnDietStreak int   `json:"bestOnDietStreak"`
}

// MetricsService computes diet-adherence statistics over a user's meal
// history.
type MetricsService struct {
	repo repositories.MealRepository
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(repo repositories.MealRepository) *MetricsService {
	return &MetricsService{
		repo: repo,
	}
}

// Compute returns the user's diet metrics. The counts come from a grouped
// count; the streak from a single pass over the meals ordered by date then
// time. The two reads are independent round-trips without a shared
// transaction, so a concurrent write between them can skew the snapshot.
// All-zero metrics on an empty history.
func (s *MetricsService) Compute(userID string) (*DietMetrics, error) {
	onDiet, offDiet, err := s.repo.CountByDiet(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count meals: %w", err)
	}

	meals, err := s.repo.GetAllByUserOrdered(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals for streak: %w", err)
	}

	// Longest contiguous run of on-diet meals in chronological order.
	var bestStreak, currentStreak int
	for _, meal := range meals {
		if meal.IsOnDiet {
			currentStreak++
			if currentStreak > bestStreak {
				bestStreak = currentStreak
			}
		} else {
			currentStreak = 0
		}
	}

	return &DietMetrics{
		TotalMeals:       onDiet + offDiet,
		MealsOnDiet:      onDiet,
		MealsOffDiet:     offDiet,
		BestOnDietStreak: bestStreak,
	}, nil
}
