package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dailydiet/internal/middleware"
	"dailydiet/internal/models"
	"dailydiet/internal/services"
)

// MealHandler handles HTTP requests for meals. Every route is guarded by the
// session middleware; the authenticated user id scopes all store access.
type MealHandler struct {
	service  *services.MealService
	validate *validator.Validate
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(service *services.MealService) *MealHandler {
	return &MealHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the meal routes with the Fiber app, all behind the
// given session guard.
func (h *MealHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	mealRoutes := router.Group("/meals", guard)
	mealRoutes.Get("/", h.HandleListMeals)
	mealRoutes.Get("/:id", h.HandleGetMeal)
	mealRoutes.Post("/", h.HandleCreateMeal)
	mealRoutes.Put("/:id", h.HandleUpdateMeal)
	mealRoutes.Delete("/:id", h.HandleDeleteMeal)
}

// createMealRequest is the body schema for recording a meal. IsOnDiet is a
// pointer so a missing flag fails validation instead of defaulting to false.
type createMealRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	IsOnDiet    *bool  `json:"isOnDiet" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,timeofday"`
}

// updateMealRequest is the body schema for a partial update: any subset of
// the creation fields.
type updateMealRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsOnDiet    *bool   `json:"isOnDiet"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time" validate:"omitempty,timeofday"`
}

// mealIDParam extracts and validates the :id route parameter.
func mealIDParam(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", err
	}
	return id, nil
}

// HandleListMeals returns all of the authenticated user's meals.
func (h *MealHandler) HandleListMeals(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	meals, err := h.service.ListMeals(userID)
	if err != nil {
		logrus.Errorf("error listing meals for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve meals",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"meals": meals,
	})
}

// HandleGetMeal returns a single meal, or a null meal when no row matches the
// id and owner. A meal owned by someone else looks exactly like a missing
// one.
func (h *MealHandler) HandleGetMeal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	mealID, err := mealIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal id",
			"error":   err.Error(),
		})
	}

	meal, err := h.service.GetMeal(userID, mealID)
	if err != nil {
		logrus.Errorf("error getting meal %s for user %s: %v", mealID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve meal",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"meal": meal,
	})
}

// HandleCreateMeal records a new meal for the authenticated user.
func (h *MealHandler) HandleCreateMeal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req createMealRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Warnf("error parsing create meal request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrors(err),
		})
	}

	meal := &models.Meal{
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    *req.IsOnDiet,
		Date:        req.Date,
		Time:        req.Time,
	}
	if err := h.service.CreateMeal(userID, meal); err != nil {
		logrus.Errorf("error creating meal for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create meal",
			"error":   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusCreated)
}

// HandleUpdateMeal applies a partial update to one of the user's meals.
// A missing or non-owned meal is a silent no-op: the response is 204 either
// way.
func (h *MealHandler) HandleUpdateMeal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	mealID, err := mealIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal id",
			"error":   err.Error(),
		})
	}

	var req updateMealRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Warnf("error parsing update meal request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrors(err),
		})
	}

	update := services.MealUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    req.IsOnDiet,
		Date:        req.Date,
		Time:        req.Time,
	}
	if _, err := h.service.UpdateMeal(userID, mealID, update); err != nil {
		logrus.Errorf("error updating meal %s for user %s: %v", mealID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update meal",
			"error":   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteMeal permanently deletes one of the user's meals. Like update,
// a missing or non-owned meal still yields 204.
func (h *MealHandler) HandleDeleteMeal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	mealID, err := mealIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal id",
			"error":   err.Error(),
		})
	}

	if _, err := h.service.DeleteMeal(userID, mealID); err != nil {
		logrus.Errorf("error deleting meal %s for user %s: %v", mealID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete meal",
			"error":   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
