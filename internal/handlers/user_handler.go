package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"dailydiet/internal/middleware"
	"dailydiet/internal/services"
	"dailydiet/internal/session"
)

// UserHandler handles HTTP requests for users and their diet metrics.
type UserHandler struct {
	userService    *services.UserService
	metricsService *services.MetricsService
	codec          session.Codec
	validate       *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, metricsService *services.MetricsService, codec session.Codec) *UserHandler {
	return &UserHandler{
		userService:    userService,
		metricsService: metricsService,
		codec:          codec,
		validate:       newValidator(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. The metrics
// route is the only guarded one: signup and listing are public.
func (h *UserHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Get("/metrics", guard, h.HandleMetrics)
}

// createUserRequest is the body schema for signup.
type createUserRequest struct {
	Name   string  `json:"name" validate:"required"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
}

// HandleCreateUser creates a user and establishes their session cookie.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Warnf("error parsing create user request body: %v", err)
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

	user, err := h.userService.CreateUser(req.Name, req.Avatar)
	if err != nil {
		logrus.Errorf("error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}

	cookieValue, err := h.codec.Issue(user.ID)
	if err != nil {
		logrus.Errorf("error issuing session for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not establish session",
			"error":   err.Error(),
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:   session.CookieName,
		Value:  cookieValue,
		Path:   "/",
		MaxAge: int(session.TTL.Seconds()),
	})

	return c.SendStatus(fiber.StatusCreated)
}

// HandleListUsers returns all users.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		logrus.Errorf("error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"users": users,
	})
}

// HandleMetrics returns the authenticated user's diet metrics.
func (h *UserHandler) HandleMetrics(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	metrics, err := h.metricsService.Compute(userID)
	if err != nil {
		logrus.Errorf("error computing metrics for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute metrics",
			"error":   err.Error(),
		})
	}
	return c.JSON(metrics)
}
