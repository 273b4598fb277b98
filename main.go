package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"dailydiet/internal/config"
	"dailydiet/internal/db"
	"dailydiet/internal/handlers"
	"dailydiet/internal/middleware"
	"dailydiet/internal/repositories"
	"dailydiet/internal/services"
	"dailydiet/internal/session"
	"dailydiet/pkg/events"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	// --- Database ---
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Event publisher (optional) ---
	// Meal lifecycle events go to RabbitMQ when a broker URL is configured.
	// Without one the service runs standalone and skips publishing.
	var publisher services.EventPublisher
	var mqClient *events.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = events.NewClient(events.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logrus.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
		logrus.Info("RabbitMQ client connected, meal events enabled")
	} else {
		logrus.Info("No RABBITMQ_URL configured, meal events disabled")
	}

	// --- Session codec ---
	// The plain codec trusts the cookie value as the user id. Setting
	// SESSION_SECRET switches to HS256-signed session tokens.
	var codec session.Codec
	if cfg.SessionSecret != "" {
		codec = session.NewSignedCodec(cfg.SessionSecret)
	} else {
		codec = session.NewPlainCodec()
		if cfg.AppEnv == config.EnvProduction {
			logrus.Warn("Running with unsigned session cookies; set SESSION_SECRET to enable signing")
		}
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(gdb)
	mealRepo := repositories.NewGORMMealRepository(gdb)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	mealService := services.NewMealService(mealRepo, publisher)
	metricsService := services.NewMetricsService(mealRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, metricsService, codec)
	mealHandler := handlers.NewMealHandler(mealService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	guard := middleware.SessionRequired(codec)
	userHandler.RegisterRoutes(app, guard)
	mealHandler.RegisterRoutes(app, guard)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"env":    cfg.AppEnv,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server with graceful shutdown ---
	logrus.Infof("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	logrus.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logrus.Errorf("Error during shutdown: %v", err)
	}
	logrus.Info("Server gracefully stopped")
}
