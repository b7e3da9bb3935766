package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/job-portal/internal/config"
	"alfredoptarigan/job-portal/internal/handlers"
	"alfredoptarigan/job-portal/internal/logger"
	"alfredoptarigan/job-portal/internal/repositories"
	"alfredoptarigan/job-portal/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init()
	log.Info().Str("env", cfg.Server.Env).Msg("Config loaded")

	// Initialize database
	client, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	db := client.Database(cfg.Database.Name)

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(tokenService, cfg.Auth.TokenTTL, cfg.IsProduction())
	jobHandler := handlers.NewJobHandler(jobRepo)
	applicationHandler := handlers.NewApplicationHandler(applicationRepo, jobRepo)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Portal API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	// Cookies only travel cross-origin when the caller list is explicit.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from job portal server!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth
	app.Post("/jwt", authHandler.HandleIssueToken)
	app.Post("/logout", authHandler.HandleLogout)

	// Jobs
	app.Get("/jobs", jobHandler.HandleListJobs)
	app.Post("/jobs", jobHandler.HandleCreateJob)
	app.Get("/jobs/:id", jobHandler.HandleGetJob)

	// Applications
	app.Post("/job-applications", applicationHandler.HandleSubmitApplication)
	app.Get("/job-application", handlers.RequireSession(tokenService), applicationHandler.HandleListMyApplications)
	app.Get("/job-applications/jobs/:job_id", applicationHandler.HandleListJobApplicants)
	app.Patch("/job-applications/:id", applicationHandler.HandleUpdateStatus)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect database")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// errorHandler turns any error a handler returns into a structured JSON
// response; one request's fault never touches the process or other requests.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	l := logger.Get()
	l.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("Request failed")

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
