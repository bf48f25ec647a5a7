// main.go
package main

import (
	"log"
	"os"
	"time"

	"financequest/database"
	"financequest/handlers"
	"financequest/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database (migrations + roster seed)
	database.InitDB()

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Identity (get-or-create the local opaque user id)
	api.Post("/identity", middleware.IdentityRateLimitMiddleware(), handlers.GetOrCreateIdentity)

	// Profile routes (require an identity)
	profileGroup := api.Group("/profile")
	profileGroup.Use(middleware.IdentityMiddleware)
	profileGroup.Post("/", handlers.StartJourney)
	profileGroup.Get("/me", handlers.GetCurrentProfile)
	profileGroup.Get("/me/investments", handlers.ListInvestments)
	profileGroup.Post("/me/investments", handlers.RecordInvestment)
	profileGroup.Put("/me/investments/:id", handlers.EditInvestment)
	profileGroup.Delete("/me/investments/:id", handlers.DeleteInvestment)

	// Weekly goal routes
	goalGroup := api.Group("/goals")
	goalGroup.Use(middleware.IdentityMiddleware)
	goalGroup.Get("/", handlers.ListGoals)
	goalGroup.Post("/", handlers.AddCustomGoal)
	goalGroup.Delete("/:id", handlers.DeleteCustomGoal)
	goalGroup.Post("/:id/complete", handlers.CompleteGoal)

	// Leaderboard (dashboard surface, exact-level comparisons)
	leaderboardGroup := api.Group("/leaderboard")
	leaderboardGroup.Get("/", handlers.GetLeaderboard)
	leaderboardGroup.Post("/select", handlers.SelectForComparison)
	leaderboardGroup.Post("/compare", handlers.CompareUsers)

	// Ranking page (category surface, tier-bucket comparisons)
	rankingGroup := api.Group("/ranking")
	rankingGroup.Get("/", handlers.GetRanking)
	rankingGroup.Post("/select", handlers.SelectForRankingComparison)
	rankingGroup.Post("/compare", handlers.CompareRankingUsers)

	// Community stats
	api.Get("/stats", handlers.GetGlobalStats)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("APP_ENV") == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
