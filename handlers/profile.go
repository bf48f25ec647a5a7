// handlers/profile.go
package handlers

import (
	"financequest/database"
	"financequest/middleware"
	"financequest/models"
	"financequest/services"

	"github.com/gofiber/fiber/v2"
)

type StartJourneyRequest struct {
	Name               string  `json:"name"`
	GoalAmount         float64 `json:"goal_amount"`
	InitialDeposit     float64 `json:"initial_deposit"`
	ParticipateRanking bool    `json:"participate_ranking"`
}

// StartJourney creates the caller's profile. A profile is created
// exactly once per identity; later calls conflict.
func StartJourney(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req StartJourneyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	store := database.GetStore()
	existing, err := store.ReadOne(userID)
	if err != nil {
		return respondError(c, err)
	}
	if existing != nil {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   "Profile already exists",
		})
	}

	profile, err := services.CreateProfile(userID, req.Name, req.GoalAmount, req.InitialDeposit, req.ParticipateRanking)
	if err != nil {
		return respondError(c, err)
	}

	roster, err := store.Upsert(profile)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":       true,
		"user":          profile,
		"goal_progress": services.GoalProgress(profile),
		"roster_size":   len(roster),
	})
}

// GetCurrentProfile returns the caller's profile with derived progress.
func GetCurrentProfile(c *fiber.Ctx) error {
	profile, ok := requireProfile(c)
	if !ok {
		return nil
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"user":          profile,
		"goal_progress": services.GoalProgress(*profile),
		"xp_progress":   services.XPProgress(*profile),
		"remaining":     remainingToGoal(*profile),
		"tier":          models.CategoryForLevel(profile.Level),
	})
}

func remainingToGoal(p models.UserProfile) float64 {
	remaining := p.GoalAmount - p.MoneySaved
	if remaining < 0 {
		return 0
	}
	return remaining
}
