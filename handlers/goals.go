// handlers/goals.go
package handlers

import (
	"financequest/database"
	"financequest/models"
	"financequest/services"

	"github.com/gofiber/fiber/v2"
)

type CustomGoalRequest struct {
	Title string `json:"title"`
	XP    int    `json:"xp"`
	Icon  string `json:"icon"`
}

type GoalView struct {
	models.Goal
	Completed bool `json:"completed"`
}

// ListGoals returns the standard catalog plus the caller's custom
// goals, each annotated with completion state, and the weekly summary
// counters.
func ListGoals(c *fiber.Ctx) error {
	profile, ok := requireProfile(c)
	if !ok {
		return nil
	}

	allGoals := append(append([]models.Goal(nil), models.WeeklyGoalCatalog...), profile.CustomGoals...)

	views := make([]GoalView, 0, len(allGoals))
	completedCount := 0
	xpEarned := 0
	for _, g := range allGoals {
		completed := profile.HasCompletedGoal(g.ID)
		if completed {
			completedCount++
			xpEarned += g.XP
		}
		views = append(views, GoalView{Goal: g, Completed: completed})
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"goals":           views,
		"completed_count": completedCount,
		"total_count":     len(allGoals),
		"xp_earned":       xpEarned,
	})
}

// CompleteGoal marks a goal done and grants its XP reward. The reward is
// resolved server-side from the catalog or the profile's custom goals.
// Completing a goal twice changes nothing.
func CompleteGoal(c *fiber.Ctx) error {
	profile, ok := requireProfile(c)
	if !ok {
		return nil
	}

	goalID := c.Params("id")
	goal, found := models.CatalogGoal(goalID)
	if !found {
		if idx := profile.FindCustomGoal(goalID); idx >= 0 {
			goal = profile.CustomGoals[idx]
			found = true
		}
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Goal not found"})
	}

	next := services.CompleteGoal(*profile, goal.ID, goal.XP)

	if _, err := database.GetStore().Upsert(next); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"user":       next,
		"xp_gained":  next.XP - profile.XP,
		"leveled_up": next.Level > profile.Level,
		"new_level":  next.Level,
	})
}

// AddCustomGoal appends a user-defined goal to the caller's profile.
func AddCustomGoal(c *fiber.Ctx) error {
	profile, ok := requireProfile(c)
	if !ok {
		return nil
	}

	var req CustomGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	next, err := services.AddCustomGoal(*profile, req.Title, req.XP, req.Icon)
	if err != nil {
		return respondError(c, err)
	}

	if _, err := database.GetStore().Upsert(next); err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":      true,
		"user":         next,
		"custom_goals": next.CustomGoals,
	})
}

// DeleteCustomGoal removes a custom goal. Completion already earned for
// it stays, along with its XP. Unknown ids are a silent no-op.
func DeleteCustomGoal(c *fiber.Ctx) error {
	profile, ok := requireProfile(c)
	if !ok {
		return nil
	}

	next := services.DeleteCustomGoal(*profile, c.Params("id"))

	if _, err := database.GetStore().Upsert(next); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"custom_goals": next.CustomGoals,
	})
}
