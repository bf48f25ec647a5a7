// handlers/ranking.go
package handlers

import (
	"financequest/database"
	"financequest/middleware"
	"financequest/models"
	"financequest/services"

	"github.com/gofiber/fiber/v2"
)

// The ranking page is the second comparison surface. Unlike the
// dashboard it groups users into tier categories, filters by them, and
// gates comparisons on the category rather than the exact level.

// GetRanking returns participants of one tier category ordered by XP,
// or all participants when no category is given.
// GET /api/ranking?category=beginner
func GetRanking(c *fiber.Ctx) error {
	category, err := parseCategory(c.Query("category"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	roster, err := database.GetStore().ReadAll()
	if err != nil {
		return respondError(c, err)
	}

	currentID := middleware.ParseIdentityToken(middleware.TokenFromRequest(c))

	filtered := services.FilterByCategory(roster, category)
	ranked := services.Rank(filtered)
	entries := buildEntries(ranked, currentID)

	return c.JSON(fiber.Map{
		"success":  true,
		"category": category,
		"entries":  entries,
		"total":    len(entries),
	})
}

// SelectForRankingComparison toggles a user in the ranking-page
// selection. This surface only requires the same tier category, and the
// selectable set honors the active filter. Changing the filter on the
// client side clears the selection, so the request carries it fresh.
// POST /api/ranking/select?category=advanced
func SelectForRankingComparison(c *fiber.Ctx) error {
	category, err := parseCategory(c.Query("category"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return toggleSelection(c, services.TierCategory, category)
}

// CompareRankingUsers produces the ranking-page head-to-head summary
// for two users of the same tier category.
// POST /api/ranking/compare?category=advanced
func CompareRankingUsers(c *fiber.Ctx) error {
	category, err := parseCategory(c.Query("category"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return compareSelection(c, services.TierCategory, category)
}

func parseCategory(raw string) (models.TierCategory, error) {
	switch models.TierCategory(raw) {
	case "", "all":
		return "", nil
	case models.TierBeginner, models.TierIntermediate, models.TierAdvanced, models.TierExpert:
		return models.TierCategory(raw), nil
	default:
		return "", fiber.NewError(400, "unknown tier category: "+raw)
	}
}
