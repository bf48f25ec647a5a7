// handlers/leaderboard.go
package handlers

import (
	"errors"
	"strconv"

	"financequest/apperrors"
	"financequest/database"
	"financequest/middleware"
	"financequest/models"
	"financequest/services"
	"financequest/utils"

	"github.com/gofiber/fiber/v2"
)

// LeaderboardEntry is one rendered row of the ranking.
type LeaderboardEntry struct {
	Position      int                 `json:"position"`
	RankClass     string              `json:"rank_class"`
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Avatar        string              `json:"avatar"`
	Level         int                 `json:"level"`
	XP            int                 `json:"xp"`
	XPProgress    float64             `json:"xp_progress"`
	GoalProgress  float64             `json:"goal_progress"`
	MoneySaved    float64             `json:"money_saved"`
	MoneyDisplay  string              `json:"money_display"`
	Tier          models.TierCategory `json:"tier"`
	TierName      string              `json:"tier_name"`
	IsCurrentUser bool                `json:"is_current_user"`
}

type SelectRequest struct {
	Selected []string `json:"selected"`
	Toggle   string   `json:"toggle"`
}

type CompareRequest struct {
	UserIDs []string `json:"user_ids"`
}

// GetLeaderboard returns the dashboard ranking: participating users by
// XP descending, with badge classes and progress bars.
// GET /api/leaderboard
func GetLeaderboard(c *fiber.Ctx) error {
	roster, err := database.GetStore().ReadAll()
	if err != nil {
		return respondError(c, err)
	}

	// Identity is optional here; it only highlights the caller's row.
	currentID := middleware.ParseIdentityToken(middleware.TokenFromRequest(c))

	ranked := services.Rank(roster)
	entries := buildEntries(ranked, currentID)

	return c.JSON(fiber.Map{
		"success": true,
		"entries": entries,
		"total":   len(entries),
	})
}

// SelectForComparison toggles a user in the dashboard comparison
// selection. This surface requires the exact same level.
// POST /api/leaderboard/select
func SelectForComparison(c *fiber.Ctx) error {
	return toggleSelection(c, services.TierExactLevel, "")
}

// CompareUsers produces the dashboard head-to-head summary for two
// selected users of the same level.
// POST /api/leaderboard/compare
func CompareUsers(c *fiber.Ctx) error {
	return compareSelection(c, services.TierExactLevel, "")
}

// shared by the dashboard and ranking surfaces

func toggleSelection(c *fiber.Ctx, rule services.TierRule, category models.TierCategory) error {
	var req SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Toggle == "" {
		return c.Status(400).JSON(fiber.Map{"error": "toggle user id is required"})
	}

	roster, err := database.GetStore().ReadAll()
	if err != nil {
		return respondError(c, err)
	}
	selectable := services.FilterByCategory(roster, category)

	selector := services.NewSelector(rule, req.Selected, selectable)
	toggleErr := selector.Toggle(req.Toggle, selectable)

	var tierErr *apperrors.IncompatibleTierError
	if errors.As(toggleErr, &tierErr) {
		// The selection (minus any eviction) stands; only the append
		// was rejected.
		return c.Status(409).JSON(fiber.Map{
			"success":        false,
			"error":          tierErr.Error(),
			"selected_tier":  tierErr.Selected,
			"candidate_tier": tierErr.Candidate,
			"selected":       selector.SelectedIDs(),
		})
	}
	if toggleErr != nil {
		return respondError(c, toggleErr)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"selected":    selector.SelectedIDs(),
		"can_compare": selector.CanCompare(),
	})
}

func compareSelection(c *fiber.Ctx, rule services.TierRule, category models.TierCategory) error {
	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.UserIDs) != 2 {
		return c.Status(400).JSON(fiber.Map{"error": "exactly two users must be selected"})
	}

	roster, err := database.GetStore().ReadAll()
	if err != nil {
		return respondError(c, err)
	}
	selectable := services.FilterByCategory(roster, category)

	selector := services.NewSelector(rule, req.UserIDs, selectable)
	if len(selector.Selected) != 2 {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Selected user not found"})
	}
	if !selector.CanCompare() {
		a, b := selector.Selected[0], selector.Selected[1]
		return respondError(c, apperrors.NewIncompatibleTier(tierLabelFor(rule, a), tierLabelFor(rule, b)))
	}

	result := services.Compare(selector.Selected[0], selector.Selected[1])

	return c.JSON(fiber.Map{
		"success":            true,
		"comparison":         result,
		"difference_display": utils.FormatMoney(result.SavedDifference),
	})
}

func tierLabelFor(rule services.TierRule, u models.UserProfile) string {
	if rule == services.TierExactLevel {
		return "level " + strconv.Itoa(u.Level)
	}
	return models.CategoryName(models.CategoryForLevel(u.Level))
}

func buildEntries(ranked []models.UserProfile, currentID string) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(ranked))
	for i, u := range ranked {
		tier := models.CategoryForLevel(u.Level)
		entries = append(entries, LeaderboardEntry{
			Position:      i + 1,
			RankClass:     models.RankClass(i + 1),
			ID:            u.ID,
			Name:          u.Name,
			Avatar:        u.Avatar,
			Level:         u.Level,
			XP:            u.XP,
			XPProgress:    services.XPProgress(u),
			GoalProgress:  services.GoalProgress(u),
			MoneySaved:    u.MoneySaved,
			MoneyDisplay:  utils.FormatMoney(u.MoneySaved),
			Tier:          tier,
			TierName:      models.CategoryName(tier),
			IsCurrentUser: currentID != "" && u.ID == currentID,
		})
	}
	return entries
}
