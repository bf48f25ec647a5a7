// handlers/stats.go
package handlers

import (
	"time"

	"financequest/database"
	"financequest/services"
	"financequest/utils"

	"github.com/gofiber/fiber/v2"
)

// GetGlobalStats returns the community panel numbers. week_ends_at is
// decorative input for the countdown display and carries no behavior.
// GET /api/stats
func GetGlobalStats(c *fiber.Ctx) error {
	roster, err := database.GetStore().ReadAll()
	if err != nil {
		return respondError(c, err)
	}

	stats := services.ComputeGlobalStats(roster)

	return c.JSON(fiber.Map{
		"success":             true,
		"total_saved":         stats.TotalSaved,
		"total_saved_display": utils.FormatMoney(stats.TotalSaved),
		"participants":        stats.Participants,
		"average_level":       stats.AverageLevel,
		"week_ends_at":        endOfWeek(time.Now().UTC()).Unix(),
	})
}

// endOfWeek returns the next Monday at midnight UTC.
func endOfWeek(now time.Time) time.Time {
	daysUntilMonday := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if daysUntilMonday == 0 {
		daysUntilMonday = 7
	}
	next := now.AddDate(0, 0, daysUntilMonday)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
}
