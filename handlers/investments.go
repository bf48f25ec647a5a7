// handlers/investments.go
package handlers

import (
	"sort"

	"financequest/database"
	"financequest/models"
	"financequest/services"

	"github.com/gofiber/fiber/v2"
)

type InvestmentRequest struct {
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// ListInvestments returns the caller's investments, newest date first.
func ListInvestments(c *fiber.Ctx) error {
	profile, ok := requireProfile(c)
	if !ok {
		return nil
	}

	investments := append([]models.Investment(nil), profile.Investments...)
	sort.SliceStable(investments, func(i, j int) bool {
		return investments[i].Date > investments[j].Date
	})

	return c.JSON(fiber.Map{
		"success":     true,
		"investments": investments,
		"money_saved": profile.MoneySaved,
	})
}

// RecordInvestment logs a new investment and grants XP for it.
func RecordInvestment(c *fiber.Ctx) error {
	profile, ok := requireProfile(c)
	if !ok {
		return nil
	}

	var req InvestmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	next, err := services.RecordInvestment(*profile, req.Amount, req.Date, req.Description)
	if err != nil {
		return respondError(c, err)
	}

	roster, err := database.GetStore().Upsert(next)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"user":        next,
		"xp_gained":   next.XP - profile.XP,
		"leveled_up":  next.Level > profile.Level,
		"new_level":   next.Level,
		"money_saved": next.MoneySaved,
		"roster_size": len(roster),
	})
}

// EditInvestment replaces an investment's fields. XP is never
// recomputed on edits.
func EditInvestment(c *fiber.Ctx) error {
	profile, ok := requireProfile(c)
	if !ok {
		return nil
	}

	var req InvestmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	next, err := services.EditInvestment(*profile, c.Params("id"), req.Amount, req.Date, req.Description)
	if err != nil {
		return respondError(c, err)
	}

	if _, err := database.GetStore().Upsert(next); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"user":        next,
		"money_saved": next.MoneySaved,
	})
}

// DeleteInvestment removes an investment. The money comes back out of
// the saved total; XP stays. Unknown ids are a silent no-op.
func DeleteInvestment(c *fiber.Ctx) error {
	profile, ok := requireProfile(c)
	if !ok {
		return nil
	}

	next := services.DeleteInvestment(*profile, c.Params("id"))

	if _, err := database.GetStore().Upsert(next); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"user":        next,
		"money_saved": next.MoneySaved,
	})
}
