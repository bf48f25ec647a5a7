// handlers/common.go
package handlers

import (
	"log"

	"financequest/apperrors"
	"financequest/database"
	"financequest/middleware"
	"financequest/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a domain error onto its HTTP status.
func respondError(c *fiber.Ctx, err error) error {
	status := apperrors.StatusCode(err)
	if status == 500 {
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
}

// currentProfile loads the caller's profile. A nil profile with a nil
// error means the identity has no profile yet.
func currentProfile(c *fiber.Ctx) (*models.UserProfile, error) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return nil, err
	}
	return database.GetStore().ReadOne(userID)
}

// requireProfile loads the caller's profile or writes a 404.
func requireProfile(c *fiber.Ctx) (*models.UserProfile, bool) {
	profile, err := currentProfile(c)
	if err != nil {
		_ = respondError(c, err)
		return nil, false
	}
	if profile == nil {
		_ = c.Status(404).JSON(fiber.Map{"success": false, "error": "Profile not found. Start your journey first."})
		return nil, false
	}
	return profile, true
}
