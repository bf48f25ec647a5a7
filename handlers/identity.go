// handlers/identity.go
package handlers

import (
	"financequest/database"
	"financequest/middleware"

	"github.com/gofiber/fiber/v2"
)

type IdentityResponse struct {
	Success    bool   `json:"success"`
	Token      string `json:"token,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	HasProfile bool   `json:"has_profile"`
	Error      string `json:"error,omitempty"`
}

// GetOrCreateIdentity returns a stable opaque identity for the caller.
// A valid token on the request keeps its user id; otherwise a fresh id
// is generated and signed into a new token. The client persists the
// token and presents it on every later request.
func GetOrCreateIdentity(c *fiber.Ctx) error {
	userID := middleware.ParseIdentityToken(middleware.TokenFromRequest(c))
	if userID == "" {
		userID = database.NewLocalIdentity()
	}

	token, err := middleware.GenerateIdentityToken(userID)
	if err != nil {
		return c.Status(500).JSON(IdentityResponse{
			Success: false,
			Error:   "Failed to generate identity token",
		})
	}

	profile, err := database.GetStore().ReadOne(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(IdentityResponse{
		Success:    true,
		Token:      token,
		UserID:     userID,
		HasProfile: profile != nil,
	})
}
