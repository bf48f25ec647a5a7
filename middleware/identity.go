// middleware/identity.go
package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// There is no real authentication in this system. The identity token is
// a signed carrier for the locally generated opaque user id, so the same
// browser keeps the same profile across requests.

const identityTokenTTL = 365 * 24 * time.Hour

// JWT_SECRET is validated at startup; an unset secret never gets here.
func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateIdentityToken mints the signed token carrying a user id.
func GenerateIdentityToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(identityTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseIdentityToken returns the user id carried by a token, or "" when
// the token is missing, malformed, or expired.
func ParseIdentityToken(tokenString string) string {
	if tokenString == "" {
		return ""
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return ""
	}

	userID, _ := claims["user_id"].(string)
	return userID
}

// TokenFromRequest extracts the bearer token, if any.
func TokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// IdentityMiddleware requires a valid identity token and stores the user
// id in the request locals.
func IdentityMiddleware(c *fiber.Ctx) error {
	userID := ParseIdentityToken(TokenFromRequest(c))
	if userID == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Missing or invalid identity token"})
	}

	c.Locals("userId", userID)
	return c.Next()
}

// GetUserID returns the identity established by IdentityMiddleware.
func GetUserID(c *fiber.Ctx) (string, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return "", fiber.NewError(401, "No identity on request")
	}

	if id, ok := userID.(string); ok && id != "" {
		return id, nil
	}

	return "", fiber.NewError(401, "Invalid identity format")
}
