package middleware

import (
	"strings"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// userKey is the fiber.Ctx locals key holding the authenticated *models.Resident
const userKey = "user"

// Authenticate resolves an "Authorization: Token <key>" or "Bearer <key>" header to its resident.
// Requests without a header continue anonymously; an unknown key is rejected.
func Authenticate(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := tokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if key == "" {
			return c.Next()
		}

		user, err := services.ResolveToken(db, key)
		if err != nil {
			return err
		}
		c.Locals(userKey, user)

		return c.Next()
	}
}

// Require rejects the request unless pred passes for the current user
func Require(pred policy.Predicate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := pred(CurrentUser(c)); err != nil {
			return err
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated resident, or nil for anonymous requests
func CurrentUser(c *fiber.Ctx) *models.Resident {
	user, _ := c.Locals(userKey).(*models.Resident)
	return user
}

func tokenFromHeader(header string) string {
	scheme, key, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "token", "bearer":
		return strings.TrimSpace(key)
	}
	return ""
}
