package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"dailydiet/internal/session"
)

// UserIDKey is the Locals key under which the authenticated user id is stored.
const UserIDKey = "userID"

// SessionRequired is a Fiber middleware that rejects requests without a valid
// session cookie. On success the decoded user id is stored in the request
// Locals for downstream handlers; on failure the request is short-circuited
// with a 401 before any store access happens.
func SessionRequired(codec session.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(session.CookieName)
		if cookie == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized.",
			})
		}

		userID, err := codec.Decode(cookie)
		if err != nil {
			logrus.Warnf("session decode failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized.",
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id stored by SessionRequired.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
