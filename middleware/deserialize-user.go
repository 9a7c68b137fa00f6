package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"booknest/models"
	"booknest/store"
	"booknest/utils"
)

// DeserializeUser resolves the JWT from the cookie or the Authorization
// header, loads the account and stashes its projection in c.Locals("user").
func DeserializeUser(users store.UserStore, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tokenString string

		authorization := c.Get("Authorization")
		if strings.HasPrefix(authorization, "Bearer ") {
			tokenString = strings.TrimPrefix(authorization, "Bearer ")
		} else if cookie := c.Cookies("token"); cookie != "" {
			tokenString = cookie
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "You are not logged in",
			})
		}

		userID, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		user, err := users.FindByID(c.UserContext(), userID)
		if err != nil || !user.Active {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "The user belonging to this token no longer exists",
			})
		}

		c.Locals("user", models.FilterUserRecord(user))
		return c.Next()
	}
}

// CurrentUser returns the projection stashed by DeserializeUser.
func CurrentUser(c *fiber.Ctx) (models.UserResponse, bool) {
	user, ok := c.Locals("user").(models.UserResponse)
	return user, ok
}
