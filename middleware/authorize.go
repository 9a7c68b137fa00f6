package middleware

import (
	"github.com/gofiber/fiber/v2"

	"booknest/models"
)

// Capability names one protected operation class. Authorization is an
// explicit check of (caller role, required capability) rather than a
// path-pattern filter chain.
type Capability string

const (
	CapShop             Capability = "shop"
	CapManageCatalog    Capability = "catalog:manage"
	CapManageOrders     Capability = "orders:manage"
	CapManageUsers      Capability = "users:manage"
	CapReplyInquiries   Capability = "inquiries:reply"
	CapModerateFeedback Capability = "feedback:moderate"
)

var roleCapabilities = map[string]map[Capability]bool{
	models.RoleUser: {
		CapShop: true,
	},
	models.RoleAdmin: {
		CapShop:             true,
		CapManageCatalog:    true,
		CapManageOrders:     true,
		CapManageUsers:      true,
		CapReplyInquiries:   true,
		CapModerateFeedback: true,
	},
}

// Can reports whether a role grants the capability.
func Can(role string, capability Capability) bool {
	return roleCapabilities[role][capability]
}

// RequireCapability guards a route group; it assumes DeserializeUser already
// ran.
func RequireCapability(capability Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "You are not logged in",
			})
		}
		if !Can(user.Role, capability) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "You do not have permission to perform this action",
			})
		}
		return c.Next()
	}
}
