package controllers

import (
	"github.com/gofiber/fiber/v2"

	"booknest/middleware"
	"booknest/models"
	"booknest/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Create places an order from the caller's cart. The payment card number is
// masked before it ever reaches storage; only the last four digits survive.
func (ctrl *OrderController) Create(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}

	var input models.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	input.Username = caller.Username
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	order, err := ctrl.orders.Create(c.UserContext(), &input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order placed successfully",
		"order":   order,
	})
}

func (ctrl *OrderController) GetMine(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}

	orders, err := ctrl.orders.GetUserOrders(c.UserContext(), caller.Username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

func (ctrl *OrderController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid order id")
	}

	order, err := ctrl.orders.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	// Customers may only see their own orders.
	caller, _ := middleware.CurrentUser(c)
	if order.UserID != caller.ID && !middleware.Can(caller.Role, middleware.CapManageOrders) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "You do not have permission to perform this action",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

func (ctrl *OrderController) GetAll(c *fiber.Ctx) error {
	orders, err := ctrl.orders.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

func (ctrl *OrderController) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid order id")
	}

	var input models.UpdateOrderStatusInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	order, err := ctrl.orders.UpdateStatus(c.UserContext(), id, input.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order status updated",
		"order":   order,
	})
}
