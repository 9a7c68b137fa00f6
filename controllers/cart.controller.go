package controllers

import (
	"github.com/gofiber/fiber/v2"

	"booknest/middleware"
	"booknest/models"
	"booknest/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (ctrl *CartController) Add(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}

	var input models.AddToCartInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	input.Username = caller.Username
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	item, err := ctrl.cart.AddToCart(c.UserContext(), input.Username, input.BookID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Book added to cart",
		"item":    item,
	})
}

func (ctrl *CartController) Get(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}

	items, err := ctrl.cart.GetCart(c.UserContext(), caller.Username)
	if err != nil {
		return respondError(c, err)
	}
	total, err := ctrl.cart.Total(c.UserContext(), caller.Username)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"items":   items,
		"count":   len(items),
		"total":   total.StringFixed(2),
	})
}

func (ctrl *CartController) Count(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}

	count, err := ctrl.cart.Count(c.UserContext(), caller.Username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
	})
}

func (ctrl *CartController) Total(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}

	total, err := ctrl.cart.Total(c.UserContext(), caller.Username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"total":   total.StringFixed(2),
	})
}

func (ctrl *CartController) UpdateQuantity(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid cart item id")
	}

	var input models.UpdateCartItemInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	item, err := ctrl.cart.UpdateQuantity(c.UserContext(), id, input.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quantity updated",
		"item":    item,
	})
}

func (ctrl *CartController) Remove(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid cart item id")
	}
	if err := ctrl.cart.Remove(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item removed from cart",
	})
}

func (ctrl *CartController) Clear(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}
	if err := ctrl.cart.Clear(c.UserContext(), caller.Username); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart cleared",
	})
}
