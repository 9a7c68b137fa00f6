package controllers

import (
	"github.com/gofiber/fiber/v2"

	"booknest/middleware"
	"booknest/models"
	"booknest/services"
)

type InquiryController struct {
	inquiries *services.InquiryService
}

func NewInquiryController(inquiries *services.InquiryService) *InquiryController {
	return &InquiryController{inquiries: inquiries}
}

func (ctrl *InquiryController) Create(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}

	var input models.CreateInquiryInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	input.Username = caller.Username
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	inquiry, err := ctrl.inquiries.Create(c.UserContext(), &input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Inquiry submitted",
		"inquiry": inquiry,
	})
}

func (ctrl *InquiryController) GetByOrder(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return respondBadRequest(c, "Invalid order id")
	}

	inquiries, err := ctrl.inquiries.GetByOrder(c.UserContext(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"inquiries": inquiries,
	})
}

func (ctrl *InquiryController) GetAll(c *fiber.Ctx) error {
	inquiries, err := ctrl.inquiries.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"inquiries": inquiries,
	})
}

func (ctrl *InquiryController) GetPending(c *fiber.Ctx) error {
	inquiries, err := ctrl.inquiries.GetPending(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"inquiries": inquiries,
	})
}

func (ctrl *InquiryController) Reply(c *fiber.Ctx) error {
	var input models.ReplyInquiryInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	inquiry, err := ctrl.inquiries.Reply(c.UserContext(), input.InquiryID, input.Reply)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Reply sent",
		"inquiry": inquiry,
	})
}
