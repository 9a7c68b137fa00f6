package controllers

import (
	"github.com/gofiber/fiber/v2"

	"booknest/middleware"
	"booknest/models"
	"booknest/services"
)

type FeedbackController struct {
	feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedback: feedback}
}

func (ctrl *FeedbackController) Create(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}

	var input models.CreateFeedbackInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	input.Username = caller.Username
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	feedback, err := ctrl.feedback.Create(c.UserContext(), &input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Thank you for your feedback",
		"feedback": feedback,
	})
}

func (ctrl *FeedbackController) GetByOrder(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return respondBadRequest(c, "Invalid order id")
	}

	feedback, err := ctrl.feedback.GetByOrder(c.UserContext(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"feedback": feedback,
	})
}

func (ctrl *FeedbackController) CheckOrder(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return respondBadRequest(c, "Invalid order id")
	}

	exists, err := ctrl.feedback.HasFeedback(c.UserContext(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"exists":  exists,
	})
}

func (ctrl *FeedbackController) GetMine(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}

	feedbacks, err := ctrl.feedback.GetByUser(c.UserContext(), caller.Username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"feedbacks": feedbacks,
	})
}

func (ctrl *FeedbackController) GetAll(c *fiber.Ctx) error {
	feedbacks, err := ctrl.feedback.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"feedbacks": feedbacks,
	})
}

func (ctrl *FeedbackController) GetStats(c *fiber.Ctx) error {
	stats, err := ctrl.feedback.GetStats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

func (ctrl *FeedbackController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid feedback id")
	}
	if err := ctrl.feedback.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Feedback deleted",
	})
}
