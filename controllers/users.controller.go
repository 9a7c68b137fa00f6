package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"booknest/initializers"
	"booknest/middleware"
	"booknest/models"
	"booknest/services"
	"booknest/utils"
)

type UserController struct {
	users  *services.UserService
	config *initializers.Config
}

func NewUserController(users *services.UserService, config *initializers.Config) *UserController {
	return &UserController{users: users, config: config}
}

func (ctrl *UserController) Register(c *fiber.Ctx) error {
	var input models.RegisterUserInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	user, err := ctrl.users.Register(c.UserContext(), &input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful",
		"user":    models.FilterUserRecord(user),
	})
}

func (ctrl *UserController) Login(c *fiber.Ctx) error {
	var input models.LoginUserInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	user, err := ctrl.users.Login(c.UserContext(), &input)
	if err != nil {
		return respondError(c, err)
	}

	token, err := utils.GenerateToken(ctrl.config.JwtExpires, user.ID, ctrl.config.JwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   ctrl.config.JwtMaxAge * 60,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    models.FilterUserRecord(user),
	})
}

func (ctrl *UserController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:    "token",
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}

func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "You are not logged in",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func (ctrl *UserController) CheckUsername(c *fiber.Ctx) error {
	exists, err := ctrl.users.UsernameExists(c.UserContext(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"exists":  exists,
	})
}

func (ctrl *UserController) CheckEmail(c *fiber.Ctx) error {
	exists, err := ctrl.users.EmailExists(c.UserContext(), c.Params("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"exists":  exists,
	})
}

func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	users, err := ctrl.users.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, models.FilterUserRecord(&users[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"users":   responses,
	})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}

	// A user may only edit their own profile; admins may edit anyone.
	caller, _ := middleware.CurrentUser(c)
	if caller.ID != id && !middleware.Can(caller.Role, middleware.CapManageUsers) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "You do not have permission to perform this action",
		})
	}

	var input models.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	user, err := ctrl.users.UpdateProfile(c.UserContext(), id, &input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated",
		"user":    models.FilterUserRecord(user),
	})
}

func (ctrl *UserController) Deactivate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}

	caller, _ := middleware.CurrentUser(c)
	if caller.ID != id && !middleware.Can(caller.Role, middleware.CapManageUsers) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "You do not have permission to perform this action",
		})
	}

	if err := ctrl.users.Deactivate(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Account deactivated",
	})
}

func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}
	if err := ctrl.users.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Account permanently deleted",
	})
}
