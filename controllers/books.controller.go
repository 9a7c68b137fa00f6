package controllers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"booknest/models"
	"booknest/services"
)

type BookController struct {
	books *services.BookService
}

func NewBookController(books *services.BookService) *BookController {
	return &BookController{books: books}
}

func formImage(c *fiber.Ctx) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

func (ctrl *BookController) Create(c *fiber.Ctx) error {
	price, err := services.ParsePrice(c.FormValue("price"))
	if err != nil {
		return respondError(c, err)
	}

	input := models.CreateBookInput{
		BookID:      c.FormValue("book_id"),
		Name:        c.FormValue("name"),
		Price:       price,
		Description: c.FormValue("description"),
		AuthorName:  c.FormValue("author_name"),
	}
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	book, err := ctrl.books.Create(c.UserContext(), &input, formImage(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Book added",
		"book":    book,
	})
}

func (ctrl *BookController) GetAll(c *fiber.Ctx) error {
	books, err := ctrl.books.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"books":   books,
	})
}

func (ctrl *BookController) GetAvailable(c *fiber.Ctx) error {
	books, err := ctrl.books.GetAvailable(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"books":   books,
	})
}

func (ctrl *BookController) Search(c *fiber.Ctx) error {
	books, err := ctrl.books.Search(c.UserContext(), models.BookQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"books":   books,
	})
}

func (ctrl *BookController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid book id")
	}

	book, err := ctrl.books.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"book":    book,
	})
}

func (ctrl *BookController) GetByBookID(c *fiber.Ctx) error {
	book, err := ctrl.books.GetByBookID(c.UserContext(), c.Params("bookId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"book":    book,
	})
}

func (ctrl *BookController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid book id")
	}

	price, err := services.ParsePrice(c.FormValue("price"))
	if err != nil {
		return respondError(c, err)
	}

	input := models.UpdateBookInput{
		Price:       price,
		Description: c.FormValue("description"),
		AuthorName:  c.FormValue("author_name"),
	}
	if err := validate.Struct(&input); err != nil {
		return respondValidationError(c, err)
	}

	book, err := ctrl.books.Update(c.UserContext(), id, &input, formImage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Book updated",
		"book":    book,
	})
}

func (ctrl *BookController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid book id")
	}
	if err := ctrl.books.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Book deleted",
	})
}

func (ctrl *BookController) SetAvailability(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid book id")
	}

	var input struct {
		Available bool `json:"available" form:"available"`
	}
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "Cannot parse request body")
	}

	book, err := ctrl.books.SetAvailability(c.UserContext(), id, input.Available)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Availability updated",
		"book":    book,
	})
}
