package routes

import (
	"github.com/gofiber/fiber/v2"

	"booknest/controllers"
	"booknest/middleware"
	"booknest/store"
)

// Controllers bundles the HTTP surface handed to Register.
type Controllers struct {
	Users     *controllers.UserController
	Books     *controllers.BookController
	Cart      *controllers.CartController
	Orders    *controllers.OrderController
	Feedback  *controllers.FeedbackController
	Inquiries *controllers.InquiryController
}

// Register wires every route group under /api. Authentication is the
// DeserializeUser middleware; authorization is an explicit capability check
// per group.
func Register(app *fiber.App, ctrl Controllers, users store.UserStore, jwtSecret string) {
	auth := middleware.DeserializeUser(users, jwtSecret)
	api := app.Group("/api")

	// Public account endpoints.
	usersGroup := api.Group("/users")
	usersGroup.Post("/register", ctrl.Users.Register)
	usersGroup.Post("/login", ctrl.Users.Login)
	usersGroup.Get("/check/username/:username", ctrl.Users.CheckUsername)
	usersGroup.Get("/check/email/:email", ctrl.Users.CheckEmail)

	// Account endpoints behind the token.
	usersGroup.Get("/logout", auth, ctrl.Users.Logout)
	usersGroup.Get("/me", auth, ctrl.Users.GetMe)
	usersGroup.Get("/", auth, middleware.RequireCapability(middleware.CapManageUsers), ctrl.Users.GetAll)
	usersGroup.Put("/:id", auth, ctrl.Users.Update)
	usersGroup.Delete("/:id/permanent", auth, middleware.RequireCapability(middleware.CapManageUsers), ctrl.Users.Delete)
	usersGroup.Delete("/:id", auth, ctrl.Users.Deactivate)

	// Catalog reads are public; writes need catalog management.
	books := api.Group("/books")
	books.Get("/", ctrl.Books.GetAll)
	books.Get("/available", ctrl.Books.GetAvailable)
	books.Get("/search", ctrl.Books.Search)
	books.Get("/code/:bookId", ctrl.Books.GetByBookID)
	books.Get("/:id", ctrl.Books.GetByID)

	manageCatalog := middleware.RequireCapability(middleware.CapManageCatalog)
	books.Post("/", auth, manageCatalog, ctrl.Books.Create)
	books.Put("/:id", auth, manageCatalog, ctrl.Books.Update)
	books.Patch("/:id/availability", auth, manageCatalog, ctrl.Books.SetAvailability)
	books.Delete("/:id", auth, manageCatalog, ctrl.Books.Delete)

	// Cart is strictly per-caller.
	cart := api.Group("/cart", auth, middleware.RequireCapability(middleware.CapShop))
	cart.Post("/add", ctrl.Cart.Add)
	cart.Get("/", ctrl.Cart.Get)
	cart.Get("/count", ctrl.Cart.Count)
	cart.Get("/total", ctrl.Cart.Total)
	cart.Put("/:id", ctrl.Cart.UpdateQuantity)
	cart.Delete("/clear", ctrl.Cart.Clear)
	cart.Delete("/:id", ctrl.Cart.Remove)

	orders := api.Group("/orders", auth)
	orders.Post("/create", middleware.RequireCapability(middleware.CapShop), ctrl.Orders.Create)
	orders.Get("/all", middleware.RequireCapability(middleware.CapManageOrders), ctrl.Orders.GetAll)
	orders.Put("/:id/status", middleware.RequireCapability(middleware.CapManageOrders), ctrl.Orders.UpdateStatus)
	orders.Get("/", ctrl.Orders.GetMine)
	orders.Get("/:id", ctrl.Orders.GetByID)

	inquiries := api.Group("/inquiries", auth)
	inquiries.Post("/create", ctrl.Inquiries.Create)
	inquiries.Post("/reply", middleware.RequireCapability(middleware.CapReplyInquiries), ctrl.Inquiries.Reply)
	inquiries.Get("/order/:orderId", ctrl.Inquiries.GetByOrder)
	inquiries.Get("/all", middleware.RequireCapability(middleware.CapReplyInquiries), ctrl.Inquiries.GetAll)
	inquiries.Get("/pending", middleware.RequireCapability(middleware.CapReplyInquiries), ctrl.Inquiries.GetPending)

	feedback := api.Group("/feedback", auth)
	feedback.Post("/", ctrl.Feedback.Create)
	feedback.Get("/check/:orderId", ctrl.Feedback.CheckOrder)
	feedback.Get("/order/:orderId", ctrl.Feedback.GetByOrder)
	feedback.Get("/mine", ctrl.Feedback.GetMine)

	moderate := middleware.RequireCapability(middleware.CapModerateFeedback)
	feedback.Get("/all", moderate, ctrl.Feedback.GetAll)
	feedback.Get("/stats", moderate, ctrl.Feedback.GetStats)
	feedback.Delete("/:id", moderate, ctrl.Feedback.Delete)
}
