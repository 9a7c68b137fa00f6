package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"booknest/cache"
	"booknest/controllers"
	"booknest/initializers"
	"booknest/middleware"
	"booknest/routes"
	"booknest/seed"
	"booknest/services"
	"booknest/store"
	"booknest/utils"
)

func main() {
	config, err := initializers.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger, err := initializers.NewLogger()
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer logger.Sync()

	db, err := initializers.ConnectDB(&config)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	redisClient, err := initializers.ConnectRedis(&config)
	if err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}

	userStore := store.NewUserStore(db)
	bookStore := store.NewBookStore(db)
	cartStore := store.NewCartStore(db)
	orderStore := store.NewOrderStore(db)
	feedbackStore := store.NewFeedbackStore(db)
	inquiryStore := store.NewInquiryStore(db)

	images := utils.NewImageStore(config.UploadDir, logger)
	bookCache := cache.NewBookCache(redisClient, config.RedisTTL, logger)

	var mailer *utils.Mailer
	if config.SMTPHost != "" {
		mailer = utils.NewMailer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass, config.SMTPFrom, logger)
	}

	var notifier *utils.Notifier
	if config.AmqpURL != "" {
		notifier, err = utils.NewNotifier(config.AmqpURL, config.AmqpExchange, logger)
		if err != nil {
			logger.Fatal("amqp connection failed", zap.Error(err))
		}
		defer notifier.Close()
	}

	userService := services.NewUserService(userStore, mailer, logger)
	bookService := services.NewBookService(bookStore, images, bookCache, logger)
	cartService := services.NewCartService(cartStore, userStore, bookStore, logger)
	orderService := services.NewOrderService(orderStore, cartStore, userStore, notifier, mailer, logger)
	feedbackService := services.NewFeedbackService(feedbackStore, orderStore, userStore, logger)
	inquiryService := services.NewInquiryService(inquiryStore, orderStore, userStore, logger)

	if err := seed.AdminUser(context.Background(), userStore, logger); err != nil {
		logger.Fatal("admin seeding failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ClientOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))

	app.Static("/uploads", config.UploadDir)

	routes.Register(app, routes.Controllers{
		Users:     controllers.NewUserController(userService, &config),
		Books:     controllers.NewBookController(bookService),
		Cart:      controllers.NewCartController(cartService),
		Orders:    controllers.NewOrderController(orderService),
		Feedback:  controllers.NewFeedbackController(feedbackService),
		Inquiries: controllers.NewInquiryController(inquiryService),
	}, userStore, config.JwtSecret)

	routes.NotFoundRoute(app)

	logger.Info("server starting", zap.String("port", config.ServerPort))
	if err := app.Listen(":" + config.ServerPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
