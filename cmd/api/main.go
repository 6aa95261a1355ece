package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	config "github.com/hamzaOly/ezyskills/configs"
	"github.com/hamzaOly/ezyskills/database"
	"github.com/hamzaOly/ezyskills/handlers"
	"github.com/hamzaOly/ezyskills/notifications"
	"github.com/hamzaOly/ezyskills/routes"
	"github.com/hamzaOly/ezyskills/services"
)

func main() {
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	mailer := notifications.NewEmailService()

	catalog := services.NewCatalogService(db)
	bundles := services.NewBundleService(db, catalog)

	app := fiber.New(fiber.Config{
		AppName:       "Ezy Skills API",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Ezy Skills API is running",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler(db), handlers.NewTeacherAuthHandler(db))
	routes.CourseRoutes(app, handlers.NewCourseHandler(db), handlers.NewTeacherCourseHandler(db))
	routes.BundleRoutes(app, handlers.NewBundleHandler(bundles))
	routes.AdminRoutes(app, handlers.NewAdminHandler(db), handlers.NewAdminBundleHandler(bundles))
	routes.PaymentRoutes(app, handlers.NewPaymentHandler(db, mailer))
	routes.UploadRoutes(app, handlers.NewUploadHandler())

	port := config.Config("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
