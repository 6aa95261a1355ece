package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamzaOly/ezyskills/handlers"
	"github.com/hamzaOly/ezyskills/middleware"
)

func UploadRoutes(app *fiber.App, uploads *handlers.UploadHandler) {
	api := app.Group("/api")

	api.Get("/uploads/signature", middleware.Protected(), middleware.TeacherRequired(), uploads.GenerateSignature)
}
