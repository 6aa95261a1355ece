package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamzaOly/ezyskills/handlers"
)

func AuthRoutes(app *fiber.App, auth *handlers.AuthHandler, teacherAuth *handlers.TeacherAuthHandler) {
	api := app.Group("/api")

	api.Post("/auth/register", auth.Register)
	api.Post("/auth/login", auth.Login)

	api.Post("/teachers/register", teacherAuth.Register)
}
