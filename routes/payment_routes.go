package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamzaOly/ezyskills/handlers"
	"github.com/hamzaOly/ezyskills/middleware"
)

func PaymentRoutes(app *fiber.App, payments *handlers.PaymentHandler) {
	api := app.Group("/api")

	api.Post("/payments/notify", payments.Notify)

	adminPayments := api.Group("/payments", middleware.Protected(), middleware.AdminRequired())
	adminPayments.Get("", payments.List)
	adminPayments.Get("/:id", payments.GetByID)
}
