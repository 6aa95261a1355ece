package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamzaOly/ezyskills/handlers"
	"github.com/hamzaOly/ezyskills/middleware"
)

func BundleRoutes(app *fiber.App, bundles *handlers.BundleHandler) {
	api := app.Group("/api")

	api.Get("/bundles/public", bundles.ListPublic)

	teacherBundles := api.Group("/teacher/bundles", middleware.Protected(), middleware.TeacherRequired())
	teacherBundles.Get("", bundles.List)
	teacherBundles.Post("", bundles.Create)
	teacherBundles.Put("/:id", bundles.Update)
	teacherBundles.Delete("/:id", bundles.Delete)
}
