package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamzaOly/ezyskills/handlers"
	"github.com/hamzaOly/ezyskills/middleware"
)

func AdminRoutes(app *fiber.App, admin *handlers.AdminHandler, adminBundles *handlers.AdminBundleHandler) {
	api := app.Group("/api")

	group := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	group.Get("/users", admin.ListUsers)
	group.Delete("/users/:id", admin.DeleteUser)

	group.Get("/teachers", admin.ListTeachers)
	group.Put("/teachers/:id/verify", admin.VerifyTeacher)

	group.Get("/courses", admin.ListCourses)
	group.Get("/courses/approved", admin.ListApprovedCourses)
	group.Get("/courses/pending", admin.ListPendingCourses)
	group.Delete("/courses/:id", admin.DeleteCourse)
	group.Put("/courses/:id/approve", admin.ApproveCourse)
	group.Put("/courses/:id/reject", admin.RejectCourse)

	group.Get("/stats", admin.Stats)

	bundles := group.Group("/bundles")
	bundles.Get("", adminBundles.ListAll)
	bundles.Get("/pending", adminBundles.ListPending)
	bundles.Post("", adminBundles.Create)
	bundles.Put("/:id/approve", adminBundles.Approve)
	bundles.Delete("/:id", adminBundles.Reject)
}
