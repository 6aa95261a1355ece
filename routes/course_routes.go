package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamzaOly/ezyskills/handlers"
	"github.com/hamzaOly/ezyskills/middleware"
)

func CourseRoutes(app *fiber.App, public *handlers.CourseHandler, teacher *handlers.TeacherCourseHandler) {
	api := app.Group("/api")

	courses := api.Group("/courses")
	courses.Get("/public", public.ListPublic)
	courses.Get("/category/:category", public.ListByCategory)
	courses.Get("/:id/content", public.GetContent)
	courses.Get("/:id/projects", public.GetProjects)
	courses.Get("/:id", public.GetByID)

	teacherCourses := api.Group("/teacher/courses", middleware.Protected(), middleware.TeacherRequired())
	teacherCourses.Get("", teacher.List)
	teacherCourses.Post("", teacher.Create)
	teacherCourses.Put("/:id", teacher.Update)
	teacherCourses.Delete("/:id", teacher.Delete)
	teacherCourses.Post("/:id/content", teacher.AddContent)
	teacherCourses.Post("/:id/projects", teacher.AddProject)
}
