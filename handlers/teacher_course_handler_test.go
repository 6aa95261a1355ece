package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hamzaOly/ezyskills/middleware"
	"github.com/hamzaOly/ezyskills/models"
)

func newCourseApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "course-test-secret")

	public := NewCourseHandler(db)
	teacher := NewTeacherCourseHandler(db)

	app := fiber.New()
	app.Get("/api/courses/public", public.ListPublic)
	app.Get("/api/courses/:id", public.GetByID)

	group := app.Group("/api/teacher/courses", middleware.Protected(), middleware.TeacherRequired())
	group.Get("", teacher.List)
	group.Post("", teacher.Create)
	group.Put("/:id", teacher.Update)
	group.Delete("/:id", teacher.Delete)
	group.Post("/:id/content", teacher.AddContent)

	return app
}

func TestCreateCourseEntersModerationQueue(t *testing.T) {
	db := newTestDB(t)
	app := newCourseApp(t, db)
	user, teacher := seedTeacherAccount(t, db, "teacher@example.com")
	token := teacherToken(t, user, teacher)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/teacher/courses", fiber.Map{
		"title":    "Intro to Go",
		"category": "programming",
		"price":    "1200.00",
	}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	course := decodeBody(t, resp)["course"].(map[string]any)
	assert.Equal(t, models.CoursePending, course["approval_status"])
	assert.Equal(t, false, course["is_published"])
	assert.Equal(t, teacher.FullName, course["instructor_name"])
	assert.Equal(t, "beginner", course["level"])

	// Pending courses never reach the public catalog.
	resp, err = app.Test(jsonRequest(t, "GET", "/api/courses/public", nil, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody(t, resp)["courses"])

	resp, err = app.Test(jsonRequest(t, "GET", "/api/courses/"+course["id"].(string), nil, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateCourseRejectsNegativePrice(t *testing.T) {
	db := newTestDB(t)
	app := newCourseApp(t, db)
	user, teacher := seedTeacherAccount(t, db, "teacher@example.com")
	token := teacherToken(t, user, teacher)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/teacher/courses", fiber.Map{
		"title": "Bad price",
		"price": "-5",
	}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Price cannot be negative", decodeBody(t, resp)["error"])
}

func TestTeacherCannotTouchForeignCourse(t *testing.T) {
	db := newTestDB(t)
	app := newCourseApp(t, db)

	_, owner := seedTeacherAccount(t, db, "owner@example.com")
	course := seedApprovedCourse(t, db, owner, 1000)

	intruderUser, intruder := seedTeacherAccount(t, db, "intruder@example.com")
	token := teacherToken(t, intruderUser, intruder)

	resp, err := app.Test(jsonRequest(t, "PUT", "/api/teacher/courses/"+course.ID.String(), fiber.Map{
		"title": "Hijacked",
	}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found or unauthorized", decodeBody(t, resp)["error"])

	resp, err = app.Test(jsonRequest(t, "DELETE", "/api/teacher/courses/"+course.ID.String(), nil, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddContentStoresSubsections(t *testing.T) {
	db := newTestDB(t)
	app := newCourseApp(t, db)
	user, teacher := seedTeacherAccount(t, db, "teacher@example.com")
	token := teacherToken(t, user, teacher)
	course := seedApprovedCourse(t, db, teacher, 1000)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/teacher/courses/"+course.ID.String()+"/content", fiber.Map{
		"section_number": 1,
		"title":          "Getting Started",
		"subsections": []fiber.Map{
			{"title": "Installation", "duration": "10:00"},
			{"title": "First Program", "duration": "15:30"},
		},
	}, token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var content models.CourseContent
	require.NoError(t, db.First(&content, "course_id = ?", course.ID).Error)
	assert.Equal(t, 1, content.SectionNumber)
	assert.Contains(t, string(content.Subsections), "Installation")
}
