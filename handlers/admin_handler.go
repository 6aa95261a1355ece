package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hamzaOly/ezyskills/middleware"
	"github.com/hamzaOly/ezyskills/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	result := h.db.Where("id = ?", c.Params("id")).Delete(&models.User{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func (h *AdminHandler) ListTeachers(c *fiber.Ctx) error {
	var teachers []models.Teacher
	if err := h.db.Order("created_at DESC").Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"teachers": teachers})
}

func (h *AdminHandler) VerifyTeacher(c *fiber.Ctx) error {
	type VerifyRequest struct {
		IsVerified bool `json:"is_verified"`
	}
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	result := h.db.Model(&models.Teacher{}).
		Where("id = ?", c.Params("id")).
		Update("is_verified", req.IsVerified)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	var teacher models.Teacher
	if err := h.db.First(&teacher, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"teacher": teacher, "message": "Teacher verification updated"})
}

func (h *AdminHandler) ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := h.db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"courses": courses})
}

func (h *AdminHandler) ListApprovedCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := h.db.Preload("Teacher").
		Where("approval_status = ?", models.CourseApproved).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"courses": coursesWithTeacher(courses)})
}

func (h *AdminHandler) ListPendingCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := h.db.Preload("Teacher").
		Where("approval_status = ?", models.CoursePending).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"courses": coursesWithTeacher(courses)})
}

func coursesWithTeacher(courses []models.Course) []fiber.Map {
	out := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		item := fiber.Map{"course": course}
		if course.Teacher != nil {
			item["teacher_name"] = course.Teacher.FullName
			item["teacher_email"] = course.Teacher.Email
		}
		out = append(out, item)
	}
	return out
}

func (h *AdminHandler) DeleteCourse(c *fiber.Ctx) error {
	result := h.db.Where("id = ?", c.Params("id")).Delete(&models.Course{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}

// ApproveCourse moves a pending course to approved and publishes it.
// Courses already processed read as missing, so double-moderation is a
// 404 rather than a silent overwrite.
func (h *AdminHandler) ApproveCourse(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)
	now := time.Now()

	result := h.db.Model(&models.Course{}).
		Where("id = ? AND approval_status = ?", c.Params("id"), models.CoursePending).
		Updates(map[string]interface{}{
			"approval_status": models.CourseApproved,
			"approved_by":     claims.UserID,
			"approved_at":     now,
			"is_published":    true,
		})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found or already processed"})
	}

	var course models.Course
	if err := h.db.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"course": course, "message": "Course approved successfully"})
}

func (h *AdminHandler) RejectCourse(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	type RejectRequest struct {
		RejectionReason string `json:"rejection_reason"`
	}
	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	reason := req.RejectionReason
	if reason == "" {
		reason = "No reason provided"
	}

	now := time.Now()
	result := h.db.Model(&models.Course{}).
		Where("id = ? AND approval_status = ?", c.Params("id"), models.CoursePending).
		Updates(map[string]interface{}{
			"approval_status":  models.CourseRejected,
			"approved_by":      claims.UserID,
			"approved_at":      now,
			"rejection_reason": reason,
		})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found or already processed"})
	}

	var course models.Course
	if err := h.db.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"course": course, "message": "Course rejected"})
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	var totalUsers, totalTeachers, totalStudents, totalCourses, pendingCourses, totalPayments int64

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&totalUsers, h.db.Model(&models.User{})},
		{&totalTeachers, h.db.Model(&models.User{}).Where("role = ?", models.RoleTeacher)},
		{&totalStudents, h.db.Model(&models.User{}).Where("role = ?", models.RoleStudent)},
		{&totalCourses, h.db.Model(&models.Course{})},
		{&pendingCourses, h.db.Model(&models.Course{}).Where("approval_status = ?", models.CoursePending)},
		{&totalPayments, h.db.Model(&models.Payment{})},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}

	return c.JSON(fiber.Map{
		"totalUsers":     totalUsers,
		"totalTeachers":  totalTeachers,
		"totalStudents":  totalStudents,
		"totalCourses":   totalCourses,
		"pendingCourses": pendingCourses,
		"totalPayments":  totalPayments,
	})
}
