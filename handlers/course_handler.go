package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hamzaOly/ezyskills/models"
)

// CourseHandler serves the public, unauthenticated catalog surface.
type CourseHandler struct {
	db *gorm.DB
}

func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{db: db}
}

func (h *CourseHandler) ListPublic(c *fiber.Ctx) error {
	var courses []models.Course
	err := h.db.Where("is_published = ? AND approval_status = ?", true, models.CourseApproved).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"courses": courses})
}

func (h *CourseHandler) GetByID(c *fiber.Ctx) error {
	var course models.Course
	err := h.db.Preload("Teacher").
		Where("id = ? AND is_published = ? AND approval_status = ?", c.Params("id"), true, models.CourseApproved).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	response := fiber.Map{"course": course}
	if course.Teacher != nil {
		response["instructor_name"] = course.Teacher.FullName
		response["instructor_bio"] = course.Teacher.Bio
	}
	return c.JSON(response)
}

func (h *CourseHandler) ListByCategory(c *fiber.Ctx) error {
	var courses []models.Course
	err := h.db.Where("category = ? AND is_published = ? AND approval_status = ?",
		c.Params("category"), true, models.CourseApproved).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"courses": courses})
}

func (h *CourseHandler) GetContent(c *fiber.Ctx) error {
	var content []models.CourseContent
	err := h.db.Where("course_id = ?", c.Params("id")).
		Order("section_number").
		Find(&content).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"content": content})
}

func (h *CourseHandler) GetProjects(c *fiber.Ctx) error {
	var projects []models.CourseProject
	err := h.db.Where("course_id = ?", c.Params("id")).Find(&projects).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"projects": projects})
}
