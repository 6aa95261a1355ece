package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hamzaOly/ezyskills/middleware"
	"github.com/hamzaOly/ezyskills/models"
)

// TeacherCourseHandler is the teacher-scoped course surface. Ownership is
// checked on every row access; non-owned rows read as missing.
type TeacherCourseHandler struct {
	db *gorm.DB
}

func NewTeacherCourseHandler(db *gorm.DB) *TeacherCourseHandler {
	return &TeacherCourseHandler{db: db}
}

func (h *TeacherCourseHandler) List(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var courses []models.Course
	err := h.db.Where("created_by = ?", claims.UserID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"courses": courses})
}

type CourseRequest struct {
	Title         string           `json:"title" validate:"required"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Level         string           `json:"level"`
	DurationHours int              `json:"duration_hours" validate:"gte=0"`
	Price         *decimal.Decimal `json:"price"`
	ThumbnailURL  *string          `json:"thumbnail_url"`
	DemoVideoURL  *string          `json:"demo_video_url"`
}

func (h *TeacherCourseHandler) Create(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var teacher models.Teacher
	if err := h.db.Where("id = ?", claims.TeacherID).First(&teacher).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher profile not found"})
	}

	price := decimal.Zero
	if req.Price != nil {
		if req.Price.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price cannot be negative"})
		}
		price = *req.Price
	}
	level := req.Level
	if level == "" {
		level = "beginner"
	}

	// New courses always enter the moderation queue unpublished.
	course := models.Course{
		TeacherID:      claims.TeacherID,
		CreatedBy:      claims.UserID,
		InstructorName: &teacher.FullName,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Level:          level,
		Price:          price,
		DurationHours:  req.DurationHours,
		ThumbnailURL:   req.ThumbnailURL,
		DemoVideoURL:   req.DemoVideoURL,
		ApprovalStatus: models.CoursePending,
		IsPublished:    false,
	}
	if err := h.db.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"course": course})
}

func (h *TeacherCourseHandler) Update(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var course models.Course
	err := h.db.Where("id = ? AND created_by = ?", c.Params("id"), claims.UserID).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found or unauthorized"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Category = req.Category
	if req.Level != "" {
		course.Level = req.Level
	}
	course.DurationHours = req.DurationHours
	if req.Price != nil {
		if req.Price.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price cannot be negative"})
		}
		course.Price = *req.Price
	}
	if req.ThumbnailURL != nil {
		course.ThumbnailURL = req.ThumbnailURL
	}
	if req.DemoVideoURL != nil {
		course.DemoVideoURL = req.DemoVideoURL
	}

	if err := h.db.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"course": course})
}

func (h *TeacherCourseHandler) Delete(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	result := h.db.Where("id = ? AND created_by = ?", c.Params("id"), claims.UserID).
		Delete(&models.Course{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found or unauthorized"})
	}
	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}

type CourseContentRequest struct {
	SectionNumber int                 `json:"section_number" validate:"required,gte=1"`
	Title         string              `json:"title" validate:"required"`
	Duration      *string             `json:"duration"`
	Subsections   []models.Subsection `json:"subsections"`
}

func (h *TeacherCourseHandler) AddContent(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var course models.Course
	err := h.db.Where("id = ? AND created_by = ?", c.Params("id"), claims.UserID).
		First(&course).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found or unauthorized"})
	}

	var req CourseContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	subsections, err := json.Marshal(req.Subsections)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subsections"})
	}

	content := models.CourseContent{
		CourseID:      course.ID,
		SectionNumber: req.SectionNumber,
		Title:         req.Title,
		Duration:      req.Duration,
		Subsections:   datatypes.JSON(subsections),
	}
	if err := h.db.Create(&content).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"content": content})
}

type CourseProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (h *TeacherCourseHandler) AddProject(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var course models.Course
	err := h.db.Where("id = ? AND created_by = ?", c.Params("id"), claims.UserID).
		First(&course).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found or unauthorized"})
	}

	var req CourseProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	project := models.CourseProject{
		CourseID:    course.ID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.db.Create(&project).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"project": project})
}
