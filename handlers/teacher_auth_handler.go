package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hamzaOly/ezyskills/models"
)

type TeacherAuthHandler struct {
	db *gorm.DB
}

func NewTeacherAuthHandler(db *gorm.DB) *TeacherAuthHandler {
	return &TeacherAuthHandler{db: db}
}

type TeacherRegisterRequest struct {
	Email             string           `json:"email" validate:"required,email"`
	Password          string           `json:"password" validate:"required,min=6"`
	FullName          string           `json:"full_name" validate:"required"`
	Phone             *string          `json:"phone"`
	Bio               string           `json:"bio" validate:"required,min=50"`
	Specialization    string           `json:"specialization" validate:"required"`
	YearsOfExperience int              `json:"years_of_experience" validate:"required,gte=0"`
	Education         string           `json:"education" validate:"required"`
	LinkedinURL       *string          `json:"linkedin_url"`
	WebsiteURL        *string          `json:"website_url"`
	HourlyRate        *decimal.Decimal `json:"hourly_rate"`
}

// Register creates the user account and the teacher profile in one
// transaction; a user with role teacher but no profile must never exist.
func (h *TeacherAuthHandler) Register(c *fiber.Ctx) error {
	var req TeacherRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error during teacher registration"})
	}
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	var user models.User
	var teacher models.Teacher
	err = h.db.Transaction(func(tx *gorm.DB) error {
		user = models.User{
			Email:    req.Email,
			Password: string(hashedPassword),
			Role:     models.RoleTeacher,
			FullName: &req.FullName,
			Phone:    req.Phone,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		teacher = models.Teacher{
			UserID:            user.ID,
			FullName:          req.FullName,
			Email:             req.Email,
			Phone:             req.Phone,
			Bio:               req.Bio,
			Specialization:    req.Specialization,
			YearsOfExperience: req.YearsOfExperience,
			Education:         req.Education,
			LinkedinURL:       req.LinkedinURL,
			WebsiteURL:        req.WebsiteURL,
			HourlyRate:        req.HourlyRate,
		}
		return tx.Create(&teacher).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error during teacher registration"})
	}

	token, err := issueToken(&user, &teacher.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Teacher account created successfully",
		"user": fiber.Map{
			"id":         user.ID,
			"email":      user.Email,
			"full_name":  req.FullName,
			"role":       user.Role,
			"teacher_id": teacher.ID,
		},
		"token": token,
	})
}
