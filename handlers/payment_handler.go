package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hamzaOly/ezyskills/models"
	"github.com/hamzaOly/ezyskills/notifications"
)

type PaymentHandler struct {
	db     *gorm.DB
	mailer *notifications.EmailService
}

func NewPaymentHandler(db *gorm.DB, mailer *notifications.EmailService) *PaymentHandler {
	return &PaymentHandler{db: db, mailer: mailer}
}

type PaymentNotifyRequest struct {
	BundleID    string          `json:"bundle_id" validate:"required,uuid"`
	BundleTitle string          `json:"bundle_title" validate:"required"`
	ProgramType string          `json:"program_type"`
	Amount      decimal.Decimal `json:"amount"`
	Customer    struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Phone string `json:"phone" validate:"required"`
	} `json:"customer"`
}

// Notify records a checkout as an immutable payment row, then sends the
// confirmation mails in the background. The emails are best-effort; the
// payment record is the source of truth either way.
func (h *PaymentHandler) Notify(c *fiber.Ctx) error {
	var req PaymentNotifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer information incomplete"})
	}
	if req.Amount.IsZero() || req.Amount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	bundleID, err := uuid.Parse(req.BundleID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	payment := models.Payment{
		BundleID:      bundleID,
		CustomerName:  req.Customer.Name,
		CustomerEmail: req.Customer.Email,
		CustomerPhone: req.Customer.Phone,
		Amount:        req.Amount,
		ProgramType:   req.ProgramType,
		PaymentStatus: "completed",
	}
	if err := h.db.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process payment notification"})
	}

	go h.mailer.SendPaymentEmails(notifications.PaymentEmailData{
		BundleTitle:   req.BundleTitle,
		ProgramType:   req.ProgramType,
		Amount:        req.Amount,
		CustomerName:  req.Customer.Name,
		CustomerEmail: req.Customer.Email,
		PaymentID:     payment.ID,
		PaymentDate:   payment.CreatedAt,
	})

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Payment recorded successfully",
		"payment_id": payment.ID,
	})
}

// PaymentWithBundle flattens the joined bundle title onto the payment for
// the admin listing.
type PaymentWithBundle struct {
	models.Payment
	BundleTitle *string `json:"bundle_title"`
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	var payments []PaymentWithBundle
	err := h.db.Table("payments").
		Select("payments.*, course_bundles.title AS bundle_title").
		Joins("LEFT JOIN course_bundles ON course_bundles.id = payments.bundle_id").
		Order("payments.created_at DESC").
		Scan(&payments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"payments": payments})
}

func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	var payment PaymentWithBundle
	err := h.db.Table("payments").
		Select("payments.*, course_bundles.title AS bundle_title").
		Joins("LEFT JOIN course_bundles ON course_bundles.id = payments.bundle_id").
		Where("payments.id = ?", c.Params("id")).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"payment": payment})
}
