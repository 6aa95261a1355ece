package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hamzaOly/ezyskills/middleware"
	"github.com/hamzaOly/ezyskills/services"
)

// BundleHandler is the teacher-facing and public bundle surface; the
// workflow itself lives in services.BundleService.
type BundleHandler struct {
	bundles *services.BundleService
}

func NewBundleHandler(bundles *services.BundleService) *BundleHandler {
	return &BundleHandler{bundles: bundles}
}

type BundleRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	CourseIDs          []string `json:"course_ids"`
	DiscountPercentage float64  `json:"discount_percentage"`
}

func bundleError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.Is(err, services.ErrBundleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bundle not found"})
	default:
		log.Printf("[ERROR] bundle operation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
}

func (h *BundleHandler) Create(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var req BundleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	bundle, err := h.bundles.Create(services.CreateBundleInput{
		Title:              req.Title,
		Description:        req.Description,
		CourseIDs:          req.CourseIDs,
		DiscountPercentage: req.DiscountPercentage,
		TeacherID:          claims.TeacherID,
		CreatedBy:          claims.UserID,
	})
	if err != nil {
		return bundleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"bundle":  bundle,
		"message": "Bundle created successfully",
	})
}

func (h *BundleHandler) List(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	bundles, err := h.bundles.ListByTeacher(*claims.TeacherID)
	if err != nil {
		return bundleError(c, err)
	}
	return c.JSON(fiber.Map{"bundles": bundles})
}

// ListPublic is the storefront pricing page feed; no auth.
func (h *BundleHandler) ListPublic(c *fiber.Ctx) error {
	bundles, err := h.bundles.ListPublic()
	if err != nil {
		return bundleError(c, err)
	}
	return c.JSON(fiber.Map{"bundles": bundles})
}

type BundleUpdateRequest struct {
	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	DiscountPercentage *float64 `json:"discount_percentage"`
}

func (h *BundleHandler) Update(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	bundleID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bundle not found"})
	}

	var req BundleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	bundle, err := h.bundles.Update(*claims.TeacherID, bundleID, services.UpdateBundleInput{
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
	})
	if err != nil {
		return bundleError(c, err)
	}
	return c.JSON(fiber.Map{"bundle": bundle, "message": "Bundle updated successfully"})
}

func (h *BundleHandler) Delete(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	bundleID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bundle not found"})
	}

	if err := h.bundles.Delete(*claims.TeacherID, bundleID); err != nil {
		return bundleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Bundle deleted successfully"})
}
