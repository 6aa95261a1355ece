package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hamzaOly/ezyskills/middleware"
	"github.com/hamzaOly/ezyskills/services"
)

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

type AdminBundleHandler struct {
	bundles *services.BundleService
}

func NewAdminBundleHandler(bundles *services.BundleService) *AdminBundleHandler {
	return &AdminBundleHandler{bundles: bundles}
}

// Create builds a bundle from any approved courses. Admin bundles skip the
// approval queue and go live immediately.
func (h *AdminBundleHandler) Create(c *fiber.Ctx) error {
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
		TeacherID:          nil,
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

func (h *AdminBundleHandler) ListPending(c *fiber.Ctx) error {
	bundles, err := h.bundles.ListPending()
	if err != nil {
		return bundleError(c, err)
	}
	return c.JSON(fiber.Map{"bundles": bundles})
}

func (h *AdminBundleHandler) ListAll(c *fiber.Ctx) error {
	bundles, err := h.bundles.ListAll()
	if err != nil {
		return bundleError(c, err)
	}
	return c.JSON(fiber.Map{"bundles": bundles})
}

func (h *AdminBundleHandler) Approve(c *fiber.Ctx) error {
	bundleID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bundle not found"})
	}

	bundle, err := h.bundles.Approve(bundleID)
	if err != nil {
		return bundleError(c, err)
	}
	return c.JSON(fiber.Map{"bundle": bundle, "message": "Bundle approved successfully"})
}

// Reject removes the bundle outright; the id reads as 404 afterwards.
func (h *AdminBundleHandler) Reject(c *fiber.Ctx) error {
	bundleID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bundle not found"})
	}

	if err := h.bundles.Reject(bundleID); err != nil {
		return bundleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Bundle rejected successfully"})
}
