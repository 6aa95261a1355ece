package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/hamzaOly/ezyskills/configs"
	"github.com/hamzaOly/ezyskills/models"
)

// AuthClaims is the verified content of a bearer token. TeacherID is nil
// for students and admins.
type AuthClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	TeacherID *uuid.UUID
}

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.MustConfig("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid or expired token"})
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentClaims(c).Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}

// TeacherRequired gates teacher routes. A teacher token without a
// teacher_id claim means the profile row is missing, which is a data
// integrity problem rather than a permissions one.
func TeacherRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := CurrentClaims(c)

		if claims.Role != models.RoleTeacher {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Teacher access required",
			})
		}
		if claims.TeacherID == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Teacher ID missing from token",
			})
		}
		return c.Next()
	}
}

// CurrentClaims extracts the verified claims set by Protected. It must only
// be called on routes behind that middleware.
func CurrentClaims(c *fiber.Ctx) AuthClaims {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	out := AuthClaims{}
	if v, ok := claims["user_id"].(string); ok {
		if id, err := uuid.Parse(v); err == nil {
			out.UserID = id
		}
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	if v, ok := claims["teacher_id"].(string); ok {
		if id, err := uuid.Parse(v); err == nil {
			out.TeacherID = &id
		}
	}
	return out
}
