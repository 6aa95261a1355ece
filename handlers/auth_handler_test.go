package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authTestSecret = "auth-test-secret"

func newAuthApp(t *testing.T, h *AuthHandler) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", authTestSecret)

	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	return app
}

func parseClaims(t *testing.T, raw string) jwt.MapClaims {
	t.Helper()

	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		return []byte(authTestSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return token.Claims.(jwt.MapClaims)
}

func TestRegisterCreatesStudent(t *testing.T) {
	db := newTestDB(t)
	app := newAuthApp(t, NewAuthHandler(db))

	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/register", fiber.Map{
		"email":     "new@example.com",
		"password":  "secret1",
		"full_name": "New Student",
	}, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	user := body["user"].(map[string]any)
	assert.Equal(t, "student", user["role"])
	assert.NotContains(t, user, "password")

	claims := parseClaims(t, body["token"].(string))
	assert.Equal(t, "new@example.com", claims["email"])
	assert.Equal(t, "student", claims["role"])
	assert.NotContains(t, claims, "teacher_id")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	app := newAuthApp(t, NewAuthHandler(db))

	payload := fiber.Map{"email": "dup@example.com", "password": "secret1"}

	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/register", payload, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(jsonRequest(t, "POST", "/api/auth/register", payload, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already registered", decodeBody(t, resp)["error"])
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	app := newAuthApp(t, NewAuthHandler(db))

	cases := []fiber.Map{
		{"email": "not-an-email", "password": "secret1"},
		{"email": "short@example.com", "password": "12345"},
		{"password": "secret1"},
	}
	for _, payload := range cases {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/register", payload, ""))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	app := newAuthApp(t, NewAuthHandler(db))
	seedTeacherAccount(t, db, "teacher@example.com")

	for _, payload := range []fiber.Map{
		{"email": "teacher@example.com", "password": "wrong-password"},
		{"email": "unknown@example.com", "password": testPassword},
	} {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/login", payload, ""))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", decodeBody(t, resp)["error"])
	}
}

func TestLoginEmbedsTeacherID(t *testing.T) {
	db := newTestDB(t)
	app := newAuthApp(t, NewAuthHandler(db))
	_, teacher := seedTeacherAccount(t, db, "teacher@example.com")

	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/login", fiber.Map{
		"email":    "teacher@example.com",
		"password": testPassword,
	}, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	claims := parseClaims(t, decodeBody(t, resp)["token"].(string))
	assert.Equal(t, "teacher", claims["role"])
	assert.Equal(t, teacher.ID.String(), claims["teacher_id"])
}
