package serverutils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func requestWithToken(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func fullClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":         uuid.New().String(),
		"organization_id": uuid.New().String(),
	}
}

func TestJwtMiddlewareAcceptsSignedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newProtectedApp()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, fullClaims()).SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, requestWithToken(t, app, token))
}

func TestJwtMiddlewareRejectsNoneAlgorithm(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newProtectedApp()

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, fullClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, token))
}

func TestJwtMiddlewareRequiresBothClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newProtectedApp()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, token))
}

func TestJwtMiddlewareRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newProtectedApp()

	assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, ""))
}
