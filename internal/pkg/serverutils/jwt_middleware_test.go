package serverutils_test

import (
	"net/http/httptest"
	"testing"

	"scholarship-fund-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Get("/me", serverutils.JwtMiddleware, func(ctx *fiber.Ctx) error {
		// Same unchecked read the controllers use. The middleware must
		// guarantee it never sees anything but a valid uuid string.
		id := ctx.Locals("user_id").(string)
		return ctx.SendString(id)
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestJwtMiddlewareMissingHeader(t *testing.T) {
	app := newProtectedApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareBadSignature(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{"user_id": uuid.NewString()}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

// A validly signed token that carries no principal id must come back as a
// 401, not crash the handler that reads the local.
func TestJwtMiddlewareMissingPrincipalClaim(t *testing.T) {
	app := newProtectedApp(t)

	for name, claims := range map[string]jwt.MapClaims{
		"absent":     {"sub": "someone"},
		"non-string": {"user_id": 42},
		"non-uuid":   {"user_id": "not-a-uuid"},
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, claims))

			res, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
		})
	}
}

func TestJwtMiddlewarePassesPrincipalThrough(t *testing.T) {
	app := newProtectedApp(t)
	id := uuid.NewString()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"user_id": id}))

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}
