package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func issueToken(t *testing.T, role auth.Role, branchCode string, ttl time.Duration) string {
	t.Helper()

	branch, err := kernel.NewBranchCode(branchCode)
	require.NoError(t, err)

	token, err := GenerateToken(testSecret, kernel.NewUUID(), role, branch, ttl)
	require.NoError(t, err)
	return token
}

func invokeMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, auth.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var captured auth.Context
	handler := AuthMiddleware(testSecret)(func(c echo.Context) error {
		actor, err := actorFromRequest(c)
		require.NoError(t, err)
		captured = actor
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	return rec, captured
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := issueToken(t, auth.RoleOperator, "HYD", time.Minute)

	rec, actor := invokeMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, auth.RoleOperator, actor.Role())
	assert.Equal(t, "HYD", actor.Branch().String())
}

func TestAuthMiddleware_AdminToken(t *testing.T) {
	token := issueToken(t, auth.RoleAdmin, "BLR", time.Minute)

	rec, actor := invokeMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, actor.IsElevated())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _ := invokeMiddleware(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _ := invokeMiddleware(t, "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	branch, err := kernel.NewBranchCode("HYD")
	require.NoError(t, err)

	token, err := GenerateToken([]byte("other-secret"), kernel.NewUUID(), auth.RoleOperator, branch, time.Minute)
	require.NoError(t, err)

	rec, _ := invokeMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := issueToken(t, auth.RoleOperator, "HYD", -time.Minute)

	rec, _ := invokeMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_IncompleteClaims(t *testing.T) {
	// Signed correctly but missing the branch claim.
	claims := Claims{
		CallerID: kernel.NewUUID().String(),
		Role:     auth.RoleOperator.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	rec, _ := invokeMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
