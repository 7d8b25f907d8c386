package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/generated/servers"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is where the middleware stashes the caller identity on the
// echo context.
const actorContextKey = "actor"

// Claims is the custom JWT payload: who is calling, what they may do, and
// which branch they operate from.
type Claims struct {
	CallerID string `json:"sub" validate:"required,uuid"`
	Role     string `json:"role" validate:"required"`
	Branch   string `json:"branch" validate:"required"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT carrying the caller identity. Used by
// the provisioning tooling and by tests; the engine itself only parses.
func GenerateToken(secret []byte, callerID kernel.UUID, role auth.Role, branch kernel.BranchCode, ttl time.Duration) (string, error) {
	claims := Claims{
		CallerID: callerID.String(),
		Role:     role.String(),
		Branch:   branch.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// AuthMiddleware validates the bearer token and builds the caller's
// auth.Context for downstream handlers. Requests without a valid identity
// never reach a handler.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	validate := validator.New()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(ctx, "missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(ctx, "invalid Authorization header")
			}

			token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return unauthorized(ctx, "invalid or expired token")
			}

			claims, ok := token.Claims.(*Claims)
			if !ok {
				return unauthorized(ctx, "invalid token claims")
			}
			if err = validate.Struct(claims); err != nil {
				return unauthorized(ctx, "incomplete token claims")
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return unauthorized(ctx, "invalid caller identity")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromClaims(claims *Claims) (auth.Context, error) {
	callerID, err := kernel.UUIDFromString(claims.CallerID)
	if err != nil {
		return auth.Context{}, err
	}

	role, err := auth.RoleFromString(claims.Role)
	if err != nil {
		return auth.Context{}, err
	}

	branch, err := kernel.NewBranchCode(claims.Branch)
	if err != nil {
		return auth.Context{}, err
	}

	return auth.NewContext(callerID, role, branch)
}

// actorFromRequest retrieves the caller identity the middleware attached.
func actorFromRequest(ctx echo.Context) (auth.Context, error) {
	actor, ok := ctx.Get(actorContextKey).(auth.Context)
	if !ok {
		return auth.Context{}, errors.New("caller identity missing from request context")
	}
	return actor, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
