package middleware

import (
	"strings"

	"tradein/config"
	"tradein/internal/delivery/http/response"
	"tradein/internal/domain/entity"
	"tradein/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// actorKey is the echo context key holding the authenticated actor.
const actorKey = "actor"

// AuthMiddleware provides middleware for session-token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the bearer session token and stores the actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		actor, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Session)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(actorKey, *actor)

		return next(c)
	}
}

// RequireAdmin rejects non-admin actors. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := GetActor(c)
		if !ok || !actor.IsAdmin {
			return response.Forbidden(c, "ADMIN_REQUIRED", "This operation requires an admin")
		}

		return next(c)
	}
}

// GetActor returns the authenticated actor stored by Authenticate.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(actorKey).(entity.Actor)

	return actor, ok
}
