package middleware

import (
	"strings"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for bearer token authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate verifies the bearer token and stores its claims for downstream handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
		}
		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

		claims, err := m.authUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the verified role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetClaims(c)
			if claims == nil {
				return domainerrors.ErrUnauthorized.WithDetails("Token claims missing")
			}

			if claims.Role != requiredRole {
				return domainerrors.ErrForbidden.WithDetails("Permission denied: require '" + requiredRole.String() + "' role")
			}

			return next(c)
		}
	}
}
