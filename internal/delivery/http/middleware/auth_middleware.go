package middleware

import (
	"strings"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	profiles usecase.ProfileUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, profiles usecase.ProfileUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, profiles: profiles}
}

// Authenticate validates the bearer access token and stores the caller's
// identity and role on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, errResponse := m.bearerClaims(c)
		if claims == nil {
			return errResponse
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, entity.Role(claims.Role))

		return next(c)
	}
}

// OptionalAuthenticate resolves the caller's identity when a valid bearer
// token is present and otherwise continues anonymously. Used by the
// navigation endpoint, which must answer for every session state.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != "access" {
			return next(c)
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, entity.Role(claims.Role))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller holds the
// given role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}
			if role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// RequireOnboarded gates feature endpoints behind completed onboarding, the
// server-side counterpart of the client's onboarding screen gate. It must be
// used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireOnboarded(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}

		view, err := m.profiles.Resolve(c.Request().Context(), userID)
		if err != nil {
			return err
		}
		if !view.Onboarded {
			return response.Forbidden(c, "NOT_ONBOARDED", "Onboarding must be completed first")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) bearerClaims(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}
	if claims.Type != "access" {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Token is not an access token")
	}

	return claims, nil
}
