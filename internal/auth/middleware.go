package auth

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TokenResolver maps a session token to a user id. Implemented by
// TokenService; tests substitute a fake.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

type Middleware struct {
	tokens TokenResolver
}

func NewMiddleware(tokens TokenResolver) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireToken rejects requests without a resolvable X-Token. Authentication
// failure is always reported before any resource-specific check runs.
func (m *Middleware) RequireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderToken)
			if token == "" {
				return respondError(c, http.StatusUnauthorized, msgUnauthorized)
			}

			userID, err := m.tokens.Resolve(c.Request().Context(), token)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgUnauthorized)
			}

			c.Set(ContextKeyUserID, userID)

			return next(c)
		}
	}
}

// OptionalToken resolves the token when present but never rejects; the
// content endpoint serves anonymous readers of public files.
func (m *Middleware) OptionalToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := c.Request().Header.Get(HeaderToken); token != "" {
				if userID, err := m.tokens.Resolve(c.Request().Context(), token); err == nil {
					c.Set(ContextKeyUserID, userID)
				}
			}

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user id set by RequireToken.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

// GetOptionalUserID returns the requester id, or nil for anonymous callers.
func GetOptionalUserID(c echo.Context) *uuid.UUID {
	if userID, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
		return &userID
	}
	return nil
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}
