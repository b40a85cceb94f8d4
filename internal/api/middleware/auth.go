package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
	"github.com/devportfolio/portfolio-api/internal/core/token"
)

// Auth validates the bearer token and injects the subject id and jti into
// context for handlers downstream. Revoked tokens fail here, before any
// handler runs.
func Auth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subjectID, jti, err := issuer.Validate(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				return err
			}

			c.Set("user_id", subjectID)
			c.Set("jti", jti)

			return next(c)
		}
	}
}
