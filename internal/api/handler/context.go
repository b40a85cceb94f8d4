package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both values being present proves the
// middleware ran on this route.
func ctxIdentity(c echo.Context) (userID, jti string, err error) {
	userID, _ = c.Get("user_id").(string)
	jti, _ = c.Get("jti").(string)
	if userID == "" || jti == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, jti, nil
}
